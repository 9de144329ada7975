package workspaces_repositories

import (
	"errors"
	"fmt"
	"time"

	accounts_models "tofu-workspaces-backend/internal/features/accounts/models"
	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	users_models "tofu-workspaces-backend/internal/features/users/models"
	workspaces_models "tofu-workspaces-backend/internal/features/workspaces/models"
	"tofu-workspaces-backend/internal/storage"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

// CreateWorkspace runs the provisioning cascade in one transaction:
// resolve-or-create the account, resolve-or-create the admin user,
// persist the workspace, then materialize one team per system catalog
// entry, auto-assigning the admin into teams the catalog marks for it.
// Any failure rolls the whole cascade back; no partial state survives.
//
// adminDescriptor may be nil when the admin user is expected to exist
// already. A missing user with no descriptor (or one without an email)
// fails the account/user precondition.
func (r *WorkspaceRepository) CreateWorkspace(
	workspace *workspaces_models.Workspace,
	adminDescriptor *users_models.User,
) (*workspaces_models.Workspace, error) {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	now := time.Now().UTC()
	if workspace.CreatedOn.IsZero() {
		workspace.CreatedOn = now
	}
	workspace.LastUpdatedOn = now

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		account := &accounts_models.Account{
			ID:        workspace.AccountID,
			CreatedOn: now,
			Settings:  map[string]string{},
		}
		if err := tx.Where("id = ?", workspace.AccountID).
			FirstOrCreate(account).Error; err != nil {
			return fmt.Errorf("failed to resolve account: %w", err)
		}

		admin, err := r.resolveAdmin(tx, workspace.AdminID, adminDescriptor, now)
		if err != nil {
			return err
		}
		workspace.AdminID = admin.ID

		row := workspaces_models.Workspace{
			ID:            workspace.ID,
			AccountID:     workspace.AccountID,
			AdminID:       workspace.AdminID,
			Name:          workspace.Name,
			Enabled:       workspace.Enabled,
			CreatedOn:     workspace.CreatedOn,
			LastUpdatedOn: workspace.LastUpdatedOn,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		// Catalog order must be deterministic so materialized teams come
		// out in a reproducible order.
		var catalog []teams_models.SystemTeam
		if err := tx.Order("id ASC").Find(&catalog).Error; err != nil {
			return fmt.Errorf("failed to load system team catalog: %w", err)
		}

		teams := make([]teams_models.Team, 0, len(catalog))
		for _, entry := range catalog {
			team := teams_models.Team{
				ID:            uuid.New(),
				WorkspaceID:   workspace.ID,
				Code:          entry.Code,
				Name:          entry.Name,
				CreatedOn:     now,
				LastUpdatedOn: now,
			}

			if entry.AutoAssign {
				team.Members = []teams_models.Member{{
					TeamID:        team.ID,
					UserID:        admin.ID,
					Role:          teams_models.DefaultMemberRole,
					Enabled:       true,
					CreatedOn:     now,
					LastUpdatedOn: now,
				}}
			}

			teams = append(teams, team)
		}

		if len(teams) > 0 {
			if err := tx.Create(&teams).Error; err != nil {
				return fmt.Errorf("failed to materialize default teams: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, errs.ErrConflict
		}

		return nil, err
	}

	return r.GetWorkspaceScoped(workspace.AccountID, workspace.ID)
}

func (r *WorkspaceRepository) resolveAdmin(
	tx *gorm.DB,
	adminID uuid.UUID,
	descriptor *users_models.User,
	now time.Time,
) (*users_models.User, error) {
	var admin users_models.User

	err := tx.Where("id = ?", adminID).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve admin user: %w", err)
	}

	if descriptor == nil || descriptor.Email == "" {
		return nil, fmt.Errorf("admin user %s does not exist: %w", adminID, errs.ErrPreconditionFailed)
	}

	admin = users_models.User{
		ID:            adminID,
		Email:         descriptor.Email,
		FirstName:     descriptor.FirstName,
		LastName:      descriptor.LastName,
		Enabled:       descriptor.Enabled,
		Activated:     descriptor.Activated,
		Mobile:        descriptor.Mobile,
		Avatar:        descriptor.Avatar,
		CreatedOn:     now,
		LastUpdatedOn: now,
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	if err := tx.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return &admin, nil
}

// GetWorkspaceScoped loads a workspace only when it belongs to the given
// account. A workspace under a different account is indistinguishable
// from a missing one.
func (r *WorkspaceRepository) GetWorkspaceScoped(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Preload("Account").
		Preload("Admin").
		Preload("Teams").
		Preload("Teams.Members").
		Where("account_id = ? AND id = ?", accountID, workspaceID).
		First(&workspace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) CountEnabledByAccountAndName(
	accountID uuid.UUID,
	name string,
) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("account_id = ? AND name = ? AND enabled = true", accountID, name).
		Count(&count).Error

	return count, err
}

func (r *WorkspaceRepository) UpdateWorkspace(
	workspace *workspaces_models.Workspace,
) error {
	workspace.LastUpdatedOn = time.Now().UTC()

	err := storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("id = ?", workspace.ID).
		Updates(map[string]any{
			"name":            workspace.Name,
			"enabled":         workspace.Enabled,
			"last_updated_on": workspace.LastUpdatedOn,
		}).Error
	if storage.IsUniqueViolation(err) {
		return errs.ErrConflict
	}

	return err
}

// DeleteWorkspace removes the workspace and everything it owns as one
// atomic unit: members first, then teams, then the workspace row.
func (r *WorkspaceRepository) DeleteWorkspace(workspaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("team_id IN (?)",
				tx.Model(&teams_models.Team{}).
					Select("id").
					Where("workspace_id = ?", workspaceID),
			).
			Delete(&teams_models.Member{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete members: %w", err)
		}

		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(&teams_models.Team{}).Error; err != nil {
			return fmt.Errorf("failed to delete teams: %w", err)
		}

		if err := tx.Where("id = ?", workspaceID).
			Delete(&workspaces_models.Workspace{}).Error; err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}

		return nil
	})
}

// SearchWorkspaces lists an account's workspaces, optionally narrowed by
// name and enabled state. The listing is unbounded; pagination is a
// known gap.
func (r *WorkspaceRepository) SearchWorkspaces(
	accountID uuid.UUID,
	name *string,
	enabled *bool,
) ([]*workspaces_models.Workspace, error) {
	query := storage.GetDb().
		Preload("Teams").
		Preload("Teams.Members").
		Where("account_id = ?", accountID)

	if name != nil {
		query = query.Where("name = ?", *name)
	}

	if enabled != nil {
		query = query.Where("enabled = ?", *enabled)
	}

	var workspaces []*workspaces_models.Workspace
	err := query.Order("created_on ASC").Find(&workspaces).Error

	return workspaces, err
}
