package teams_repositories

import (
	"errors"
	"fmt"
	"time"

	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	"tofu-workspaces-backend/internal/storage"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository struct{}

// CreateTeam persists a team and its initial members as one
// transactional unit.
func (r *TeamRepository) CreateTeam(team *teams_models.Team) (*teams_models.Team, error) {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}

	now := time.Now().UTC()
	if team.CreatedOn.IsZero() {
		team.CreatedOn = now
	}
	team.LastUpdatedOn = now

	for i := range team.Members {
		member := &team.Members[i]
		member.TeamID = team.ID
		if member.Role == "" {
			member.Role = teams_models.DefaultMemberRole
		}
		member.Enabled = true
		member.CreatedOn = now
		member.LastUpdatedOn = now
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		row := teams_models.Team{
			ID:            team.ID,
			WorkspaceID:   team.WorkspaceID,
			Code:          team.Code,
			Name:          team.Name,
			CreatedOn:     team.CreatedOn,
			LastUpdatedOn: team.LastUpdatedOn,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		if len(team.Members) > 0 {
			if err := tx.Create(&team.Members).Error; err != nil {
				return fmt.Errorf("failed to create members: %w", err)
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

	return r.GetTeamScoped(team.WorkspaceID, team.ID)
}

// GetTeamScoped loads a team only when it belongs to the given
// workspace.
func (r *TeamRepository) GetTeamScoped(
	workspaceID uuid.UUID,
	teamID uuid.UUID,
) (*teams_models.Team, error) {
	var team teams_models.Team

	err := storage.GetDb().
		Preload("Members").
		Preload("Members.User").
		Where("workspace_id = ? AND id = ?", workspaceID, teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) GetTeamsByWorkspace(
	workspaceID uuid.UUID,
) ([]*teams_models.Team, error) {
	var teams []*teams_models.Team

	err := storage.GetDb().
		Preload("Members").
		Preload("Members.User").
		Where("workspace_id = ?", workspaceID).
		Order("created_on ASC").
		Find(&teams).Error

	return teams, err
}

func (r *TeamRepository) UpdateTeam(team *teams_models.Team) error {
	team.LastUpdatedOn = time.Now().UTC()

	return storage.GetDb().
		Model(&teams_models.Team{}).
		Where("id = ?", team.ID).
		Updates(map[string]any{
			"name":            team.Name,
			"last_updated_on": team.LastUpdatedOn,
		}).Error
}

// DeleteTeam removes the team and its members atomically.
func (r *TeamRepository) DeleteTeam(teamID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).
			Delete(&teams_models.Member{}).Error; err != nil {
			return fmt.Errorf("failed to delete members: %w", err)
		}

		if err := tx.Where("id = ?", teamID).Delete(&teams_models.Team{}).Error; err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}

		return nil
	})
}

// ReplaceMembers reconciles the team's membership against the complete
// desired user set: users missing from the team are added, current
// members missing from the desired set are removed, members present in
// both are kept untouched.
func (r *TeamRepository) ReplaceMembers(
	teamID uuid.UUID,
	desiredUserIDs []uuid.UUID,
) error {
	desired := make(map[uuid.UUID]struct{}, len(desiredUserIDs))
	for _, id := range desiredUserIDs {
		desired[id] = struct{}{}
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var current []teams_models.Member
		if err := tx.Where("team_id = ?", teamID).Find(&current).Error; err != nil {
			return fmt.Errorf("failed to load current members: %w", err)
		}

		existing := make(map[uuid.UUID]struct{}, len(current))
		removeIDs := make([]int64, 0)
		for _, member := range current {
			existing[member.UserID] = struct{}{}
			if _, keep := desired[member.UserID]; !keep {
				removeIDs = append(removeIDs, member.ID)
			}
		}

		now := time.Now().UTC()
		additions := make([]teams_models.Member, 0)
		for _, userID := range desiredUserIDs {
			if _, ok := existing[userID]; ok {
				continue
			}

			additions = append(additions, teams_models.Member{
				TeamID:        teamID,
				UserID:        userID,
				Role:          teams_models.DefaultMemberRole,
				Enabled:       true,
				CreatedOn:     now,
				LastUpdatedOn: now,
			})
			existing[userID] = struct{}{}
		}

		if len(removeIDs) > 0 {
			if err := tx.Where("id IN ?", removeIDs).
				Delete(&teams_models.Member{}).Error; err != nil {
				return fmt.Errorf("failed to remove members: %w", err)
			}
		}

		if len(additions) > 0 {
			if err := tx.Create(&additions).Error; err != nil {
				return fmt.Errorf("failed to add members: %w", err)
			}
		}

		return nil
	})
}
