package invitations_repositories

import (
	"errors"
	"fmt"
	"time"

	invitations_models "tofu-workspaces-backend/internal/features/invitations/models"
	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	users_models "tofu-workspaces-backend/internal/features/users/models"
	workspaces_models "tofu-workspaces-backend/internal/features/workspaces/models"
	"tofu-workspaces-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

// CreateInvitation persists the invitation together with its
// provisional user row in one transaction. The user carries only the
// invited email until the invitation is consumed.
func (r *InvitationRepository) CreateInvitation(
	invitation *invitations_models.Invitation,
) (*invitations_models.Invitation, error) {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}

	now := time.Now().UTC()
	invitation.CreatedOn = now
	invitation.LastUpdatedOn = now

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		user := users_models.User{
			ID:            uuid.New(),
			Email:         invitation.Email,
			Enabled:       true,
			CreatedOn:     now,
			LastUpdatedOn: now,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create provisional user: %w", err)
		}

		invitation.LinkedUserID = user.ID

		if err := tx.Create(invitation).Error; err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetInvitationByID(invitation.ID)
}

func (r *InvitationRepository) GetInvitationByID(
	invitationID uuid.UUID,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	err := storage.GetDb().
		Preload("LinkedUser").
		Where("id = ?", invitationID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

// Consume activates the linked user and stamps the invitation in one
// transaction.
func (r *InvitationRepository) Consume(
	invitation *invitations_models.Invitation,
	user *users_models.User,
) (*invitations_models.Invitation, error) {
	now := time.Now().UTC()

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&users_models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]any{
				"first_name":      user.FirstName,
				"last_name":       user.LastName,
				"activated":       true,
				"activated_on":    now,
				"last_updated_on": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to activate user: %w", err)
		}

		err = tx.Model(&invitations_models.Invitation{}).
			Where("id = ?", invitation.ID).
			Updates(map[string]any{
				"consumed_on":     now,
				"last_updated_on": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to stamp invitation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetInvitationByID(invitation.ID)
}

// GetPendingInvitations lists invitations that have not been consumed
// yet.
func (r *InvitationRepository) GetPendingInvitations() ([]*invitations_models.Invitation, error) {
	var invitations []*invitations_models.Invitation

	err := storage.GetDb().
		Preload("LinkedUser").
		Where("consumed_on IS NULL").
		Order("created_on ASC").
		Find(&invitations).Error

	return invitations, err
}

func (r *InvitationRepository) DeleteInvitation(invitationID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", invitationID).
		Delete(&invitations_models.Invitation{}).Error
}

// DeleteStaleUnconsumed prunes invitations that were never consumed and
// are older than the cutoff, together with their provisional user rows.
// Linked users that were activated in the meantime, joined a team, or
// administer a workspace are kept. Returns the number of invitations
// removed.
func (r *InvitationRepository) DeleteStaleUnconsumed(cutoff time.Time) (int64, error) {
	var removed int64

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var linkedUserIDs []uuid.UUID
		err := tx.Model(&invitations_models.Invitation{}).
			Where("consumed_on IS NULL AND created_on < ?", cutoff).
			Pluck("linked_user_id", &linkedUserIDs).Error
		if err != nil {
			return fmt.Errorf("failed to collect stale invitations: %w", err)
		}

		result := tx.
			Where("consumed_on IS NULL AND created_on < ?", cutoff).
			Delete(&invitations_models.Invitation{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete stale invitations: %w", result.Error)
		}
		removed = result.RowsAffected

		if len(linkedUserIDs) == 0 {
			return nil
		}

		err = tx.
			Where("id IN ? AND activated = false", linkedUserIDs).
			Where("id NOT IN (?)",
				tx.Model(&teams_models.Member{}).Select("user_id")).
			Where("id NOT IN (?)",
				tx.Model(&workspaces_models.Workspace{}).Select("admin_id")).
			Delete(&users_models.User{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete provisional users: %w", err)
		}

		return nil
	})

	return removed, err
}
