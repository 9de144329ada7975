package invitations_services

import (
	"fmt"

	"tofu-workspaces-backend/internal/features/events"
	invitations_dto "tofu-workspaces-backend/internal/features/invitations/dto"
	invitations_models "tofu-workspaces-backend/internal/features/invitations/models"
	invitations_repositories "tofu-workspaces-backend/internal/features/invitations/repositories"
	users_models "tofu-workspaces-backend/internal/features/users/models"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
)

type InvitationService struct {
	invitationRepository *invitations_repositories.InvitationRepository
	eventService         *events.EventService
}

// CreateInvitation issues an invitation with a fresh activation code
// and a provisional user carrying only the invited email.
func (s *InvitationService) CreateInvitation(
	request *invitations_dto.CreateInvitationRequestDTO,
) (*invitations_models.Invitation, error) {
	invitation := &invitations_models.Invitation{
		ID:             uuid.New(),
		ActivationCode: uuid.New().String(),
		Email:          request.Email,
	}

	created, err := s.invitationRepository.CreateInvitation(invitation)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// ConsumeInvitation activates the linked user exactly once. A wrong
// activation code fails the precondition; a second consumption attempt
// conflicts. The provisioned user is announced to the sink after the
// transaction commits.
func (s *InvitationService) ConsumeInvitation(
	invitationID uuid.UUID,
	request *invitations_dto.ConsumeInvitationRequestDTO,
) (*invitations_models.Invitation, error) {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil {
		return nil, errs.ErrNotFound
	}

	if invitation.IsConsumed() {
		return nil, fmt.Errorf("invitation already consumed: %w", errs.ErrConflict)
	}

	if invitation.ActivationCode != request.ActivationCode {
		return nil, fmt.Errorf("activation code mismatch: %w", errs.ErrPreconditionFailed)
	}

	user := &users_models.User{
		ID:        invitation.LinkedUserID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	}

	consumed, err := s.invitationRepository.Consume(invitation, user)
	if err != nil {
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}

	if consumed.LinkedUser != nil {
		s.eventService.UserProvisioned(consumed.LinkedUser)
	}

	return consumed, nil
}

func (s *InvitationService) ListPendingInvitations() ([]*invitations_models.Invitation, error) {
	invitations, err := s.invitationRepository.GetPendingInvitations()
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}

func (s *InvitationService) RemoveInvitation(invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil {
		return errs.ErrNotFound
	}

	if err := s.invitationRepository.DeleteInvitation(invitation.ID); err != nil {
		return fmt.Errorf("failed to remove invitation: %w", err)
	}

	return nil
}
