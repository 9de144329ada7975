package workspaces_services

import (
	"fmt"

	accounts_repositories "tofu-workspaces-backend/internal/features/accounts/repositories"
	"tofu-workspaces-backend/internal/features/events"
	users_models "tofu-workspaces-backend/internal/features/users/models"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	workspaces_dto "tofu-workspaces-backend/internal/features/workspaces/dto"
	workspaces_models "tofu-workspaces-backend/internal/features/workspaces/models"
	workspaces_repositories "tofu-workspaces-backend/internal/features/workspaces/repositories"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
)

type WorkspaceService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	accountRepository   *accounts_repositories.AccountRepository
	userRepository      *users_repositories.UserRepository
	eventService        *events.EventService
}

// CreateWorkspace validates preconditions, then hands the assembled
// entity to the provisioning cascade. The returned workspace is fully
// hydrated, including the teams materialized from the system catalog.
func (s *WorkspaceService) CreateWorkspace(
	accountID uuid.UUID,
	request *workspaces_dto.CreateWorkspaceRequestDTO,
) (*workspaces_models.Workspace, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s does not exist: %w", accountID, errs.ErrPreconditionFailed)
	}

	count, err := s.workspaceRepository.CountEnabledByAccountAndName(accountID, request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace name: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("workspace %q already exists under account: %w",
			request.Name, errs.ErrConflict)
	}

	// Remember whether the admin exists up front so a freshly created
	// one can be announced after commit.
	existingAdmin, err := s.userRepository.GetUserByID(request.Admin.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve admin user: %w", err)
	}

	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		AccountID: accountID,
		AdminID:   request.Admin.ID,
		Name:      request.Name,
		Enabled:   true,
	}

	descriptor := &users_models.User{
		ID:        request.Admin.ID,
		Email:     request.Admin.Email,
		FirstName: request.Admin.FirstName,
		LastName:  request.Admin.LastName,
		Enabled:   true,
		Activated: true,
	}

	created, err := s.workspaceRepository.CreateWorkspace(workspace, descriptor)
	if err != nil {
		return nil, err
	}

	if existingAdmin == nil && created.Admin != nil {
		s.eventService.UserProvisioned(created.Admin)
	}

	return created, nil
}

func (s *WorkspaceService) GetWorkspace(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceScoped(accountID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, errs.ErrNotFound
	}

	return workspace, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.GetWorkspace(accountID, workspaceID)
	if err != nil {
		return nil, err
	}

	workspace.UpdateFromDTO(&workspaces_models.Workspace{Name: request.Name})

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return s.GetWorkspace(accountID, workspaceID)
}

// RemoveWorkspace hard-deletes the workspace and cascades to its teams
// and members. A second call for the same workspace reports not found.
func (s *WorkspaceService) RemoveWorkspace(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
) error {
	workspace, err := s.GetWorkspace(accountID, workspaceID)
	if err != nil {
		return err
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspace.ID); err != nil {
		return fmt.Errorf("failed to remove workspace: %w", err)
	}

	return nil
}

func (s *WorkspaceService) SearchWorkspaces(
	accountID uuid.UUID,
	request *workspaces_dto.SearchWorkspacesRequestDTO,
) ([]*workspaces_models.Workspace, error) {
	workspaces, err := s.workspaceRepository.SearchWorkspaces(
		accountID,
		request.Name,
		request.Enabled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search workspaces: %w", err)
	}

	return workspaces, nil
}
