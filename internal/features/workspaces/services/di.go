package workspaces_services

import (
	accounts_repositories "tofu-workspaces-backend/internal/features/accounts/repositories"
	"tofu-workspaces-backend/internal/features/events"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	workspaces_repositories "tofu-workspaces-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaces_repositories.GetWorkspaceRepository(),
	accounts_repositories.GetAccountRepository(),
	users_repositories.GetUserRepository(),
	events.GetEventService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}
