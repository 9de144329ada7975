package teams_services

import (
	"tofu-workspaces-backend/internal/features/events"
	teams_repositories "tofu-workspaces-backend/internal/features/teams/repositories"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	workspaces_repositories "tofu-workspaces-backend/internal/features/workspaces/repositories"
)

var teamService = &TeamService{
	teams_repositories.GetTeamRepository(),
	users_repositories.GetUserRepository(),
	workspaces_repositories.GetWorkspaceRepository(),
	events.GetEventService(),
}

func GetTeamService() *TeamService {
	return teamService
}
