package teams_controllers

import (
	teams_services "tofu-workspaces-backend/internal/features/teams/services"
)

var teamController = &TeamController{
	teams_services.GetTeamService(),
}

func GetTeamController() *TeamController {
	return teamController
}
