package invitations_services

import (
	"tofu-workspaces-backend/internal/config"
	"tofu-workspaces-backend/internal/features/events"
	invitations_repositories "tofu-workspaces-backend/internal/features/invitations/repositories"
	"tofu-workspaces-backend/internal/util/logger"
)

var invitationService = &InvitationService{
	invitations_repositories.GetInvitationRepository(),
	events.GetEventService(),
}

var invitationBackgroundService = &InvitationBackgroundService{
	invitationRepository: invitations_repositories.GetInvitationRepository(),
	logger:               logger.GetLogger(),
	ttlDays:              config.GetEnv().InvitationTTLDays,
}

func GetInvitationService() *InvitationService {
	return invitationService
}

func GetInvitationBackgroundService() *InvitationBackgroundService {
	return invitationBackgroundService
}
