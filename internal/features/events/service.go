package events

import (
	"log/slog"

	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	users_models "tofu-workspaces-backend/internal/features/users/models"
)

// Routing keys follow the upstream convention of
// <domain>.<entity>.<what happened>.
const (
	routingTeamCreated     = "core.workspaces.team.created"
	routingTeamReassigned  = "core.workspaces.team.reassigned"
	routingTeamRemoved     = "core.workspaces.team.removed"
	routingUserProvisioned = "core.users.user.provisioned"
)

// EventService is the notification sink. Publish failures are logged
// and swallowed: they must never surface as API errors, never roll back
// a transaction, and are never retried here.
type EventService struct {
	publisher          Publisher
	logger             *slog.Logger
	workspacesExchange string
	usersExchange      string
}

func (s *EventService) SetPublisher(publisher Publisher) {
	s.publisher = publisher
}

func (s *EventService) TeamCreated(team *teams_models.Team) {
	s.publish(s.workspacesExchange, routingTeamCreated, team)
}

func (s *EventService) TeamReassigned(team *teams_models.Team) {
	s.publish(s.workspacesExchange, routingTeamReassigned, team)
}

func (s *EventService) TeamRemoved(team *teams_models.Team) {
	s.publish(s.workspacesExchange, routingTeamRemoved, team)
}

// UserProvisioned announces a user once they carry a full identity.
// Provisional invitation-only records are not announced.
func (s *EventService) UserProvisioned(user *users_models.User) {
	if !user.IsProvisioned() {
		return
	}

	s.publish(s.usersExchange, routingUserProvisioned, user)
}

// Close releases the underlying broker connection if the configured
// publisher holds one.
func (s *EventService) Close() {
	closer, ok := s.publisher.(interface{ Close() error })
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		s.logger.Warn("Failed to close event publisher", "error", err)
	}
}

func (s *EventService) publish(exchange string, routingKey string, payload any) {
	if err := s.publisher.Publish(exchange, routingKey, payload); err != nil {
		s.logger.Warn("Failed to publish domain event",
			"exchange", exchange,
			"routingKey", routingKey,
			"error", err,
		)
	}
}
