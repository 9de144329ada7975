package events

import (
	"tofu-workspaces-backend/internal/config"
	"tofu-workspaces-backend/internal/util/logger"
)

var eventService = &EventService{
	newPublisher(),
	logger.GetLogger(),
	config.GetEnv().WorkspacesExchange,
	config.GetEnv().UsersExchange,
}

func GetEventService() *EventService {
	return eventService
}

func newPublisher() Publisher {
	cfg := config.GetEnv()

	if cfg.AmqpURL == "" || cfg.IsTesting {
		return NewLogPublisher(logger.GetLogger())
	}

	return NewAmqpPublisher(cfg.AmqpURL, logger.GetLogger())
}
