package events

import "log/slog"

// LogPublisher is the fallback when no broker is configured. Events are
// written to the log and otherwise dropped, which matches the sink's
// best-effort contract.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(exchange string, routingKey string, payload any) error {
	p.logger.Info("Domain event (no broker configured)",
		"exchange", exchange,
		"routingKey", routingKey,
	)

	return nil
}
