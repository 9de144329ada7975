package events

// Publisher is the message-bus client contract. Implementations are
// responsible for their own connection management and, if they want it,
// retries; callers treat every publish as best-effort.
type Publisher interface {
	Publish(exchange string, routingKey string, payload any) error
}
