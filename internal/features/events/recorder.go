package events

import "sync"

// RecordedEvent is one captured publish call.
type RecordedEvent struct {
	Exchange   string
	RoutingKey string
	Payload    any
}

// Recorder is a Publisher for tests. It captures every publish and can
// be told to fail, so sink isolation can be asserted.
type Recorder struct {
	mu     sync.Mutex
	events []RecordedEvent

	// FailWith, when set, is returned from every Publish call.
	FailWith error
}

func (r *Recorder) Publish(exchange string, routingKey string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return r.FailWith
	}

	r.events = append(r.events, RecordedEvent{
		Exchange:   exchange,
		RoutingKey: routingKey,
		Payload:    payload,
	})

	return nil
}

func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)

	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
	r.FailWith = nil
}
