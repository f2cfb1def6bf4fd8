package host

import "sync"

// Event is a single published contract event. Fields carry the payload as
// named values; the topic/payload split of the underlying event system is
// not semantically significant.
type Event struct {
	Contract Address
	Topic    string
	Fields   map[string]any
}

// EventSink receives events from committed invocations.
type EventSink interface {
	Publish(ev Event)
}

// EventRecorder is an EventSink that keeps everything it receives.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

// Compile-time interface check.
var _ EventSink = (*EventRecorder)(nil)

// NewEventRecorder creates an empty recorder.
func NewEventRecorder() *EventRecorder { return &EventRecorder{} }

// Publish appends ev to the record.
func (r *EventRecorder) Publish(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far, in publish order.
func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByTopic returns recorded events with the given topic, in publish order.
func (r *EventRecorder) ByTopic(topic string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Topic == topic {
			out = append(out, ev)
		}
	}
	return out
}

// Reset clears the record.
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
