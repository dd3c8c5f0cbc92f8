// Package events defines the domain event contract shared by the
// ordering aggregates and the pending-event buffer they embed.
package events

import "time"

// Event is the base interface for all domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// Base provides common event metadata.
type Base struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (b Base) OccurredAt() time.Time {
	return b.Timestamp
}

// Aggregate is implemented by aggregate roots that track domain events.
type Aggregate interface {
	Events() []Event
	ClearEvents()
}

// Recorder is an append-only pending-event buffer embedded by aggregate
// roots. The persistence layer drains it after a successful save; the
// aggregate itself never inspects the recorded events.
type Recorder struct {
	pending []Event
}

// Record appends an event to the pending buffer.
func (r *Recorder) Record(event Event) {
	r.pending = append(r.pending, event)
}

// Events returns a copy of the pending events in record order.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.pending))
	copy(out, r.pending)
	return out
}

// ClearEvents drops all pending events.
func (r *Recorder) ClearEvents() {
	r.pending = nil
}
