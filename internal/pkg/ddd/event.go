package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate during a state change.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// BaseEvent carries the envelope shared by every domain event. Concrete events embed it.
type BaseEvent struct {
	ID         uuid.UUID `json:"eventId"`
	Name       string    `json:"eventName"`
	Aggregate  uuid.UUID `json:"aggregateId"`
	RecordedAt time.Time `json:"occurredAt"`
}

func NewBaseEvent(name string, aggregateID uuid.UUID) BaseEvent {
	return BaseEvent{
		ID:         uuid.New(),
		Name:       name,
		Aggregate:  aggregateID,
		RecordedAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.ID }
func (e BaseEvent) EventName() string      { return e.Name }
func (e BaseEvent) AggregateID() uuid.UUID { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time  { return e.RecordedAt }

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded into aggregates to collect their domain events until
// the unit of work persists them.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
