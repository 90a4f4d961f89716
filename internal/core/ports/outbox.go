package ports

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored for asynchronous publication.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored domain events.
type OutboxRepository interface {
	// GetUnpublished returns at most limit messages in the order they occurred.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids ...kernel.UUID) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
