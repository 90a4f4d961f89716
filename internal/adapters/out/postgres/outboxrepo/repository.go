// Package outboxrepo stores domain events in the outbox_messages table until the relay
// job hands them to the broker.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/ddd"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OutboxMessageDTO is a serialized domain event. PublishedAt stays NULL until relayed.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// FromEvent serializes a domain event into an outbox row.
func FromEvent(event ddd.DomainEvent) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessageDTO{}, errors.Wrapf(err, "marshal event %s", event.EventName())
	}

	return OutboxMessageDTO{
		ID:          event.EventID(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Save appends rows to the outbox. The unit of work calls it inside its transaction.
func (r *GormOutboxRepository) Save(ctx context.Context, messages ...OutboxMessageDTO) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&messages).Error
}

// GetUnpublished returns up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "load unpublished outbox messages")
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.ID)
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
		if err != nil {
			return nil, err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			Name:        dto.Name,
			AggregateID: aggregateID,
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt.UTC(),
		})
	}

	return messages, nil
}

// MarkPublished stamps the messages as relayed.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	err := r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", time.Now().UTC()).Error
	return errors.Wrap(err, "mark outbox messages published")
}
