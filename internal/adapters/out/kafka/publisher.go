// Package kafka publishes outbox messages to Kafka topics.
//
// The topic is chosen per message from the event name: product and menu events go to
// the product topic, eat-in order events to the order topic. The aggregate ID is used
// as the message key so events of one aggregate stay ordered within a partition.
package kafka

import (
	"context"
	"strings"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventID   = "event_id"
	headerEventName = "event_name"
)

// MessageWriter is the part of *kafka.Writer the publisher depends on.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Topics names the destination topic per event family.
type Topics struct {
	Product string
	Order   string
}

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	writer MessageWriter
	topics Topics
}

func NewPublisher(writer MessageWriter, topics Topics) (*Publisher, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	if strings.TrimSpace(topics.Product) == "" {
		return nil, errs.NewValueIsRequiredError("topics.product")
	}
	if strings.TrimSpace(topics.Order) == "" {
		return nil, errs.NewValueIsRequiredError("topics.order")
	}
	return &Publisher{writer: writer, topics: topics}, nil
}

// NewWriter builds a writer without a fixed topic; every message carries its own.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// Publish writes all messages in one batch. Either the whole batch is acknowledged or
// an error is returned and the messages stay unpublished in the outbox.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		topic, err := p.topicFor(m.Name)
		if err != nil {
			return err
		}
		batch = append(batch, kafka.Message{
			Topic: topic,
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: headerEventID, Value: []byte(m.ID.String())},
				{Key: headerEventName, Value: []byte(m.Name)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return errors.Wrapf(err, "write %d messages to kafka", len(batch))
	}
	return nil
}

func (p *Publisher) topicFor(eventName string) (string, error) {
	switch {
	case strings.HasPrefix(eventName, "product."), strings.HasPrefix(eventName, "menu."):
		return p.topics.Product, nil
	case strings.HasPrefix(eventName, "eat_in_order."):
		return p.topics.Order, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("event name",
			errors.Errorf("no topic for event %q", eventName))
	}
}
