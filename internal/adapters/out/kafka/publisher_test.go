package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

var testTopics = Topics{Product: "kitchenpos.products", Order: "kitchenpos.eat-in-orders"}

func message(name string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		Name:        name,
		AggregateID: kernel.NewUUID(),
		Payload:     []byte(`{"status":"ACCEPTED"}`),
		OccurredAt:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish_RoutesByEventName(t *testing.T) {
	writer := &recordingWriter{}
	publisher, err := NewPublisher(writer, testTopics)
	require.NoError(t, err)

	order := message("eat_in_order.status_changed")
	product := message("product.price_changed")
	menu := message("menu.hidden")

	err = publisher.Publish(t.Context(), order, product, menu)

	require.NoError(t, err)
	require.Len(t, writer.messages, 3)

	assert.Equal(t, testTopics.Order, writer.messages[0].Topic)
	assert.Equal(t, []byte(order.AggregateID.String()), writer.messages[0].Key)
	assert.Equal(t, order.Payload, writer.messages[0].Value)
	assert.Equal(t, order.OccurredAt, writer.messages[0].Time)
	assert.Contains(t, writer.messages[0].Headers, kafka.Header{Key: headerEventName, Value: []byte(order.Name)})
	assert.Contains(t, writer.messages[0].Headers, kafka.Header{Key: headerEventID, Value: []byte(order.ID.String())})

	assert.Equal(t, testTopics.Product, writer.messages[1].Topic)
	assert.Equal(t, testTopics.Product, writer.messages[2].Topic)
}

func TestPublisher_Publish_Nothing(t *testing.T) {
	writer := &recordingWriter{err: errors.New("must not be called")}
	publisher, err := NewPublisher(writer, testTopics)
	require.NoError(t, err)

	assert.NoError(t, publisher.Publish(t.Context()))
}

func TestPublisher_Publish_UnknownEvent(t *testing.T) {
	writer := &recordingWriter{}
	publisher, err := NewPublisher(writer, testTopics)
	require.NoError(t, err)

	err = publisher.Publish(t.Context(), message("eat_in_order.created"), message("waiter.called"))

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, writer.messages)
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	brokerErr := errors.New("leader not available")
	publisher, err := NewPublisher(&recordingWriter{err: brokerErr}, testTopics)
	require.NoError(t, err)

	err = publisher.Publish(t.Context(), message("product.price_changed"))

	assert.ErrorIs(t, err, brokerErr)
}

func TestNewPublisher_Validation(t *testing.T) {
	_, err := NewPublisher(nil, testTopics)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewPublisher(&recordingWriter{}, Topics{Product: "p"})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewPublisher(&recordingWriter{}, Topics{Order: "o"})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewWriter(t *testing.T) {
	w := NewWriter([]string{"localhost:9092"})

	assert.Empty(t, w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
