package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrPublishOutboxCommandIsNotConstructed = errors.New(
	"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
)

type PublishOutboxCommand struct { //nolint:recvcheck //using for validation
	limit int
	guard guard.ConstructorGuard
}

// NewPublishOutboxCommand creates a command relaying at most limit stored events.
func NewPublishOutboxCommand(limit int) (PublishOutboxCommand, error) {
	if limit <= 0 {
		return PublishOutboxCommand{}, errs.NewValueIsOutOfRangeError("outbox.limit", limit, 1, "unbounded")
	}
	return PublishOutboxCommand{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (c PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

func (c PublishOutboxCommand) Limit() int {
	return c.limit
}

// PublishOutboxCommandHandler relays stored domain events to the broker and marks them
// as published. A failed publish leaves the batch unpublished for the next run.
type PublishOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
}

func NewPublishOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
	}
}

// Handle returns the number of relayed messages.
func (h PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.outbox.GetUnpublished(ctx, cmd.Limit())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = h.outbox.MarkPublished(ctx, ids...); err != nil {
		return 0, err
	}

	return len(messages), nil
}
