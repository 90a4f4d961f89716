package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateEatInOrderCommandIsNotConstructed = errors.New(
	"CreateEatInOrderCommand must be created via NewCreateEatInOrderCommand constructor",
)

// OrderLineRequest is one requested line of an eat-in order. Quantity may be negative.
type OrderLineRequest struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Price
}

// CreateEatInOrderCommand represents a request to place an order on a table.
type CreateEatInOrderCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	lines        []OrderLineRequest

	guard guard.ConstructorGuard
}

func NewCreateEatInOrderCommand(orderTableID kernel.UUID, lines []OrderLineRequest) (CreateEatInOrderCommand, error) {
	if err := orderTableID.ValidateAs("eat_in_order.orderTableId"); err != nil {
		return CreateEatInOrderCommand{}, err
	}
	if len(lines) == 0 {
		return CreateEatInOrderCommand{}, errs.NewValueIsRequiredError("eat_in_order.orderLineItems")
	}

	copied := make([]OrderLineRequest, len(lines))
	copy(copied, lines)

	return CreateEatInOrderCommand{
		orderTableID: orderTableID,
		lines:        copied,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEatInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateEatInOrderCommandIsNotConstructed)
}

func (c CreateEatInOrderCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

func (c CreateEatInOrderCommand) Lines() []OrderLineRequest {
	out := make([]OrderLineRequest, len(c.lines))
	copy(out, c.lines)
	return out
}
