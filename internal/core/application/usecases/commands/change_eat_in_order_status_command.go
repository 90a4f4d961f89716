package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeEatInOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeEatInOrderStatusCommand must be created via NewAcceptEatInOrderCommand, " +
		"NewServeEatInOrderCommand or NewCompleteEatInOrderCommand",
)

// ChangeEatInOrderStatusCommand moves an order one step forward in its lifecycle.
type ChangeEatInOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  eatinorder.Status

	guard guard.ConstructorGuard
}

func NewAcceptEatInOrderCommand(orderID kernel.UUID) (ChangeEatInOrderStatusCommand, error) {
	return newChangeEatInOrderStatusCommand(orderID, eatinorder.Accepted)
}

func NewServeEatInOrderCommand(orderID kernel.UUID) (ChangeEatInOrderStatusCommand, error) {
	return newChangeEatInOrderStatusCommand(orderID, eatinorder.Served)
}

func NewCompleteEatInOrderCommand(orderID kernel.UUID) (ChangeEatInOrderStatusCommand, error) {
	return newChangeEatInOrderStatusCommand(orderID, eatinorder.Completed)
}

func newChangeEatInOrderStatusCommand(orderID kernel.UUID, target eatinorder.Status) (ChangeEatInOrderStatusCommand, error) {
	if err := orderID.ValidateAs("eat_in_order.id"); err != nil {
		return ChangeEatInOrderStatusCommand{}, err
	}
	return ChangeEatInOrderStatusCommand{orderID: orderID, target: target, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeEatInOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeEatInOrderStatusCommandIsNotConstructed)
}

func (c ChangeEatInOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeEatInOrderStatusCommand) Target() eatinorder.Status {
	return c.target
}

// ChangeEatInOrderStatusCommandHandler accepts, serves or completes an order.
// Completing the last open order of a table frees the table.
type ChangeEatInOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeEatInOrderStatusCommandHandler(uowFactory UoWFactory) ChangeEatInOrderStatusCommandHandler {
	return ChangeEatInOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeEatInOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeEatInOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.EatInOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case eatinorder.Accepted:
		err = order.Accept()
	case eatinorder.Served:
		err = order.Serve()
	default:
		err = order.Complete()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if order.Status().IsCompleted() {
		if err = h.releaseTable(ctx, uow, order.OrderTableID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h ChangeEatInOrderStatusCommandHandler) releaseTable(ctx context.Context, uow UoW, orderTableID kernel.UUID) error {
	uncompleted, err := uow.EatInOrderRepository().CountUncompletedByOrderTable(ctx, orderTableID)
	if err != nil {
		return err
	}
	if uncompleted > 0 {
		return nil
	}

	tableRepo := uow.OrderTableRepository()
	table, err := tableRepo.Get(ctx, orderTableID)
	if err != nil {
		return err
	}

	if err = services.NewTableClearance().Clear(table, uncompleted); err != nil {
		return err
	}

	return tableRepo.Update(ctx, table)
}
