package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeOrderTableCommandIsNotConstructed = errors.New(
	"ChangeOrderTableCommand must be created via one of its New...OrderTableCommand constructors",
)

type orderTableAction int

const (
	sitOrderTable orderTableAction = iota + 1
	clearOrderTable
	changeNumberOfGuests
)

// ChangeOrderTableCommand seats guests at a table, frees it, or changes its guest count.
type ChangeOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	action         orderTableAction
	numberOfGuests ordertable.NumberOfGuests

	guard guard.ConstructorGuard
}

func NewSitOrderTableCommand(orderTableID kernel.UUID) (ChangeOrderTableCommand, error) {
	return newChangeOrderTableCommand(orderTableID, sitOrderTable, ordertable.NumberOfGuests{})
}

func NewClearOrderTableCommand(orderTableID kernel.UUID) (ChangeOrderTableCommand, error) {
	return newChangeOrderTableCommand(orderTableID, clearOrderTable, ordertable.NumberOfGuests{})
}

func NewChangeNumberOfGuestsCommand(
	orderTableID kernel.UUID,
	numberOfGuests ordertable.NumberOfGuests,
) (ChangeOrderTableCommand, error) {
	if err := numberOfGuests.Validate(); err != nil {
		return ChangeOrderTableCommand{}, err
	}
	return newChangeOrderTableCommand(orderTableID, changeNumberOfGuests, numberOfGuests)
}

func newChangeOrderTableCommand(
	orderTableID kernel.UUID,
	action orderTableAction,
	numberOfGuests ordertable.NumberOfGuests,
) (ChangeOrderTableCommand, error) {
	if err := orderTableID.ValidateAs(kernel.SubjectOrderTable.Param("id")); err != nil {
		return ChangeOrderTableCommand{}, err
	}
	return ChangeOrderTableCommand{
		orderTableID:   orderTableID,
		action:         action,
		numberOfGuests: numberOfGuests,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderTableCommandIsNotConstructed)
}

func (c ChangeOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

func (c ChangeOrderTableCommand) NumberOfGuests() ordertable.NumberOfGuests {
	return c.numberOfGuests
}

// ChangeOrderTableCommandHandler applies table management operations. Clearing a
// table fails with IllegalState while it still has uncompleted eat-in orders.
type ChangeOrderTableCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeOrderTableCommandHandler(uowFactory UoWFactory) ChangeOrderTableCommandHandler {
	return ChangeOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h ChangeOrderTableCommandHandler) Handle(ctx context.Context, cmd ChangeOrderTableCommand) error {
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

	tableRepo := uow.OrderTableRepository()
	table, err := tableRepo.Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	switch cmd.action {
	case sitOrderTable:
		table.Sit()
	case clearOrderTable:
		uncompleted, countErr := uow.EatInOrderRepository().CountUncompletedByOrderTable(ctx, table.ID())
		if countErr != nil {
			return countErr
		}
		if err = services.NewTableClearance().Clear(table, uncompleted); err != nil {
			return err
		}
	case changeNumberOfGuests:
		if err = table.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
			return err
		}
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
