package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

func NewCreateOrderTableCommand(name string) (CreateOrderTableCommand, error) {
	if _, err := kernel.NewNonBlankName(kernel.SubjectOrderTable, name); err != nil {
		return CreateOrderTableCommand{}, err
	}
	return CreateOrderTableCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

func (c CreateOrderTableCommand) Name() string {
	return c.name
}

// CreateOrderTableCommandHandler registers a new empty table.
type CreateOrderTableCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderTableCommandHandler(uowFactory UoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, cmd CreateOrderTableCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	table, err := ordertable.NewOrderTable(cmd.Name())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderTableRepository().Add(ctx, table); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return table.ID(), nil
}
