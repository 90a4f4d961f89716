package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

func NewCreateMenuGroupCommand(name string) (CreateMenuGroupCommand, error) {
	if _, err := kernel.NewNonBlankName(kernel.SubjectMenuGroup, name); err != nil {
		return CreateMenuGroupCommand{}, err
	}
	return CreateMenuGroupCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

func (c CreateMenuGroupCommand) Name() string {
	return c.name
}

type CreateMenuGroupCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateMenuGroupCommandHandler(uowFactory UoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{uowFactory: uowFactory}
}

// Handle creates the menu group and returns its identifier.
func (h CreateMenuGroupCommandHandler) Handle(ctx context.Context, cmd CreateMenuGroupCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	group, err := menugroup.NewMenuGroup(cmd.Name())
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

	if err = uow.MenuGroupRepository().Add(ctx, group); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return group.ID(), nil
}
