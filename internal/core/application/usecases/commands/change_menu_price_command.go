package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeMenuPriceCommandIsNotConstructed = errors.New(
	"ChangeMenuPriceCommand must be created via NewChangeMenuPriceCommand constructor",
)

type ChangeMenuPriceCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	price  kernel.Price
	guard  guard.ConstructorGuard
}

func NewChangeMenuPriceCommand(menuID kernel.UUID, price kernel.Price) (ChangeMenuPriceCommand, error) {
	if err := errors.Join(menuID.ValidateAs("menu.id"), price.Validate()); err != nil {
		return ChangeMenuPriceCommand{}, err
	}
	return ChangeMenuPriceCommand{menuID: menuID, price: price, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeMenuPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuPriceCommandIsNotConstructed)
}

func (c ChangeMenuPriceCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c ChangeMenuPriceCommand) Price() kernel.Price {
	return c.price
}

// ChangeMenuPriceCommandHandler reprices a menu within the ceiling of its products.
type ChangeMenuPriceCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeMenuPriceCommandHandler(uowFactory UoWFactory) ChangeMenuPriceCommandHandler {
	return ChangeMenuPriceCommandHandler{uowFactory: uowFactory}
}

func (h ChangeMenuPriceCommandHandler) Handle(ctx context.Context, cmd ChangeMenuPriceCommand) error {
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

	repo := uow.MenuRepository()
	m, err := repo.Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}

	if err = m.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = repo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
