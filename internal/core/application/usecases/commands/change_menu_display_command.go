package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeMenuDisplayCommandIsNotConstructed = errors.New(
	"ChangeMenuDisplayCommand must be created via NewDisplayMenuCommand or NewHideMenuCommand",
)

// ChangeMenuDisplayCommand shows or hides a menu.
type ChangeMenuDisplayCommand struct { //nolint:recvcheck //using for validation
	menuID  kernel.UUID
	display bool
	guard   guard.ConstructorGuard
}

func NewDisplayMenuCommand(menuID kernel.UUID) (ChangeMenuDisplayCommand, error) {
	return newChangeMenuDisplayCommand(menuID, true)
}

func NewHideMenuCommand(menuID kernel.UUID) (ChangeMenuDisplayCommand, error) {
	return newChangeMenuDisplayCommand(menuID, false)
}

func newChangeMenuDisplayCommand(menuID kernel.UUID, display bool) (ChangeMenuDisplayCommand, error) {
	if err := menuID.ValidateAs("menu.id"); err != nil {
		return ChangeMenuDisplayCommand{}, err
	}
	return ChangeMenuDisplayCommand{menuID: menuID, display: display, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeMenuDisplayCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuDisplayCommandIsNotConstructed)
}

func (c ChangeMenuDisplayCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c ChangeMenuDisplayCommand) Display() bool {
	return c.display
}

type ChangeMenuDisplayCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeMenuDisplayCommandHandler(uowFactory UoWFactory) ChangeMenuDisplayCommandHandler {
	return ChangeMenuDisplayCommandHandler{uowFactory: uowFactory}
}

// Handle displays or hides the menu. Displaying an overpriced menu fails with IllegalState.
func (h ChangeMenuDisplayCommandHandler) Handle(ctx context.Context, cmd ChangeMenuDisplayCommand) error {
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

	if cmd.Display() {
		if err = m.Display(); err != nil {
			return err
		}
	} else {
		m.Hide()
	}

	if err = repo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
