package commands

import (
	"context"

	"kitchenpos/internal/core/domain/services"
)

// ChangeProductPriceCommandHandler reprices a product and propagates the new price to
// the menus containing it. Menus that become more expensive than their products are hidden.
//
// Example:
//
//	cmd, _ := NewChangeProductPriceCommand(productID, newPrice)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reprice failed: %w", err)
//	}
type ChangeProductPriceCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeProductPriceCommandHandler(uowFactory UoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) error {
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

	productRepo := uow.ProductRepository()
	menuRepo := uow.MenuRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	menus, err := menuRepo.GetAllByProductID(ctx, p.ID())
	if err != nil {
		return err
	}

	changed, err := services.NewMenuPricePolicy().Apply(p, menus)
	if err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	for _, m := range changed {
		if err = menuRepo.Update(ctx, m); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
