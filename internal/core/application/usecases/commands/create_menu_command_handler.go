package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// CreateMenuCommandHandler composes a menu from existing products. The menu group and
// every product must exist; product prices are captured into the menu products.
type CreateMenuCommandHandler struct {
	uowFactory UoWFactory
	profanity  ports.ProfanityClient
}

func NewCreateMenuCommandHandler(uowFactory UoWFactory, profanity ports.ProfanityClient) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
		profanity:  profanity,
	}
}

// Handle creates the menu and returns its identifier.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return kernel.UUID{}, err
	}

	lines := cmd.MenuProducts()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return kernel.UUID{}, err
	}

	menuProducts, err := buildMenuProducts(lines, products)
	if err != nil {
		return kernel.UUID{}, err
	}

	gate := newProfanityGate(ctx, h.profanity)
	m, err := menu.NewMenu(kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), cmd.Displayed(), menuProducts, gate)
	if gate.err != nil {
		return kernel.UUID{}, fmt.Errorf("check menu name: %w", gate.err)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return m.ID(), nil
}

func buildMenuProducts(lines []MenuProductLine, products []*product.Product) (menu.MenuProducts, error) {
	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]menu.MenuProduct, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return menu.MenuProducts{}, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}
		item, err := menu.NewMenuProduct(p.ID(), p.Price(), line.Quantity)
		if err != nil {
			return menu.MenuProducts{}, err
		}
		items = append(items, item)
	}

	return menu.NewMenuProducts(items...)
}
