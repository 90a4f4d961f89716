package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
)

// CreateEatInOrderCommandHandler loads the table and the referenced menus and lets the
// EatInOrder aggregate decide whether the order may be placed.
//
// Example:
//
//	cmd, _ := NewCreateEatInOrderCommand(tableID, []OrderLineRequest{{MenuID: menuID, Quantity: 1, Price: price}})
//	orderID, err := handler.Handle(ctx, cmd)
type CreateEatInOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateEatInOrderCommandHandler(uowFactory UoWFactory) CreateEatInOrderCommandHandler {
	return CreateEatInOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateEatInOrderCommandHandler) Handle(ctx context.Context, cmd CreateEatInOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	lines := cmd.Lines()
	items := make([]eatinorder.OrderLineItem, 0, len(lines))
	menuIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		item, err := eatinorder.NewOrderLineItem(line.Quantity, line.MenuID, line.Price)
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
		menuIDs = append(menuIDs, line.MenuID)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	table, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return kernel.UUID{}, err
	}

	menus, err := uow.MenuRepository().GetByIDs(ctx, menuIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	order, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(menus...), items, table)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.EatInOrderRepository().Add(ctx, order); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return order.ID(), nil
}
