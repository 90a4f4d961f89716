package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetUncompletedEatInOrders handles GET /api/eat-in-orders.
func (s *Server) GetUncompletedEatInOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetUncompletedEatInOrders.Handle(
		ctx.Request().Context(),
		queries.NewGetUncompletedEatInOrdersQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]EatInOrder, len(orders))
	for i, o := range orders {
		items := make([]OrderLineItem, len(o.OrderLineItems))
		for j, li := range o.OrderLineItems {
			items[j] = OrderLineItem{MenuID: li.MenuID.Bytes(), Quantity: li.Quantity, Price: li.Price}
		}
		response[i] = EatInOrder{
			ID:             o.ID.Bytes(),
			OrderTableID:   o.OrderTableID.Bytes(),
			Status:         o.Status.String(),
			OrderDateTime:  o.OrderDateTime,
			OrderLineItems: items,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateEatInOrder handles POST /api/eat-in-orders.
func (s *Server) CreateEatInOrder(ctx echo.Context) error {
	var body NewEatInOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCreateEatInOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateEatInOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.created(ctx, id)
}

func newCreateEatInOrderCommand(body NewEatInOrder) (commands.CreateEatInOrderCommand, error) {
	tableID, err := toKernelID(body.OrderTableID)
	if err != nil {
		return commands.CreateEatInOrderCommand{}, err
	}

	lines := make([]commands.OrderLineRequest, 0, len(body.OrderLineItems))
	for _, li := range body.OrderLineItems {
		menuID, idErr := toKernelID(li.MenuID)
		if idErr != nil {
			return commands.CreateEatInOrderCommand{}, idErr
		}
		price, priceErr := kernel.NewPriceFromNullable(kernel.SubjectOrderLineItem, li.Price)
		if priceErr != nil {
			return commands.CreateEatInOrderCommand{}, priceErr
		}
		lines = append(lines, commands.OrderLineRequest{MenuID: menuID, Quantity: li.Quantity, Price: price})
	}

	return commands.NewCreateEatInOrderCommand(tableID, lines)
}

// AcceptEatInOrder handles PUT /api/eat-in-orders/{id}/accept.
func (s *Server) AcceptEatInOrder(ctx echo.Context) error {
	return s.changeEatInOrderStatus(ctx, commands.NewAcceptEatInOrderCommand)
}

// ServeEatInOrder handles PUT /api/eat-in-orders/{id}/serve.
func (s *Server) ServeEatInOrder(ctx echo.Context) error {
	return s.changeEatInOrderStatus(ctx, commands.NewServeEatInOrderCommand)
}

// CompleteEatInOrder handles PUT /api/eat-in-orders/{id}/complete.
func (s *Server) CompleteEatInOrder(ctx echo.Context) error {
	return s.changeEatInOrderStatus(ctx, commands.NewCompleteEatInOrderCommand)
}

func (s *Server) changeEatInOrderStatus(
	ctx echo.Context,
	newCommand func(kernel.UUID) (commands.ChangeEatInOrderStatusCommand, error),
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeEatInOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
