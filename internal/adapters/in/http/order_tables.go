package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrderTables handles GET /api/order-tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.handlers.GetOrderTables.Handle(ctx.Request().Context(), queries.NewGetOrderTablesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderTable, len(tables))
	for i, t := range tables {
		response[i] = OrderTable{
			ID:             t.ID.Bytes(),
			Name:           t.Name,
			NumberOfGuests: t.NumberOfGuests,
			Occupied:       t.Occupied,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderTable handles POST /api/order-tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var body NewOrderTable
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderTableCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateOrderTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.created(ctx, id)
}

// SitOrderTable handles PUT /api/order-tables/{id}/sit.
func (s *Server) SitOrderTable(ctx echo.Context) error {
	return s.changeOrderTable(ctx, commands.NewSitOrderTableCommand)
}

// ClearOrderTable handles PUT /api/order-tables/{id}/clear.
func (s *Server) ClearOrderTable(ctx echo.Context) error {
	return s.changeOrderTable(ctx, commands.NewClearOrderTableCommand)
}

// ChangeNumberOfGuests handles PUT /api/order-tables/{id}/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	var body NumberOfGuestsChange
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	if body.NumberOfGuests == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("order_table.numberOfGuests"))
	}

	guests, err := ordertable.NewNumberOfGuests(*body.NumberOfGuests)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.changeOrderTable(ctx, func(id kernel.UUID) (commands.ChangeOrderTableCommand, error) {
		return commands.NewChangeNumberOfGuestsCommand(id, guests)
	})
}

func (s *Server) changeOrderTable(
	ctx echo.Context,
	newCommand func(kernel.UUID) (commands.ChangeOrderTableCommand, error),
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeOrderTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTableQRCode handles GET /api/order-tables/{id}/qr. The code links guests to
// the table's page of the public site.
func (s *Server) GetOrderTableQRCode(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	png, err := s.qrCodes.Generate(s.publicBaseURL + "/order-tables/" + id.String())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}
