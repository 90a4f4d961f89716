package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{ID: p.ID.Bytes(), Name: p.Name, Price: p.Price}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	price, err := kernel.NewPriceFromNullable(kernel.SubjectProduct, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.created(ctx, id)
}

// ChangeProductPrice handles PUT /api/products/{id}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body PriceChange
	if err = s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	price, err := kernel.NewPriceFromNullable(kernel.SubjectProduct, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(id, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeProductPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
