package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
)

// CreateProductCommandHandler registers products after checking their names for profanity.
type CreateProductCommandHandler struct {
	uowFactory UoWFactory
	profanity  ports.ProfanityClient
}

func NewCreateProductCommandHandler(uowFactory UoWFactory, profanity ports.ProfanityClient) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		profanity:  profanity,
	}
}

// Handle creates the product and returns its generated identifier.
// The profanity check runs before the transaction is opened.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	gate := newProfanityGate(ctx, h.profanity)
	p, err := product.NewProduct(cmd.Name(), cmd.Price(), gate)
	if gate.err != nil {
		return kernel.UUID{}, fmt.Errorf("check product name: %w", gate.err)
	}
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
