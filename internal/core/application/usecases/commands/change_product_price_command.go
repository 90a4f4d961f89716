package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a request to reprice a product.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Price

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Price) (ChangeProductPriceCommand, error) {
	if err := errors.Join(
		productID.ValidateAs("product.id"),
		price.Validate(),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return ChangeProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Price {
	return c.price
}
