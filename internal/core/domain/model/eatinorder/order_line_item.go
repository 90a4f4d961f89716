package eatinorder

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// OrderLineItem is a requested quantity of one menu at the price the caller submitted.
//
// Unlike kernel.Quantity, the quantity of an eat-in line item may be negative; it is
// used to record corrections against an order. The submitted price is the captured
// price; EatInOrder checks it against the live menu price once, at creation.
type OrderLineItem struct { //nolint:recvcheck //using for validation
	quantity int64
	menuID   kernel.UUID
	price    kernel.Price
	guard    guard.ConstructorGuard
}

func NewOrderLineItem(quantity int64, menuID kernel.UUID, price kernel.Price) (OrderLineItem, error) {
	if err := errors.Join(
		menuID.ValidateAs("order_line_item.menuId"),
		price.Validate(),
	); err != nil {
		return OrderLineItem{}, err
	}

	return OrderLineItem{
		quantity: quantity,
		menuID:   menuID,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (i OrderLineItem) Validate() error {
	return i.guard.Validate(errs.NewValueIsRequiredError("order_line_item"))
}

func (i OrderLineItem) Quantity() int64 {
	return i.quantity
}

func (i OrderLineItem) MenuID() kernel.UUID {
	return i.menuID
}

// Price returns the captured price.
func (i OrderLineItem) Price() kernel.Price {
	return i.price
}
