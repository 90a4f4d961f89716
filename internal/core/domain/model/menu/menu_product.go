package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuProductsAreEmpty = errs.NewValueIsRequiredError("menu.menuProducts")

// MenuProduct is a product placed into a menu a given number of times. The product
// price is captured so that the menu can check its price ceiling without a lookup.
type MenuProduct struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	productPrice kernel.Price
	quantity     kernel.Quantity
	guard        guard.ConstructorGuard
}

func NewMenuProduct(productID kernel.UUID, productPrice kernel.Price, quantity kernel.Quantity) (MenuProduct, error) {
	mp := MenuProduct{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		productID.ValidateAs("menu_product.productId"),
		productPrice.Validate(),
		quantity.Validate(),
	); err != nil {
		return MenuProduct{}, err
	}
	mp.productID = productID
	mp.productPrice = productPrice
	mp.quantity = quantity
	return mp, nil
}

func (mp MenuProduct) Validate() error {
	return mp.guard.Validate(errs.NewValueIsRequiredError("menu_product"))
}

func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

func (mp MenuProduct) ProductPrice() kernel.Price {
	return mp.productPrice
}

func (mp MenuProduct) Quantity() kernel.Quantity {
	return mp.quantity
}

// Amount is productPrice × quantity.
func (mp MenuProduct) Amount() decimal.Decimal {
	return mp.productPrice.Times(mp.quantity)
}

// MenuProducts is the non-empty, ordered list of products a menu is made of.
type MenuProducts struct {
	items []MenuProduct
}

func NewMenuProducts(items ...MenuProduct) (MenuProducts, error) {
	if len(items) == 0 {
		return MenuProducts{}, ErrMenuProductsAreEmpty
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return MenuProducts{}, err
		}
	}
	copied := make([]MenuProduct, len(items))
	copy(copied, items)
	return MenuProducts{items: copied}, nil
}

// Sum returns Σ(product price × quantity).
func (m MenuProducts) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range m.items {
		sum = sum.Add(item.Amount())
	}
	return sum
}

func (m MenuProducts) Items() []MenuProduct {
	out := make([]MenuProduct, len(m.items))
	copy(out, m.items)
	return out
}

func (m MenuProducts) Len() int {
	return len(m.items)
}

func (m MenuProducts) Contains(productID kernel.UUID) bool {
	for _, item := range m.items {
		if item.productID.IsEqual(productID) {
			return true
		}
	}
	return false
}

// withProductPrice returns a copy in which every entry of productID carries price.
func (m MenuProducts) withProductPrice(productID kernel.UUID, price kernel.Price) MenuProducts {
	items := m.Items()
	for i := range items {
		if items[i].productID.IsEqual(productID) {
			items[i].productPrice = price
		}
	}
	return MenuProducts{items: items}
}
