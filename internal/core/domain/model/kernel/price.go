package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Price is a non-negative amount of money attached to a product, a menu or an order line item.
// Price is an immutable value object backed by decimal arithmetic, so sums and products of
// prices never lose precision. The zero value of Price is invalid and stands for a missing price.
//
// Example:
//
//	price, err := kernel.NewPrice(kernel.SubjectMenu, decimal.NewFromInt(18000))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: 18000
type Price struct { //nolint:recvcheck //using for validation
	subject Subject
	value   decimal.Decimal
	guard   guard.ConstructorGuard
}

// NewPrice creates a Price for the given subject.
//
// Parameters:
//   - subject: The domain concept owning the price, used in error messages
//   - value: The amount, must be greater than or equal to zero
//
// Returns:
//   - Price: A valid price
//   - error: ValueIsInvalidError if the amount is negative
func NewPrice(subject Subject, value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			subject.Param("price"), fmt.Errorf("%s must not be negative", value.String()))
	}
	return Price{subject: subject, value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewPriceFromNullable creates a Price from an optional amount, as decoded from JSON.
// An invalid (null) amount yields ValueIsRequiredError.
//
// Example:
//
//	var req struct{ Price decimal.NullDecimal `json:"price"` }
//	price, err := kernel.NewPriceFromNullable(kernel.SubjectProduct, req.Price)
func NewPriceFromNullable(subject Subject, value decimal.NullDecimal) (Price, error) {
	if !value.Valid {
		return Price{}, errs.NewValueIsRequiredError(subject.Param("price"))
	}
	return NewPrice(subject, value.Decimal)
}

// ParsePrice creates a Price from its textual form. An empty string yields ValueIsRequiredError,
// text that is not a number yields ValueIsInvalidError.
func ParsePrice(subject Subject, raw string) (Price, error) {
	if raw == "" {
		return Price{}, errs.NewValueIsRequiredError(subject.Param("price"))
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(subject.Param("price"), err)
	}
	return NewPrice(subject, value)
}

// Validate checks that the Price was created through a constructor.
// The zero value of Price fails with ValueIsRequiredError.
func (p Price) Validate() error {
	return p.guard.Validate(errs.NewValueIsRequiredError(p.subject.Param("price")))
}

// Value returns the underlying decimal amount.
func (p Price) Value() decimal.Decimal {
	return p.value
}

// Times returns the amount multiplied by the quantity.
//
// Example:
//
//	price, _ := kernel.NewPrice(kernel.SubjectMenuProduct, decimal.NewFromInt(16000))
//	qty, _ := kernel.NewQuantity(kernel.SubjectMenuProduct, 2)
//	price.Times(qty) // 32000
func (p Price) Times(q Quantity) decimal.Decimal {
	return p.value.Mul(decimal.NewFromInt(q.Value()))
}

// IsGreaterThan reports whether the price exceeds the given amount.
func (p Price) IsGreaterThan(amount decimal.Decimal) bool {
	return p.value.GreaterThan(amount)
}

// IsEqual compares two prices by amount. 18000 and 18000.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.value.Equal(other.value)
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return p.value.String()
}
