package ordertable

import (
	"math"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// NumberOfGuests is the non-negative count of guests seated at a table.
type NumberOfGuests struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

func NewNumberOfGuests(value int) (NumberOfGuests, error) {
	if value < 0 {
		return NumberOfGuests{}, errs.NewValueIsOutOfRangeError("order_table.numberOfGuests", value, 0, math.MaxInt)
	}
	return NumberOfGuests{value: value, guard: guard.NewConstructorGuard()}, nil
}

func noGuests() NumberOfGuests {
	return NumberOfGuests{guard: guard.NewConstructorGuard()}
}

func (n NumberOfGuests) Validate() error {
	return n.guard.Validate(errs.NewValueIsRequiredError("order_table.numberOfGuests"))
}

func (n NumberOfGuests) Value() int {
	return n.value
}
