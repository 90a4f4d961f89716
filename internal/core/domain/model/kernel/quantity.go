package kernel

import (
	"math"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// Quantity is a non-negative count of products in a menu.
type Quantity struct { //nolint:recvcheck //using for validation
	subject Subject
	value   int64
	guard   guard.ConstructorGuard
}

func NewQuantity(subject Subject, value int64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsOutOfRangeError(subject.Param("quantity"), value, 0, int64(math.MaxInt64))
	}
	return Quantity{subject: subject, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (q Quantity) Validate() error {
	return q.guard.Validate(errs.NewValueIsRequiredError(q.subject.Param("quantity")))
}

func (q Quantity) Value() int64 {
	return q.value
}

func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}
