package ordertable

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrOrderTableIsNotConstructed is returned when an OrderTable instance was not created through
	// NewOrderTable or RestoreOrderTable.
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable")

	ErrTableIsNotOccupied = errors.New("order table is not occupied")
)

// OrderTable is a seating unit. Eat-in orders can only be placed on an occupied table.
//
// OrderTable follows these invariants:
//   - Name must not be blank
//   - Number of guests is never negative
//   - An unoccupied table has no guests
type OrderTable struct {
	id             kernel.UUID
	name           kernel.Name
	numberOfGuests NumberOfGuests
	occupied       bool

	isConstructed bool
}

// NewOrderTable creates an empty, unoccupied table.
func NewOrderTable(name string) (*OrderTable, error) {
	tableName, err := kernel.NewNonBlankName(kernel.SubjectOrderTable, name)
	if err != nil {
		return nil, err
	}
	return RestoreOrderTable(kernel.NewUUID(), tableName, noGuests(), false)
}

// RestoreOrderTable rebuilds an OrderTable from persisted state.
func RestoreOrderTable(id kernel.UUID, name kernel.Name, numberOfGuests NumberOfGuests, occupied bool) (*OrderTable, error) {
	if err := errors.Join(
		id.ValidateAs("order_table.id"),
		name.Validate(),
		numberOfGuests.Validate(),
	); err != nil {
		return nil, err
	}

	return &OrderTable{
		id:             id,
		name:           name,
		numberOfGuests: numberOfGuests,
		occupied:       occupied,
		isConstructed:  true,
	}, nil
}

func (t *OrderTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTableIsNotConstructed
	}
	return nil
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

func (t *OrderTable) Name() kernel.Name {
	return t.name
}

func (t *OrderTable) NumberOfGuests() NumberOfGuests {
	return t.numberOfGuests
}

// IsOccupied reports whether a party is seated at the table.
func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Sit marks the table as occupied.
func (t *OrderTable) Sit() {
	t.occupied = true
}

// Clear frees the table and resets the guest count. Callers check for uncompleted orders first.
func (t *OrderTable) Clear() {
	t.occupied = false
	t.numberOfGuests = noGuests()
}

// ChangeNumberOfGuests updates the guest count of an occupied table.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests NumberOfGuests) error {
	if err := numberOfGuests.Validate(); err != nil {
		return err
	}
	if !t.occupied {
		return errs.NewIllegalStateErrorWithCause("order table", ErrTableIsNotOccupied)
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
