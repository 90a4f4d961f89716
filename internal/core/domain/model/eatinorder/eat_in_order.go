package eatinorder

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrEatInOrderIsNotConstructed is returned when an EatInOrder instance was not created through
	// NewEatInOrder or RestoreEatInOrder.
	ErrEatInOrderIsNotConstructed = errors.New("EatInOrder must be created via NewEatInOrder or RestoreEatInOrder")

	ErrOrderLineItemsAreEmpty  = errs.NewValueIsRequiredError("eat_in_order.orderLineItems")
	ErrMenuIsHidden            = errors.New("menu is not displayed")
	ErrOrderTableIsNotOccupied = errors.New("order table is not occupied")
)

// Menu is the view of a menu an order needs at creation time.
type Menu interface {
	ID() kernel.UUID
	Price() kernel.Price
	IsDisplayed() bool
}

// Table is the view of an order table an order needs at creation time.
type Table interface {
	ID() kernel.UUID
	IsOccupied() bool
}

// Menus is the set of candidate menus line items are resolved against. It must not
// hold nil values; NewEatInOrder treats a nil entry as a missing menu.
type Menus map[kernel.UUID]Menu

// NewMenus indexes menus by ID. Nil menus are skipped.
func NewMenus[M Menu](menus ...M) Menus {
	out := make(Menus, len(menus))
	for _, m := range menus {
		if isNilMenu(m) {
			continue
		}
		out[m.ID()] = m
	}
	return out
}

// isNilMenu reports whether m is nil, including a nil pointer behind the interface.
func isNilMenu(m Menu) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// EatInOrder is the aggregate root of an order placed at a table. It validates its line
// items against the live menus once, at creation, and then moves through its lifecycle.
//
// EatInOrder follows these invariants:
//   - Every line item references a displayed menu and carries that menu's current price
//   - The order table was occupied when the order was placed
//   - Status follows Waiting -> Accepted -> Served -> Completed, one step at a time
//   - A failed operation leaves the order unchanged
type EatInOrder struct {
	ddd.EventRecorder

	id             kernel.UUID
	orderTableID   kernel.UUID
	status         Status
	orderLineItems []OrderLineItem
	orderDateTime  time.Time
	version        int64

	isConstructed bool
}

// NewEatInOrder validates the requested line items against menus and table and places
// a new order in Waiting status.
//
// Checks run in this order, the first failing one aborts:
//  1. every line item menu is present in menus (NotFound)
//  2. every referenced menu is displayed (IllegalState)
//  3. every submitted price equals the menu's current price (InvalidArgument)
//  4. the table is occupied (IllegalState)
//
// Parameters:
//   - menus: Candidate menus with their current price and display state
//   - orderLineItems: Requested items, at least one
//   - table: The table the order is placed on
//
// Returns:
//   - *EatInOrder: The placed order, status Waiting
//   - error: NotFound, IllegalState or InvalidArgument kind error
//
// Example:
//
//	item, _ := eatinorder.NewOrderLineItem(1, m.ID(), m.Price())
//	order, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m), []eatinorder.OrderLineItem{item}, table)
func NewEatInOrder(menus Menus, orderLineItems []OrderLineItem, table Table) (*EatInOrder, error) {
	if len(orderLineItems) == 0 {
		return nil, ErrOrderLineItemsAreEmpty
	}
	for _, item := range orderLineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if table == nil {
		return nil, errs.NewValueIsRequiredError("eat_in_order.orderTable")
	}

	resolved := make([]Menu, len(orderLineItems))
	for i, item := range orderLineItems {
		m, ok := menus[item.MenuID()]
		if !ok || isNilMenu(m) {
			return nil, errs.NewObjectNotFoundError("menu", item.MenuID().String())
		}
		resolved[i] = m
	}

	for _, m := range resolved {
		if !m.IsDisplayed() {
			return nil, errs.NewIllegalStateErrorWithCause("menu", fmt.Errorf("%w: %s", ErrMenuIsHidden, m.ID().String()))
		}
	}

	for i, item := range orderLineItems {
		if !item.Price().IsEqual(resolved[i].Price()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order_line_item.price",
				fmt.Errorf("%s does not match menu price %s", item.Price().String(), resolved[i].Price().String()),
			)
		}
	}

	if !table.IsOccupied() {
		return nil, errs.NewIllegalStateErrorWithCause("order table", ErrOrderTableIsNotOccupied)
	}

	order := &EatInOrder{
		status:        Waiting,
		orderDateTime: time.Now().UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		order.setID(kernel.NewUUID()),
		order.setOrderTableID(table.ID()),
	); err != nil {
		return nil, err
	}
	order.orderLineItems = copyItems(orderLineItems)

	order.Record(newStatusChangedEvent(CreatedEventName, order))
	return order, nil
}

// RestoreEatInOrder rebuilds an order from persisted state. Menus are not re-checked:
// the captured prices are a historical record.
func RestoreEatInOrder(
	id kernel.UUID,
	orderTableID kernel.UUID,
	status Status,
	orderLineItems []OrderLineItem,
	orderDateTime time.Time,
	version int64,
) (*EatInOrder, error) {
	order := &EatInOrder{
		orderDateTime: orderDateTime,
		version:       version,
		isConstructed: true,
	}
	if err := errors.Join(
		order.setID(id),
		order.setOrderTableID(orderTableID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}
	if len(orderLineItems) == 0 {
		return nil, ErrOrderLineItemsAreEmpty
	}
	order.orderLineItems = copyItems(orderLineItems)
	return order, nil
}

// Validate ensures the EatInOrder instance was properly constructed.
func (o *EatInOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrEatInOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *EatInOrder) IsEqual(other *EatInOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *EatInOrder) ID() kernel.UUID {
	return o.id
}

func (o *EatInOrder) OrderTableID() kernel.UUID {
	return o.orderTableID
}

func (o *EatInOrder) Status() Status {
	return o.status
}

func (o *EatInOrder) OrderLineItems() []OrderLineItem {
	return copyItems(o.orderLineItems)
}

func (o *EatInOrder) OrderDateTime() time.Time {
	return o.orderDateTime
}

// Version is the persisted version the order was loaded with, used for optimistic locking.
func (o *EatInOrder) Version() int64 {
	return o.version
}

// Accept moves a Waiting order to Accepted.
func (o *EatInOrder) Accept() error {
	return o.transitionTo(Accepted)
}

// Serve moves an Accepted order to Served.
func (o *EatInOrder) Serve() error {
	return o.transitionTo(Served)
}

// Complete moves a Served order to Completed.
func (o *EatInOrder) Complete() error {
	return o.transitionTo(Completed)
}

func (o *EatInOrder) transitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Record(newStatusChangedEvent(StatusChangedEventName, o))
	return nil
}

func (o *EatInOrder) setID(id kernel.UUID) error {
	if err := id.ValidateAs("eat_in_order.id"); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *EatInOrder) setOrderTableID(id kernel.UUID) error {
	if err := id.ValidateAs("eat_in_order.orderTableId"); err != nil {
		return err
	}
	o.orderTableID = id
	return nil
}

func (o *EatInOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func copyItems(items []OrderLineItem) []OrderLineItem {
	out := make([]OrderLineItem, len(items))
	copy(out, items)
	return out
}
