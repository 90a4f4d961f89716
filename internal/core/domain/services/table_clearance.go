package services

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

var ErrTableHasUncompletedOrders = errors.New("order table has uncompleted orders")

// TableClearance frees an order table once nothing is left to serve on it.
type TableClearance struct{}

func NewTableClearance() TableClearance {
	return TableClearance{}
}

// Clear frees table when uncompletedOrders is zero, and fails with IllegalState otherwise.
func (TableClearance) Clear(table *ordertable.OrderTable, uncompletedOrders int64) error {
	if err := table.Validate(); err != nil {
		return err
	}
	if uncompletedOrders > 0 {
		return errs.NewIllegalStateErrorWithCause("order table",
			fmt.Errorf("%w: %d", ErrTableHasUncompletedOrders, uncompletedOrders))
	}

	table.Clear()
	return nil
}
