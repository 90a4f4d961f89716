package queries

import (
	"context"
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetUncompletedEatInOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedEatInOrdersQuery must be created via NewGetUncompletedEatInOrdersQuery constructor",
)

// GetUncompletedEatInOrdersQuery lists the orders the kitchen still has to work on:
// everything not yet Completed, oldest first.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetUncompletedEatInOrdersQuery())
//	for _, o := range orders {
//	    fmt.Printf("%s on table %s: %s\n", o.ID, o.OrderTableID, o.Status)
//	}
type GetUncompletedEatInOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUncompletedEatInOrdersQuery() GetUncompletedEatInOrdersQuery {
	return GetUncompletedEatInOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetUncompletedEatInOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedEatInOrdersQueryIsNotConstructed)
}

type GetUncompletedEatInOrdersQueryLineItem struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
}

type GetUncompletedEatInOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderTableID   kernel.UUID
	Status         eatinorder.Status
	OrderDateTime  time.Time
	OrderLineItems []GetUncompletedEatInOrdersQueryLineItem
}

type GetUncompletedEatInOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUncompletedEatInOrdersQueryHandler(db *gorm.DB) GetUncompletedEatInOrdersQueryHandler {
	return GetUncompletedEatInOrdersQueryHandler{db: db}
}

func (h GetUncompletedEatInOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedEatInOrdersQuery,
) ([]GetUncompletedEatInOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedEatInOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_table_id,
			o.status,
			o.order_date_time,
			li.menu_id,
			li.quantity,
			li.price
		FROM eat_in_orders o
		JOIN order_line_items li ON li.order_id = o.id
		WHERE o.status <> ?
		ORDER BY o.order_date_time, o.id, li.seq
	`, int(eatinorder.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetUncompletedEatInOrdersQueryResponse
		var id, tableID, menuID uuid.UUID
		var status int
		var line GetUncompletedEatInOrdersQueryLineItem

		if err = rows.Scan(&id, &tableID, &status, &o.OrderDateTime, &menuID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}

		orderID, idErr := toUUID(id)
		if idErr != nil {
			return nil, idErr
		}
		if line.MenuID, err = toUUID(menuID); err != nil {
			return nil, err
		}

		if n := len(orders); n > 0 && orders[n-1].ID.IsEqual(orderID) {
			orders[n-1].OrderLineItems = append(orders[n-1].OrderLineItems, line)
			continue
		}

		o.ID = orderID
		if o.OrderTableID, err = toUUID(tableID); err != nil {
			return nil, err
		}
		o.Status = eatinorder.Status(status)
		if err = o.Status.Validate(); err != nil {
			return nil, err
		}
		o.OrderDateTime = o.OrderDateTime.UTC()
		o.OrderLineItems = []GetUncompletedEatInOrdersQueryLineItem{line}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
