package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderTablesQueryIsNotConstructed = errors.New(
	"GetOrderTablesQuery must be created via NewGetOrderTablesQuery constructor",
)

type GetOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderTablesQuery() GetOrderTablesQuery {
	return GetOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTablesQueryIsNotConstructed)
}

type GetOrderTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Occupied       bool
}

type GetOrderTablesQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTablesQueryHandler(db *gorm.DB) GetOrderTablesQueryHandler {
	return GetOrderTablesQueryHandler{db: db}
}

func (h GetOrderTablesQueryHandler) Handle(ctx context.Context, query GetOrderTablesQuery) ([]GetOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number_of_guests,
			occupied
		FROM order_tables
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t GetOrderTablesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &t.Name, &t.NumberOfGuests, &t.Occupied); err != nil {
			return nil, err
		}

		if t.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
