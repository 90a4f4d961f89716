package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetMenuGroupsQueryIsNotConstructed = errors.New(
	"GetMenuGroupsQuery must be created via NewGetMenuGroupsQuery constructor",
)

type GetMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuGroupsQuery() GetMenuGroupsQuery {
	return GetMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuGroupsQueryIsNotConstructed)
}

type GetMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}

type GetMenuGroupsQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuGroupsQueryHandler(db *gorm.DB) GetMenuGroupsQueryHandler {
	return GetMenuGroupsQueryHandler{db: db}
}

func (h GetMenuGroupsQueryHandler) Handle(ctx context.Context, query GetMenuGroupsQuery) ([]GetMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, name FROM menu_groups ORDER BY name, id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var g GetMenuGroupsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &g.Name); err != nil {
			return nil, err
		}

		if g.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
