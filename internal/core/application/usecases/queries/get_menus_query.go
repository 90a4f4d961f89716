package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetMenusQueryIsNotConstructed = errors.New(
	"GetMenusQuery must be created via NewGetMenusQuery constructor",
)

// GetMenusQuery lists menus with their products. With displayedOnly set, hidden menus
// are left out, which is the list guests can order from.
type GetMenusQuery struct {
	displayedOnly bool
	guard         guard.ConstructorGuard
}

func NewGetMenusQuery(displayedOnly bool) GetMenusQuery {
	return GetMenusQuery{displayedOnly: displayedOnly, guard: guard.NewConstructorGuard()}
}

func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

func (q GetMenusQuery) DisplayedOnly() bool {
	return q.displayedOnly
}

type GetMenusQueryMenuProduct struct {
	ProductID kernel.UUID
	Quantity  int64
}

type GetMenusQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        decimal.Decimal
	MenuGroupID  kernel.UUID
	Displayed    bool
	MenuProducts []GetMenusQueryMenuProduct
}

type GetMenusQueryHandler struct {
	db *gorm.DB
}

func NewGetMenusQueryHandler(db *gorm.DB) GetMenusQueryHandler {
	return GetMenusQueryHandler{db: db}
}

// Handle returns the menus ordered by name. Rows of the join arrive grouped by menu.
func (h GetMenusQueryHandler) Handle(ctx context.Context, query GetMenusQuery) ([]GetMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus := make([]GetMenusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.price,
			m.menu_group_id,
			m.displayed,
			mp.product_id,
			mp.quantity
		FROM menus m
		JOIN menu_products mp ON mp.menu_id = m.id
		WHERE (NOT ? OR m.displayed)
		ORDER BY m.name, m.id, mp.seq
	`, query.DisplayedOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m GetMenusQueryResponse
		var id, groupID, productID uuid.UUID
		var quantity int64

		if err = rows.Scan(&id, &m.Name, &m.Price, &groupID, &m.Displayed, &productID, &quantity); err != nil {
			return nil, err
		}

		menuID, idErr := toUUID(id)
		if idErr != nil {
			return nil, idErr
		}
		pID, idErr := toUUID(productID)
		if idErr != nil {
			return nil, idErr
		}
		line := GetMenusQueryMenuProduct{ProductID: pID, Quantity: quantity}

		if n := len(menus); n > 0 && menus[n-1].ID.IsEqual(menuID) {
			menus[n-1].MenuProducts = append(menus[n-1].MenuProducts, line)
			continue
		}

		m.ID = menuID
		if m.MenuGroupID, err = toUUID(groupID); err != nil {
			return nil, err
		}
		m.MenuProducts = []GetMenusQueryMenuProduct{line}
		menus = append(menus, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
