package http

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Created struct {
	ID uuid.UUID `json:"id"`
}

type PriceChange struct {
	Price decimal.NullDecimal `json:"price"`
}

type NewProduct struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

type Product struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewMenuGroup struct {
	Name string `json:"name"`
}

type MenuGroup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MenuProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

type NewMenu struct {
	Name         string              `json:"name"`
	Price        decimal.NullDecimal `json:"price"`
	MenuGroupID  uuid.UUID           `json:"menuGroupId"`
	Displayed    bool                `json:"displayed"`
	MenuProducts []MenuProduct       `json:"menuProducts"`
}

type Menu struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  uuid.UUID       `json:"menuGroupId"`
	Displayed    bool            `json:"displayed"`
	MenuProducts []MenuProduct   `json:"menuProducts"`
}

type NewOrderTable struct {
	Name string `json:"name"`
}

type NumberOfGuestsChange struct {
	NumberOfGuests *int `json:"numberOfGuests"`
}

type OrderTable struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Occupied       bool      `json:"occupied"`
}

type NewOrderLineItem struct {
	MenuID   uuid.UUID           `json:"menuId"`
	Quantity int64               `json:"quantity"`
	Price    decimal.NullDecimal `json:"price"`
}

type NewEatInOrder struct {
	OrderTableID   uuid.UUID          `json:"orderTableId"`
	OrderLineItems []NewOrderLineItem `json:"orderLineItems"`
}

type OrderLineItem struct {
	MenuID   uuid.UUID       `json:"menuId"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type EatInOrder struct {
	ID             uuid.UUID       `json:"id"`
	OrderTableID   uuid.UUID       `json:"orderTableId"`
	Status         string          `json:"status"`
	OrderDateTime  time.Time       `json:"orderDateTime"`
	OrderLineItems []OrderLineItem `json:"orderLineItems"`
}

// toKernelID maps an absent (nil) identifier to the zero kernel.UUID so that commands
// report it as a missing value.
func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, nil
	}
	return kernel.UUIDFromGoogle(id)
}
