// Package eatinorderrepo maps eat-in orders and their line items to the eat_in_orders
// and order_line_items tables.
package eatinorderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EatInOrderDTO represents the database structure for persisting eat-in orders.
// Version backs the optimistic lock of Update.
type EatInOrderDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status         int                `gorm:"type:smallint;not null;index"`
	OrderDateTime  time.Time          `gorm:"not null"`
	Version        int64              `gorm:"not null;default:0"`
	OrderLineItems []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (EatInOrderDTO) TableName() string {
	return "eat_in_orders"
}

// OrderLineItemDTO stores a line item with the menu price captured when the order was placed.
type OrderLineItemDTO struct {
	Seq      int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *eatinorder.EatInOrder) EatInOrderDTO {
	orderID := o.ID().Bytes()
	items := o.OrderLineItems()
	lines := make([]OrderLineItemDTO, 0, len(items))

	for _, item := range items {
		lines = append(lines, OrderLineItemDTO{
			OrderID:  orderID,
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Value(),
		})
	}

	return EatInOrderDTO{
		ID:             orderID,
		OrderTableID:   o.OrderTableID().Bytes(),
		Status:         int(o.Status()),
		OrderDateTime:  o.OrderDateTime(),
		Version:        o.Version(),
		OrderLineItems: lines,
	}
}

func toDomain(dto EatInOrderDTO) (*eatinorder.EatInOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.OrderTableID[:])
	if err != nil {
		return nil, err
	}

	items := make([]eatinorder.OrderLineItem, 0, len(dto.OrderLineItems))
	for _, line := range dto.OrderLineItems {
		item, itemErr := lineItemToDomain(line)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return eatinorder.RestoreEatInOrder(
		id,
		tableID,
		eatinorder.Status(dto.Status),
		items,
		dto.OrderDateTime.UTC(),
		dto.Version,
	)
}

func lineItemToDomain(dto OrderLineItemDTO) (eatinorder.OrderLineItem, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return eatinorder.OrderLineItem{}, err
	}

	price, err := kernel.NewPrice(kernel.SubjectOrderLineItem, dto.Price)
	if err != nil {
		return eatinorder.OrderLineItem{}, err
	}

	return eatinorder.NewOrderLineItem(dto.Quantity, menuID, price)
}
