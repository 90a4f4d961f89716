package eatinorder

import "kitchenpos/internal/pkg/ddd"

const (
	CreatedEventName       = "eat_in_order.created"
	StatusChangedEventName = "eat_in_order.status_changed"
)

// StatusChangedEvent is recorded when an order is placed and on every transition after that.
type StatusChangedEvent struct {
	ddd.BaseEvent
	OrderID      string `json:"orderId"`
	OrderTableID string `json:"orderTableId"`
	Status       string `json:"status"`
}

func newStatusChangedEvent(name string, o *EatInOrder) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:    ddd.NewBaseEvent(name, o.id.Bytes()),
		OrderID:      o.id.String(),
		OrderTableID: o.orderTableID.String(),
		Status:       o.status.String(),
	}
}
