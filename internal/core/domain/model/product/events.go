package product

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
)

const PriceChangedEventName = "product.price_changed"

// PriceChangedEvent is recorded when a product gets a new price.
type PriceChangedEvent struct {
	ddd.BaseEvent
	ProductID string `json:"productId"`
	Price     string `json:"price"`
}

func NewPriceChangedEvent(productID kernel.UUID, price kernel.Price) PriceChangedEvent {
	return PriceChangedEvent{
		BaseEvent: ddd.NewBaseEvent(PriceChangedEventName, productID.Bytes()),
		ProductID: productID.String(),
		Price:     price.String(),
	}
}
