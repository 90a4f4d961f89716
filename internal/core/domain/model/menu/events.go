package menu

import "kitchenpos/internal/pkg/ddd"

const (
	DisplayedEventName    = "menu.displayed"
	HiddenEventName       = "menu.hidden"
	PriceChangedEventName = "menu.price_changed"
)

// ChangedEvent is recorded whenever the visibility or price of a menu changes.
type ChangedEvent struct {
	ddd.BaseEvent
	MenuID    string `json:"menuId"`
	Price     string `json:"price"`
	Displayed bool   `json:"displayed"`
}

func newChangedEvent(name string, m *Menu) ChangedEvent {
	return ChangedEvent{
		BaseEvent: ddd.NewBaseEvent(name, m.id.Bytes()),
		MenuID:    m.id.String(),
		Price:     m.price.String(),
		Displayed: m.displayed,
	}
}
