package services

import (
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
)

// MenuPricePolicy keeps menus consistent with the prices of the products they contain.
//
// Business rules:
//   - Every menu containing the product captures the new product price
//   - A menu whose price now exceeds the sum of its products is hidden
//   - Menus without the product are left untouched
//
// Example usage:
//
//	policy := services.NewMenuPricePolicy()
//	if err := p.ChangePrice(newPrice); err != nil {
//	    return err
//	}
//	changed, err := policy.Apply(p, menusContaining)
//	// persist every menu in changed
type MenuPricePolicy struct{}

func NewMenuPricePolicy() MenuPricePolicy {
	return MenuPricePolicy{}
}

// Apply propagates the current price of p to menus.
//
// Parameters:
//   - p: The product whose price changed (must be valid)
//   - menus: Candidate menus, typically those referencing the product
//
// Returns:
//   - []*menu.Menu: The menus that contain the product and were updated
//   - error: validation error of the product or of a menu
func (MenuPricePolicy) Apply(p *product.Product, menus []*menu.Menu) ([]*menu.Menu, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	changed := make([]*menu.Menu, 0, len(menus))
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if m.ApplyProductPrice(p.ID(), p.Price()) {
			changed = append(changed, m)
		}
	}
	return changed, nil
}
