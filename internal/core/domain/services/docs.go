// Package services provides domain services that coordinate rules spanning more than
// one aggregate of the kitchenpos model.
//
// The package includes:
//   - MenuPricePolicy: propagates product price changes to menus and hides overpriced ones
//   - TableClearance: frees an order table only when it has no uncompleted orders
package services
