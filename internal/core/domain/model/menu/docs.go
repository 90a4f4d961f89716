// Package menu provides the Menu aggregate and the MenuProduct values it owns.
//
// Key business rules:
//   - A menu consists of at least one MenuProduct
//   - The menu price never exceeds Σ(product price × quantity) when set
//   - Only displayed menus can be ordered
//   - When a product price drops below what a menu needs, the menu is hidden
package menu
