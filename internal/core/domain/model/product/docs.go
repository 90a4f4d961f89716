// Package product provides the Product aggregate: a named, priced item that menus are built from.
//
// Key business rules:
//   - Product names must be present and must not contain profanity
//   - Prices are non-negative and may be changed after creation
//   - A price change is recorded as a PriceChangedEvent
package product
