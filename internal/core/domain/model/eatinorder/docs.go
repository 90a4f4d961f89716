// Package eatinorder provides the EatInOrder aggregate: an order placed at an occupied
// table and driven through Waiting -> Accepted -> Served -> Completed.
//
// The package includes:
//   - EatInOrder: validates line items against the live menus at creation time
//   - OrderLineItem: requested quantity of a menu at the captured price
//   - Status: closed set of lifecycle states with an explicit transition table
//
// Key business rules:
//   - Every requested menu must exist, be displayed and match the submitted price
//   - Orders can only be placed on an occupied table
//   - Status never skips a step and never goes back
//   - Eat-in line item quantities may be negative
package eatinorder
