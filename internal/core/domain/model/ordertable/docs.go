// Package ordertable provides OrderTable, the seating state that eat-in orders are placed on.
// Occupancy and guest count are changed by table management; orders only read IsOccupied.
package ordertable
