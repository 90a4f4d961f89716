// Package kernel provides the shared value objects of the kitchenpos domain model.
//
// The package includes:
//   - UUID: identifier of every aggregate
//   - Name: display name, optionally checked by a ProfanityChecker
//   - Price: non-negative decimal amount
//   - Quantity: non-negative count
//
// Zero values of these types stand for missing input: they fail Validate with a
// ValueIsRequired error from the errs package, so aggregates can reject "null"
// arguments without pointer fields. Subject tags each value with the concept it
// belongs to for error messages only; equality ignores it.
package kernel
