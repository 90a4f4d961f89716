package eatinorder

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an eat-in order.
//
// State transitions:
//
//	Waiting ──> Accepted ──> Served ──> Completed
//
// No transition skips a state and none goes back. The allowed pairs are listed in
// getTransitions; any other pair is rejected with an IllegalState error.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of a newly placed order.
	Waiting

	// Accepted indicates the kitchen has taken the order.
	Accepted

	// Served indicates the dishes have been brought to the table.
	Served

	// Completed is the final state; the order is paid and closed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Waiting:   "WAITING",
		Accepted:  "ACCEPTED",
		Served:    "SERVED",
		Completed: "COMPLETED",
	}
}

// getTransitions maps every status to the only status it may move to.
func getTransitions() map[Status]Status {
	//nolint:exhaustive // Unknown and Completed have no successor
	return map[Status]Status{
		Waiting:  Accepted,
		Accepted: Served,
		Served:   Completed,
	}
}

// Validate checks if the Status value is one of the lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCompleted reports whether the order reached its final state.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// CanTransitionTo reports whether (s, target) is an allowed transition.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := getTransitions()[s]
	return ok && next == target
}

// TransitionTo returns target when the move from s is allowed.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, IllegalStateError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalStateErrorWithCause(
			"eat_in_order.status",
			fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
		)
	}
	return target, nil
}
