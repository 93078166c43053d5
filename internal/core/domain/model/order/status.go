package order

import (
	"fmt"

	"foodrescue/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Rather than branching on the current status inline, the state machine is an
// explicit table of (current status, requested status) pairs. Unlisted
// combinations are rejected, so an unhandled transition can never silently
// fall through.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Stock has been reserved; the order awaits confirmation or cancellation.
	Pending

	// Confirmed indicates the reservation has been acknowledged and the
	// order awaits pickup.
	Confirmed

	// PickedUp indicates a worker handed the package over.
	// This is a terminal state.
	PickedUp

	// Cancelled indicates the reservation was withdrawn and its stock
	// released. This is a terminal state.
	Cancelled
)

// transitions is the complete transition table. A (from, to) pair is allowed
// iff transitions[from][to] is present. Terminal states map to empty sets.
var transitions = map[Status]map[Status]struct{}{
	Pending: {
		Confirmed: {},
		Cancelled: {},
	},
	Confirmed: {
		PickedUp: {},
	},
	PickedUp:  {},
	Cancelled: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		PickedUp:  "PickedUp",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		PickedUp:  "PickedUp",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Used at the HTTP boundary where transition targets arrive as strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Confirmed, PickedUp, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	targets, ok := transitions[s]
	return ok && len(targets) == 0
}

// CanTransitionTo checks the transition table without performing the
// transition. Returns an InvalidTransitionError if the (s, target) pair is
// not allowed.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if _, ok := transitions[s][target]; !ok {
		return errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return nil
}

// ValidateCanHavePickupWorker validates the consistency between order status
// and the pickup worker stamp: only picked-up orders carry one.
func (s Status) ValidateCanHavePickupWorker(hasWorker bool) error {
	if hasWorker && s != PickedUp {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a pickup worker", s.String()),
		)
	}

	if !hasWorker && s == PickedUp {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires a pickup worker", s.String()),
		)
	}

	return nil
}
