package order

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Pending ──> Confirmed ──> Preparing ──> Ready ──┬──> Delivering ──> Delivered
//	                                                          └──> Delivered (counter pickup)
//
// Every non-terminal status may additionally transition to Cancelled.
// Delivered and Cancelled are terminal: they have no outgoing transitions.
//
// The transition table is an immutable map from status to its allowed
// target set; every status mutation must go through ValidateTransition so
// no code path can skip a lifecycle stage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status while the order is still being composed.
	Draft

	// Pending indicates the order has been submitted and awaits confirmation.
	Pending

	// Confirmed indicates the order was accepted; production is triggered
	// exactly once at this point.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates all preparation is finished.
	Ready

	// Delivering indicates the order left with a courier.
	Delivering

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was aborted.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// transitions is the order lifecycle table. A status maps to the set of
// statuses it may legally move to; absence means the transition is
// invalid. Delivered and Cancelled map to empty sets (terminal).
var transitions = map[Status]map[Status]struct{}{
	Draft:      {Pending: {}, Cancelled: {}},
	Pending:    {Confirmed: {}, Cancelled: {}},
	Confirmed:  {Preparing: {}, Cancelled: {}},
	Preparing:  {Ready: {}, Cancelled: {}},
	Ready:      {Delivering: {}, Delivered: {}, Cancelled: {}},
	Delivering: {Delivered: {}, Cancelled: {}},
	Delivered:  {},
	Cancelled:  {},
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized or unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	targets, ok := transitions[s]
	return ok && len(targets) == 0
}

// IsValidTransition reports whether the status may move to the target.
// Invalid source statuses have no valid transitions.
func (s Status) IsValidTransition(to Status) bool {
	targets, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// ValidTransitions returns the set of statuses the current status may
// legally move to. The returned slice is a copy; mutating it does not
// affect the transition table.
func (s Status) ValidTransitions() []Status {
	targets, ok := transitions[s]
	if !ok {
		return nil
	}

	result := make([]Status, 0, len(targets))
	for target := range targets {
		result = append(result, target)
	}
	return result
}

// ValidateTransition checks that the status may move to the target,
// failing with an InvalidTransitionError otherwise. Every caller mutating
// order status must call this in the same operation as the write.
func (s Status) ValidateTransition(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if !s.IsValidTransition(to) {
		return errs.NewInvalidTransitionError("order", s.String(), to.String())
	}
	return nil
}
