package kitchenorder

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Status represents the kitchen-side lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> Preparing ──> Ready ──> Completed
//	   ^                        │
//	   └──────── Failed <───────┘
//
// Assigned permits a self-transition so a kitchen order can be moved
// between stations before preparation starts. Failed moves back to
// Pending so the order re-enters the assignment queue. Completed is
// terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending indicates the kitchen order awaits station assignment.
	StatusPending

	// StatusAssigned indicates a station owns the order but has not
	// started cooking.
	StatusAssigned

	// StatusPreparing indicates cooking is in progress.
	StatusPreparing

	// StatusReady indicates every item is finished.
	StatusReady

	// StatusCompleted indicates the order left the kitchen.
	// This is a terminal state with no further transitions allowed.
	StatusCompleted

	// StatusFailed indicates preparation was aborted; the order goes
	// back to Pending for reassignment.
	StatusFailed
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
	}
}

// transitions is the kitchen order lifecycle table. A status maps to the
// set of statuses it may legally move to; absence means the transition
// is invalid. Completed maps to an empty set (terminal).
var transitions = map[Status]map[Status]struct{}{
	StatusPending:   {StatusAssigned: {}, StatusPreparing: {}},
	StatusAssigned:  {StatusAssigned: {}, StatusPreparing: {}},
	StatusPreparing: {StatusReady: {}, StatusFailed: {}},
	StatusReady:     {StatusCompleted: {}},
	StatusCompleted: {},
	StatusFailed:    {StatusPending: {}},
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized or unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid kitchen order status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
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
// failing with an InvalidTransitionError otherwise.
func (s Status) ValidateTransition(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if !s.IsValidTransition(to) {
		return errs.NewInvalidTransitionError("kitchen order", s.String(), to.String())
	}
	return nil
}
