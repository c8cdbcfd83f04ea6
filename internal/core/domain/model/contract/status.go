package contract

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Status represents the lifecycle state of a production contract.
// It mirrors the kitchen-side progress of an order at the contract level.
//
// State transitions:
//
//	Pending ──> Assigned ──> InPreparation ──> Ready ──> Completed
//
// Every non-terminal status may additionally transition to Cancelled.
// Completed and Cancelled are terminal: they have no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending indicates the contract was created but no station
	// has accepted the work yet.
	StatusPending

	// StatusAssigned indicates a station took ownership of the contract.
	StatusAssigned

	// StatusInPreparation indicates production has started.
	StatusInPreparation

	// StatusReady indicates every item in the contract is finished.
	StatusReady

	// StatusCompleted indicates the contract was handed off.
	// This is a terminal state with no further transitions allowed.
	StatusCompleted

	// StatusCancelled indicates the contract was aborted.
	// This is a terminal state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "unknown",
		StatusPending:       "pending",
		StatusAssigned:      "assigned",
		StatusInPreparation: "in_preparation",
		StatusReady:         "ready",
		StatusCompleted:     "completed",
		StatusCancelled:     "cancelled",
	}
}

// transitions is the contract lifecycle table. A status maps to the set
// of statuses it may legally move to; absence means the transition is
// invalid. Completed and Cancelled map to empty sets (terminal).
var transitions = map[Status]map[Status]struct{}{
	StatusPending:       {StatusAssigned: {}, StatusCancelled: {}},
	StatusAssigned:      {StatusInPreparation: {}, StatusCancelled: {}},
	StatusInPreparation: {StatusReady: {}, StatusCancelled: {}},
	StatusReady:         {StatusCompleted: {}, StatusCancelled: {}},
	StatusCompleted:     {},
	StatusCancelled:     {},
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized or unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid contract status", s))
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
		return errs.NewInvalidTransitionError("production contract", s.String(), to.String())
	}
	return nil
}
