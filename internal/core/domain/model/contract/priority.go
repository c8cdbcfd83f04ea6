package contract

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Priority is the production urgency of a contract. The factory only ever
// computes Medium or High; Low and Urgent stay reachable through manual
// override paths (for example the priority argument when creating a
// kitchen order by hand).
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is only assignable manually.
	PriorityLow

	// PriorityMedium is the default computed priority.
	PriorityMedium

	// PriorityHigh is computed for aggregator-channel and large orders.
	PriorityHigh

	// PriorityUrgent is only assignable manually.
	PriorityUrgent
)

// getPriorityStrings returns a map of Priority values to their string
// representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityMedium:  "medium",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// PriorityFromString parses a priority from its string representation.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s && p != PriorityUnknown {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
