package station

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Type classifies what kind of work a kitchen station performs.
type Type string

const (
	// TypeGrill handles grilled items.
	TypeGrill Type = "grill"

	// TypeFryer handles fried items.
	TypeFryer Type = "fryer"

	// TypeOven handles baked and roasted items.
	TypeOven Type = "oven"

	// TypeAssembly composes finished dishes from prepared parts.
	TypeAssembly Type = "assembly"

	// TypePrep handles raw preparation work.
	TypePrep Type = "prep"

	// TypeCold handles salads, desserts and other cold items.
	TypeCold Type = "cold"
)

// PreferenceOrder is the fixed type affinity used by the dispatcher: the
// first type in this list that has an available station wins.
func PreferenceOrder() []Type {
	return []Type{TypeGrill, TypeFryer, TypeOven, TypeAssembly, TypePrep, TypeCold}
}

// TypeFromString parses a station type from its string representation.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the Type value is a known station type.
func (t Type) Validate() error {
	switch t {
	case TypeGrill, TypeFryer, TypeOven, TypeAssembly, TypePrep, TypeCold:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid station type", string(t)))
	}
}

// String returns the station type as a string.
func (t Type) String() string {
	return string(t)
}
