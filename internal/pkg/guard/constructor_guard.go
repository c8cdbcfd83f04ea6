// Package guard provides the ConstructorGuard defensive pattern that
// ensures value objects, commands, and queries are only created through
// their designated constructor functions. Embedding a ConstructorGuard in
// a struct makes zero-value instances detectable at validation time.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate() when a nil error is passed as the validation
// error. This ensures that validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard maintains an internal flag that is only set when the
// enclosing object is created through its constructor function. Any
// attempt to use a zero-value struct fails validation.
//
// Example usage:
//
//	var ErrStationNotConstructed = errors.New("Station must be created via NewStation")
//
//	type Station struct {
//	    name  string
//	    guard ConstructorGuard
//	}
//
//	func NewStation(name string) (Station, error) {
//	    if name == "" {
//	        return Station{}, errors.New("name is required")
//	    }
//	    return Station{name: name, guard: NewConstructorGuard()}, nil
//	}
//
//	func (s Station) Validate() error {
//	    return s.guard.Validate(ErrStationNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil when constructed, the provided validationError otherwise,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
