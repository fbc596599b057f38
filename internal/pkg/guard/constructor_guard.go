// Package guard provides a small defensive-programming helper that ensures
// value objects and commands are only created through their designated
// constructor functions. A zero-value struct fails validation, which keeps
// invariants enforced even when a struct is accidentally instantiated
// directly.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its embedding struct went through a
// constructor. Embed one and set it with NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed instances from
// zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built via its constructor,
// otherwise the supplied validation error (or ErrDefaultConstructorGuard
// when none is given).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
