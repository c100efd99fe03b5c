// Package guard provides the constructor guard pattern used by domain
// entities and value objects to reject zero-value instances that bypassed
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures entities and value objects are only created through
// their designated constructor functions. A zero-value struct embedding a
// ConstructorGuard fails validation, which keeps domain invariants intact
// even when the struct is instantiated directly.
//
// Example usage:
//
//	type SerialNumber struct {
//	    prefix   Prefix
//	    sequence uint64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (s SerialNumber) Validate() error {
//	    return s.guard.Validate(ErrSerialNumberIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created through its
// constructor. Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
