// Package guard implements the constructor-guard pattern used by value objects,
// commands, and queries to ensure instances are only created through their
// designated constructor functions. A zero-value struct fails validation,
// which keeps domain invariants from being bypassed by direct instantiation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed. Validation always fails with a meaningful message even if
// no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed a
// ConstructorGuard in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed instances from zero
// values.
//
// Example:
//
//	type SubmitRatingCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSubmitRatingCommand(orderID kernel.UUID) (SubmitRatingCommand, error) {
//	    // validate inputs...
//	    return SubmitRatingCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitRatingCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. It must only be called from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns validationError, or
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
