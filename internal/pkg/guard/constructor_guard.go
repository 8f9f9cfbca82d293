// Package guard makes zero-value construction of commands, queries and value
// objects detectable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded by types that must only be built through their
// constructor. Its zero value reports "not constructed".
//
//	type ReadOrderQuery struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q ReadOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrReadOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports "constructed". Call it only
// from constructors, after all arguments validated.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// guard was not created with NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
