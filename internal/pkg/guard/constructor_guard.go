package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in commands
// and queries so that a zero-value struct literal is rejected by Validate before a
// handler touches the ledger.
//
// Example:
//
//	var ErrPickupCommandIsNotConstructed = errors.New("PickupCommand must be created via NewPickupCommand")
//
//	type PickupCommand struct {
//	    order parcel.Order
//	    guard guard.ConstructorGuard
//	}
//
//	func (c PickupCommand) Validate() error {
//	    return c.guard.Validate(ErrPickupCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
