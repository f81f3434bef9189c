// Package guard provides a lightweight constructor guard for value objects,
// commands and queries. Embedding a ConstructorGuard lets a type detect whether
// it was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs embedding it cannot be used unless they went
// through their constructor function.
//
// Example:
//
//	type TrackParcelQuery struct {
//	    trackingID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewTrackParcelQuery(trackingID string) TrackParcelQuery {
//	    return TrackParcelQuery{trackingID: trackingID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q TrackParcelQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
