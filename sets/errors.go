package sets

import "errors"

// Sentinel errors for the abstract set algebra. Concrete algebras
// (interval, symbolic) and the product layer (event) all return these
// directly rather than minting their own, so callers can branch with
// errors.Is regardless of which concrete algebra raised the error.
var (
	// ErrTypeMismatch indicates an operation was attempted between two
	// composites (or a SimpleEvent entry and a Variable) of incompatible
	// concrete kinds, e.g. intersecting an interval.Set with a
	// symbolic.Set, or assigning an Interval to a Symbolic variable.
	ErrTypeMismatch = errors.New("sets: type mismatch")

	// ErrUniverseMismatch indicates two symbolic sets, or a symbolic set
	// and an element, drawn from different universes were combined.
	// Complementing a set with a missing or empty universe reports
	// ErrEmptyUniverse instead.
	ErrUniverseMismatch = errors.New("sets: universe mismatch")

	// ErrDomainEscape indicates a value assigned to a variable is not
	// fully contained in that variable's declared domain.
	ErrDomainEscape = errors.New("sets: value escapes variable domain")

	// ErrEmptyUniverse indicates a complement was requested against an
	// ambient universe that cannot be determined.
	ErrEmptyUniverse = errors.New("sets: ambient universe is undefined")
)
