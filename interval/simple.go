package interval

import (
	"math"

	"github.com/tomsch420/random-events/sets"
)

// Simple is one interval atom: (Lower, Upper, LowerBound, UpperBound).
// Invariant: Lower <= Upper; if Lower == Upper both bounds are Closed
// (the degenerate singleton point). Any other combination with
// Lower == Upper, or Lower > Upper, normalizes to the canonical Empty
// value at construction time — see NewSimple.
type Simple struct {
	Lower, Upper         float64
	LowerBound, UpperBound Bound
}

// Empty is the canonical empty interval. Every constructor that would
// otherwise produce a degenerate or inverted interval returns this exact
// value, so Equal and Hash never need a special case for "empty in some
// other shape".
var Empty = Simple{Lower: 0, Upper: -1, LowerBound: Open, UpperBound: Open}

// NewSimple builds a canonical Simple, normalizing degenerate and
// inverted inputs to Empty and tagging infinite endpoints Open.
func NewSimple(lower, upper float64, lowerBound, upperBound Bound) Simple {
	if math.IsInf(lower, 0) {
		lowerBound = Open
	}
	if math.IsInf(upper, 0) {
		upperBound = Open
	}
	if lower > upper {
		return Empty
	}
	if lower == upper && (lowerBound == Open || upperBound == Open) {
		return Empty
	}

	return Simple{Lower: lower, Upper: upper, LowerBound: lowerBound, UpperBound: upperBound}
}

// OpenInterval builds (a, b).
func OpenInterval(a, b float64) Simple { return NewSimple(a, b, Open, Open) }

// ClosedInterval builds [a, b].
func ClosedInterval(a, b float64) Simple { return NewSimple(a, b, Closed, Closed) }

// OpenClosedInterval builds (a, b].
func OpenClosedInterval(a, b float64) Simple { return NewSimple(a, b, Open, Closed) }

// ClosedOpenInterval builds [a, b).
func ClosedOpenInterval(a, b float64) Simple { return NewSimple(a, b, Closed, Open) }

// SingletonInterval builds the degenerate point {a}.
func SingletonInterval(a float64) Simple { return NewSimple(a, a, Closed, Closed) }

// Reals builds (−∞, +∞).
func Reals() Simple { return NewSimple(math.Inf(-1), math.Inf(1), Open, Open) }

// IsEmpty reports whether the receiver is the empty interval.
func (s Simple) IsEmpty() bool {
	if s.Lower > s.Upper {
		return true
	}

	return s.Lower == s.Upper && (s.LowerBound == Open || s.UpperBound == Open)
}

// IntersectionWith returns the set-theoretic intersection.
func (s Simple) IntersectionWith(other sets.SimpleSet) sets.SimpleSet {
	o := other.(Simple)
	if s.IsEmpty() || o.IsEmpty() {
		return Empty
	}
	lower, lowerBound := tighterLower(s.Lower, s.LowerBound, o.Lower, o.LowerBound)
	upper, upperBound := tighterUpper(s.Upper, s.UpperBound, o.Upper, o.UpperBound)

	return NewSimple(lower, upper, lowerBound, upperBound)
}

// tighterLower picks the larger of two lower bounds; at a tie, Open wins
// because it excludes the shared endpoint, producing the tighter (set-
// theoretically smaller) result required for intersection.
func tighterLower(l1 float64, b1 Bound, l2 float64, b2 Bound) (float64, Bound) {
	switch {
	case l1 > l2:
		return l1, b1
	case l2 > l1:
		return l2, b2
	case b1 == Open || b2 == Open:
		return l1, Open
	default:
		return l1, Closed
	}
}

// tighterUpper is the upper-bound mirror of tighterLower: the smaller
// value wins, and Open wins ties.
func tighterUpper(u1 float64, b1 Bound, u2 float64, b2 Bound) (float64, Bound) {
	switch {
	case u1 < u2:
		return u1, b1
	case u2 < u1:
		return u2, b2
	case b1 == Open || b2 == Open:
		return u1, Open
	default:
		return u1, Closed
	}
}

// widerUpper is the union-side counterpart: the larger value wins, and
// Closed wins ties since the union includes a point if either side does.
func widerUpper(u1 float64, b1 Bound, u2 float64, b2 Bound) (float64, Bound) {
	switch {
	case u1 > u2:
		return u1, b1
	case u2 > u1:
		return u2, b2
	case b1 == Closed || b2 == Closed:
		return u1, Closed
	default:
		return u1, Open
	}
}

// Complement returns 0, 1, or 2 atoms whose union is R minus the
// receiver. A bounded-on-both-sides interval complements to two pieces;
// an interval unbounded on one side complements to one; Reals()
// complements to none; Empty complements to Reals().
func (s Simple) Complement() []sets.SimpleSet {
	if s.IsEmpty() {
		return []sets.SimpleSet{Reals()}
	}

	var out []sets.SimpleSet
	if s.Lower != math.Inf(-1) {
		left := NewSimple(math.Inf(-1), s.Lower, Open, s.LowerBound.flip())
		if !left.IsEmpty() {
			out = append(out, left)
		}
	}
	if s.Upper != math.Inf(1) {
		right := NewSimple(s.Upper, math.Inf(1), s.UpperBound.flip(), Open)
		if !right.IsEmpty() {
			out = append(out, right)
		}
	}

	return out
}

// Contains reports whether point (a float64) lies in the receiver.
func (s Simple) Contains(point any) bool {
	x := point.(float64)
	if s.IsEmpty() {
		return false
	}
	if x < s.Lower || x > s.Upper {
		return false
	}
	if x == s.Lower && s.LowerBound == Open {
		return false
	}
	if x == s.Upper && s.UpperBound == Open {
		return false
	}

	return true
}

// Less orders by Lower, then by LowerBound (Closed before Open).
func (s Simple) Less(other sets.SimpleSet) bool {
	o := other.(Simple)
	if s.Lower != o.Lower {
		return s.Lower < o.Lower
	}

	return s.LowerBound.rank() < o.LowerBound.rank()
}

// Equal reports structural equality; all empty intervals compare equal
// regardless of how they were constructed.
func (s Simple) Equal(other sets.SimpleSet) bool {
	o, ok := other.(Simple)
	if !ok {
		return false
	}
	if s.IsEmpty() && o.IsEmpty() {
		return true
	}

	return s.Lower == o.Lower && s.Upper == o.Upper &&
		s.LowerBound == o.LowerBound && s.UpperBound == o.UpperBound
}

// Adjoin merges the receiver with other into a single atom when they are
// exactly adjacent or overlapping. Per the simplification policy fixed
// in spec.md S3, two touching atoms merge whenever at least one of the
// two bounds at the shared endpoint is Closed.
func (s Simple) Adjoin(other sets.SimpleSet) (sets.SimpleSet, bool) {
	o := other.(Simple)
	if s.IsEmpty() {
		return o, true
	}
	if o.IsEmpty() {
		return s, true
	}

	left, right := s, o
	if right.Lower < left.Lower || (right.Lower == left.Lower && right.LowerBound.rank() < left.LowerBound.rank()) {
		left, right = right, left
	}

	overlapping := right.Lower < left.Upper
	touching := right.Lower == left.Upper && (left.UpperBound == Closed || right.LowerBound == Closed)
	if !overlapping && !touching {
		return nil, false
	}

	upper, upperBound := widerUpper(left.Upper, left.UpperBound, right.Upper, right.UpperBound)

	return NewSimple(left.Lower, upper, left.LowerBound, upperBound), true
}
