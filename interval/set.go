package interval

import (
	"fmt"
	"hash/fnv"

	"github.com/tomsch420/random-events/sets"
)

// Set is the composite form of the interval algebra: a finite, sorted,
// pairwise-disjoint, non-adjacent union of Simples. The empty Set (zero
// value) denotes the empty interval.
type Set struct {
	atoms []sets.SimpleSet
}

// NewSet builds a canonical Set from any number of Simples, in any
// order, possibly overlapping. Construction always disjointifies and
// simplifies; callers never need to pre-sort or pre-merge their input.
func NewSet(simples ...Simple) *Set {
	atoms := make([]sets.SimpleSet, 0, len(simples))
	for _, s := range simples {
		if !s.IsEmpty() {
			atoms = append(atoms, s)
		}
	}

	return fromRawAtoms(atoms)
}

// EmptySet returns the empty interval Set.
func EmptySet() *Set { return &Set{} }

// RealLine returns the Set containing all of R.
func RealLine() *Set { return NewSet(Reals()) }

func fromRawAtoms(atoms []sets.SimpleSet) *Set {
	disjoint := sets.MakeDisjoint(atoms)
	simplified := sets.Simplify(disjoint)

	return &Set{atoms: simplified}
}

// Simples returns the composite's atoms in canonical order.
func (s *Set) Simples() []sets.SimpleSet {
	return append([]sets.SimpleSet(nil), s.atoms...)
}

// FromSimples builds a new Set from an arbitrary atom slice, re-running
// disjointification and simplification.
func (s *Set) FromSimples(simples []sets.SimpleSet) sets.CompositeSet {
	return fromRawAtoms(simples)
}

// UnionWith returns the union of the receiver and other.
func (s *Set) UnionWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, ok := other.(*Set)
	if !ok {
		return nil, fmt.Errorf("interval.Set.UnionWith: %w", sets.ErrTypeMismatch)
	}

	return fromRawAtoms(sets.UnionAtoms(s.atoms, o.atoms)), nil
}

// IntersectionWith returns the intersection of the receiver and other.
func (s *Set) IntersectionWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, ok := other.(*Set)
	if !ok {
		return nil, fmt.Errorf("interval.Set.IntersectionWith: %w", sets.ErrTypeMismatch)
	}

	return fromRawAtoms(sets.IntersectionAtoms(s.atoms, o.atoms)), nil
}

// DifferenceWith returns the receiver minus other.
func (s *Set) DifferenceWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, ok := other.(*Set)
	if !ok {
		return nil, fmt.Errorf("interval.Set.DifferenceWith: %w", sets.ErrTypeMismatch)
	}

	return fromRawAtoms(sets.DifferenceAtoms(s.atoms, o.atoms)), nil
}

// Complement returns R minus the receiver. Always succeeds: the ambient
// space of an interval Set is always R.
func (s *Set) Complement() (sets.CompositeSet, error) {
	ambient := []sets.SimpleSet{Reals()}

	return fromRawAtoms(sets.ComplementAtoms(ambient, s.atoms)), nil
}

// Contains reports whether point (a float64) lies in the Set.
func (s *Set) Contains(point any) bool {
	for _, a := range s.atoms {
		if a.Contains(point) {
			return true
		}
	}

	return false
}

// ContainsComposite reports whether other is a subset of the receiver.
func (s *Set) ContainsComposite(other sets.CompositeSet) (bool, error) {
	o, ok := other.(*Set)
	if !ok {
		return false, fmt.Errorf("interval.Set.ContainsComposite: %w", sets.ErrTypeMismatch)
	}
	inter, _ := s.IntersectionWith(o)

	return inter.Equal(o), nil
}

// IsEmpty reports whether the Set has no atoms.
func (s *Set) IsEmpty() bool { return len(s.atoms) == 0 }

// IsDisjoint reports whether the Set's atoms are pairwise disjoint. True
// for every canonical Set; exposed for property-based tests.
func (s *Set) IsDisjoint() bool {
	for i := 0; i < len(s.atoms); i++ {
		for j := i + 1; j < len(s.atoms); j++ {
			if !s.atoms[i].IntersectionWith(s.atoms[j]).IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Equal reports canonical equality.
func (s *Set) Equal(other sets.CompositeSet) bool {
	o, ok := other.(*Set)
	if !ok {
		return false
	}
	if len(s.atoms) != len(o.atoms) {
		return false
	}
	for i := range s.atoms {
		if !s.atoms[i].Equal(o.atoms[i]) {
			return false
		}
	}

	return true
}

// Hash returns a hash consistent with Equal.
func (s *Set) Hash() uint64 {
	h := fnv.New64a()
	for _, a := range s.atoms {
		simple := a.(Simple)
		// Equal treats -0 and +0 as the same endpoint, so hash both as +0.
		lower, upper := simple.Lower, simple.Upper
		if lower == 0 {
			lower = 0
		}
		if upper == 0 {
			upper = 0
		}
		fmt.Fprintf(h, "[%g,%g,%d,%d]", lower, upper, simple.LowerBound, simple.UpperBound)
	}

	return h.Sum64()
}

// Kind names the concrete atom kind, "interval".
func (s *Set) Kind() string { return "interval" }
