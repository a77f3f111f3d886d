package symbolic

import (
	"fmt"
	"hash/fnv"

	"github.com/bits-and-blooms/bitset"

	"github.com/tomsch420/random-events/sets"
)

// Set is the composite form of the symbolic algebra: a sorted, distinct
// collection of Elements sharing one Universe. Membership and the
// binary set operations are backed by a *bitset.BitSet, so union,
// intersection, and difference run as word-parallel bitset operations
// rather than a linear merge over a sorted slice.
type Set struct {
	universe *Universe
	atoms    []sets.SimpleSet
	bits     *bitset.BitSet
}

// NewSet builds a canonical Set of the given elements against universe.
// Returns ErrUniverseMismatch if any element belongs to a different
// universe.
func NewSet(universe *Universe, elements ...Element) (*Set, error) {
	bits := bitset.New(uint(universe.Len()))
	for _, e := range elements {
		if e.IsEmpty() {
			continue
		}
		if !e.Universe.Equal(universe) {
			return nil, fmt.Errorf("symbolic.NewSet: %w", sets.ErrUniverseMismatch)
		}
		bits.Set(uint(e.Index))
	}

	return fromBits(universe, bits), nil
}

// EmptySet returns the empty Set over universe.
func EmptySet(universe *Universe) *Set {
	return fromBits(universe, bitset.New(uint(universe.Len())))
}

// FullSet returns the Set containing every symbol of universe.
func FullSet(universe *Universe) *Set {
	bits := bitset.New(uint(universe.Len()))
	for i := 0; i < universe.Len(); i++ {
		bits.Set(uint(i))
	}

	return fromBits(universe, bits)
}

func fromBits(universe *Universe, bits *bitset.BitSet) *Set {
	atoms := make([]sets.SimpleSet, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		atoms = append(atoms, Element{Index: int(i), Universe: universe})
	}

	return &Set{universe: universe, atoms: atoms, bits: bits}
}

// Universe returns the universe this Set is drawn from.
func (s *Set) Universe() *Universe { return s.universe }

// Simples returns the composite's atoms in canonical (ascending index)
// order.
func (s *Set) Simples() []sets.SimpleSet {
	return append([]sets.SimpleSet(nil), s.atoms...)
}

// FromSimples builds a new Set sharing the receiver's universe from an
// arbitrary slice of Element atoms.
func (s *Set) FromSimples(simples []sets.SimpleSet) sets.CompositeSet {
	bits := bitset.New(uint(s.universe.Len()))
	for _, raw := range simples {
		e := raw.(Element)
		if !e.IsEmpty() {
			bits.Set(uint(e.Index))
		}
	}

	return fromBits(s.universe, bits)
}

// UnionWith returns the union of the receiver and other.
func (s *Set) UnionWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, err := s.sameUniverse(other, "UnionWith")
	if err != nil {
		return nil, err
	}

	return fromBits(s.universe, s.bits.Union(o.bits)), nil
}

// IntersectionWith returns the intersection of the receiver and other.
func (s *Set) IntersectionWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, err := s.sameUniverse(other, "IntersectionWith")
	if err != nil {
		return nil, err
	}

	return fromBits(s.universe, s.bits.Intersection(o.bits)), nil
}

// DifferenceWith returns the receiver minus other.
func (s *Set) DifferenceWith(other sets.CompositeSet) (sets.CompositeSet, error) {
	o, err := s.sameUniverse(other, "DifferenceWith")
	if err != nil {
		return nil, err
	}

	return fromBits(s.universe, s.bits.Difference(o.bits)), nil
}

// Complement returns universe minus the receiver.
func (s *Set) Complement() (sets.CompositeSet, error) {
	if s.universe == nil || s.universe.Len() == 0 {
		return nil, fmt.Errorf("symbolic.Set.Complement: %w", sets.ErrEmptyUniverse)
	}

	return fromBits(s.universe, s.bits.Complement()), nil
}

// Contains reports whether point (a symbol string) lies in the Set.
func (s *Set) Contains(point any) bool {
	symbol, ok := point.(string)
	if !ok {
		return false
	}
	idx, ok := s.universe.IndexOf(symbol)

	return ok && s.bits.Test(uint(idx))
}

// ContainsComposite reports whether other is a subset of the receiver.
func (s *Set) ContainsComposite(other sets.CompositeSet) (bool, error) {
	o, err := s.sameUniverse(other, "ContainsComposite")
	if err != nil {
		return false, err
	}

	return o.bits.Difference(s.bits).Count() == 0, nil
}

// IsEmpty reports whether the Set has no elements.
func (s *Set) IsEmpty() bool { return s.bits.Count() == 0 }

// IsDisjoint always returns true: a bitset-backed symbolic Set has no
// representable overlap between its own atoms by construction. Exposed
// to satisfy sets.CompositeSet for property-based tests.
func (s *Set) IsDisjoint() bool { return true }

// Equal reports canonical equality: same universe and same member bits.
func (s *Set) Equal(other sets.CompositeSet) bool {
	o, ok := other.(*Set)
	if !ok {
		return false
	}
	if !s.universe.Equal(o.universe) {
		return false
	}

	return s.bits.Equal(o.bits)
}

// Hash returns a hash consistent with Equal.
func (s *Set) Hash() uint64 {
	h := fnv.New64a()
	for _, sym := range s.universe.Symbols() {
		fmt.Fprintf(h, "%s;", sym)
	}
	h.Write([]byte{0})
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fmt.Fprintf(h, "%d,", i)
	}

	return h.Sum64()
}

// Kind names the concrete atom kind, "symbolic".
func (s *Set) Kind() string { return "symbolic" }

func (s *Set) sameUniverse(other sets.CompositeSet, op string) (*Set, error) {
	o, ok := other.(*Set)
	if !ok {
		return nil, fmt.Errorf("symbolic.Set.%s: %w", op, sets.ErrTypeMismatch)
	}
	if !s.universe.Equal(o.universe) {
		return nil, fmt.Errorf("symbolic.Set.%s: %w", op, sets.ErrUniverseMismatch)
	}

	return o, nil
}
