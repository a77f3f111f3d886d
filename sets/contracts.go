package sets

// SimpleSet is the atom contract shared by every concrete one-dimensional
// algebra (interval.Simple, symbolic.Element) and by the product layer's
// per-variable atoms.
//
// Implementations MUST be immutable: none of these methods may mutate the
// receiver or the argument.
type SimpleSet interface {
	// IntersectionWith returns the set-theoretic intersection of the
	// receiver and other. May return an empty atom (IsEmpty() == true)
	// but never nil.
	IntersectionWith(other SimpleSet) SimpleSet

	// Complement returns a small, pairwise-disjoint collection of atoms
	// whose union is the complement of the receiver in the ambient space.
	Complement() []SimpleSet

	// IsEmpty reports whether the atom denotes the empty set.
	IsEmpty() bool

	// Contains reports whether point lies in the atom. The concrete type
	// of point is defined by the implementing algebra (float64 for
	// interval.Simple, a symbol string for symbolic.Element).
	Contains(point any) bool

	// Less defines the total order used to sort atoms within a
	// composite so overlap/adjacency is detectable by scanning
	// neighbors.
	Less(other SimpleSet) bool

	// Equal reports structural equality.
	Equal(other SimpleSet) bool
}

// Adjoiner is implemented by atom types whose composites can merge two
// sorted, adjacent atoms into one. Atom types that never merge (symbolic
// elements — a sorted list of distinct indices is already simplified)
// simply don't implement it; Simplify treats that as "never adjoins".
type Adjoiner interface {
	// Adjoin returns the union of the receiver and other as a single
	// atom, and true, if and only if the two atoms overlap or are exactly
	// adjacent (their union is itself a single atom). Otherwise returns
	// (nil, false).
	Adjoin(other SimpleSet) (SimpleSet, bool)
}

// CompositeSet is the contract for a finite, sorted, pairwise-disjoint,
// simplified union of SimpleSet atoms. Every concrete composite
// (interval.Set, symbolic.Set, and by extension event.SimpleEvent's
// per-variable atoms) satisfies this so the product layer can store and
// align heterogeneous domains behind one interface.
type CompositeSet interface {
	// Simples returns the composite's atoms in canonical order. Callers
	// must not mutate the returned slice.
	Simples() []SimpleSet

	// FromSimples builds a new composite of the receiver's concrete kind
	// from an arbitrary (possibly overlapping, unsorted) slice of atoms,
	// applying disjointification and simplification. Used by the
	// generic reducers in this package to wrap their []SimpleSet results
	// back into the caller's concrete type.
	FromSimples(simples []SimpleSet) CompositeSet

	// UnionWith returns the union of the receiver and other. Returns
	// ErrTypeMismatch if other is not the same concrete kind.
	UnionWith(other CompositeSet) (CompositeSet, error)

	// IntersectionWith returns the intersection of the receiver and
	// other. Returns ErrTypeMismatch if other is not the same concrete
	// kind.
	IntersectionWith(other CompositeSet) (CompositeSet, error)

	// DifferenceWith returns the receiver minus other. Returns
	// ErrTypeMismatch if other is not the same concrete kind.
	DifferenceWith(other CompositeSet) (CompositeSet, error)

	// Complement returns the complement of the receiver in its ambient
	// space. Returns ErrEmptyUniverse if the ambient space cannot be
	// determined (e.g. a symbolic set with no universe).
	Complement() (CompositeSet, error)

	// Contains reports whether point lies in the composite.
	Contains(point any) bool

	// ContainsComposite reports whether other is a subset of the
	// receiver. Returns ErrTypeMismatch if other is not the same
	// concrete kind.
	ContainsComposite(other CompositeSet) (bool, error)

	// IsEmpty reports whether the composite has no atoms (or only empty
	// atoms).
	IsEmpty() bool

	// IsDisjoint reports whether the composite's atoms are pairwise
	// disjoint. True for every value returned by a constructor or
	// operator in this module; exposed for property-based tests.
	IsDisjoint() bool

	// Equal reports canonical equality: same concrete kind, same atoms
	// in the same order after both sides are independently
	// canonicalized.
	Equal(other CompositeSet) bool

	// Hash returns a hash consistent with Equal: Equal(a, b) implies
	// a.Hash() == b.Hash().
	Hash() uint64

	// Kind names the concrete atom kind, used by ErrTypeMismatch
	// messages and by the serialize package.
	Kind() string
}
