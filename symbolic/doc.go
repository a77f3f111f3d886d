// Package symbolic implements the one-dimensional set algebra (sets.
// SimpleSet / sets.CompositeSet) for subsets of a fixed, finite, ordered
// universe of symbols.
//
// An Element is a single index into a Universe. A Set is a sorted,
// distinct collection of Elements sharing one Universe, backed by a
// *bitset.BitSet (github.com/bits-and-blooms/bitset) for O(1) membership
// tests and word-parallel union/intersection/difference instead of a
// linear scan over a sorted slice.
//
// Unlike interval.Simple, whose complement has at most two pieces,
// complementing a single Element yields |Universe|-1 atoms, one per other
// symbol.
package symbolic
