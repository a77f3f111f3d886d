// Package interval implements the one-dimensional set algebra (sets.
// SimpleSet / sets.CompositeSet) for real intervals with explicit bound
// types: open, closed, or unbounded.
//
// A Simple is one interval such as [0,1), (−∞,3], or the singleton {5}.
// A Set is a finite, sorted, pairwise-disjoint, non-adjacent union of
// Simples — the canonical form every constructor and operator returns.
//
// Complement is the non-trivial part of this package: a Simple bounded on
// both sides complements directly to two pieces, one unbounded on one
// side to one piece, and the real line to none. Set.Complement intersects
// these per-atom complements through sets.ComplementAtoms.
package interval
