// Package sets defines the abstract set algebra shared by every concrete
// instantiation in this module (interval, symbolic, and the product event
// algebra built on top of them).
//
// What:
//
//   - SimpleSet is the atom contract: a single irreducible piece of a
//     one-dimensional (or product) space — an interval, a symbol, a
//     Cartesian slice.
//   - CompositeSet is a sorted, disjoint, simplified union of atoms.
//   - MakeDisjoint turns an arbitrary (possibly overlapping) slice of
//     atoms into an equal, pairwise-disjoint slice.
//   - Simplify merges adjacent atoms in a sorted disjoint slice whenever
//     the concrete atom type says they touch without a gap.
//
// Why:
//
//   - Concrete algebras (interval.Set, symbolic.Set, event.Event) all
//     need the same union/intersection/difference/complement reductions;
//     expressing the reductions once against two small interfaces avoids
//     re-deriving disjointification for every atom type.
//
// Non-goals:
//
//   - This package never represents a specific kind of atom. It has no
//     knowledge of real numbers or symbols — that lives in interval and
//     symbolic respectively.
package sets
