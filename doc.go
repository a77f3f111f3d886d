// Package randomevents is your in-memory playground for building, combining,
// and querying product sigma-algebras over mixed symbolic, integer, and
// continuous variables in Go.
//
// What is random-events?
//
//	A small, dependency-light set-algebra library that brings together:
//
//	  • Core contracts: SimpleSet/CompositeSet atom-and-composite algebra
//	  • Concrete algebras: real intervals and finite symbolic domains
//	  • Product events: multivariate events over typed Variables, with
//	    a linear-term (not exponential) complement construction
//
// Why choose random-events?
//
//   - Minimal API     — one constructor and a handful of set operations per algebra
//   - Canonical forms — every composite is sorted, disjoint, and simplified
//   - Linear complement — n candidate simples per n-variable event, not 2^n - 1
//   - Pure Go         — no cgo
//
// Under the hood, everything is organized under six subpackages:
//
//	sets/      — abstract SimpleSet/CompositeSet contracts and shared algorithms
//	interval/  — one-dimensional real-interval algebra
//	symbolic/  — finite enumerated-domain algebra, backed by a bitset
//	variable/  — typed, name-ordered dimension identifiers
//	event/     — the product algebra built from the three above
//	serialize/ — JSON adapters for interval.Set, symbolic.Set, variable.Variable and the event types
//
// Quick example: a unit square event {x:[0,1], y:[0,1]} over continuous
// variables x and y, complemented, has exactly two disjoint simples —
// see event.SimpleEvent.Complement.
package randomevents
