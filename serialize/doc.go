// Package serialize provides two-way JSON adapters for the algebraic
// types of this module:
//   - interval.Set
//   - symbolic.Set
//   - variable.Variable
//   - event.Event
//
// Serialization sits outside the algebraic core by design: a Set or
// Event round-tripped through JSON and reconstructed is re-disjointified
// and re-simplified by the normal constructors, so byte-for-byte wire
// stability comes from the core's canonical form rather than from
// anything this package does.
package serialize
