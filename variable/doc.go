// Package variable provides the typed, totally-ordered identifiers used
// to label dimensions of a product event (event.SimpleEvent / event.Event).
//
// A Variable pairs a name with a Kind (Symbolic, Integer, or Continuous)
// and a domain: the full sets.CompositeSet the variable ranges over
// (interval.Set for Integer/Continuous, symbolic.Set for Symbolic).
// Variables compare and order by name alone, so two processes that
// independently construct "the same" variable end up with structurally
// equal values — no shared registry or process-wide identity is needed,
// mirroring how core.Vertex in the teacher library is identified by a
// plain string ID rather than by pointer identity.
package variable
