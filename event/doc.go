// Package event builds multivariate events as sorted, pairwise-disjoint
// unions of SimpleEvents — one atom per constrained variable.Variable,
// with every unlisted variable implicitly bound to its full domain.
//
// The centerpiece is the linear-term product complement: for an n-
// variable SimpleEvent, Complement materializes at most n candidate
// simples (one per variable, with that variable's atom complemented and
// every earlier variable held at its original atom; a candidate whose
// complemented atom is empty is dropped) instead of the
// naive 2^n - 1 expansion of De Morgan's law over every variable
// subset. Union, intersection, difference, containment, and equality
// all reduce to this plus the disjointification machinery in the sets
// package, reapplied at the product layer.
package event
