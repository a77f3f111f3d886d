package event

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/variable"
)

// seEntry pairs a Variable with its constraining atom. Stored by the
// variable's Name (not pointer) so that two independently constructed
// Variables sharing a name are interchangeable, per variable.Variable's
// name-based identity.
type seEntry struct {
	variable *variable.Variable
	atom     sets.CompositeSet
}

// SimpleEvent is a single box in the product space: the Cartesian product
// of one CompositeSet atom per constrained variable.Variable. Any variable
// not present in a SimpleEvent is implicitly bound to its full domain —
// SimpleEvents are never materialized eagerly over every known
// variable, which is what keeps the linear complement linear.
type SimpleEvent struct {
	entries map[string]seEntry
}

// NewSimpleEvent builds a SimpleEvent from a variable-to-domain
// assignment. Every value's concrete kind must match its variable's
// Kind (sets.ErrTypeMismatch otherwise) and must be contained in the
// variable's declared domain (sets.ErrDomainEscape otherwise, unless
// WithClipping is supplied, which intersects the value down to the
// domain instead of rejecting it).
func NewSimpleEvent(assignment map[*variable.Variable]sets.CompositeSet, opts ...Option) (*SimpleEvent, error) {
	cfg := resolveOptions(opts...)
	entries := make(map[string]seEntry, len(assignment))

	for v, atom := range assignment {
		if v == nil {
			return nil, errors.Wrap(sets.ErrTypeMismatch, "event: nil variable in assignment")
		}

		if atom.Kind() != v.Domain.Kind() {
			return nil, fmt.Errorf("event: variable %q expects %s atoms, got %s: %w",
				v.Name, v.Domain.Kind(), atom.Kind(), sets.ErrTypeMismatch)
		}

		contained, err := v.Domain.ContainsComposite(atom)
		if err != nil {
			return nil, errors.Wrapf(err, "event: checking domain containment for %q", v.Name)
		}

		if !contained {
			if !cfg.clip {
				return nil, fmt.Errorf("event: value for variable %q escapes its domain: %w", v.Name, sets.ErrDomainEscape)
			}

			clipped, err := atom.IntersectionWith(v.Domain)
			if err != nil {
				return nil, errors.Wrapf(err, "event: clipping value for %q", v.Name)
			}

			atom = clipped
		}

		entries[v.Name] = seEntry{variable: v, atom: atom}
	}

	return &SimpleEvent{entries: entries}, nil
}

// Variables returns the SimpleEvent's explicitly constrained variables,
// sorted by name. Variables outside this list are unconstrained (bound
// to their full domain).
func (e *SimpleEvent) Variables() []*variable.Variable {
	out := make([]*variable.Variable, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, entry.variable)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Atom returns the atom assigned to v, or v's full domain if v is not
// explicitly constrained by this SimpleEvent.
func (e *SimpleEvent) Atom(v *variable.Variable) sets.CompositeSet {
	if entry, ok := e.entries[v.Name]; ok {
		return entry.atom
	}

	return v.Domain
}

// IsEmpty reports whether any constrained atom is empty, which makes
// the whole SimpleEvent empty (a product is empty iff some factor is).
func (e *SimpleEvent) IsEmpty() bool {
	for _, entry := range e.entries {
		if entry.atom.IsEmpty() {
			return true
		}
	}

	return false
}

// align returns, for the union of a's and b's variable names, the two
// aligned atom maps keyed by name, filling gaps with each side's full
// domain. Variables are pulled from whichever SimpleEvent declares
// them explicitly.
func align(a, b *SimpleEvent) (vars []*variable.Variable, aAtoms, bAtoms map[string]sets.CompositeSet) {
	seen := make(map[string]*variable.Variable)
	for _, entry := range a.entries {
		seen[entry.variable.Name] = entry.variable
	}

	for _, entry := range b.entries {
		seen[entry.variable.Name] = entry.variable
	}

	vars = make([]*variable.Variable, 0, len(seen))
	for _, v := range seen {
		vars = append(vars, v)
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })

	aAtoms = make(map[string]sets.CompositeSet, len(vars))
	bAtoms = make(map[string]sets.CompositeSet, len(vars))

	for _, v := range vars {
		aAtoms[v.Name] = a.Atom(v)
		bAtoms[v.Name] = b.Atom(v)
	}

	return vars, aAtoms, bAtoms
}

// IntersectionWith returns the pointwise intersection of two
// SimpleEvents: for every variable in either operand, intersect the
// two (possibly implicit full-domain) atoms.
func (e *SimpleEvent) IntersectionWith(other *SimpleEvent) (*SimpleEvent, error) {
	vars, aAtoms, bAtoms := align(e, other)
	entries := make(map[string]seEntry, len(vars))

	for _, v := range vars {
		inter, err := aAtoms[v.Name].IntersectionWith(bAtoms[v.Name])
		if err != nil {
			return nil, errors.Wrapf(err, "event: intersecting variable %q", v.Name)
		}

		entries[v.Name] = seEntry{variable: v, atom: inter}
	}

	return &SimpleEvent{entries: entries}, nil
}

// Complement implements the linear-term product complement: for an
// n-variable SimpleEvent it produces at most n candidate SimpleEvents
// instead of the naive 2^n - 1 expansion of De Morgan's law.
//
// For each variable v_i in sorted order, the i-th candidate holds every
// earlier variable v_0..v_{i-1} at its original atom, complements v_i,
// and leaves every later variable unconstrained (full domain). A
// candidate whose complemented atom is empty is dropped, since an empty
// factor makes the whole product empty.
func (e *SimpleEvent) Complement() (*Event, error) {
	vars := e.Variables()
	if len(vars) == 0 {
		// The complement of the one unconstrained SimpleEvent (the whole
		// space) is the empty event.
		return &Event{simples: nil}, nil
	}

	simples := make([]*SimpleEvent, 0, len(vars))

	for i, v := range vars {
		complementAtom, err := e.entries[v.Name].atom.Complement()
		if err != nil {
			return nil, errors.Wrapf(err, "event: complementing variable %q", v.Name)
		}

		if complementAtom.IsEmpty() {
			continue
		}

		entries := make(map[string]seEntry, i+1)
		for _, earlier := range vars[:i] {
			entries[earlier.Name] = e.entries[earlier.Name]
		}

		entries[v.Name] = seEntry{variable: v, atom: complementAtom}

		simples = append(simples, &SimpleEvent{entries: entries})
	}

	return &Event{simples: simples}, nil
}

// DifferenceWith returns e minus other, computed as the intersection of
// e with the complement of other.
func (e *SimpleEvent) DifferenceWith(other *SimpleEvent) (*Event, error) {
	otherComplement, err := other.Complement()
	if err != nil {
		return nil, errors.Wrap(err, "event: complementing subtrahend")
	}

	return intersectSimpleWithEvent(e, otherComplement)
}

// intersectSimpleWithEvent intersects a SimpleEvent against every
// simple of an Event, collecting the non-empty results.
func intersectSimpleWithEvent(e *SimpleEvent, other *Event) (*Event, error) {
	simples := make([]*SimpleEvent, 0, len(other.simples))

	for _, s := range other.simples {
		inter, err := e.IntersectionWith(s)
		if err != nil {
			return nil, err
		}

		if !inter.IsEmpty() {
			simples = append(simples, inter)
		}
	}

	return &Event{simples: simples}, nil
}

// ContainsPoint reports whether point — keyed by variable.Variable.Name
// — lies in every constrained atom of e. A variable absent from point
// is treated as satisfying its (implicit or explicit) domain, matching
// the convention that an unconstrained variable admits any value.
func (e *SimpleEvent) ContainsPoint(point map[string]any) bool {
	for name, entry := range e.entries {
		val, ok := point[name]
		if !ok {
			continue
		}

		if !entry.atom.Contains(val) {
			return false
		}
	}

	return true
}

// equalAligned reports whether e and other denote the same assignment
// once both are aligned over the union of their variables.
func (e *SimpleEvent) equalAligned(other *SimpleEvent) bool {
	vars, aAtoms, bAtoms := align(e, other)
	for _, v := range vars {
		if !aAtoms[v.Name].Equal(bAtoms[v.Name]) {
			return false
		}
	}

	return true
}

// sortKey builds a deterministic string key used to total-order
// SimpleEvents within an Event's canonical form. It depends only on
// variable names (sorted) and each atom's own Hash, so two
// independently constructed but structurally equal SimpleEvents
// produce identical keys regardless of map iteration order.
func (e *SimpleEvent) sortKey(vars []*variable.Variable) string {
	key := make([]byte, 0, 32*len(vars))
	for _, v := range vars {
		key = fmt.Appendf(key, "%s=%016x;", v.Name, e.Atom(v).Hash())
	}

	return string(key)
}
