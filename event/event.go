package event

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/variable"
)

// Event is a finite, sorted, pairwise-disjoint union of SimpleEvents —
// the product-algebra analogue of sets.CompositeSet. NewEvent is the
// only exported constructor; every operation on an Event returns
// another canonicalized Event.
type Event struct {
	simples []*SimpleEvent
}

// NewEvent builds a disjointified, canonicalized Event from an
// arbitrary (possibly overlapping) slice of SimpleEvents.
func NewEvent(simples []*SimpleEvent) (*Event, error) {
	disjoint, err := makeDisjointSimpleEvents(simples)
	if err != nil {
		return nil, errors.Wrap(err, "event: disjointifying simples")
	}

	return canonicalize(&Event{simples: disjoint}), nil
}

// Simples returns the Event's SimpleEvents in canonical order. Callers
// must not mutate the returned slice.
func (e *Event) Simples() []*SimpleEvent { return e.simples }

// IsEmpty reports whether the event has no non-empty simples.
func (e *Event) IsEmpty() bool { return len(e.simples) == 0 }

// allVariables returns the sorted union of every variable named by any
// simple in e.
func (e *Event) allVariables() []*variable.Variable {
	seen := make(map[string]*variable.Variable)
	for _, s := range e.simples {
		for _, v := range s.Variables() {
			seen[v.Name] = v
		}
	}

	out := make([]*variable.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// unionVars returns the sorted union of a's and b's variable sets.
func unionVars(a, b []*variable.Variable) []*variable.Variable {
	seen := make(map[string]*variable.Variable, len(a)+len(b))
	for _, v := range append(append([]*variable.Variable{}, a...), b...) {
		seen[v.Name] = v
	}

	out := make([]*variable.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// canonicalize sorts e's simples into the deterministic order used by
// Equal, keyed over the full variable set e references. Assumes simples
// are already pairwise disjoint.
func canonicalize(e *Event) *Event {
	vars := e.allVariables()

	sort.Slice(e.simples, func(i, j int) bool {
		return e.simples[i].sortKey(vars) < e.simples[j].sortKey(vars)
	})

	return e
}

// makeDisjointSimpleEvents is the product-layer analogue of
// sets.MakeDisjoint: it repeatedly finds an overlapping pair and splits
// it into disjoint pieces via differenceOneSimpleEvent, fixing point
// when no pair overlaps.
func makeDisjointSimpleEvents(simples []*SimpleEvent) ([]*SimpleEvent, error) {
	current := make([]*SimpleEvent, 0, len(simples))

	for _, s := range simples {
		if !s.IsEmpty() {
			current = append(current, s)
		}
	}

	for {
		next, changed, err := splitSimpleEvents(current)
		if err != nil {
			return nil, err
		}

		if !changed {
			return next, nil
		}

		current = next
	}
}

// splitSimpleEvents scans for the first overlapping pair in current and
// replaces it with a's difference from b plus b itself, reporting
// whether a split happened.
func splitSimpleEvents(current []*SimpleEvent) ([]*SimpleEvent, bool, error) {
	for i := 0; i < len(current); i++ {
		for j := 0; j < len(current); j++ {
			if i == j {
				continue
			}

			overlap, err := differenceOneSimpleEvent(current[i], current[j])
			if err != nil {
				return nil, false, err
			}

			if overlap == nil {
				continue
			}

			next := make([]*SimpleEvent, 0, len(current)+len(overlap.simples)-1)
			for k, s := range current {
				if k != i {
					next = append(next, s)
				}
			}

			for _, s := range overlap.simples {
				if !s.IsEmpty() {
					next = append(next, s)
				}
			}

			return next, true, nil
		}
	}

	return current, false, nil
}

// differenceOneSimpleEvent returns a minus b if the two intersect (an
// event with no simples when b covers all of a), or nil if a and b
// don't overlap at all.
func differenceOneSimpleEvent(a, b *SimpleEvent) (*Event, error) {
	inter, err := a.IntersectionWith(b)
	if err != nil {
		return nil, err
	}

	if inter.IsEmpty() {
		return nil, nil
	}

	return a.DifferenceWith(b)
}

// UnionWith returns the union of e and other.
func (e *Event) UnionWith(other *Event) (*Event, error) {
	combined := make([]*SimpleEvent, 0, len(e.simples)+len(other.simples))
	combined = append(combined, e.simples...)
	combined = append(combined, other.simples...)

	return NewEvent(combined)
}

// IntersectionWith returns the pointwise intersection of every pair of
// simples drawn from e and other, dropping empty results.
func (e *Event) IntersectionWith(other *Event) (*Event, error) {
	simples := make([]*SimpleEvent, 0, len(e.simples)*len(other.simples))

	for _, a := range e.simples {
		for _, b := range other.simples {
			inter, err := a.IntersectionWith(b)
			if err != nil {
				return nil, errors.Wrap(err, "event: intersecting events")
			}

			if !inter.IsEmpty() {
				simples = append(simples, inter)
			}
		}
	}

	return NewEvent(simples)
}

// Complement returns the complement of e, computed as the intersection
// of the complements of every simple (De Morgan's law applied once per
// simple, each using the linear per-variable construction).
func (e *Event) Complement() (*Event, error) {
	if len(e.simples) == 0 {
		// The complement of the empty event (∅) is the whole ambient
		// space (⊤): the vacuous intersection of zero complements, same
		// convention as sets.ComplementAtoms starting its accumulator at
		// the ambient set rather than at empty.
		return NewEvent([]*SimpleEvent{{entries: map[string]seEntry{}}})
	}

	result, err := e.simples[0].Complement()
	if err != nil {
		return nil, errors.Wrap(err, "event: complementing first simple")
	}

	for _, s := range e.simples[1:] {
		next, err := s.Complement()
		if err != nil {
			return nil, errors.Wrap(err, "event: complementing simple")
		}

		result, err = result.IntersectionWith(next)
		if err != nil {
			return nil, errors.Wrap(err, "event: intersecting complements")
		}
	}

	return result, nil
}

// DifferenceWith returns e minus other.
func (e *Event) DifferenceWith(other *Event) (*Event, error) {
	complement, err := other.Complement()
	if err != nil {
		return nil, errors.Wrap(err, "event: complementing subtrahend")
	}

	return e.IntersectionWith(complement)
}

// Equal reports canonical equality: aligned over the union of their
// variables, both events hold the same simples. Two events that cover the
// same points but split them into different simples compare unequal.
func (e *Event) Equal(other *Event) bool {
	if len(e.simples) != len(other.simples) {
		return false
	}

	vars := unionVars(e.allVariables(), other.allVariables())

	aKeys := make([]string, len(e.simples))
	for i, s := range e.simples {
		aKeys[i] = s.sortKey(vars)
	}

	bKeys := make([]string, len(other.simples))
	for i, s := range other.simples {
		bKeys[i] = s.sortKey(vars)
	}

	sort.Strings(aKeys)
	sort.Strings(bKeys)

	for i := range aKeys {
		if aKeys[i] != bKeys[i] {
			return false
		}
	}

	return true
}

// IsDisjoint reports whether e's simples are pairwise disjoint. True
// for every Event returned by a constructor or operator in this
// package; exposed for property-based tests.
func (e *Event) IsDisjoint() bool {
	for i := 0; i < len(e.simples); i++ {
		for j := i + 1; j < len(e.simples); j++ {
			inter, err := e.simples[i].IntersectionWith(e.simples[j])
			if err != nil || !inter.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Contains reports whether point lies in e, and if so the index of the
// first simple that contains it.
func (e *Event) Contains(point map[string]any) (bool, int) {
	for i, s := range e.simples {
		if s.ContainsPoint(point) {
			return true, i
		}
	}

	return false, -1
}

// ContainsComposite reports whether every point of other is contained
// in e, computed as: other minus e is empty.
func (e *Event) ContainsComposite(other *Event) (bool, error) {
	diff, err := other.DifferenceWith(e)
	if err != nil {
		return false, err
	}

	return diff.IsEmpty(), nil
}
