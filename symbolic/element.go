package symbolic

import "github.com/tomsch420/random-events/sets"

// emptyIndex is the reserved index denoting the empty symbolic atom.
const emptyIndex = -1

// Element is a single symbol atom: an index into a shared Universe.
type Element struct {
	Index    int
	Universe *Universe
}

// NewElement builds the Element for symbol within universe. If symbol is
// not present in universe, returns the empty Element for that universe.
func NewElement(universe *Universe, symbol string) Element {
	idx, ok := universe.IndexOf(symbol)
	if !ok {
		return EmptyElement(universe)
	}

	return Element{Index: idx, Universe: universe}
}

// EmptyElement returns the canonical empty atom for universe.
func EmptyElement(universe *Universe) Element {
	return Element{Index: emptyIndex, Universe: universe}
}

// IsEmpty reports whether the receiver is the empty atom.
func (e Element) IsEmpty() bool { return e.Index == emptyIndex }

// Symbol returns the symbol this element denotes, or "" if empty.
func (e Element) Symbol() string { return e.Universe.Symbol(e.Index) }

// IntersectionWith returns e if both atoms denote the same index,
// otherwise the empty atom. Callers (symbolic.Set) are responsible for
// rejecting cross-universe operations before reaching this method — see
// sets.ErrUniverseMismatch.
func (e Element) IntersectionWith(other sets.SimpleSet) sets.SimpleSet {
	o := other.(Element)
	if e.IsEmpty() || o.IsEmpty() || e.Index != o.Index {
		return EmptyElement(e.Universe)
	}

	return e
}

// Complement returns one atom per other index of the universe:
// |Universe|-1 atoms for a non-empty element, and every index of the
// universe for the empty element.
func (e Element) Complement() []sets.SimpleSet {
	n := e.Universe.Len()
	out := make([]sets.SimpleSet, 0, n)
	for i := 0; i < n; i++ {
		if !e.IsEmpty() && i == e.Index {
			continue
		}
		out = append(out, Element{Index: i, Universe: e.Universe})
	}

	return out
}

// Contains reports whether point (a symbol string) denotes this element.
func (e Element) Contains(point any) bool {
	symbol, ok := point.(string)
	if !ok || e.IsEmpty() {
		return false
	}
	idx, ok := e.Universe.IndexOf(symbol)

	return ok && idx == e.Index
}

// Less orders elements by Index.
func (e Element) Less(other sets.SimpleSet) bool {
	o := other.(Element)

	return e.Index < o.Index
}

// Equal reports whether two elements denote the same index of equal
// universes.
func (e Element) Equal(other sets.SimpleSet) bool {
	o, ok := other.(Element)
	if !ok {
		return false
	}
	if e.IsEmpty() && o.IsEmpty() {
		return true
	}

	return e.Index == o.Index && e.Universe.Equal(o.Universe)
}
