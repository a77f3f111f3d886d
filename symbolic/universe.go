package symbolic

// Universe is the fixed, ordered set of symbols a family of Elements and
// Sets is drawn from. Universes are immutable after construction and
// cheap to share by pointer between Variables.
type Universe struct {
	symbols []string
	index   map[string]int
}

// NewUniverse builds a Universe from an ordered list of distinct
// symbols. Order is preserved and defines Element.Index.
func NewUniverse(symbols ...string) *Universe {
	cp := append([]string(nil), symbols...)
	idx := make(map[string]int, len(cp))
	for i, s := range cp {
		idx[s] = i
	}

	return &Universe{symbols: cp, index: idx}
}

// Len returns the number of symbols in the universe.
func (u *Universe) Len() int { return len(u.symbols) }

// Symbol returns the symbol at i, or "" if i is out of range.
func (u *Universe) Symbol(i int) string {
	if i < 0 || i >= len(u.symbols) {
		return ""
	}

	return u.symbols[i]
}

// IndexOf returns the index of symbol within the universe and true, or
// (-1, false) if symbol is not present.
func (u *Universe) IndexOf(symbol string) (int, bool) {
	i, ok := u.index[symbol]
	if !ok {
		return -1, false
	}

	return i, true
}

// Equal reports whether two universes enumerate the same symbols in the
// same order. Two independently-constructed universes describing the
// same domain (e.g. after deserialization) compare equal, not just
// pointer-identical ones.
func (u *Universe) Equal(other *Universe) bool {
	if u == other {
		return true
	}
	if u == nil || other == nil {
		return false
	}
	if len(u.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range u.symbols {
		if other.symbols[i] != s {
			return false
		}
	}

	return true
}

// Symbols returns a defensive copy of the universe's ordered symbols.
func (u *Universe) Symbols() []string {
	return append([]string(nil), u.symbols...)
}
