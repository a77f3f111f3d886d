package sets

import "sort"

// SortSimples sorts atoms by their Less order in place and returns the
// same slice for chaining.
func SortSimples(atoms []SimpleSet) []SimpleSet {
	sort.SliceStable(atoms, func(i, j int) bool {
		return atoms[i].Less(atoms[j])
	})

	return atoms
}

// Simplify walks a sorted, pairwise-disjoint slice of atoms and merges
// any two consecutive atoms whose union is itself a single atom. Atom
// types that never merge (they don't implement Adjoiner) pass through
// unchanged — a sorted slice of such atoms is already simplified, as is
// the case for symbolic.Element.
func Simplify(atoms []SimpleSet) []SimpleSet {
	if len(atoms) == 0 {
		return atoms
	}

	out := make([]SimpleSet, 0, len(atoms))
	cur := atoms[0]
	for _, next := range atoms[1:] {
		if adjoiner, ok := cur.(Adjoiner); ok {
			if merged, did := adjoiner.Adjoin(next); did {
				cur = merged
				continue
			}
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)

	return out
}
