package sets

// UnionAtoms concatenates two atom slices, disjointifies, and simplifies.
// Grounded on spec §4.1: "concatenate simples, re-disjoint, simplify."
func UnionAtoms(a, b []SimpleSet) []SimpleSet {
	combined := make([]SimpleSet, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)

	return Simplify(MakeDisjoint(combined))
}

// IntersectionAtoms pairwise-intersects every atom of a with every atom
// of b, discards empties, and simplifies. No disjointification pass is
// needed: since a's atoms are pairwise disjoint and b's atoms are
// pairwise disjoint, the cross intersections a_i∩b_j are automatically
// pairwise disjoint from one another.
func IntersectionAtoms(a, b []SimpleSet) []SimpleSet {
	out := make([]SimpleSet, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			inter := x.IntersectionWith(y)
			if !inter.IsEmpty() {
				out = append(out, inter)
			}
		}
	}

	return Simplify(SortSimples(out))
}

// DifferenceAtoms subtracts, in turn, every atom of b from every atom of
// a, and unions the surviving pieces.
func DifferenceAtoms(a, b []SimpleSet) []SimpleSet {
	var survivors []SimpleSet
	for _, x := range a {
		cur := []SimpleSet{x}
		for _, y := range b {
			if len(cur) == 0 {
				break
			}
			var next []SimpleSet
			for _, p := range cur {
				next = append(next, DifferenceOne(p, y)...)
			}
			cur = next
		}
		survivors = append(survivors, cur...)
	}

	return Simplify(SortSimples(survivors))
}

// ComplementAtoms computes the complement of atoms within the ambient
// space described by ambient (e.g. the single atom (-Inf,+Inf) for
// intervals, or every index of the universe for symbolic sets).
// Implements spec §4.1: start with ambient, and for each atom of the
// receiver, intersect the accumulator with that atom's complement.
func ComplementAtoms(ambient []SimpleSet, atoms []SimpleSet) []SimpleSet {
	acc := ambient
	for _, s := range atoms {
		acc = IntersectionAtoms(acc, s.Complement())
		if len(acc) == 0 {
			break
		}
	}

	return acc
}
