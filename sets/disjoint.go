package sets

// DifferenceOne subtracts b from a generically: it intersects a with each
// atom of b's complement and keeps the non-empty results. This is the one
// place in the abstract algebra that needs no knowledge of the concrete
// atom type — every SimpleSet already knows how to intersect and
// complement itself.
func DifferenceOne(a, b SimpleSet) []SimpleSet {
	complement := b.Complement()
	out := make([]SimpleSet, 0, len(complement))
	for _, c := range complement {
		inter := a.IntersectionWith(c)
		if !inter.IsEmpty() {
			out = append(out, inter)
		}
	}

	return out
}

// MakeDisjoint turns a, possibly overlapping, slice of atoms into an
// equal, pairwise-disjoint, sorted slice.
//
// Algorithm (spec §4.1.1): repeatedly split the working set into a part
// that is already disjoint from everything else (A) and a part of
// pairwise overlaps (B), until B is empty. B keeps each distinct overlap
// once, so from the second pass on every element of B lies strictly
// inside an atom of the pass before; as all of them are intersections of
// the finitely many input atoms, the loop terminates.
func MakeDisjoint(atoms []SimpleSet) []SimpleSet {
	var disjoint []SimpleSet
	current := atoms
	for len(current) > 0 {
		a, b := split(current)
		disjoint = append(disjoint, a...)
		current = b
	}

	return SortSimples(disjoint)
}

// split implements one pass of the make_disjoint fixed point: A collects,
// for every atom, the part not covered by any other atom in the pass; B
// collects pairwise intersections with later atoms only, so overlaps
// aren't counted twice in the same pass, and drops repeats of an
// intersection already in B.
func split(atoms []SimpleSet) (a, b []SimpleSet) {
	n := len(atoms)
	for i := 0; i < n; i++ {
		pieces := []SimpleSet{atoms[i]}
		for j := 0; j < n && len(pieces) > 0; j++ {
			if j == i {
				continue
			}
			var next []SimpleSet
			for _, p := range pieces {
				next = append(next, DifferenceOne(p, atoms[j])...)
			}
			pieces = next
		}
		for _, p := range pieces {
			if !p.IsEmpty() {
				a = append(a, p)
			}
		}

		for j := i + 1; j < n; j++ {
			inter := atoms[i].IntersectionWith(atoms[j])
			if inter.IsEmpty() {
				continue
			}
			dup := false
			for _, seen := range b {
				if seen.Equal(inter) {
					dup = true
					break
				}
			}
			if !dup {
				b = append(b, inter)
			}
		}
	}

	return a, b
}
