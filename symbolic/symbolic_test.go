package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/symbolic"
)

func universe(t *testing.T) *symbolic.Universe {
	t.Helper()

	return symbolic.NewUniverse("APPLE", "DOG", "RAIN")
}

func setOf(t *testing.T, u *symbolic.Universe, symbols ...string) *symbolic.Set {
	t.Helper()
	elems := make([]symbolic.Element, len(symbols))
	for i, s := range symbols {
		elems[i] = symbolic.NewElement(u, s)
	}
	set, err := symbolic.NewSet(u, elems...)
	require.NoError(t, err)

	return set
}

// TestS4_SymbolicUnionAndComplement implements spec.md scenario S4.
func TestS4_SymbolicUnionAndComplement(t *testing.T) {
	u := universe(t)
	apple := setOf(t, u, "APPLE")
	dog := setOf(t, u, "DOG")

	union, err := apple.UnionWith(dog)
	require.NoError(t, err)
	require.True(t, union.Equal(setOf(t, u, "APPLE", "DOG")))

	comp, err := apple.Complement()
	require.NoError(t, err)
	require.True(t, comp.Equal(setOf(t, u, "DOG", "RAIN")))
}

func TestUniverseMismatch(t *testing.T) {
	u1 := symbolic.NewUniverse("A", "B")
	u2 := symbolic.NewUniverse("X", "Y", "Z")
	a := setOf(t, u1, "A")
	b := setOf(t, u2, "X")

	_, err := a.UnionWith(b)
	require.ErrorIs(t, err, sets.ErrUniverseMismatch)
}

func TestEmptyUniverseComplement(t *testing.T) {
	u := symbolic.NewUniverse()
	empty := symbolic.EmptySet(u)
	_, err := empty.Complement()
	require.ErrorIs(t, err, sets.ErrEmptyUniverse)
}

func TestIdempotenceAndCommutativity(t *testing.T) {
	u := universe(t)
	a := setOf(t, u, "APPLE", "DOG")
	b := setOf(t, u, "DOG", "RAIN")

	union, _ := a.UnionWith(a)
	require.True(t, union.Equal(a))
	inter, _ := a.IntersectionWith(a)
	require.True(t, inter.Equal(a))

	ab, _ := a.UnionWith(b)
	ba, _ := b.UnionWith(a)
	require.True(t, ab.Equal(ba))
}

func TestDoubleComplement(t *testing.T) {
	u := universe(t)
	a := setOf(t, u, "APPLE")
	c1, err := a.Complement()
	require.NoError(t, err)
	c2, err := c1.Complement()
	require.NoError(t, err)
	require.True(t, c2.Equal(a))
}

func TestDeMorgan(t *testing.T) {
	u := universe(t)
	a := setOf(t, u, "APPLE")
	b := setOf(t, u, "DOG")

	unionAB, _ := a.UnionWith(b)
	lhs, err := unionAB.Complement()
	require.NoError(t, err)

	ca, _ := a.Complement()
	cb, _ := b.Complement()
	rhs, _ := ca.IntersectionWith(cb)

	require.True(t, lhs.Equal(rhs))
}

func TestContainmentMonotonicity(t *testing.T) {
	u := universe(t)
	a := setOf(t, u, "APPLE")
	b := setOf(t, u, "APPLE", "DOG")

	sub, err := b.ContainsComposite(a)
	require.NoError(t, err)
	require.True(t, sub)

	inter, _ := a.IntersectionWith(b)
	require.True(t, inter.Equal(a))

	union, _ := a.UnionWith(b)
	require.True(t, union.Equal(b))
}

func TestPointInclusion(t *testing.T) {
	u := universe(t)
	a := setOf(t, u, "APPLE")
	require.True(t, a.Contains("APPLE"))
	require.False(t, a.Contains("DOG"))
	require.False(t, a.Contains("unknown-symbol"))
}
