package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomsch420/random-events/interval"
	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/symbolic"
	"github.com/tomsch420/random-events/variable"
)

func xy() (x, y *variable.Variable) {
	return variable.Continuous("x"), variable.Continuous("y")
}

func simpleEventXY(t *testing.T, x, y *variable.Variable, xSet, ySet *interval.Set) *SimpleEvent {
	t.Helper()

	se, err := NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{x: xSet, y: ySet})
	require.NoError(t, err)

	return se
}

// TestProductIntersection covers scenario S5: SE1 ∩ SE2 == SE1 when SE2
// is a superset box.
func TestProductIntersection(t *testing.T) {
	x, y := xy()

	se1 := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(2, 3)))

	se2 := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 4)),
		interval.NewSet(interval.ClosedInterval(0, 5)))

	inter, err := se1.IntersectionWith(se2)
	require.NoError(t, err)
	assert.True(t, inter.equalAligned(se1))
}

// TestProductComplementLinear covers scenario S6: the complement of the
// unit square {x:[0,1], y:[0,1]} has exactly 2 simples, their union is
// R^2 minus the square, and they are pairwise disjoint.
func TestProductComplementLinear(t *testing.T) {
	x, y := xy()

	unitSquare := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(0, 1)))

	complement, err := unitSquare.Complement()
	require.NoError(t, err)
	require.Len(t, complement.Simples(), 2)
	assert.True(t, complement.IsDisjoint())

	// Neither complement simple nor the original square overlap.
	for _, s := range complement.Simples() {
		inter, err := s.IntersectionWith(unitSquare)
		require.NoError(t, err)
		assert.True(t, inter.IsEmpty())
	}

	// The union of the original square and its complement covers every
	// sample point we check, including points outside both x and y
	// bounds and points on the square's boundary.
	points := []map[string]any{
		{"x": 0.5, "y": 0.5},
		{"x": -1.0, "y": 0.5},
		{"x": 0.5, "y": 2.0},
		{"x": -5.0, "y": 5.0},
		{"x": 1.0, "y": 1.0},
	}

	for _, p := range points {
		inSquare := unitSquare.ContainsPoint(p)
		inComplement, _ := complement.Contains(p)
		assert.NotEqualf(t, inSquare, inComplement, "point %v must be in exactly one of square/complement", p)
	}
}

func TestSimpleEventDomainEscape(t *testing.T) {
	x := variable.Continuous("x", variable.WithDomain(interval.NewSet(interval.ClosedInterval(0, 10))))

	_, err := NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{
		x: interval.NewSet(interval.ClosedInterval(5, 20)),
	})
	require.ErrorIs(t, err, sets.ErrDomainEscape)

	clipped, err := NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{
		x: interval.NewSet(interval.ClosedInterval(5, 20)),
	}, WithClipping())
	require.NoError(t, err)
	assert.True(t, clipped.Atom(x).Equal(interval.NewSet(interval.ClosedInterval(5, 10))))
}

// TestCrossKindCompositeTypeMismatch is the concrete cross-kind case
// interval_test.go leaves to this package: no single
// CompositeSet implementation in interval can mismatch against another
// of a different kind, so the check is exercised here between
// interval.Set and symbolic.Set.
func TestCrossKindCompositeTypeMismatch(t *testing.T) {
	intervalSet := interval.NewSet(interval.ClosedInterval(0, 1))

	universe := symbolic.NewUniverse("a", "b")
	symbolicSet, err := symbolic.NewSet(universe)
	require.NoError(t, err)

	_, err = intervalSet.UnionWith(symbolicSet)
	require.ErrorIs(t, err, sets.ErrTypeMismatch)

	_, err = symbolicSet.IntersectionWith(intervalSet)
	require.ErrorIs(t, err, sets.ErrTypeMismatch)
}

func TestSimpleEventTypeMismatch(t *testing.T) {
	x := variable.Continuous("x")

	u := symbolic.NewUniverse("a", "b")
	wrongKind, err := symbolic.NewSet(u)
	require.NoError(t, err)

	_, err = NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{x: wrongKind})
	require.ErrorIs(t, err, sets.ErrTypeMismatch)
}

// TestEventUnionDisjointifies checks that NewEvent disjointifies two
// overlapping SimpleEvents into a pairwise-disjoint canonical form.
func TestEventUnionDisjointifies(t *testing.T) {
	x, y := xy()

	a := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 2)),
		interval.NewSet(interval.ClosedInterval(0, 2)))

	b := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(1, 3)),
		interval.NewSet(interval.ClosedInterval(1, 3)))

	ev, err := NewEvent([]*SimpleEvent{a, b})
	require.NoError(t, err)
	assert.True(t, ev.IsDisjoint())

	contained, inIdx := ev.Contains(map[string]any{"x": 2.5, "y": 2.5})
	assert.True(t, contained)
	assert.GreaterOrEqual(t, inIdx, 0)
}

func TestEventDeMorgan(t *testing.T) {
	x, y := xy()

	a := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(0, 1)))

	b := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(2, 3)),
		interval.NewSet(interval.ClosedInterval(2, 3)))

	union, err := NewEvent([]*SimpleEvent{a, b})
	require.NoError(t, err)

	unionComplement, err := union.Complement()
	require.NoError(t, err)

	aComplement, err := a.Complement()
	require.NoError(t, err)
	bComplement, err := b.Complement()
	require.NoError(t, err)

	intersectionOfComplements, err := aComplement.IntersectionWith(bComplement)
	require.NoError(t, err)

	assert.True(t, unionComplement.Equal(intersectionOfComplements))
}

func TestEventDoubleComplement(t *testing.T) {
	x, y := xy()

	a := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(0, 1)))

	ev, err := NewEvent([]*SimpleEvent{a})
	require.NoError(t, err)

	once, err := ev.Complement()
	require.NoError(t, err)
	twice, err := once.Complement()
	require.NoError(t, err)

	assert.True(t, ev.Equal(twice))
}

func TestEventContainsComposite(t *testing.T) {
	x, y := xy()

	small := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(0, 1)))

	big := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(-5, 5)),
		interval.NewSet(interval.ClosedInterval(-5, 5)))

	smallEv, err := NewEvent([]*SimpleEvent{small})
	require.NoError(t, err)
	bigEv, err := NewEvent([]*SimpleEvent{big})
	require.NoError(t, err)

	contained, err := bigEv.ContainsComposite(smallEv)
	require.NoError(t, err)
	assert.True(t, contained)

	contained, err = smallEv.ContainsComposite(bigEv)
	require.NoError(t, err)
	assert.False(t, contained)
}

func TestEventEmptyHasNoVariablesOrSimples(t *testing.T) {
	ev, err := NewEvent(nil)
	require.NoError(t, err)
	assert.True(t, ev.IsEmpty())
	assert.Empty(t, ev.Simples())
}

func TestSimpleEventUnconstrainedComplementIsEmpty(t *testing.T) {
	se, err := NewSimpleEvent(nil)
	require.NoError(t, err)

	complement, err := se.Complement()
	require.NoError(t, err)
	assert.True(t, complement.IsEmpty())
}

// TestEmptyEventComplementIsUniversal guards against collapsing the
// vacuous intersection of zero complements to empty: Complement(∅) must
// be the ambient universal event (⊤), not ∅ again, mirroring how
// sets.ComplementAtoms seeds its accumulator at the ambient set rather
// than at empty.
func TestEmptyEventComplementIsUniversal(t *testing.T) {
	empty, err := NewEvent(nil)
	require.NoError(t, err)

	universal, err := empty.Complement()
	require.NoError(t, err)
	require.False(t, universal.IsEmpty())
	require.Len(t, universal.Simples(), 1)
	assert.Empty(t, universal.Simples()[0].Variables())

	x, y := xy()
	a := simpleEventXY(t, x, y,
		interval.NewSet(interval.ClosedInterval(0, 1)),
		interval.NewSet(interval.ClosedInterval(0, 1)))
	aEv, err := NewEvent([]*SimpleEvent{a})
	require.NoError(t, err)

	// A minus the empty event must be A unchanged, which fails if
	// Complement(∅) wrongly yields ∅ instead of ⊤.
	diff, err := aEv.DifferenceWith(empty)
	require.NoError(t, err)
	assert.True(t, diff.Equal(aEv))

	// The empty event must not be reported as containing anything
	// (containment monotonicity, spec.md §8.8).
	contained, err := empty.ContainsComposite(aEv)
	require.NoError(t, err)
	assert.False(t, contained)
}
