package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomsch420/random-events/event"
	"github.com/tomsch420/random-events/interval"
	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/symbolic"
	"github.com/tomsch420/random-events/variable"
)

func TestIntervalSetRoundTrip(t *testing.T) {
	original := interval.NewSet(interval.ClosedInterval(0, 1), interval.OpenInterval(2, 3))

	data, err := IntervalSetToJSON(original)
	require.NoError(t, err)

	restored, err := IntervalSetFromJSON(data)
	require.NoError(t, err)
	assert.True(t, original.Equal(restored))
}

func TestSymbolicSetRoundTrip(t *testing.T) {
	universe := symbolic.NewUniverse("red", "green", "blue")
	original, err := symbolic.NewSet(universe, symbolic.NewElement(universe, "red"), symbolic.NewElement(universe, "blue"))
	require.NoError(t, err)

	data, err := SymbolicSetToJSON(original)
	require.NoError(t, err)

	restored, _, err := SymbolicSetFromJSON(data)
	require.NoError(t, err)
	assert.True(t, original.Equal(restored))
}

func TestVariableRoundTrip(t *testing.T) {
	v := variable.Continuous("x", variable.WithDomain(interval.NewSet(interval.ClosedInterval(0, 10))))

	data, err := VariableToJSON(v)
	require.NoError(t, err)

	restored, err := VariableFromJSON(data)
	require.NoError(t, err)
	assert.True(t, v.Equal(restored))
	assert.True(t, v.Domain.Equal(restored.Domain))
	assert.Equal(t, v.Kind, restored.Kind)
}

func TestEventRoundTrip(t *testing.T) {
	x := variable.Continuous("x")
	y := variable.Continuous("y")

	se1, err := event.NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{
		x: interval.NewSet(interval.ClosedInterval(0, 1)),
		y: interval.NewSet(interval.ClosedInterval(0, 1)),
	})
	require.NoError(t, err)

	se2, err := event.NewSimpleEvent(map[*variable.Variable]sets.CompositeSet{
		x: interval.NewSet(interval.ClosedInterval(5, 6)),
		y: interval.NewSet(interval.ClosedInterval(5, 6)),
	})
	require.NoError(t, err)

	original, err := event.NewEvent([]*event.SimpleEvent{se1, se2})
	require.NoError(t, err)

	data, err := EventToJSON(original)
	require.NoError(t, err)

	restored, err := EventFromJSON(data)
	require.NoError(t, err)
	assert.True(t, original.Equal(restored))
}
