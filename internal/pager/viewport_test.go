package pager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/csvpeek/internal/source"
)

func rowSource(t *testing.T, n int) *source.Source {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("value\n")
	}
	return source.New(strings.NewReader(b.String()), ',')
}

func TestUpAtTopIsRejected(t *testing.T) {
	m := NewMachine(rowSource(t, 100), 20, 1, 10)

	assert.False(t, m.Apply(EventUp), "up at top row 0 must be a no-op")
	assert.Equal(t, 0, m.Viewport().Top)
	assert.False(t, m.Apply(EventPageUp))
	assert.False(t, m.Apply(EventHalfUp))
	assert.False(t, m.Apply(EventHome), "home at top changes nothing")
}

func TestEndThenHome(t *testing.T) {
	m := NewMachine(rowSource(t, 100), 20, 1, 10)

	require.True(t, m.Apply(EventEnd))
	assert.Equal(t, 80, m.Viewport().Top)
	assert.Equal(t, StateExhausted, m.State(), "go-to-end forces exhaustion")
	assert.Equal(t, 100, m.Viewport().Total)

	require.True(t, m.Apply(EventHome))
	assert.Equal(t, 0, m.Viewport().Top)
}

func TestDownClampedAtEnd(t *testing.T) {
	m := NewMachine(rowSource(t, 100), 20, 1, 10)

	require.True(t, m.Apply(EventEnd))
	require.Equal(t, 80, m.Viewport().Top)

	assert.False(t, m.Apply(EventDown), "down at the end is clamped, not 81")
	assert.Equal(t, 80, m.Viewport().Top)
}

func TestScrollSteps(t *testing.T) {
	m := NewMachine(rowSource(t, 1000), 20, 1, 10)

	require.True(t, m.Apply(EventDown))
	assert.Equal(t, 1, m.Viewport().Top)

	require.True(t, m.Apply(EventMultiDown))
	assert.Equal(t, 11, m.Viewport().Top)

	require.True(t, m.Apply(EventPageDown))
	assert.Equal(t, 31, m.Viewport().Top)

	require.True(t, m.Apply(EventHalfDown))
	assert.Equal(t, 41, m.Viewport().Top)

	require.True(t, m.Apply(EventHalfUp))
	assert.Equal(t, 31, m.Viewport().Top)

	require.True(t, m.Apply(EventPageUp))
	assert.Equal(t, 11, m.Viewport().Top)

	require.True(t, m.Apply(EventMultiUp))
	assert.Equal(t, 1, m.Viewport().Top)

	require.True(t, m.Apply(EventUp))
	assert.Equal(t, 0, m.Viewport().Top)
}

func TestScrollingPullsRowsAtFrontier(t *testing.T) {
	src := rowSource(t, 1000)
	m := NewMachine(src, 20, 1, 10)

	known := src.KnownRowCount()
	assert.Less(t, known, 1000, "only the first window is loaded eagerly")

	// Scrolling toward the frontier reads ahead instead of refusing.
	require.True(t, m.Apply(EventPageDown))
	assert.GreaterOrEqual(t, src.KnownRowCount(), 40)
	assert.Equal(t, 20, m.Viewport().Top)
}

func TestLoadingToExhausted(t *testing.T) {
	m := NewMachine(rowSource(t, 30), 20, 1, 10)
	assert.Equal(t, StateReady, m.State())

	// Scrolling past the true end discovers exhaustion and clamps.
	require.True(t, m.Apply(EventPageDown))
	assert.Equal(t, StateExhausted, m.State())
	assert.Equal(t, 10, m.Viewport().Top)
	assert.Equal(t, 30, m.Viewport().Total)
}

func TestSmallFileFitsViewport(t *testing.T) {
	m := NewMachine(rowSource(t, 5), 20, 1, 10)

	assert.Equal(t, StateExhausted, m.State())
	assert.False(t, m.Apply(EventDown), "nothing to scroll when all rows fit")
	assert.False(t, m.Apply(EventEnd))
	assert.Equal(t, 0, m.Viewport().Top)
}

func TestQuitFromEveryState(t *testing.T) {
	// Ready.
	m := NewMachine(rowSource(t, 1000), 20, 1, 10)
	require.Equal(t, StateReady, m.State())
	assert.True(t, m.Apply(EventQuit))
	assert.Equal(t, StateClosed, m.State())

	// Exhausted.
	m = NewMachine(rowSource(t, 5), 20, 1, 10)
	require.Equal(t, StateExhausted, m.State())
	assert.True(t, m.Apply(EventQuit))
	assert.Equal(t, StateClosed, m.State())

	// Closed rejects everything, including another quit.
	assert.False(t, m.Apply(EventQuit))
	assert.False(t, m.Apply(EventDown))
}

func TestWindowContents(t *testing.T) {
	src := source.New(strings.NewReader("a\nb\nc\nd\ne\n"), ',')
	m := NewMachine(src, 2, 1, 10)

	require.True(t, m.Apply(EventDown))
	window := m.Window()
	require.Len(t, window, 2)
	assert.Equal(t, []string{"b"}, window[0])
	assert.Equal(t, []string{"c"}, window[1])
}

func TestWindowShorterThanViewportAtEnd(t *testing.T) {
	m := NewMachine(rowSource(t, 5), 20, 1, 10)
	assert.Len(t, m.Window(), 5)
}

func TestResizeClampsTop(t *testing.T) {
	m := NewMachine(rowSource(t, 100), 20, 1, 10)
	require.True(t, m.Apply(EventEnd))
	require.Equal(t, 80, m.Viewport().Top)

	// A taller viewport leaves less room to scroll.
	m.Resize(50)
	assert.Equal(t, 50, m.Viewport().Top)

	m.Resize(200)
	assert.Equal(t, 0, m.Viewport().Top)
}

func TestViewportClampInvariant(t *testing.T) {
	m := NewMachine(rowSource(t, 137), 20, 3, 17)
	events := []Event{
		EventDown, EventMultiDown, EventPageDown, EventEnd, EventDown,
		EventHalfUp, EventMultiUp, EventHome, EventUp, EventHalfDown,
	}
	for _, ev := range events {
		m.Apply(ev)
		vp := m.Viewport()
		assert.GreaterOrEqual(t, vp.Top, 0)
		if m.State() == StateExhausted {
			max := vp.Total - vp.Height
			if max < 0 {
				max = 0
			}
			assert.LessOrEqual(t, vp.Top, max)
		}
	}
}
