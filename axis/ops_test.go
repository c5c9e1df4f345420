package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundedLimits allows values in [-10, 10] and every exponent.
var boundedLimits = Range{MinLog: MinLogLimit, MaxLog: MaxLogLimit, MinValue: -10, MaxValue: 10}

func TestWithViewCoordsSlideClamp(t *testing.T) {
	// 10 pixels per unit, zero at pixel 50, limits at pixels -50 and 150.
	a := linearAxis(t, 101, -5, 5, boundedLimits)

	tests := []struct {
		name             string
		minC, maxC       float64
		wantMin, wantMax float64
		wantWidth        float64
	}{
		{"inside", 10, 60, -4, 1, 50},
		{"past upper limit slides left", 120, 220, 0, 10, 100},
		{"past lower limit slides right", -80, 20, -10, 0, 100},
		{"wider than limits shrinks", -100, 300, -10, 10, 200},
		{"exactly the limits", -50, 150, -10, 10, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := a.WithViewCoords(tt.minC, tt.maxC)
			cur := b.Currents()
			assert.InDelta(t, tt.wantMin, cur.MinValue, 1e-9)
			assert.InDelta(t, tt.wantMax, cur.MaxValue, 1e-9)

			width := a.ValueToCoord(cur.MaxValue) - a.ValueToCoord(cur.MinValue)
			assert.InDelta(t, tt.wantWidth, width, 1e-6)
			assert.GreaterOrEqual(t, cur.MinValue, -10.0)
			assert.LessOrEqual(t, cur.MaxValue, 10.0)
		})
	}
}

func TestWithViewCoordsRejects(t *testing.T) {
	a := linearAxis(t, 101, -5, 5, boundedLimits)

	assert.True(t, a.Equal(a.WithViewCoords(60, 10)), "inverted window")
	assert.True(t, a.Equal(a.WithViewCoords(30, 30)), "empty window")
	assert.True(t, a.Equal(a.WithViewCoords(math.NaN(), 30)), "NaN bound")
}

func TestWithViewCoordsUnbounded(t *testing.T) {
	a, err := Default(800)
	require.NoError(t, err)

	// Panning the full real line goes nowhere.
	assert.True(t, a.Equal(a.MoveBy(25)))
	assert.True(t, a.Equal(a.MoveBy(-25)))

	b := a.WithViewCoords(100, 700)
	assert.False(t, math.IsInf(b.Currents().MinValue, 0))
	assert.False(t, math.IsInf(b.Currents().MaxValue, 0))
	assert.Less(t, b.Currents().MinValue, 0.0)
	assert.Greater(t, b.Currents().MaxValue, 0.0)
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	// One pixel per unit, value 50 under pixel 150.
	a := linearAxis(t, 201, -100, 100, DefaultLimits())
	v0 := a.CoordToValue(150)
	require.InDelta(t, 50, v0, 1e-9)

	b := a.ZoomAt(150, 2)
	got, ok := b.ValueToViewCoord(v0)
	require.True(t, ok)
	assert.Equal(t, 150, got)

	oldWidth := a.Currents().MaxValue - a.Currents().MinValue
	newWidth := b.Currents().MaxValue - b.Currents().MinValue
	assert.InDelta(t, oldWidth/2, newWidth, 1e-9)
	assert.InDelta(t, -25, b.Currents().MinValue, 1e-9)
	assert.InDelta(t, 75, b.Currents().MaxValue, 1e-9)

	// Zooming back out restores the window.
	c := b.ZoomAt(150, 0.5)
	assert.InDelta(t, -100, c.Currents().MinValue, 1e-6)
	assert.InDelta(t, 100, c.Currents().MaxValue, 1e-6)
}

func TestZoomAtAcrossZones(t *testing.T) {
	a, err := Default(800)
	require.NoError(t, err)

	anchor := 600.0
	v0 := a.CoordToValue(anchor)
	b := a.ZoomAt(anchor, 1.5)
	require.False(t, a.Equal(b))
	assert.InDelta(t, anchor, b.ValueToCoord(v0), 1e-6)

	// Zooming out of the full line is clamped to it.
	assert.True(t, a.Equal(a.ZoomAt(anchor, 0.5)))
}

func TestZoomAtRejects(t *testing.T) {
	a := linearAxis(t, 201, -100, 100, DefaultLimits())
	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		assert.True(t, a.Equal(a.ZoomAt(100, f)), "factor %g", f)
	}

	b := a.ZoomAt(100, 1e300)
	cur := b.Currents()
	assert.Less(t, cur.MinValue, cur.MaxValue, "an extreme zoom never yields an invalid axis")
}

func TestZoomAtWideLogZone(t *testing.T) {
	r := Range{MinLog: 0, MaxLog: 300, MinValue: -1, MaxValue: 1}
	a := mustNew(t, 800, r, r, DefaultLimits())
	for i := 0; i < 40; i++ {
		b := a.ZoomAt(400, 2)
		require.False(t, b.Equal(a), "zoom step %d stuck at %+v", i, a.Currents())
		a = b
	}
	cur := a.Currents()
	assert.Less(t, cur.MaxValue-cur.MinValue, 2e-11)
	assert.Equal(t, 300, cur.MaxLog)
}

func TestMoveBy(t *testing.T) {
	a := linearAxis(t, 101, -5, 5, boundedLimits)

	b := a.MoveBy(30)
	assert.InDelta(t, -2, b.Currents().MinValue, 1e-9)
	assert.InDelta(t, 8, b.Currents().MaxValue, 1e-9)

	c := a.MoveBy(1000)
	assert.InDelta(t, 0, c.Currents().MinValue, 1e-9)
	assert.InDelta(t, 10, c.Currents().MaxValue, 1e-9)

	// Already at the limit: no effective change.
	assert.True(t, c.Equal(c.MoveBy(10)))
	assert.True(t, a.Equal(a.MoveBy(0)))
}

func TestLogDiff(t *testing.T) {
	withLogs := func(minLog, maxLog int, lim Range) Axis {
		r := Range{MinLog: minLog, MaxLog: maxLog, MinValue: math.Inf(-1), MaxValue: math.Inf(1)}
		return mustNew(t, 400, r, DefaultRange(), lim)
	}
	lim := DefaultLimits()

	tests := []struct {
		name             string
		a                Axis
		op               func(Axis) Axis
		wantMin, wantMax int
	}{
		{"raise min", withLogs(0, 6, lim), func(a Axis) Axis { return a.WithMinLogDiff(1) }, 1, 6},
		{"lower min", withLogs(0, 6, lim), func(a Axis) Axis { return a.WithMinLogDiff(-1) }, -1, 6},
		{"raise max", withLogs(0, 6, lim), func(a Axis) Axis { return a.WithMaxLogDiff(1) }, 0, 7},
		{"lower max", withLogs(0, 6, lim), func(a Axis) Axis { return a.WithMaxLogDiff(-1) }, 0, 5},
		{"min pulls max", withLogs(2, 2, lim), func(a Axis) Axis { return a.WithMinLogDiff(1) }, 3, 3},
		{"max pulls min", withLogs(2, 2, lim), func(a Axis) Axis { return a.WithMaxLogDiff(-1) }, 1, 1},
		{"max at 300", withLogs(0, 300, lim), func(a Axis) Axis { return a.WithMaxLogDiff(1) }, 0, 300},
		{"min at -300", withLogs(-300, 0, lim), func(a Axis) Axis { return a.WithMinLogDiff(-1) }, -300, 0},
		{"min pulled past 300", withLogs(300, 300, lim), func(a Axis) Axis { return a.WithMinLogDiff(1) }, 300, 300},
		{"max beyond limits", withLogs(0, 8, Range{MinLog: -2, MaxLog: 8, MinValue: math.Inf(-1), MaxValue: math.Inf(1)}),
			func(a Axis) Axis { return a.WithMaxLogDiff(1) }, 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.op(tt.a)
			assert.Equal(t, tt.wantMin, b.Currents().MinLog)
			assert.Equal(t, tt.wantMax, b.Currents().MaxLog)
			if tt.wantMin == tt.a.Currents().MinLog && tt.wantMax == tt.a.Currents().MaxLog {
				assert.True(t, tt.a.Equal(b), "a boundary shift past a limit is a no-op")
			}
		})
	}
}

func TestLogDiffRecalibrates(t *testing.T) {
	a, err := Default(800)
	require.NoError(t, err)
	b := a.WithMaxLogDiff(1)

	before, _ := a.ValueToViewCoord(1e6)
	after, _ := b.ValueToViewCoord(1e6)
	assert.Less(t, after, before, "a wider log zone compresses existing decades")
	assert.InDelta(t, 0, b.ValueToCoord(math.Inf(-1)), 1e-9)
	assert.InDelta(t, 799, b.ValueToCoord(math.Inf(1)), 1e-9)
}

func TestWithViewAreaSize(t *testing.T) {
	a := linearAxis(t, 101, -5, 5, boundedLimits)

	b := a.WithViewAreaSize(201)
	assert.Equal(t, 201, b.ViewAreaSize())
	assert.Equal(t, a.Currents(), b.Currents())
	got, ok := b.ValueToViewCoord(5)
	require.True(t, ok)
	assert.Equal(t, 200, got)
	got, ok = b.ValueToViewCoord(-5)
	require.True(t, ok)
	assert.Equal(t, 0, got)

	assert.True(t, a.Equal(a.WithViewAreaSize(1)), "sizes below 2 are ignored")
	assert.True(t, a.Equal(a.WithViewAreaSize(101)))
}

func TestSetAsDefault(t *testing.T) {
	a := linearAxis(t, 101, -5, 5, boundedLimits)
	moved := a.MoveBy(30)

	snap := moved.SetAsDefault()
	assert.Equal(t, moved.Currents(), snap.Defaults())
	assert.Equal(t, a.Defaults(), moved.Defaults(), "the receiver keeps its defaults")
	assert.True(t, snap.Equal(snap.WithDefaults()))
}

func TestWithDefaultsIdempotent(t *testing.T) {
	a := linearAxis(t, 101, -5, 5, boundedLimits)
	moved := a.MoveBy(30).WithMinLogDiff(-1)
	require.False(t, a.Equal(moved))

	first := moved.WithDefaults()
	second := first.WithDefaults()
	assert.True(t, first.Equal(a))
	assert.True(t, first.Equal(second))
}
