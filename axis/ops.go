package axis

import (
	"math"

	"github.com/gogpu/plot/internal/logging"
)

// with builds the successor of a, keeping a when the result would be
// invalid. It is the only place a rejected gesture is absorbed.
func (a Axis) with(op string, size int, cur, def Range) Axis {
	b, err := New(size, cur, def, a.lim)
	if err != nil {
		logging.Logger().Debug("axis: operation rejected", "op", op, "err", err)
		return a
	}
	return b
}

// WithViewCoords returns the axis whose visible window spans the receiver's
// coordinates [minCoord, maxCoord].
//
// A window reaching past a value limit slides back inside it keeping its
// width; a window wider than the limits is shrunk to them. An empty or
// inverted request leaves the axis unchanged.
func (a Axis) WithViewCoords(minCoord, maxCoord float64) Axis {
	if !(minCoord < maxCoord) {
		return a
	}
	lo := a.z.coord(a.lim.MinValue)
	hi := a.z.coord(a.lim.MaxValue)
	minCoord, maxCoord = slideClamp(minCoord, maxCoord, lo, hi)

	// An edge clamped onto a limit takes the limit value itself rather than
	// its round trip through the coordinate space.
	cur := a.cur
	cur.MinValue = math.Max(a.z.value(minCoord), a.lim.MinValue)
	if minCoord <= lo {
		cur.MinValue = a.lim.MinValue
	}
	cur.MaxValue = math.Min(a.z.value(maxCoord), a.lim.MaxValue)
	if maxCoord >= hi {
		cur.MaxValue = a.lim.MaxValue
	}
	return a.with("view coords", a.size, cur, a.def)
}

// slideClamp moves [minC, maxC] inside [lo, hi] without changing its width,
// or returns [lo, hi] when it does not fit.
func slideClamp(minC, maxC, lo, hi float64) (float64, float64) {
	switch {
	case maxC-minC >= hi-lo:
		return lo, hi
	case minC < lo:
		return lo, maxC + (lo - minC)
	case maxC > hi:
		return minC - (maxC - hi), hi
	}
	return minC, maxC
}

// ZoomAt scales the visible window around the pixel anchor. factor > 1
// zooms in, factor < 1 zooms out; the value under anchor stays put.
func (a Axis) ZoomAt(anchor, factor float64) Axis {
	if !(factor > 0) || math.IsInf(factor, 0) || math.IsNaN(anchor) {
		return a
	}
	maxC := float64(a.size - 1)
	return a.WithViewCoords(anchor-anchor/factor, anchor+(maxC-anchor)/factor)
}

// MoveBy shifts the visible window by delta pixels towards larger values.
func (a Axis) MoveBy(delta float64) Axis {
	if delta == 0 || math.IsNaN(delta) {
		return a
	}
	return a.WithViewCoords(delta, float64(a.size-1)+delta)
}

// WithMinLogDiff moves the lower log-zone boundary by diff decades. If it
// would pass MaxLog, MaxLog follows it. A move beyond the exponent limits
// is a no-op.
func (a Axis) WithMinLogDiff(diff int) Axis {
	cur := a.cur
	cur.MinLog += diff
	if cur.MinLog < a.lim.MinLog || cur.MinLog > a.lim.MaxLog {
		return a
	}
	if cur.MinLog > cur.MaxLog {
		cur.MaxLog = cur.MinLog
	}
	return a.with("min log", a.size, cur, a.def)
}

// WithMaxLogDiff moves the upper log-zone boundary by diff decades. If it
// would pass MinLog, MinLog follows it. A move beyond the exponent limits
// is a no-op.
func (a Axis) WithMaxLogDiff(diff int) Axis {
	cur := a.cur
	cur.MaxLog += diff
	if cur.MaxLog < a.lim.MinLog || cur.MaxLog > a.lim.MaxLog {
		return a
	}
	if cur.MaxLog < cur.MinLog {
		cur.MinLog = cur.MaxLog
	}
	return a.with("max log", a.size, cur, a.def)
}

// WithViewAreaSize recalibrates the axis for a viewport of size pixels,
// keeping the visible values.
func (a Axis) WithViewAreaSize(size int) Axis {
	if size == a.size {
		return a
	}
	return a.with("view area size", size, a.cur, a.def)
}

// SetAsDefault returns a copy of a whose defaults are its current window.
func (a Axis) SetAsDefault() Axis {
	return a.with("set default", a.size, a.cur, a.cur)
}

// WithDefaults returns the axis showing its default window. When that is
// already visible, a is returned unchanged.
func (a Axis) WithDefaults() Axis {
	if a.cur == a.def {
		return a
	}
	return a.with("defaults", a.size, a.def, a.def)
}
