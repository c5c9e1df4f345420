package axis

import "math"

// zones holds the breakpoints and per-zone coefficients of the mapping.
//
// Coefficients are kept in natural units, where the linear zone has
// half-width 1, one decade of the log zone is ln 10 wide and the
// hyperbolic zone adds 1 more, which makes the mapping C1 at both inner
// breakpoints. Offsets are identical on both sides of zero; the negative
// half is the mirror image. Calibration only records where the window
// starts (u0) and how wide one pixel is (unit), so a narrow window never
// overflows a coefficient.
type zones struct {
	linLimit float64 // 10^MinLog
	logLimit float64 // 10^MaxLog

	linSlope float64 // u = linSlope*|v|
	logShift float64 // u = logShift + ln|v|
	hypBound float64 // u = hypBound - hypK/|v|
	hypK     float64

	linEdge float64 // u of ±10^MinLog
	logEdge float64 // u of ±10^MaxLog

	u0   float64 // natural position of MinValue
	unit float64 // natural width of one pixel

	center   float64 // coordinate of value 0
	minCoord float64 // coordinate of -Inf
	maxCoord float64 // coordinate of +Inf
}

// newZones returns the uncalibrated layout for the given log zone.
func newZones(minLog, maxLog int) zones {
	lin := math.Pow10(minLog)
	logEdge := 1 + float64(maxLog-minLog)*math.Ln10
	z := zones{
		linLimit: lin,
		logLimit: math.Pow10(maxLog),
		linSlope: 1 / lin,
		logShift: 1 - float64(minLog)*math.Ln10,
		linEdge:  1,
		logEdge:  logEdge,
		hypBound: logEdge + 1,
		unit:     1,
	}
	z.hypK = z.logLimit
	z.minCoord = -z.hypBound
	z.maxCoord = z.hypBound
	return z
}

// calibrate returns z placed so that minValue maps to coordinate 0 and
// maxValue to size-1.
func (z zones) calibrate(size int, minValue, maxValue float64) (zones, error) {
	u0 := z.position(minValue)
	u1 := z.position(maxValue)
	if !(u1 > u0) {
		return zones{}, configErrorf("currents",
			"window [%g, %g] has no width in coordinate space", minValue, maxValue)
	}

	c := z
	c.u0 = u0
	c.unit = (u1 - u0) / float64(size-1)
	c.center = -u0 / c.unit
	c.minCoord = (-z.hypBound - u0) / c.unit
	c.maxCoord = (z.hypBound - u0) / c.unit

	// Only windows a few subnormals wide fail here.
	if !(c.unit > 0) || math.IsInf(c.minCoord, 0) || math.IsInf(c.maxCoord, 0) || math.IsInf(c.center, 0) {
		return zones{}, configErrorf("currents",
			"window [%g, %g] is too narrow to calibrate", minValue, maxValue)
	}
	return c, nil
}

// natural maps a magnitude m >= 0 to its natural distance from zero.
func (z *zones) natural(m float64) float64 {
	switch {
	case m <= z.linLimit:
		return z.linSlope * m
	case m <= z.logLimit:
		return z.logShift + math.Log(m)
	default:
		return z.hypBound - z.hypK/m
	}
}

// magnitude is the inverse of natural for n >= 0. It stays finite below
// hypBound and saturates at MaxFloat64 above it.
func (z *zones) magnitude(n float64) float64 {
	switch {
	case n <= z.linEdge:
		return n / z.linSlope
	case n <= z.logEdge:
		return math.Exp(n - z.logShift)
	case n < z.hypBound:
		m := z.hypK / (z.hypBound - n)
		if math.IsInf(m, 1) {
			return math.MaxFloat64
		}
		return m
	default:
		return math.MaxFloat64
	}
}

// position returns the signed natural position of v.
func (z *zones) position(v float64) float64 {
	if v < 0 {
		return -z.natural(-v)
	}
	return z.natural(v)
}

// dist returns the pixel distance between magnitudes a and b.
func (z *zones) dist(a, b float64) float64 {
	return (z.natural(b) - z.natural(a)) / z.unit
}

func (z *zones) coord(v float64) float64 {
	switch {
	case math.IsInf(v, -1):
		return z.minCoord
	case math.IsInf(v, 1):
		return z.maxCoord
	}
	return (z.position(v) - z.u0) / z.unit
}

func (z *zones) value(c float64) float64 {
	switch {
	case math.IsNaN(c):
		return c
	case c <= z.minCoord:
		return math.Inf(-1)
	case c >= z.maxCoord:
		return math.Inf(1)
	}
	u := z.u0 + c*z.unit
	if u < 0 {
		return -z.magnitude(-u)
	}
	return z.magnitude(u)
}

// ValueToCoord returns the continuous coordinate of v. Values outside the
// visible window map outside [0, MaxViewCoord]; ±Inf map exactly to
// MinCoord and MaxCoord. NaN maps to NaN.
func (a Axis) ValueToCoord(v float64) float64 {
	return a.z.coord(v)
}

// CoordToValue returns the value at coordinate c. It returns -Inf for
// c <= MinCoord, +Inf for c >= MaxCoord, and a finite value otherwise.
func (a Axis) CoordToValue(c float64) float64 {
	return a.z.value(c)
}

// ValueToViewCoord returns the pixel showing v, rounding half away from
// zero. ok is false for NaN and for values whose pixel is off-screen.
func (a Axis) ValueToViewCoord(v float64) (int, bool) {
	c := math.Round(a.z.coord(v))
	if math.IsNaN(c) || c < 0 || c > float64(a.size-1) {
		return 0, false
	}
	return int(c), true
}

// MinCoord returns the coordinate of -Inf.
func (a Axis) MinCoord() float64 { return a.z.minCoord }

// MaxCoord returns the coordinate of +Inf.
func (a Axis) MaxCoord() float64 { return a.z.maxCoord }

// ZeroCoord returns the coordinate of value 0.
func (a Axis) ZeroCoord() float64 { return a.z.center }
