package axis

import "math"

// Global bounds for the decade exponents of the logarithmic zone.
const (
	MinLogLimit = -300
	MaxLogLimit = 300
)

// Range is one window of an axis: the decade exponents bounding the
// logarithmic zone and the domain values at the two viewport edges.
// An Axis holds three of them: the current window, the defaults restored on
// reset, and the hard limits.
type Range struct {
	MinLog   int
	MaxLog   int
	MinValue float64
	MaxValue float64
}

func (r Range) validate(field string) error {
	switch {
	case r.MinLog > r.MaxLog:
		return configErrorf(field, "min log %d above max log %d", r.MinLog, r.MaxLog)
	case r.MinLog < MinLogLimit || r.MaxLog > MaxLogLimit:
		return configErrorf(field, "log range [%d, %d] outside [%d, %d]",
			r.MinLog, r.MaxLog, MinLogLimit, MaxLogLimit)
	case math.IsNaN(r.MinValue) || math.IsNaN(r.MaxValue):
		return configErrorf(field, "NaN value bound")
	case !(r.MinValue < r.MaxValue):
		return configErrorf(field, "min value %g not below max value %g", r.MinValue, r.MaxValue)
	}
	return nil
}

// contains reports whether o lies within r componentwise.
func (r Range) contains(o Range) bool {
	return r.MinLog <= o.MinLog && o.MaxLog <= r.MaxLog &&
		r.MinValue <= o.MinValue && o.MaxValue <= r.MaxValue
}
