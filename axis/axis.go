package axis

// Axis is the immutable state of one plot axis.
//
// The zero value is not usable; build one with New, Default, or
// Measures.Apply. Axis is comparable, so it can key a map; two axes built
// from the same inputs compare equal.
type Axis struct {
	size int
	cur  Range
	def  Range
	lim  Range
	z    zones
}

// New builds an axis for a viewport of viewAreaSize pixels.
//
// It returns a *ConfigError (wrapping ErrConfiguration) when:
//   - viewAreaSize < 2
//   - any range has MinLog > MaxLog, exponents outside [-300, 300],
//     NaN bounds, or MinValue >= MaxValue
//   - currents or defaults are not contained in limits
//   - the current window collapses to zero width in coordinate space
func New(viewAreaSize int, currents, defaults, limits Range) (Axis, error) {
	if viewAreaSize < 2 {
		return Axis{}, configErrorf("view area size", "%d is below 2", viewAreaSize)
	}
	if err := limits.validate("limits"); err != nil {
		return Axis{}, err
	}
	if err := currents.validate("currents"); err != nil {
		return Axis{}, err
	}
	if err := defaults.validate("defaults"); err != nil {
		return Axis{}, err
	}
	if !limits.contains(currents) {
		return Axis{}, configErrorf("currents", "%+v outside limits %+v", currents, limits)
	}
	if !limits.contains(defaults) {
		return Axis{}, configErrorf("defaults", "%+v outside limits %+v", defaults, limits)
	}

	z, err := newZones(currents.MinLog, currents.MaxLog).
		calibrate(viewAreaSize, currents.MinValue, currents.MaxValue)
	if err != nil {
		return Axis{}, err
	}
	return Axis{
		size: viewAreaSize,
		cur:  currents,
		def:  defaults,
		lim:  limits,
		z:    z,
	}, nil
}

// Equal reports whether a and o have the same view size and ranges.
// Derived coordinate data is not compared; it is a function of those.
func (a Axis) Equal(o Axis) bool {
	return a.size == o.size && a.cur == o.cur && a.def == o.def && a.lim == o.lim
}

// ViewAreaSize returns the pixel extent of the viewport along the axis.
func (a Axis) ViewAreaSize() int { return a.size }

// MaxViewCoord returns the largest valid pixel coordinate, ViewAreaSize()-1.
func (a Axis) MaxViewCoord() int { return a.size - 1 }

// Currents returns the visible window.
func (a Axis) Currents() Range { return a.cur }

// Defaults returns the window restored by WithDefaults.
func (a Axis) Defaults() Range { return a.def }

// Limits returns the hard bounds.
func (a Axis) Limits() Range { return a.lim }
