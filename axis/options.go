package axis

// Ruler generation defaults.
const (
	// DefaultMinSpacing is the smallest pixel gap between neighboring
	// rulers of a refinement level.
	DefaultMinSpacing = 8.0

	// DefaultWeightSpan is the fraction of the viewport at which the
	// distance to the parent ruler yields full weight.
	DefaultWeightSpan = 0.25

	// maxRefineDepth bounds the number of ×0.1 refinements below a
	// top-level ruler.
	maxRefineDepth = 40
)

// RulerOption configures VisibleRulers.
//
// Example:
//
//	rulers := x.VisibleRulers(axis.WithMinSpacing(12), axis.WithBorders(false))
type RulerOption func(*rulerOptions)

type rulerOptions struct {
	minSpacing float64
	weightSpan float64
	borders    bool
	maxRulers  int
}

func defaultRulerOptions(size int) rulerOptions {
	return rulerOptions{
		minSpacing: DefaultMinSpacing,
		weightSpan: DefaultWeightSpan,
		borders:    true,
		maxRulers:  4 * size,
	}
}

// WithMinSpacing sets the pixel gap a refinement level needs to be drawn.
// Values below 1 are raised to 1.
func WithMinSpacing(px float64) RulerOption {
	return func(o *rulerOptions) {
		if !(px >= 1) {
			px = 1
		}
		o.minSpacing = px
	}
}

// WithWeightSpan sets the viewport fraction that maps to weight 1.
// Non-positive values are ignored.
func WithWeightSpan(f float64) RulerOption {
	return func(o *rulerOptions) {
		if f > 0 {
			o.weightSpan = f
		}
	}
}

// WithBorders controls whether the two viewport edges are emitted as
// border rulers. Enabled by default.
func WithBorders(enabled bool) RulerOption {
	return func(o *rulerOptions) {
		o.borders = enabled
	}
}

// WithMaxRulers caps the number of generated rulers. The default is four
// per pixel, which the spacing rule never reaches in practice.
func WithMaxRulers(n int) RulerOption {
	return func(o *rulerOptions) {
		if n > 0 {
			o.maxRulers = n
		}
	}
}
