package plot

import (
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/sample"
)

// Default layout values.
const (
	DefaultPadding     = 40
	DefaultLabelSize   = 12.0
	DefaultLabelWeight = 0.5
	DefaultLineWidth   = 1.5
)

// Option configures a Plot during creation.
// Use functional options to customize Plot behavior.
//
// Example:
//
//	// Default dark theme, both axes on the built-in window
//	p, err := plot.New(800, 600)
//
//	// Light theme with a bounded X axis
//	lo, hi := -10.0, 10.0
//	p, err := plot.New(800, 600,
//		plot.WithTheme(plot.LightTheme()),
//		plot.WithXMeasures(axis.Measures{MinValueLimit: &lo, MaxValueLimit: &hi}))
type Option func(*options)

type options struct {
	padding     int
	theme       Theme
	x, y        axis.Measures
	rulers      []axis.RulerOption
	labelSize   float64
	labelWeight float64
	lineWidth   float64
	sampler     *sample.Sampler
}

func defaultOptions() options {
	return options{
		padding:     DefaultPadding,
		theme:       DefaultTheme(),
		labelSize:   DefaultLabelSize,
		labelWeight: DefaultLabelWeight,
		lineWidth:   DefaultLineWidth,
	}
}

// WithPadding sets the margin in pixels between the window edge and the
// plot area. Labels are drawn in it.
func WithPadding(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.padding = px
		}
	}
}

// WithTheme sets the colors.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithXMeasures overrides the X axis setup.
func WithXMeasures(m axis.Measures) Option {
	return func(o *options) {
		o.x = m
	}
}

// WithYMeasures overrides the Y axis setup.
func WithYMeasures(m axis.Measures) Option {
	return func(o *options) {
		o.y = m
	}
}

// WithRulerOptions passes options to ruler generation on both axes.
func WithRulerOptions(opts ...axis.RulerOption) Option {
	return func(o *options) {
		o.rulers = append(o.rulers, opts...)
	}
}

// WithLabelSize sets the label font size in points at 72 DPI.
// A size of 0 disables labels.
func WithLabelSize(pt float64) Option {
	return func(o *options) {
		if pt >= 0 {
			o.labelSize = pt
		}
	}
}

// WithLabelWeight sets the minimum ruler weight that gets a label.
func WithLabelWeight(w float64) Option {
	return func(o *options) {
		o.labelWeight = w
	}
}

// WithLineWidth sets the graph stroke width in pixels.
func WithLineWidth(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.lineWidth = px
		}
	}
}

// WithSampler shares a sample cache between plots. Series are keyed by
// graph name, so plots sharing a sampler must use one function per name.
func WithSampler(s *sample.Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithMinSpacing sets the minimum pixel gap between neighboring rulers.
// It is shorthand for WithRulerOptions(axis.WithMinSpacing(px)).
func WithMinSpacing(px float64) Option {
	return WithRulerOptions(axis.WithMinSpacing(px))
}
