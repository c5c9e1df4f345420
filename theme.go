package plot

// Theme holds the colors a plot is drawn with.
type Theme struct {
	Background Color `yaml:"background"`

	// Grid is the color of a ruler of weight 1. Lighter rulers fade
	// towards Background.
	Grid Color `yaml:"grid"`

	// Axis colors the ruler at zero.
	Axis Color `yaml:"axis"`

	// Border colors the rulers at the viewport edges.
	Border Color `yaml:"border"`

	Label Color `yaml:"label"`

	// Graphs is cycled through, one color per graph.
	Graphs []Color `yaml:"graphs"`
}

// DefaultTheme returns the dark theme used when none is configured.
func DefaultTheme() Theme {
	return Theme{
		Background: MustHex("#14161a"),
		Grid:       MustHex("#8a93a3"),
		Axis:       MustHex("#e6e9ef"),
		Border:     MustHex("#4a505c"),
		Label:      MustHex("#c3c9d4"),
		Graphs: []Color{
			MustHex("#f2b53c"),
			MustHex("#4cb5f5"),
			MustHex("#e8575f"),
			MustHex("#7bd88f"),
			MustHex("#b48ef2"),
		},
	}
}

// LightTheme returns a theme for white backgrounds.
func LightTheme() Theme {
	return Theme{
		Background: White,
		Grid:       MustHex("#5c6370"),
		Axis:       Black,
		Border:     MustHex("#a0a6b0"),
		Label:      MustHex("#30343b"),
		Graphs: []Color{
			MustHex("#c0392b"),
			MustHex("#2471a3"),
			MustHex("#1e8449"),
			MustHex("#b9770e"),
			MustHex("#7d3c98"),
		},
	}
}

// gridColor returns the color of a ruler of the given weight.
// Weight 0 still shows faintly.
func (t Theme) gridColor(weight float64) Color {
	return t.Background.Lerp(t.Grid, 0.15+0.85*weight)
}

// graphColor returns the color of the i-th graph.
func (t Theme) graphColor(i int) Color {
	if len(t.Graphs) == 0 {
		return t.Axis
	}
	return t.Graphs[i%len(t.Graphs)]
}
