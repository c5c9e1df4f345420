package plot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/logging"
)

// ErrUnknownGraph is returned for a configured graph that is not in the
// builtin catalogue.
var ErrUnknownGraph = errors.New("plot: unknown graph")

// Config is the file form of a plot setup.
//
//	width: 1024
//	height: 768
//	theme:
//	  background: "#ffffff"
//	x:
//	  min_value: -10
//	  max_value: .inf
//	graphs: [sin, square]
type Config struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Padding     int           `yaml:"padding"`
	LabelSize   float64       `yaml:"label_size"`
	LabelWeight float64       `yaml:"label_weight"`
	LineWidth   float64       `yaml:"line_width"`
	MinSpacing  float64       `yaml:"min_spacing"`
	Theme       Theme         `yaml:"theme"`
	X           axis.Measures `yaml:"x"`
	Y           axis.Measures `yaml:"y"`
	Graphs      []string      `yaml:"graphs"`
}

// DefaultConfig returns the setup used for keys a file leaves out.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		Padding:     DefaultPadding,
		LabelSize:   DefaultLabelSize,
		LabelWeight: DefaultLabelWeight,
		LineWidth:   DefaultLineWidth,
		MinSpacing:  axis.DefaultMinSpacing,
		Theme:       DefaultTheme(),
	}
}

// LoadConfig reads a YAML config from r over DefaultConfig. Unknown keys
// are an error. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("plot: load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	logging.Logger().Info("plot: config loaded",
		"width", c.Width, "height", c.Height, "graphs", strings.Join(c.Graphs, ","))
	return c, nil
}

// Validate checks the values New would reject, plus graph names.
func (c Config) Validate() error {
	var errs []error
	if c.Padding < 0 {
		errs = append(errs, fmt.Errorf("plot: padding %d is negative", c.Padding))
	}
	if aw, ah := c.Width-2*c.Padding, c.Height-2*c.Padding; aw < 2 || ah < 2 {
		errs = append(errs, fmt.Errorf("%w: %dx%d with padding %d", ErrTooSmall, c.Width, c.Height, c.Padding))
	}
	if c.LabelSize < 0 {
		errs = append(errs, fmt.Errorf("plot: label size %g is negative", c.LabelSize))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("plot: line width %g is not positive", c.LineWidth))
	}
	for _, name := range c.Graphs {
		if _, ok := Builtin(name); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownGraph, name))
		}
	}
	return errors.Join(errs...)
}

// Options converts c to plot options.
func (c Config) Options() []Option {
	opts := []Option{
		WithPadding(c.Padding),
		WithTheme(c.Theme),
		WithXMeasures(c.X),
		WithYMeasures(c.Y),
		WithLabelSize(c.LabelSize),
		WithLabelWeight(c.LabelWeight),
		WithLineWidth(c.LineWidth),
	}
	if c.MinSpacing > 0 {
		opts = append(opts, WithMinSpacing(c.MinSpacing))
	}
	return opts
}

// NewFromConfig builds a plot from c with its graphs added.
func NewFromConfig(c Config, opts ...Option) (*Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err := New(c.Width, c.Height, append(c.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	for _, name := range c.Graphs {
		f, _ := Builtin(name)
		if err := p.AddGraph(name, f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Marshal writes c as YAML.
func (c Config) Marshal(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("plot: write config: %w", err)
	}
	return enc.Close()
}
