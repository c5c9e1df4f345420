package plot

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/logging"
	"github.com/gogpu/plot/sample"
)

// Zoom multipliers applied per wheel notch or key press.
const (
	ZoomStep     = 1.25
	FastZoomStep = 2.0
)

// Errors returned by Plot construction and graph management.
var (
	// ErrTooSmall is returned when the plot area left after padding is
	// narrower than two pixels in either direction.
	ErrTooSmall = errors.New("plot: plot area too small")

	// ErrGraphExists is returned by AddGraph for a duplicate name.
	ErrGraphExists = errors.New("plot: graph already exists")

	// ErrNilFunc is returned by AddGraph for a nil function.
	ErrNilFunc = errors.New("plot: nil function")
)

// AxisID selects one of the two axes of a plot.
type AxisID int

const (
	AxisX AxisID = iota
	AxisY
)

func (id AxisID) String() string {
	if id == AxisY {
		return "y"
	}
	return "x"
}

// Boundary selects one edge of an axis's log zone.
type Boundary int

const (
	MinLog Boundary = iota
	MaxLog
)

// Graph is a named function drawn on a plot.
type Graph struct {
	Name string
	F    sample.Func
}

// Plot is a function plot: two axes, the graphs drawn on them and the
// layout they are rendered with.
//
// Gesture methods replace the axes with successors and report whether the
// view changed, so hosts re-render only when needed. Gestures that would
// produce an invalid axis are ignored.
//
// A Plot is not safe for concurrent use.
type Plot struct {
	width, height int
	opts          options

	x, y    axis.Axis
	graphs  []Graph
	sampler *sample.Sampler
	labels  *labeler
}

// New creates a plot for a window of width x height pixels.
func New(width, height int, opts ...Option) (*Plot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Plot{width: width, height: height, opts: o, sampler: o.sampler}

	aw, ah := p.areaSize(width, height)
	if aw < 2 || ah < 2 {
		return nil, fmt.Errorf("%w: %dx%d with padding %d", ErrTooSmall, width, height, o.padding)
	}

	var err error
	if p.x, err = newAxis(aw, o.x); err != nil {
		return nil, fmt.Errorf("plot: x axis: %w", err)
	}
	if p.y, err = newAxis(ah, o.y); err != nil {
		return nil, fmt.Errorf("plot: y axis: %w", err)
	}
	if p.sampler == nil {
		p.sampler = sample.NewSampler(sample.DefaultCapacity)
	}
	if o.labelSize > 0 {
		if p.labels, err = newLabeler(o.labelSize); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newAxis(size int, m axis.Measures) (axis.Axis, error) {
	a, err := axis.Default(size)
	if err != nil || m.IsZero() {
		return a, err
	}
	return m.Apply(a)
}

func (p *Plot) areaSize(width, height int) (int, int) {
	return width - 2*p.opts.padding, height - 2*p.opts.padding
}

// Width returns the window width in pixels.
func (p *Plot) Width() int { return p.width }

// Height returns the window height in pixels.
func (p *Plot) Height() int { return p.height }

// X returns the horizontal axis.
func (p *Plot) X() axis.Axis { return p.x }

// Y returns the vertical axis. Its view coordinates grow upwards.
func (p *Plot) Y() axis.Axis { return p.y }

// Theme returns the colors the plot is drawn with.
func (p *Plot) Theme() Theme { return p.opts.theme }

// Area returns the plot area in window pixels.
func (p *Plot) Area() image.Rectangle {
	pad := p.opts.padding
	return image.Rect(pad, pad, p.width-pad, p.height-pad)
}

// AddGraph adds f under name. Graphs are drawn in insertion order.
func (p *Plot) AddGraph(name string, f sample.Func) error {
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	if p.graphIndex(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrGraphExists, name)
	}
	p.graphs = append(p.graphs, Graph{Name: name, F: f})
	return nil
}

// RemoveGraph removes the graph called name and reports whether it existed.
func (p *Plot) RemoveGraph(name string) bool {
	i := p.graphIndex(name)
	if i < 0 {
		return false
	}
	p.graphs = slices.Delete(p.graphs, i, i+1)
	p.sampler.Forget(name)
	return true
}

// Graphs returns the graphs in drawing order.
func (p *Plot) Graphs() []Graph {
	return slices.Clone(p.graphs)
}

func (p *Plot) graphIndex(name string) int {
	return slices.IndexFunc(p.graphs, func(g Graph) bool { return g.Name == name })
}

// viewX converts a window column to an X view coordinate.
func (p *Plot) viewX(px float64) float64 {
	return px - float64(p.opts.padding)
}

// viewY converts a window row to a Y view coordinate.
func (p *Plot) viewY(py float64) float64 {
	return float64(p.height-p.opts.padding-1) - py
}

// windowX converts an X view coordinate to a window column.
func (p *Plot) windowX(c float64) float64 {
	return c + float64(p.opts.padding)
}

// windowY converts a Y view coordinate to a window row.
func (p *Plot) windowY(c float64) float64 {
	return float64(p.height-p.opts.padding-1) - c
}

// ValueAt returns the values under the window pixel (px, py). ok is false
// outside the plot area.
func (p *Plot) ValueAt(px, py float64) (x, y float64, ok bool) {
	cx, cy := p.viewX(px), p.viewY(py)
	if cx < 0 || cy < 0 || cx > float64(p.x.MaxViewCoord()) || cy > float64(p.y.MaxViewCoord()) {
		return 0, 0, false
	}
	return p.x.CoordToValue(cx), p.y.CoordToValue(cy), true
}

// commit installs the successor axes and reports whether anything changed.
func (p *Plot) commit(op string, x, y axis.Axis) bool {
	changed := !x.Equal(p.x) || !y.Equal(p.y)
	p.x, p.y = x, y
	if changed {
		logging.Logger().Debug("plot: view changed", "op", op,
			"x", x.Currents(), "y", y.Currents())
	}
	return changed
}

// Pan drags the content by (dx, dy) window pixels.
func (p *Plot) Pan(dx, dy float64) bool {
	return p.commit("pan", p.x.MoveBy(-dx), p.y.MoveBy(dy))
}

// Zoom zooms in or out on both axes keeping the values under the window
// pixel (px, py) in place. fast selects FastZoomStep over ZoomStep.
func (p *Plot) Zoom(px, py float64, in, fast bool) bool {
	f := ZoomStep
	if fast {
		f = FastZoomStep
	}
	if !in {
		f = 1 / f
	}
	return p.commit("zoom", p.x.ZoomAt(p.viewX(px), f), p.y.ZoomAt(p.viewY(py), f))
}

// ZoomAxis zooms a single axis around the window pixel (px, py).
func (p *Plot) ZoomAxis(id AxisID, px, py float64, in, fast bool) bool {
	f := ZoomStep
	if fast {
		f = FastZoomStep
	}
	if !in {
		f = 1 / f
	}
	if id == AxisY {
		return p.commit("zoom y", p.x, p.y.ZoomAt(p.viewY(py), f))
	}
	return p.commit("zoom x", p.x.ZoomAt(p.viewX(px), f), p.y)
}

// ZoomRect makes the window rectangle spanned by two corners the new view.
// Rectangles thinner than two pixels are ignored.
func (p *Plot) ZoomRect(x0, y0, x1, y1 float64) bool {
	cx0, cx1 := p.viewX(x0), p.viewX(x1)
	cy0, cy1 := p.viewY(y0), p.viewY(y1)
	if cx0 > cx1 {
		cx0, cx1 = cx1, cx0
	}
	if cy0 > cy1 {
		cy0, cy1 = cy1, cy0
	}
	if cx1-cx0 < 2 || cy1-cy0 < 2 {
		return false
	}
	return p.commit("zoom rect", p.x.WithViewCoords(cx0, cx1), p.y.WithViewCoords(cy0, cy1))
}

// Resize adapts the plot to a new window size, keeping the visible values.
// A window too small for the padding is ignored.
func (p *Plot) Resize(width, height int) bool {
	if width == p.width && height == p.height {
		return false
	}
	aw, ah := p.areaSize(width, height)
	if aw < 2 || ah < 2 {
		logging.Logger().Debug("plot: resize ignored", "width", width, "height", height)
		return false
	}
	x, y := p.x.WithViewAreaSize(aw), p.y.WithViewAreaSize(ah)
	if x.ViewAreaSize() != aw || y.ViewAreaSize() != ah {
		return false
	}
	p.width, p.height = width, height
	p.commit("resize", x, y)
	logging.Logger().Info("plot: resized", "width", width, "height", height)
	return true
}

// ShiftLog moves one log-zone boundary of one axis by diff decades.
func (p *Plot) ShiftLog(id AxisID, b Boundary, diff int) bool {
	shift := func(a axis.Axis) axis.Axis {
		if b == MaxLog {
			return a.WithMaxLogDiff(diff)
		}
		return a.WithMinLogDiff(diff)
	}
	if id == AxisY {
		return p.commit("shift log y", p.x, shift(p.y))
	}
	return p.commit("shift log x", shift(p.x), p.y)
}

// SetDefault makes the current view the one Reset returns to.
func (p *Plot) SetDefault() bool {
	return p.commit("set default", p.x.SetAsDefault(), p.y.SetAsDefault())
}

// Reset returns both axes to their default view.
func (p *Plot) Reset() bool {
	return p.commit("reset", p.x.WithDefaults(), p.y.WithDefaults())
}
