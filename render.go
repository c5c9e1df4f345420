package plot

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/sample"
)

// ErrTargetSize is returned by Render when the destination image does not
// match the plot's window size.
var ErrTargetSize = errors.New("plot: render target size mismatch")

// Image renders the plot into a new image.
func (p *Plot) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	_ = p.Render(img)
	return img
}

// Render draws the plot into dst, whose bounds must be Width x Height.
//
// Rulers are drawn first, lightest to heaviest, then the graphs in order,
// then the labels of rulers at or above the label weight.
func (p *Plot) Render(dst *image.RGBA) error {
	b := dst.Bounds()
	if b.Dx() != p.width || b.Dy() != p.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrTargetSize, b.Dx(), b.Dy(), p.width, p.height)
	}
	th := p.opts.theme
	area := p.Area().Add(b.Min)

	xdraw.Draw(dst, b, image.NewUniform(th.Background), image.Point{}, xdraw.Src)

	xr := p.x.VisibleRulers(p.opts.rulers...)
	yr := p.y.VisibleRulers(p.opts.rulers...)
	for _, r := range byWeight(xr) {
		col := area.Min.X + r.ViewCoord
		fillRect(dst, image.Rect(col, area.Min.Y, col+1, area.Max.Y), p.rulerColor(r))
	}
	for _, r := range byWeight(yr) {
		row := area.Max.Y - 1 - r.ViewCoord
		fillRect(dst, image.Rect(area.Min.X, row, area.Max.X, row+1), p.rulerColor(r))
	}

	p.drawGraphs(dst, area)

	if p.labels != nil {
		src := image.NewUniform(th.Label)
		p.labels.draw(dst, p.labels.layoutX(xr, p.opts.labelWeight, area, b), src)
		p.labels.draw(dst, p.labels.layoutY(yr, p.opts.labelWeight, area, b), src)
	}
	return nil
}

// byWeight returns rulers ordered lightest first so heavier lines end up
// on top where they cross.
func byWeight(rulers []axis.Ruler) []axis.Ruler {
	out := slices.Clone(rulers)
	slices.SortStableFunc(out, func(a, b axis.Ruler) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return out
}

func (p *Plot) rulerColor(r axis.Ruler) Color {
	th := p.opts.theme
	switch {
	case r.Border:
		return th.Border
	case r.Value == 0:
		return th.Axis
	}
	return th.gridColor(r.Weight)
}

func fillRect(dst *image.RGBA, r image.Rectangle, c Color) {
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// drawGraphs strokes every graph as a polyline over area.
func (p *Plot) drawGraphs(dst *image.RGBA, area image.Rectangle) {
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	for i, g := range p.graphs {
		s := p.sampler.Sample(g.Name, g.F, p.x)
		z.Reset(area.Dx(), area.Dy())
		if !p.trace(z, s) {
			continue
		}
		z.Draw(dst, area, image.NewUniform(p.opts.theme.graphColor(i)), image.Point{})
	}
}

type point struct{ x, y float64 }

// trace adds the stroke of s to z and reports whether anything was added.
//
// The polyline is broken at NaN samples and between two samples that are
// both outside the plot area, so asymptotes are not bridged.
func (p *Plot) trace(z *vector.Rasterizer, s sample.Series) bool {
	h := float64(p.y.ViewAreaSize())
	half := p.opts.lineWidth / 2
	var (
		prev     point
		prevSide int
		havePrev bool
		drew     bool
	)
	for i, v := range s.Y {
		if math.IsNaN(v) {
			havePrev = false
			continue
		}
		row := h - 1 - p.y.ValueToCoord(v)
		side := 0
		switch {
		case row < -half:
			side = -1
		case row > h-1+half:
			side = 1
		}
		// Rows far outside the area are pulled in to keep the rasterizer's
		// float32 coordinates meaningful.
		pt := point{float64(i) + 0.5, clamp(row, -h, 2*h) + 0.5}
		if havePrev && (prevSide == 0 || side == 0) {
			segment(z, prev, pt, half)
			drew = true
		}
		prev, prevSide, havePrev = pt, side, true
	}
	return drew
}

// segment adds a square-capped stroke of half-width half from a to b.
func segment(z *vector.Rasterizer, a, b point, half float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l*half, dy/l*half
	// a and b extended along the direction, then offset along the normal.
	a = point{a.x - ux, a.y - uy}
	b = point{b.x + ux, b.y + uy}
	z.MoveTo(float32(a.x-uy), float32(a.y+ux))
	z.LineTo(float32(b.x-uy), float32(b.y+ux))
	z.LineTo(float32(b.x+uy), float32(b.y-ux))
	z.LineTo(float32(a.x+uy), float32(a.y-ux))
	z.ClosePath()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
