package plot

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTheme has colors that are easy to tell apart in pixel checks.
func testTheme() Theme {
	return Theme{
		Background: Black,
		Grid:       RGB(0, 0, 1),
		Axis:       RGB(0, 1, 0),
		Border:     RGB(0, 0, 0.5),
		Label:      White,
		Graphs:     []Color{RGB(1, 0, 0)},
	}
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want Color) {
	t.Helper()
	got := img.RGBAAt(x, y)
	w := color.RGBAModel.Convert(want).(color.RGBA)
	assert.InDelta(t, w.R, got.R, 1, "R at (%d,%d)", x, y)
	assert.InDelta(t, w.G, got.G, 1, "G at (%d,%d)", x, y)
	assert.InDelta(t, w.B, got.B, 1, "B at (%d,%d)", x, y)
	assert.InDelta(t, w.A, got.A, 1, "A at (%d,%d)", x, y)
}

func TestRenderTargetSize(t *testing.T) {
	p := newTestPlot(t)
	err := p.Render(image.NewRGBA(image.Rect(0, 0, 100, 100)))
	assert.ErrorIs(t, err, ErrTargetSize)

	// Bounds need not start at the origin.
	img := image.NewRGBA(image.Rect(5, 5, 205, 105))
	require.NoError(t, p.Render(img))
}

func TestRenderBackgroundAndAxes(t *testing.T) {
	p := newTestPlot(t, WithTheme(testTheme()))
	img := p.Image()
	require.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	assertPixel(t, img, 0, 0, Black)
	assertPixel(t, img, 199, 99, Black)

	// Zero sits at view coordinate 89.5 on X and 39.5 on Y, drawn at the
	// rounded pixels 90 and 40.
	assertPixel(t, img, 10+90, 20, RGB(0, 1, 0))
	assertPixel(t, img, 30, 89-40, RGB(0, 1, 0))

	// The rulers at ±10 share their pixels with the borders and win.
	assertPixel(t, img, 10, 20, RGB(0, 0, 1))
	assertPixel(t, img, 189, 20, RGB(0, 0, 1))
}

func TestRenderBorders(t *testing.T) {
	narrow := window10
	narrow.MinValue, narrow.MaxValue = ptr(-9.5), ptr(9.5)
	p := newTestPlot(t, WithTheme(testTheme()), WithXMeasures(narrow))
	img := p.Image()

	assertPixel(t, img, 10, 20, RGB(0, 0, 0.5))
	assertPixel(t, img, 189, 20, RGB(0, 0, 0.5))
}

func TestRenderGraph(t *testing.T) {
	p := newTestPlot(t, WithTheme(testTheme()), WithLineWidth(3))
	require.NoError(t, p.AddGraph("zero", func(float64) float64 { return 0 }))
	img := p.Image()

	// y = 0 maps to row 39.5 of the area; a 3px stroke covers rows 39 and
	// 40 completely.
	assertPixel(t, img, 10+30, 10+39, RGB(1, 0, 0))
	assertPixel(t, img, 10+30, 10+40, RGB(1, 0, 0))
	assertPixel(t, img, 10+30, 10+25, Black)
}

func TestRenderSkipsNaN(t *testing.T) {
	ref := newTestPlot(t, WithTheme(testTheme())).Image()

	p := newTestPlot(t, WithTheme(testTheme()))
	require.NoError(t, p.AddGraph("nan", func(float64) float64 { return math.NaN() }))
	require.NoError(t, p.AddGraph("panics", func(float64) float64 { panic("boom") }))
	assert.Equal(t, ref.Pix, p.Image().Pix)
}

func TestRenderBreaksAtAsymptote(t *testing.T) {
	p := newTestPlot(t, WithTheme(testTheme()))
	require.NoError(t, p.AddGraph("reciprocal", func(x float64) float64 { return 1 / x }))
	img := p.Image()

	red := color.RGBA{R: 0xff, A: 0xff}
	for col := 10 + 88; col <= 10+91; col++ {
		for row := 10 + 30; row <= 10+50; row++ {
			assert.NotEqual(t, red, img.RGBAAt(col, row), "pixel (%d,%d) bridges the pole", col, row)
		}
	}
}

func TestRenderLabels(t *testing.T) {
	p, err := New(400, 300, WithTheme(testTheme()),
		WithXMeasures(window10), WithYMeasures(window10))
	require.NoError(t, err)
	img := p.Image()

	count := func(r image.Rectangle) int {
		n := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.RGBAAt(x, y) != (color.RGBA{A: 0xff}) {
					n++
				}
			}
		}
		return n
	}
	area := p.Area()
	assert.Positive(t, count(image.Rect(0, area.Max.Y, 400, 300)), "X labels below the area")
	assert.Positive(t, count(image.Rect(0, 0, area.Min.X, 300)), "Y labels left of the area")
	assert.Zero(t, count(image.Rect(area.Max.X, 0, 400, area.Min.Y)), "top right corner stays empty")
}

func TestSegment(t *testing.T) {
	// A horizontal stroke covers its rows fully and nothing far away.
	p := newTestPlot(t, WithTheme(testTheme()), WithLineWidth(4))
	require.NoError(t, p.AddGraph("one", func(float64) float64 { return 5 }))
	img := p.Image()

	// y = 5 maps to view coordinate 59.25, area row 19.75.
	assertPixel(t, img, 10+50, 10+20, RGB(1, 0, 0))
	assertPixel(t, img, 10+50, 10+10, Black)
}
