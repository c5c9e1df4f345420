package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/plot"
)

// panFraction is the share of the plot area an arrow key pans by.
const panFraction = 0.1

var selectionColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}

// viewer is the ebiten game that hosts a plot. Gestures update the plot in
// Update; the frame is re-rendered only after a change.
type viewer struct {
	p *plot.Plot

	frame *image.RGBA
	img   *ebiten.Image
	dirty bool

	dragging  bool
	lastX     int
	lastY     int
	selecting bool
	selX      int
	selY      int

	title string
}

func newViewer(p *plot.Plot) *viewer {
	return &viewer{p: p, dirty: true}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	v.mouse(x, y)
	v.keys()
	v.updateTitle(x, y)
	return nil
}

func (v *viewer) mouse(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragging, v.lastX, v.lastY = true, x, y
	}
	if v.dragging {
		if dx, dy := x-v.lastX, y-v.lastY; dx != 0 || dy != 0 {
			v.dirty = v.p.Pan(float64(dx), float64(dy)) || v.dirty
			v.lastX, v.lastY = x, y
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			v.dragging = false
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		v.selecting, v.selX, v.selY = true, x, y
	}
	if v.selecting && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		v.selecting = false
		v.dirty = v.p.ZoomRect(float64(v.selX), float64(v.selY), float64(x), float64(y)) || v.dirty
	}

	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	in, fast := wy > 0, shift()
	px, py := float64(x), float64(y)
	var changed bool
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		changed = v.p.ZoomAxis(plot.AxisX, px, py, in, fast)
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		changed = v.p.ZoomAxis(plot.AxisY, px, py, in, fast)
	default:
		changed = v.p.Zoom(px, py, in, fast)
	}
	v.dirty = changed || v.dirty
}

func (v *viewer) keys() {
	area := v.p.Area()
	cx := float64(area.Min.X+area.Max.X) / 2
	cy := float64(area.Min.Y+area.Max.Y) / 2
	stepX := float64(area.Dx()) * panFraction
	stepY := float64(area.Dy()) * panFraction

	id := plot.AxisX
	if shift() {
		id = plot.AxisY
	}

	var changed bool
	pressed := inpututil.IsKeyJustPressed
	switch {
	case pressed(ebiten.KeyArrowLeft):
		changed = v.p.Pan(stepX, 0)
	case pressed(ebiten.KeyArrowRight):
		changed = v.p.Pan(-stepX, 0)
	case pressed(ebiten.KeyArrowUp):
		changed = v.p.Pan(0, stepY)
	case pressed(ebiten.KeyArrowDown):
		changed = v.p.Pan(0, -stepY)
	case pressed(ebiten.KeyEqual), pressed(ebiten.KeyNumpadAdd):
		changed = v.p.Zoom(cx, cy, true, false)
	case pressed(ebiten.KeyMinus), pressed(ebiten.KeyNumpadSubtract):
		changed = v.p.Zoom(cx, cy, false, false)
	case pressed(ebiten.KeyBracketLeft):
		changed = v.p.ShiftLog(id, plot.MinLog, -1)
	case pressed(ebiten.KeyBracketRight):
		changed = v.p.ShiftLog(id, plot.MinLog, 1)
	case pressed(ebiten.KeyComma):
		changed = v.p.ShiftLog(id, plot.MaxLog, -1)
	case pressed(ebiten.KeyPeriod):
		changed = v.p.ShiftLog(id, plot.MaxLog, 1)
	case pressed(ebiten.KeyD):
		changed = v.p.SetDefault()
	case pressed(ebiten.KeyR), pressed(ebiten.KeyHome):
		changed = v.p.Reset()
	}
	v.dirty = changed || v.dirty
}

func shift() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

func (v *viewer) updateTitle(x, y int) {
	title := "plot"
	if vx, vy, ok := v.p.ValueAt(float64(x), float64(y)); ok {
		title = fmt.Sprintf("plot  x=%.6g  y=%.6g", vx, vy)
	}
	if title != v.title {
		v.title = title
		ebiten.SetWindowTitle(title)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	w, h := v.p.Width(), v.p.Height()
	if v.frame == nil || v.frame.Bounds().Dx() != w || v.frame.Bounds().Dy() != h {
		v.frame = image.NewRGBA(image.Rect(0, 0, w, h))
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(w, h)
		v.dirty = true
	}
	if v.dirty {
		if err := v.p.Render(v.frame); err != nil {
			plot.Logger().Warn("render failed", "err", err)
			return
		}
		v.img.WritePixels(v.frame.Pix)
		v.dirty = false
	}
	screen.DrawImage(v.img, nil)

	if v.selecting {
		x, y := ebiten.CursorPosition()
		x0, x1 := min(v.selX, x), max(v.selX, x)
		y0, y1 := min(v.selY, y), max(v.selY, y)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, selectionColor, false)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if v.p.Resize(outsideWidth, outsideHeight) {
		v.dirty = true
	}
	return v.p.Width(), v.p.Height()
}
