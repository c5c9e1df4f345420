package plot

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"

	"github.com/gogpu/plot/axis"
)

// labelGap is the minimum distance in pixels between two labels and
// between a label and the plot area.
const labelGap = 4

// labeler draws ruler labels in the padding around the plot area.
type labeler struct {
	face    font.Face
	shaper  *textShaper
	format  labelFormat
	ascent  int
	descent int
}

func newLabeler(size float64) (*labeler, error) {
	otf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot: parse label font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("plot: label face: %w", err)
	}
	shaper, err := newTextShaper(goregular.TTF, size)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	return &labeler{
		face:    face,
		shaper:  shaper,
		format:  newLabelFormat(language.English),
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// label is one placed piece of text; box is in window pixels.
type label struct {
	text     string
	box      image.Rectangle
	baseline fixed.Point26_6
}

// candidates returns the rulers that deserve a label, heaviest first.
func candidates(rulers []axis.Ruler, minWeight float64) []axis.Ruler {
	var out []axis.Ruler
	for _, r := range rulers {
		if r.Border || r.Weight < minWeight || math.IsInf(r.Value, 0) {
			continue
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b axis.Ruler) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return out
}

func values(rulers []axis.Ruler) []float64 {
	v := make([]float64, len(rulers))
	for i, r := range rulers {
		v[i] = r.Value
	}
	return v
}

// layoutX places labels centered under their rulers, below area. Labels
// that would overlap a heavier one or leave bounds are dropped.
func (l *labeler) layoutX(rulers []axis.Ruler, minWeight float64, area, bounds image.Rectangle) []label {
	rs := candidates(rulers, minWeight)
	tol := labelTolerance(values(rs))
	top := area.Max.Y + labelGap
	var placed []label
	for _, r := range rs {
		text := l.format.format(r.Value, tol)
		w := l.shaper.width(text)
		x := area.Min.X + r.ViewCoord - w/2
		box := image.Rect(x, top, x+w, top+l.ascent+l.descent)
		if !box.In(bounds) || overlaps(placed, box.Inset(-labelGap/2)) {
			continue
		}
		placed = append(placed, label{
			text:     text,
			box:      box,
			baseline: fixed.P(x, top+l.ascent),
		})
	}
	return placed
}

// layoutY places labels right-aligned left of area, vertically centered on
// their rulers.
func (l *labeler) layoutY(rulers []axis.Ruler, minWeight float64, area, bounds image.Rectangle) []label {
	rs := candidates(rulers, minWeight)
	tol := labelTolerance(values(rs))
	right := area.Min.X - labelGap
	var placed []label
	for _, r := range rs {
		text := l.format.format(r.Value, tol)
		w := l.shaper.width(text)
		row := area.Max.Y - 1 - r.ViewCoord
		base := row + (l.ascent-l.descent)/2
		box := image.Rect(right-w, base-l.ascent, right, base+l.descent)
		if !box.In(bounds) || overlaps(placed, box.Inset(-labelGap/2)) {
			continue
		}
		placed = append(placed, label{
			text:     text,
			box:      box,
			baseline: fixed.P(right-w, base),
		})
	}
	return placed
}

func overlaps(placed []label, box image.Rectangle) bool {
	for _, p := range placed {
		if p.box.Overlaps(box) {
			return true
		}
	}
	return false
}

// draw renders labels onto dst in src.
func (l *labeler) draw(dst *image.RGBA, labels []label, src image.Image) {
	d := font.Drawer{Dst: dst, Src: src, Face: l.face}
	for _, lb := range labels {
		d.Dot = lb.baseline
		d.DrawString(lb.text)
	}
}
