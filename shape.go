package plot

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// maxMeasured bounds the width cache; it is dropped when full.
const maxMeasured = 1024

// textShaper measures label text with HarfBuzz shaping so that kerning is
// accounted for when labels are laid out.
//
// A textShaper is not safe for concurrent use: font.Face and
// HarfbuzzShaper both carry mutable state.
type textShaper struct {
	face   *font.Face
	hb     shaping.HarfbuzzShaper
	size   fixed.Int26_6
	widths map[string]int
}

func newTextShaper(ttf []byte, size float64) (*textShaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("plot: parse label font for shaping: %w", err)
	}
	return &textShaper{
		face:   face,
		size:   fixed.Int26_6(size * 64),
		widths: make(map[string]int),
	}, nil
}

// width returns the advance of text in whole pixels.
func (s *textShaper) width(text string) int {
	if text == "" {
		return 0
	}
	if w, ok := s.widths[text]; ok {
		return w
	}
	runes := []rune(text)
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	})
	w := out.Advance.Ceil()
	if len(s.widths) >= maxMeasured {
		clear(s.widths)
	}
	s.widths[text] = w
	return w
}
