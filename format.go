package plot

import (
	"math"
	"slices"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Magnitudes outside [minPlain, maxPlain) are labeled in exponent form.
const (
	minPlain    = 1e-4
	maxPlain    = 1e7
	maxFraction = 15
)

// labelFormat renders ruler values as label text.
type labelFormat struct {
	printer *message.Printer
}

func newLabelFormat(tag language.Tag) labelFormat {
	return labelFormat{printer: message.NewPrinter(tag)}
}

// format renders v with as few digits as tell it apart from values tol or
// more away. A tol of 0 renders v to about nine significant digits.
func (f labelFormat) format(v, tol float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == 0:
		return "0"
	}
	a := math.Abs(v)
	if tol <= 0 {
		tol = a * 1e-9
	}
	if a >= maxPlain || a < minPlain {
		scale := math.Pow(10, decade(a))
		sig := decimals(v/scale, tol/scale) + 1
		return strconv.FormatFloat(v, 'g', sig, 64)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(decimals(v, tol))))
}

// decade returns the exponent of the largest power of ten not above a.
func decade(a float64) float64 {
	e := math.Floor(math.Log10(a))
	switch {
	case math.Pow(10, e) > a:
		e--
	case math.Pow(10, e+1) <= a:
		e++
	}
	return e
}

// decimals returns the fraction digits that render v to within tol.
func decimals(v, tol float64) int {
	p := 1.0
	for d := 0; d < maxFraction; d++ {
		if math.Abs(math.Round(v*p)/p-v) <= tol {
			return d
		}
		p *= 10
	}
	return maxFraction
}

// labelTolerance returns the rounding tolerance for a set of labels: a
// thousandth of the smallest gap between them, or 0 when there is no gap.
func labelTolerance(values []float64) float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	slices.Sort(finite)
	gap := math.Inf(1)
	for i := 1; i < len(finite); i++ {
		if d := finite[i] - finite[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 0
	}
	return gap * 1e-3
}
