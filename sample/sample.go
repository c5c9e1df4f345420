package sample

import (
	"math"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/logging"
)

// Func is a real function of one variable supplied by the host.
type Func func(x float64) float64

// Eval returns f(x), or NaN if f panics. NaN and ±Inf results are
// returned unchanged.
func Eval(f Func, x float64) (y float64) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger().Debug("sample: evaluation failed", "x", x, "panic", r)
			y = math.NaN()
		}
	}()
	return f(x)
}

// Series is one sample per pixel of the X axis: Y[i] is the function value
// at X[i], the value under pixel i.
type Series struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.X) }

// Sample evaluates f at the value under every pixel of x.
func Sample(f Func, x axis.Axis) Series {
	n := x.ViewAreaSize()
	s := Series{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		v := x.CoordToValue(float64(i))
		s.X[i] = v
		s.Y[i] = Eval(f, v)
	}
	return s
}
