package plot

import (
	"math"
	"slices"

	"github.com/gogpu/plot/sample"
)

var builtins = map[string]sample.Func{
	"identity":   func(x float64) float64 { return x },
	"square":     func(x float64) float64 { return x * x },
	"cube":       func(x float64) float64 { return x * x * x },
	"reciprocal": func(x float64) float64 { return 1 / x },
	"sqrt":       math.Sqrt,
	"cbrt":       math.Cbrt,
	"exp":        math.Exp,
	"ln":         math.Log,
	"log10":      math.Log10,
	"sin":        math.Sin,
	"cos":        math.Cos,
	"tan":        math.Tan,
	"atan":       math.Atan,
	"sinh":       math.Sinh,
	"tanh":       math.Tanh,
	"gamma":      math.Gamma,
	"erf":        math.Erf,
	"sinc": func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	},
	"gauss": func(x float64) float64 { return math.Exp(-x * x / 2) },
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return x
	},
}

// Builtin returns the catalogue function called name.
func Builtin(name string) (sample.Func, bool) {
	f, ok := builtins[name]
	return f, ok
}

// BuiltinNames returns the catalogue names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
