package formula

import (
	"math"
	"sort"
)

// The fixed numeric vocabulary available to formulas. Everything is
// element-wise over the grid; no identifier outside these tables and
// the three variables resolves.
var unaryFuncs = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

var binaryFuncs = map[string]func(float64, float64) float64{
	"pow":   math.Pow,
	"atan2": math.Atan2,
	"min":   math.Min,
	"max":   math.Max,
	"mod":   math.Mod,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Functions returns the sorted names of the allow-listed functions,
// for help text.
func Functions() []string {
	names := make([]string, 0, len(unaryFuncs)+len(binaryFuncs))
	for name := range unaryFuncs {
		names = append(names, name)
	}
	for name := range binaryFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
