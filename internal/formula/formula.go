// Package formula compiles user-entered surface expressions into a
// small AST and evaluates them element-wise over coordinate grids.
// Only arithmetic, parentheses, the variables X, Y and time_factor,
// and a fixed allow-list of numeric functions are accepted; there is
// no dynamic code evaluation of any kind.
package formula

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Default is the radial sine wave shown on first launch.
const Default = "sin(sqrt(X^2 + Y^2) + time_factor)"

// Formula is a compiled expression. Safe for concurrent evaluation.
type Formula struct {
	src  string
	root node
}

// Compile parses src into an evaluable Formula. All identifier,
// function and arity checking happens here, so Eval cannot fail.
func Compile(src string) (*Formula, error) {
	root, err := parse(src)
	if err != nil {
		return nil, &Error{Source: src, Wrapped: err}
	}
	return &Formula{src: src, root: root}, nil
}

// Source returns the original expression text.
func (f *Formula) Source() string { return f.src }

// Eval evaluates the formula at a single point.
func (f *Formula) Eval(x, y, timeFactor float64) float64 {
	return f.root.eval(env{x: x, y: y, t: timeFactor})
}

// EvalGrid evaluates the formula element-wise over coordinate grids,
// returning a height field with the same shape.
func (f *Formula) EvalGrid(xg, yg *mat.Dense, timeFactor float64) (*mat.Dense, error) {
	r, c := xg.Dims()
	yr, yc := yg.Dims()
	if r != yr || c != yc {
		return nil, fmt.Errorf("formula: grid shape mismatch (%dx%d vs %dx%d)", r, c, yr, yc)
	}
	z := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			z.Set(i, j, f.root.eval(env{x: xg.At(i, j), y: yg.At(i, j), t: timeFactor}))
		}
	}
	return z, nil
}
