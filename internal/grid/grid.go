// Package grid builds the N×N coordinate mesh the surface is
// evaluated on and turns a compiled formula into a height field.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/surfviz/internal/formula"
)

// Coordinate range is fixed regardless of resolution.
const (
	Min = -5.0
	Max = 5.0

	// Resolution bounds accepted from the UI.
	MinSize = 2
	MaxSize = 100
)

var (
	// ErrGridSize indicates a resolution outside [MinSize, MaxSize].
	ErrGridSize = errors.New("grid: size out of range")

	// ErrDimensionMismatch indicates grids of differing shape reached
	// the evaluator. This is a programming error, not user input.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// Mesh returns N×N coordinate grids X and Y. Rows of X vary along the
// second index and rows of Y along the first, matching the usual
// meshgrid convention: X[i][j] = xs[j], Y[i][j] = ys[i].
func Mesh(n int) (*mat.Dense, *mat.Dense, error) {
	if n < MinSize || n > MaxSize {
		return nil, nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrGridSize, n, MinSize, MaxSize)
	}

	axis := make([]float64, n)
	floats.Span(axis, Min, Max)

	xg := mat.NewDense(n, n, nil)
	yg := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xg.Set(i, j, axis[j])
			yg.Set(i, j, axis[i])
		}
	}
	return xg, yg, nil
}

// Heights evaluates f over the mesh, producing the height field Z with
// the same shape as X and Y.
func Heights(f *formula.Formula, xg, yg *mat.Dense, timeFactor float64) (*mat.Dense, error) {
	xr, xc := xg.Dims()
	yr, yc := yg.Dims()
	if xr != yr || xc != yc {
		return nil, fmt.Errorf("%w: X is %dx%d, Y is %dx%d", ErrDimensionMismatch, xr, xc, yr, yc)
	}
	z, err := f.EvalGrid(xg, yg, timeFactor)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// Field is one fully evaluated frame: the mesh plus its height field.
type Field struct {
	X, Y, Z *mat.Dense
	N       int
	Time    float64
}

// Evaluate compiles nothing; it runs an already compiled formula over
// a fresh mesh of resolution n at the given time factor.
func Evaluate(f *formula.Formula, n int, timeFactor float64) (*Field, error) {
	xg, yg, err := Mesh(n)
	if err != nil {
		return nil, err
	}
	z, err := Heights(f, xg, yg, timeFactor)
	if err != nil {
		return nil, err
	}
	return &Field{X: xg, Y: yg, Z: z, N: n, Time: timeFactor}, nil
}

// MinMax returns the extremes of the height field.
func (f *Field) MinMax() (lo, hi float64) {
	lo, hi = f.Z.At(0, 0), f.Z.At(0, 0)
	r, c := f.Z.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := f.Z.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
