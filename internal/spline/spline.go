// Package spline fits smooth parametric curves through 3D control
// points. Fitting is exact interpolation (no smoothing): the sampled
// curve passes through every control point, and its endpoints coincide
// with the first and last control point.
package spline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultSamples is the number of points each fitted curve is sampled
// at over the parameter domain [0,1].
const DefaultSamples = 100

var (
	// ErrTooFewPoints indicates fewer than two control points.
	ErrTooFewPoints = errors.New("spline: need at least 2 control points")

	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = errors.New("spline: sample count must be at least 2")
)

// Fit interpolates a parametric curve of the requested degree through
// the control points and samples it at `samples` evenly spaced
// parameter values over [0,1].
//
// The effective degree is min(degree, len(points)-1), clamped to
// [1,3]: two points always fit a line, three a parabola, four or more
// a natural cubic spline. The fallback is deterministic so small grids
// degrade without error.
func Fit(points []r3.Vec, degree, samples int) ([]r3.Vec, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, samples)
	}

	if degree > n-1 {
		degree = n - 1
	}
	if degree > 3 {
		degree = 3
	}
	if degree < 1 {
		degree = 1
	}

	var eval func(t float64) r3.Vec
	switch degree {
	case 1:
		eval = linearEval(points)
	case 2:
		eval = quadraticEval(points)
	default:
		eval = cubicEval(points)
	}

	out := make([]r3.Vec, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		out[i] = eval(t)
	}
	// Pin endpoints against accumulated rounding.
	out[0] = points[0]
	out[samples-1] = points[n-1]
	return out, nil
}

// linearEval interpolates piecewise linearly over the uniform
// parameterization t_i = i/(n-1).
func linearEval(points []r3.Vec) func(float64) r3.Vec {
	n := len(points)
	return func(t float64) r3.Vec {
		seg, u := segment(t, n)
		a, b := points[seg], points[seg+1]
		return r3.Add(r3.Scale(1-u, a), r3.Scale(u, b))
	}
}

// quadraticEval fits one parabola through exactly three points
// (Lagrange basis on t = 0, 1/2, 1). Used only when n == 3.
func quadraticEval(points []r3.Vec) func(float64) r3.Vec {
	p0, p1, p2 := points[0], points[1], points[2]
	return func(t float64) r3.Vec {
		l0 := 2 * (t - 0.5) * (t - 1)
		l1 := -4 * t * (t - 1)
		l2 := 2 * t * (t - 0.5)
		v := r3.Scale(l0, p0)
		v = r3.Add(v, r3.Scale(l1, p1))
		v = r3.Add(v, r3.Scale(l2, p2))
		return v
	}
}

// cubicEval builds a natural cubic spline per coordinate over the
// uniform parameterization and evaluates all three at once.
func cubicEval(points []r3.Vec) func(float64) r3.Vec {
	n := len(points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	mx := naturalSecondDerivs(xs)
	my := naturalSecondDerivs(ys)
	mz := naturalSecondDerivs(zs)

	return func(t float64) r3.Vec {
		seg, u := segment(t, n)
		return r3.Vec{
			X: cubicPiece(xs, mx, seg, u),
			Y: cubicPiece(ys, my, seg, u),
			Z: cubicPiece(zs, mz, seg, u),
		}
	}
}

// segment maps a global parameter t in [0,1] to a knot interval index
// and the local parameter u in [0,1] within it. n is the point count.
func segment(t float64, n int) (int, float64) {
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return n - 2, 1
	}
	scaled := t * float64(n-1)
	seg := int(scaled)
	if seg > n-2 {
		seg = n - 2
	}
	return seg, scaled - float64(seg)
}

// naturalSecondDerivs solves the tridiagonal system for the second
// derivatives of a natural cubic spline over uniformly spaced knots
// (y'' = 0 at both ends).
func naturalSecondDerivs(y []float64) []float64 {
	n := len(y)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	// Thomas algorithm; uniform spacing h=1 per knot interval folds
	// the 6/h^2 factor into the right-hand side.
	c := make([]float64, n)
	d := make([]float64, n)
	c[1] = 1.0 / 4.0
	d[1] = 6 * (y[2] - 2*y[1] + y[0]) / 4.0
	for i := 2; i < n-1; i++ {
		w := 4.0 - c[i-1]
		c[i] = 1.0 / w
		d[i] = (6*(y[i+1]-2*y[i]+y[i-1]) - d[i-1]) / w
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = d[i] - c[i]*m[i+1]
	}
	return m
}

// cubicPiece evaluates the spline piece on [seg, seg+1] at local u.
func cubicPiece(y, m []float64, seg int, u float64) float64 {
	a := y[seg]
	b := y[seg+1] - y[seg] - (2*m[seg]+m[seg+1])/6
	cc := m[seg] / 2
	dd := (m[seg+1] - m[seg]) / 6
	return a + u*(b+u*(cc+u*dd))
}
