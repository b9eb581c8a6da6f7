// Package scene assembles the renderable description of one frame:
// a surface trace built from the height field plus 2N smooth wireframe
// curves, with click-parity visibility applied to each trace class.
package scene

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/surfviz/internal/spline"
)

// Surface is the height-field trace.
type Surface struct {
	X, Y, Z *mat.Dense
	Visible bool
}

// Curve is one sampled wireframe trace along a grid row or column.
type Curve struct {
	Points  []r3.Vec
	Row     bool // true for row traces, false for column traces
	Index   int  // source row/column index
	Visible bool
}

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Surface Surface
	Curves  []Curve
}

// Toggles counts clicks on the two visibility buttons since load.
// Visibility is the parity of the count: an odd total flips the trace
// class from its default (visible); an even total restores it.
type Toggles struct {
	SurfaceClicks uint
	GridClicks    uint
}

// ClickSurface registers one press of the surface toggle.
func (t *Toggles) ClickSurface() { t.SurfaceClicks++ }

// ClickGrid registers one press of the wireframe toggle.
func (t *Toggles) ClickGrid() { t.GridClicks++ }

// SurfaceVisible reports the surface trace's effective visibility.
func (t Toggles) SurfaceVisible() bool { return t.SurfaceClicks%2 == 0 }

// GridVisible reports the wireframe traces' effective visibility.
func (t Toggles) GridVisible() bool { return t.GridClicks%2 == 0 }

// Build fits one curve through every row and every column of the
// height field and assembles the full scene. An N×N field always
// yields exactly 2N curves, each sampled at `samples` points.
func Build(xg, yg, zg *mat.Dense, samples int, toggles Toggles) (*Scene, error) {
	r, c := zg.Dims()
	if r != c {
		return nil, fmt.Errorf("scene: height field must be square, got %dx%d", r, c)
	}
	n := r

	s := &Scene{
		Surface: Surface{X: xg, Y: yg, Z: zg, Visible: toggles.SurfaceVisible()},
		Curves:  make([]Curve, 0, 2*n),
	}
	gridVisible := toggles.GridVisible()

	pts := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts[j] = r3.Vec{X: xg.At(i, j), Y: yg.At(i, j), Z: zg.At(i, j)}
		}
		fitted, err := spline.Fit(pts, 3, samples)
		if err != nil {
			return nil, fmt.Errorf("scene: row %d: %w", i, err)
		}
		s.Curves = append(s.Curves, Curve{Points: fitted, Row: true, Index: i, Visible: gridVisible})
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			pts[i] = r3.Vec{X: xg.At(i, j), Y: yg.At(i, j), Z: zg.At(i, j)}
		}
		fitted, err := spline.Fit(pts, 3, samples)
		if err != nil {
			return nil, fmt.Errorf("scene: column %d: %w", j, err)
		}
		s.Curves = append(s.Curves, Curve{Points: fitted, Row: false, Index: j, Visible: gridVisible})
	}
	return s, nil
}
