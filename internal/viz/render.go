// Package viz renders assembled scenes onto a braille terminal canvas
// using a perspective camera and a painter's depth sort.
package viz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/surfviz/internal/camera"
	"github.com/san-kum/surfviz/internal/scene"
)

// worldScale normalizes the fixed [-5,5] coordinate range to roughly
// unit extent so camera zoom values in [1,10] orbit outside the data.
const worldScale = 1.0 / 5.0

// nearPlane culls geometry at or behind the eye.
const nearPlane = 1e-3

type segment struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Renderer projects scenes through a camera onto a canvas.
type Renderer struct {
	canvas *Canvas
}

func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Canvas exposes the target canvas (for export).
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Render clears the canvas and draws every visible trace of the scene
// as projected by cam. Curves are drawn as polylines; the surface as
// its grid cell edges. Segments are depth-sorted far-to-near before
// rasterizing.
func (r *Renderer) Render(s *scene.Scene, cam camera.Camera) {
	r.canvas.Clear()
	if s == nil {
		return
	}
	view := cam.LookAt()

	// Normalize z to the same half-extent as x and y so tall surfaces
	// stay in frame regardless of the formula.
	zHalf := 1.0
	if s.Surface.Z != nil {
		rows, cols := s.Surface.Z.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if v := math.Abs(s.Surface.Z.At(i, j)); v > zHalf {
					zHalf = v
				}
			}
		}
	}

	var segs []segment
	if s.Surface.Visible && s.Surface.Z != nil {
		segs = r.surfaceSegments(s, view, zHalf, segs)
	}
	for _, c := range s.Curves {
		if !c.Visible {
			continue
		}
		segs = r.curveSegments(c.Points, view, zHalf, segs)
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].depth > segs[j].depth })
	for _, sg := range segs {
		r.canvas.Line(sg.x1, sg.y1, sg.x2, sg.y2)
	}
}

func (r *Renderer) surfaceSegments(s *scene.Scene, view camera.View, zHalf float64, segs []segment) []segment {
	rows, cols := s.Surface.Z.Dims()
	at := func(i, j int) r3.Vec {
		return r3.Vec{
			X: s.Surface.X.At(i, j),
			Y: s.Surface.Y.At(i, j),
			Z: s.Surface.Z.At(i, j),
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j+1 < cols {
				segs = r.appendSegment(at(i, j), at(i, j+1), view, zHalf, segs)
			}
			if i+1 < rows {
				segs = r.appendSegment(at(i, j), at(i+1, j), view, zHalf, segs)
			}
		}
	}
	return segs
}

func (r *Renderer) curveSegments(pts []r3.Vec, view camera.View, zHalf float64, segs []segment) []segment {
	for i := 1; i < len(pts); i++ {
		segs = r.appendSegment(pts[i-1], pts[i], view, zHalf, segs)
	}
	return segs
}

func (r *Renderer) appendSegment(a, b r3.Vec, view camera.View, zHalf float64, segs []segment) []segment {
	x1, y1, d1, ok1 := r.Project(a, view, zHalf)
	x2, y2, d2, ok2 := r.Project(b, view, zHalf)
	if !ok1 && !ok2 {
		return segs
	}
	return append(segs, segment{x1, y1, x2, y2, (d1 + d2) / 2})
}

// Project maps a world point to dot coordinates on the canvas. The
// returned depth is the camera-space distance; ok is false when the
// point is behind the near plane or lands outside the canvas.
func (r *Renderer) Project(p r3.Vec, view camera.View, zHalf float64) (int, int, float64, bool) {
	world := r3.Vec{X: p.X * worldScale, Y: p.Y * worldScale, Z: p.Z / zHalf}
	cp := view.ToCamera(world)
	if cp.Z <= nearPlane {
		return 0, 0, cp.Z, false
	}

	dw, dh := r.canvas.DotWidth(), r.canvas.DotHeight()
	minDim := float64(dh)
	if float64(dw) < minDim {
		minDim = float64(dw)
	}
	// Perspective divide; the focal factor fills ~2/3 of the short
	// dimension at unit distance.
	focal := minDim / 3.0 * math.Max(view.Distance, 1e-6)
	sx := dw/2 + int(cp.X/cp.Z*focal)
	sy := dh/2 - int(cp.Y/cp.Z*focal)
	visible := sx >= 0 && sx < dw && sy >= 0 && sy < dh
	return sx, sy, cp.Z, visible
}
