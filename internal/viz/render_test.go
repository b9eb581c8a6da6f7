package viz

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/surfviz/internal/camera"
	"github.com/san-kum/surfviz/internal/scene"
)

func flatScene(visible bool) *scene.Scene {
	x := mat.NewDense(2, 2, []float64{-5, 5, -5, 5})
	y := mat.NewDense(2, 2, []float64{-5, -5, 5, 5})
	z := mat.NewDense(2, 2, []float64{0, 0, 0, 0})
	s := &scene.Scene{}
	s.Surface = scene.Surface{X: x, Y: y, Z: z, Visible: visible}
	return s
}

func drawnDots(c *Canvas) int {
	n := 0
	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if c.Dot(x, y) {
				n++
			}
		}
	}
	return n
}

func TestProjectOriginCentersOnCanvas(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewRenderer(c)
	cam := camera.New()
	view := cam.LookAt()

	sx, sy, depth, ok := r.Project(r3.Vec{}, view, 1)
	if !ok {
		t.Fatal("origin should be visible from the default camera")
	}
	if sx != c.DotWidth()/2 || sy != c.DotHeight()/2 {
		t.Errorf("origin projected to (%d,%d), want canvas center (%d,%d)",
			sx, sy, c.DotWidth()/2, c.DotHeight()/2)
	}
	if math.Abs(depth-view.Distance) > 1e-9 {
		t.Errorf("origin depth = %v, want eye distance %v", depth, view.Distance)
	}
}

func TestProjectCullsBehindEye(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewRenderer(c)
	cam := camera.Camera{Zoom: 2}
	view := cam.LookAt()

	// Twice the eye distance along the view axis puts the point
	// behind the camera.
	behind := r3.Scale(2, view.Eye)
	_, _, _, ok := r.Project(r3.Scale(1/worldScale, behind), view, 1)
	if ok {
		t.Error("point behind the eye should be culled")
	}
}

func TestRenderVisibleSurfaceDrawsDots(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewRenderer(c)
	r.Render(flatScene(true), camera.New())
	if drawnDots(c) == 0 {
		t.Error("visible surface rendered no dots")
	}
}

func TestRenderHiddenSurfaceDrawsNothing(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewRenderer(c)
	r.Render(flatScene(false), camera.New())
	if n := drawnDots(c); n != 0 {
		t.Errorf("hidden surface rendered %d dots, want 0", n)
	}
	for _, line := range strings.Split(c.String(), "\n") {
		for _, ch := range line {
			if ch != rune(brailleBase) {
				t.Fatalf("hidden scene produced non-blank cell %q", ch)
			}
		}
	}
}

func TestRenderHonorsCurveVisibility(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewRenderer(c)
	s := flatScene(false)
	s.Curves = []scene.Curve{
		{Points: []r3.Vec{{X: -5}, {X: 5}}, Row: true, Visible: false},
	}
	r.Render(s, camera.New())
	if n := drawnDots(c); n != 0 {
		t.Errorf("hidden curve rendered %d dots, want 0", n)
	}

	s.Curves[0].Visible = true
	r.Render(s, camera.New())
	if drawnDots(c) == 0 {
		t.Error("visible curve rendered no dots")
	}
}

func TestRenderNilSceneClearsCanvas(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 3)
	NewRenderer(c).Render(nil, camera.New())
	if drawnDots(c) != 0 {
		t.Error("rendering a nil scene should clear the canvas")
	}
}
