package scene

import (
	"math"
	"testing"

	"github.com/san-kum/surfviz/internal/formula"
	"github.com/san-kum/surfviz/internal/grid"
)

func buildField(t *testing.T, n int) (*Scene, error) {
	t.Helper()
	f, err := formula.Compile(formula.Default)
	if err != nil {
		t.Fatal(err)
	}
	field, err := grid.Evaluate(f, n, 0)
	if err != nil {
		t.Fatal(err)
	}
	return Build(field.X, field.Y, field.Z, 100, Toggles{})
}

func TestBuild_CurveCount(t *testing.T) {
	for _, n := range []int{2, 3, 5, 12, 40} {
		s, err := buildField(t, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(s.Curves) != 2*n {
			t.Errorf("n=%d: got %d curves, want %d", n, len(s.Curves), 2*n)
		}
		rows, cols := 0, 0
		for _, c := range s.Curves {
			if len(c.Points) != 100 {
				t.Fatalf("n=%d: curve has %d samples, want 100", n, len(c.Points))
			}
			if c.Row {
				rows++
			} else {
				cols++
			}
		}
		if rows != n || cols != n {
			t.Errorf("n=%d: got %d row / %d column traces, want %d each", n, rows, cols, n)
		}
	}
}

func TestBuild_CurveEndpoints(t *testing.T) {
	n := 8
	f, _ := formula.Compile("X + Y")
	field, err := grid.Evaluate(f, n, 0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Build(field.X, field.Y, field.Z, 100, Toggles{})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range s.Curves {
		var fx, fy, fz, lx, ly, lz float64
		if c.Row {
			fx, fy, fz = field.X.At(c.Index, 0), field.Y.At(c.Index, 0), field.Z.At(c.Index, 0)
			lx, ly, lz = field.X.At(c.Index, n-1), field.Y.At(c.Index, n-1), field.Z.At(c.Index, n-1)
		} else {
			fx, fy, fz = field.X.At(0, c.Index), field.Y.At(0, c.Index), field.Z.At(0, c.Index)
			lx, ly, lz = field.X.At(n-1, c.Index), field.Y.At(n-1, c.Index), field.Z.At(n-1, c.Index)
		}
		first, last := c.Points[0], c.Points[len(c.Points)-1]
		if math.Abs(first.X-fx) > 1e-9 || math.Abs(first.Y-fy) > 1e-9 || math.Abs(first.Z-fz) > 1e-9 {
			t.Fatalf("curve (row=%v idx=%d) start %v != control point (%v,%v,%v)", c.Row, c.Index, first, fx, fy, fz)
		}
		if math.Abs(last.X-lx) > 1e-9 || math.Abs(last.Y-ly) > 1e-9 || math.Abs(last.Z-lz) > 1e-9 {
			t.Fatalf("curve (row=%v idx=%d) end %v != control point (%v,%v,%v)", c.Row, c.Index, last, lx, ly, lz)
		}
	}
}

func TestToggles_Parity(t *testing.T) {
	var tg Toggles
	if !tg.SurfaceVisible() || !tg.GridVisible() {
		t.Fatal("default should be visible for both trace classes")
	}
	tg.ClickSurface()
	if tg.SurfaceVisible() {
		t.Error("1 click: surface should be hidden")
	}
	if !tg.GridVisible() {
		t.Error("surface clicks must not affect the wireframe")
	}
	tg.ClickSurface()
	if !tg.SurfaceVisible() {
		t.Error("2 clicks: surface should be visible again")
	}
	tg.ClickGrid()
	tg.ClickGrid()
	tg.ClickGrid()
	if tg.GridVisible() {
		t.Error("3 clicks: wireframe should be hidden")
	}
}

func TestBuild_AppliesToggles(t *testing.T) {
	f, _ := formula.Compile("0")
	field, err := grid.Evaluate(f, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	tg := Toggles{SurfaceClicks: 1, GridClicks: 2}
	s, err := Build(field.X, field.Y, field.Z, 10, tg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Surface.Visible {
		t.Error("surface should be hidden after an odd click count")
	}
	for _, c := range s.Curves {
		if !c.Visible {
			t.Error("curves should stay visible after an even click count")
		}
	}
}
