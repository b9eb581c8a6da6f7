package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/surfviz/internal/formula"
)

func TestMesh_Shapes(t *testing.T) {
	for _, n := range []int{2, 3, 4, 10, 50, 100} {
		xg, yg, err := Mesh(n)
		if err != nil {
			t.Fatalf("Mesh(%d): %v", n, err)
		}
		xr, xc := xg.Dims()
		yr, yc := yg.Dims()
		if xr != n || xc != n || yr != n || yc != n {
			t.Errorf("Mesh(%d): shapes %dx%d / %dx%d, want %dx%d", n, xr, xc, yr, yc, n, n)
		}
	}
}

func TestMesh_Linspace(t *testing.T) {
	n := 11
	xg, yg, err := Mesh(n)
	if err != nil {
		t.Fatal(err)
	}
	step := (Max - Min) / float64(n-1)
	for j := 0; j < n; j++ {
		want := Min + float64(j)*step
		if got := xg.At(0, j); math.Abs(got-want) > 1e-12 {
			t.Errorf("X[0][%d] = %v, want %v", j, got, want)
		}
		if got := yg.At(j, 0); math.Abs(got-want) > 1e-12 {
			t.Errorf("Y[%d][0] = %v, want %v", j, got, want)
		}
	}
	// X constant down columns, Y constant across rows.
	for i := 0; i < n; i++ {
		if xg.At(i, 3) != xg.At(0, 3) {
			t.Error("X should not vary along first index")
		}
		if yg.At(3, i) != yg.At(3, 0) {
			t.Error("Y should not vary along second index")
		}
	}
	if xg.At(0, 0) != Min || xg.At(0, n-1) != Max {
		t.Errorf("X endpoints = %v, %v; want %v, %v", xg.At(0, 0), xg.At(0, n-1), Min, Max)
	}
}

func TestMesh_SizeBounds(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 101, 1000} {
		if _, _, err := Mesh(n); !errors.Is(err, ErrGridSize) {
			t.Errorf("Mesh(%d): expected ErrGridSize, got %v", n, err)
		}
	}
}

func TestEvaluate_DefaultFormula(t *testing.T) {
	f, err := formula.Compile(formula.Default)
	if err != nil {
		t.Fatal(err)
	}
	field, err := Evaluate(f, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	r, c := field.Z.Dims()
	if r != 20 || c != 20 {
		t.Fatalf("Z shape = %dx%d, want 20x20", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, y := field.X.At(i, j), field.Y.At(i, j)
			want := math.Sin(math.Sqrt(x*x + y*y))
			if got := field.Z.At(i, j); math.Abs(got-want) > 1e-9 {
				t.Fatalf("Z[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestField_MinMax(t *testing.T) {
	f, _ := formula.Compile("X")
	field, err := Evaluate(f, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := field.MinMax()
	if lo != Min || hi != Max {
		t.Errorf("MinMax = %v, %v; want %v, %v", lo, hi, Min, Max)
	}
}
