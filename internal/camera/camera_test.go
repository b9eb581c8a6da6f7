package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestEye(t *testing.T) {
	tests := []struct {
		name             string
		zoom, rx, ry, rz float64
		want             r3.Vec
	}{
		{"straight down z", 3, 0, 0, 0, r3.Vec{X: 0, Y: 0, Z: 3}},
		{"rx 90", 1, 90, 0, 0, r3.Vec{X: 0, Y: 1, Z: 0}},
		{"ry 90", 2, 0, 90, 0, r3.Vec{X: 2, Y: 0, Z: 2}},
		{"rx 90 ry 90", 1, 90, 90, 0, r3.Vec{X: 0, Y: 0, Z: 0}},
		{"rz has no effect", 3, 30, 40, 170, Camera{Zoom: 3, RotX: 30, RotY: 40}.Eye()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Camera{Zoom: tt.zoom, RotX: tt.rx, RotY: tt.ry, RotZ: tt.rz}
			got := c.Eye()
			if math.Abs(got.X-tt.want.X) > 1e-6 ||
				math.Abs(got.Y-tt.want.Y) > 1e-6 ||
				math.Abs(got.Z-tt.want.Z) > 1e-6 {
				t.Errorf("Eye() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	c := Camera{Zoom: 99, RotX: -500, RotY: 500, RotZ: 0}.Clamp()
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
	if c.RotX != MinRot {
		t.Errorf("RotX = %v, want %v", c.RotX, MinRot)
	}
	if c.RotY != MaxRot {
		t.Errorf("RotY = %v, want %v", c.RotY, MaxRot)
	}
}

func TestLookAt_Orthonormal(t *testing.T) {
	c := Camera{Zoom: 3, RotX: 35, RotY: -60, RotZ: 10}
	v := c.LookAt()
	for name, vec := range map[string]r3.Vec{"right": v.Right, "up": v.UpV, "fwd": v.Fwd} {
		if math.Abs(r3.Norm(vec)-1) > 1e-9 {
			t.Errorf("%s not unit length: %v", name, r3.Norm(vec))
		}
	}
	if math.Abs(r3.Dot(v.Right, v.Fwd)) > 1e-9 ||
		math.Abs(r3.Dot(v.Right, v.UpV)) > 1e-9 ||
		math.Abs(r3.Dot(v.UpV, v.Fwd)) > 1e-9 {
		t.Error("view basis is not orthogonal")
	}
}

func TestLookAt_OriginMapsAhead(t *testing.T) {
	c := Camera{Zoom: 5, RotX: 20, RotY: 45}
	v := c.LookAt()
	p := v.ToCamera(r3.Vec{})
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("origin should project to the view axis, got %v", p)
	}
	if math.Abs(p.Z-v.Distance) > 1e-9 {
		t.Errorf("origin depth = %v, want %v", p.Z, v.Distance)
	}
}

func TestLookAt_DegenerateUpAxis(t *testing.T) {
	// Eye on the up axis: forward is anti-parallel to up.
	c := Camera{Zoom: 3, RotX: 0, RotY: 0}
	v := c.LookAt()
	if r3.Norm(v.Right) == 0 || r3.Norm(v.UpV) == 0 {
		t.Fatal("degenerate view produced zero basis vectors")
	}
}
