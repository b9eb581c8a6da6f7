// Package camera converts the UI's zoom and rotation controls into a
// 3D eye position and a view basis for projecting scenes.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// UI control ranges.
const (
	MinZoom = 1.0
	MaxZoom = 10.0
	MinRot  = -180.0
	MaxRot  = 180.0
)

// Camera holds the user-controlled view parameters. Angles are in
// degrees. RotZ is accepted and stored but does not participate in the
// eye placement; the projection is a simplified spherical camera, not
// a full rotation matrix, and the inert axis is kept for compatibility
// with the original control layout.
type Camera struct {
	Zoom float64
	RotX float64
	RotY float64
	RotZ float64
}

// New returns a camera looking down the z axis from the default zoom.
func New() Camera {
	return Camera{Zoom: 3, RotX: 0, RotY: 0, RotZ: 0}
}

// Up is the fixed up-vector.
func Up() r3.Vec { return r3.Vec{X: 0, Y: 0, Z: 1} }

// Eye returns the eye position derived from zoom and the x/y rotation
// angles:
//
//	eye_x = zoom * sin(ry) * cos(rx)
//	eye_y = zoom * sin(rx) * cos(ry)
//	eye_z = zoom * cos(rx)
func (c Camera) Eye() r3.Vec {
	rx := c.RotX * math.Pi / 180
	ry := c.RotY * math.Pi / 180
	return r3.Vec{
		X: c.Zoom * math.Sin(ry) * math.Cos(rx),
		Y: c.Zoom * math.Sin(rx) * math.Cos(ry),
		Z: c.Zoom * math.Cos(rx),
	}
}

// Clamp bounds every control to its UI range.
func (c Camera) Clamp() Camera {
	c.Zoom = clamp(c.Zoom, MinZoom, MaxZoom)
	c.RotX = clamp(c.RotX, MinRot, MaxRot)
	c.RotY = clamp(c.RotY, MinRot, MaxRot)
	c.RotZ = clamp(c.RotZ, MinRot, MaxRot)
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View is an orthonormal basis looking from the eye toward the origin
// with the fixed up-vector, used to transform world points to camera
// space for projection.
type View struct {
	Eye             r3.Vec
	Right, UpV, Fwd r3.Vec
	Distance        float64
}

// LookAt builds the view basis for the camera's current eye position.
// When the eye sits on the up axis (forward parallel to up) the right
// vector is pinned to +X so the view stays defined.
func (c Camera) LookAt() View {
	eye := c.Eye()
	dist := r3.Norm(eye)
	fwd := r3.Scale(-1, eye)
	if dist > 0 {
		fwd = r3.Scale(1/dist, fwd)
	} else {
		fwd = r3.Vec{X: 0, Y: 0, Z: -1}
	}

	right := r3.Cross(fwd, Up())
	degenerate := r3.Norm(right) < 1e-9
	if degenerate {
		right = r3.Vec{X: 1, Y: 0, Z: 0}
	} else {
		right = r3.Scale(1/r3.Norm(right), right)
	}
	up := r3.Cross(right, fwd)

	return View{
		Eye:      eye,
		Right:    right,
		UpV:      up,
		Fwd:      fwd,
		Distance: dist,
	}
}

// ToCamera transforms a world point into camera coordinates: x along
// Right, y along UpV, z the distance in front of the eye.
func (v View) ToCamera(p r3.Vec) r3.Vec {
	d := r3.Sub(p, v.Eye)
	return r3.Vec{
		X: r3.Dot(d, v.Right),
		Y: r3.Dot(d, v.UpV),
		Z: r3.Dot(d, v.Fwd),
	}
}
