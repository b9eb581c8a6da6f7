// Package pipeline runs the full evaluation chain for one frame:
// compile the formula, evaluate the height field, fit the wireframe
// curves, assemble the scene, and place the camera. Each run is a pure
// function of its parameters; nothing is cached between frames.
package pipeline

import (
	"fmt"

	"github.com/san-kum/surfviz/internal/camera"
	"github.com/san-kum/surfviz/internal/formula"
	"github.com/san-kum/surfviz/internal/grid"
	"github.com/san-kum/surfviz/internal/scene"
	"github.com/san-kum/surfviz/internal/spline"
)

// Params describes everything one frame depends on. The event loop
// owns a single Params value and edits it in place; Render never
// mutates it.
type Params struct {
	Formula    string
	GridSize   int
	Samples    int
	TimeFactor float64
	Camera     camera.Camera
	Toggles    scene.Toggles
}

// DefaultParams returns the startup parameters: the default formula on
// a 15x15 grid with the default camera and both trace classes visible.
func DefaultParams() Params {
	return Params{
		Formula:  formula.Default,
		GridSize: 15,
		Samples:  spline.DefaultSamples,
		Camera:   camera.New(),
	}
}

// Frame is the result of one pipeline run.
type Frame struct {
	Field  *grid.Field
	Scene  *scene.Scene
	Camera camera.Camera
}

// Render evaluates p into a complete frame. On error the returned
// frame is nil and the caller keeps whatever frame it had; camera and
// animation state live in Params and are untouched by a failed run.
func Render(p Params) (*Frame, error) {
	f, err := formula.Compile(p.Formula)
	if err != nil {
		return nil, err
	}
	field, err := grid.Evaluate(f, p.GridSize, p.TimeFactor)
	if err != nil {
		return nil, err
	}
	samples := p.Samples
	if samples <= 0 {
		samples = spline.DefaultSamples
	}
	s, err := scene.Build(field.X, field.Y, field.Z, samples, p.Toggles)
	if err != nil {
		return nil, fmt.Errorf("assemble scene: %w", err)
	}
	return &Frame{Field: field, Scene: s, Camera: p.Camera.Clamp()}, nil
}
