package pipeline_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/surfviz/internal/camera"
	"github.com/san-kum/surfviz/internal/formula"
	"github.com/san-kum/surfviz/internal/grid"
	"github.com/san-kum/surfviz/internal/pipeline"
)

var _ = Describe("Render", func() {
	var p pipeline.Params

	BeforeEach(func() {
		p = pipeline.DefaultParams()
	})

	It("evaluates the default parameters into a complete frame", func() {
		frame, err := pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Field.N).To(Equal(15))

		rows, cols := frame.Field.Z.Dims()
		Expect(rows).To(Equal(15))
		Expect(cols).To(Equal(15))

		Expect(frame.Scene.Curves).To(HaveLen(2 * 15))
		for _, c := range frame.Scene.Curves {
			Expect(c.Points).To(HaveLen(100))
		}
	})

	It("threads the time factor through to the heights", func() {
		p.Formula = "time_factor"
		p.TimeFactor = 2.5
		frame, err := pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Field.Z.At(0, 0)).To(BeNumerically("~", 2.5, 1e-12))
	})

	It("applies the surface and wireframe toggles", func() {
		p.Toggles.ClickSurface()
		frame, err := pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Scene.Surface.Visible).To(BeFalse())
		for _, c := range frame.Scene.Curves {
			Expect(c.Visible).To(BeTrue())
		}

		p.Toggles.ClickSurface()
		p.Toggles.ClickGrid()
		frame, err = pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Scene.Surface.Visible).To(BeTrue())
		for _, c := range frame.Scene.Curves {
			Expect(c.Visible).To(BeFalse())
		}
	})

	It("clamps the camera into its legal ranges", func() {
		p.Camera = camera.Camera{Zoom: 50, RotX: 400, RotY: -300}
		frame, err := pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Camera.Zoom).To(Equal(float64(camera.MaxZoom)))
		Expect(frame.Camera.RotX).To(Equal(float64(camera.MaxRot)))
		Expect(frame.Camera.RotY).To(Equal(float64(camera.MinRot)))
	})

	It("rejects a malformed formula without touching anything else", func() {
		p.Formula = "sin(X"
		frame, err := pipeline.Render(p)
		Expect(frame).To(BeNil())

		var ferr *formula.Error
		Expect(err).To(MatchError(formula.ErrParse))
		Expect(errors.As(err, &ferr)).To(BeTrue())
		Expect(ferr.Source).To(Equal("sin(X"))
	})

	It("rejects out-of-range grid sizes", func() {
		p.GridSize = 1
		_, err := pipeline.Render(p)
		Expect(err).To(MatchError(grid.ErrGridSize))

		p.GridSize = 101
		_, err = pipeline.Render(p)
		Expect(err).To(MatchError(grid.ErrGridSize))
	})

	It("matches the radial default formula at time zero", func() {
		p.TimeFactor = 0
		frame, err := pipeline.Render(p)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < frame.Field.N; i++ {
			for j := 0; j < frame.Field.N; j++ {
				x, y := frame.Field.X.At(i, j), frame.Field.Y.At(i, j)
				want := math.Sin(math.Sqrt(x*x + y*y))
				Expect(frame.Field.Z.At(i, j)).To(BeNumerically("~", want, 1e-9))
			}
		}
	})
})
