package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/surfviz/internal/camera"
	"github.com/san-kum/surfviz/internal/formula"
	"github.com/san-kum/surfviz/internal/grid"
	"github.com/san-kum/surfviz/internal/spline"
)

const (
	DefaultGridSize   = 15
	DefaultZoom       = 3.0
	DefaultIntervalMS = 100
	DefaultStep       = 0.1
)

type Config struct {
	Formula   string          `yaml:"formula"`
	GridSize  int             `yaml:"grid_size"`
	Samples   int             `yaml:"samples"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
}

type CameraConfig struct {
	Zoom float64 `yaml:"zoom"`
	RotX float64 `yaml:"rot_x"`
	RotY float64 `yaml:"rot_y"`
	RotZ float64 `yaml:"rot_z"`
}

type AnimationConfig struct {
	Step       float64 `yaml:"step"`
	IntervalMS int     `yaml:"interval_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Formula:  formula.Default,
		GridSize: DefaultGridSize,
		Samples:  spline.DefaultSamples,
		Camera:   CameraConfig{Zoom: DefaultZoom},
		Animation: AnimationConfig{
			Step:       DefaultStep,
			IntervalMS: DefaultIntervalMS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToCamera converts the yaml camera block into a clamped camera.
func (c *Config) ToCamera() camera.Camera {
	return camera.Camera{
		Zoom: c.Camera.Zoom,
		RotX: c.Camera.RotX,
		RotY: c.Camera.RotY,
		RotZ: c.Camera.RotZ,
	}.Clamp()
}

// Normalize pulls out-of-range fields back to usable values.
func (c *Config) Normalize() {
	if c.Formula == "" {
		c.Formula = formula.Default
	}
	if c.GridSize < grid.MinSize {
		c.GridSize = DefaultGridSize
	}
	if c.GridSize > grid.MaxSize {
		c.GridSize = grid.MaxSize
	}
	if c.Samples <= 1 {
		c.Samples = spline.DefaultSamples
	}
	if c.Animation.Step <= 0 {
		c.Animation.Step = DefaultStep
	}
	if c.Animation.IntervalMS <= 0 {
		c.Animation.IntervalMS = DefaultIntervalMS
	}
	cam := c.ToCamera()
	c.Camera = CameraConfig{Zoom: cam.Zoom, RotX: cam.RotX, RotY: cam.RotY, RotZ: cam.RotZ}
}
