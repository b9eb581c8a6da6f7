package config

var Presets = map[string]*Config{
	"ripple": {
		Formula: "sin(sqrt(X^2 + Y^2) + time_factor)", GridSize: 25,
		Camera: CameraConfig{Zoom: 3, RotX: 45},
	},
	"saddle": {
		Formula: "(X^2 - Y^2) / 10", GridSize: 15,
		Camera: CameraConfig{Zoom: 3, RotX: 60, RotY: 30},
	},
	"peaks": {
		Formula: "3*exp(-((X-1)^2 + Y^2)/4) - 2*exp(-((X+1)^2 + (Y+1)^2)/3)", GridSize: 40,
		Camera: CameraConfig{Zoom: 4, RotX: 50},
	},
	"waves": {
		Formula: "sin(X + time_factor) * cos(Y + time_factor)", GridSize: 30,
		Camera: CameraConfig{Zoom: 3, RotX: 45, RotY: 20},
	},
	"sinc": {
		Formula: "5 * sin(sqrt(X^2 + Y^2) + 0.001) / (sqrt(X^2 + Y^2) + 0.001)", GridSize: 35,
		Camera: CameraConfig{Zoom: 4, RotX: 55},
	},
	"cone": {
		Formula: "sqrt(X^2 + Y^2) - 3", GridSize: 20,
		Camera: CameraConfig{Zoom: 3, RotX: 65},
	},
	"checker": {
		Formula: "sin(2*X) * sin(2*Y) * cos(time_factor)", GridSize: 50,
		Camera: CameraConfig{Zoom: 5, RotX: 40},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Normalize()
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
