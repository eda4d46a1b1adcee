// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shapeshift/internal/viewer"
	"github.com/Faultbox/shapeshift/pkg/geom"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Viewer      ViewerConfig     `yaml:"viewer"`
	Camera      CameraConfig     `yaml:"camera"`
	Assets      AssetsConfig     `yaml:"assets"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds window and context settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	HighDPI    bool `yaml:"high_dpi"`
	VSync      bool `yaml:"vsync"`
	Fullscreen bool `yaml:"fullscreen"`
}

// ViewerConfig holds the startup selection. Enum fields use display
// names and match case-insensitively.
type ViewerConfig struct {
	Primitive   string `yaml:"primitive"`
	Quality     string `yaml:"quality"`
	Deformation string `yaml:"deformation"`
	Subdivision int    `yaml:"subdivision"`
	ShowGrid    bool   `yaml:"show_grid"`
	ShowNormals bool   `yaml:"show_normals"`
	ShowColors  bool   `yaml:"show_colors"`
	Wireframe   bool   `yaml:"wireframe"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	EaseRecenter    bool    `yaml:"ease_recenter"`
}

// AssetsConfig holds texture and shader locations.
type AssetsConfig struct {
	Texture      string `yaml:"texture"`    // empty uses the embedded stripes
	ShaderDir    string `yaml:"shader_dir"` // overrides embedded GLSL files
	WatchShaders bool   `yaml:"watch_shaders"`
}

// ScreenshotConfig holds the screenshot output directory.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the viewer's startup values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:   1024,
			Height:  768,
			HighDPI: true,
			VSync:   true,
		},
		Viewer: ViewerConfig{
			Primitive:   geom.Sphere.String(),
			Quality:     geom.High.String(),
			Deformation: viewer.ModePlane.String(),
			Subdivision: geom.MinSubdivision,
		},
		Camera: CameraConfig{
			FOV:             35,
			Near:            0.1,
			Far:             1000,
			DragSensitivity: 0.01,
			ZoomSensitivity: 0.1,
		},
		Assets: AssetsConfig{
			WatchShaders: true,
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks sizes and enum names.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov %v", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if _, err := c.ViewerSettings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ViewerSettings converts the viewer section. Subdivision is clamped,
// not rejected.
func (c *Config) ViewerSettings() (viewer.Settings, error) {
	p, err := geom.ParsePrimitive(c.Viewer.Primitive)
	if err != nil {
		return viewer.Settings{}, fmt.Errorf("viewer.primitive: %w", err)
	}
	q, err := geom.ParseQuality(c.Viewer.Quality)
	if err != nil {
		return viewer.Settings{}, fmt.Errorf("viewer.quality: %w", err)
	}
	m, err := viewer.ParseMode(c.Viewer.Deformation)
	if err != nil {
		return viewer.Settings{}, fmt.Errorf("viewer.deformation: %w", err)
	}
	return viewer.Settings{
		Primitive:   p,
		Quality:     q,
		Mode:        m,
		Subdivision: geom.ClampSubdivision(c.Viewer.Subdivision),
		Wireframe:   c.Viewer.Wireframe,
		Colors:      c.Viewer.ShowColors,
		Toggles: viewer.Toggles{
			Grid:    c.Viewer.ShowGrid,
			Normals: c.Viewer.ShowNormals,
		},
	}, nil
}
