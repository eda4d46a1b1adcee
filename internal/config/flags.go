package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagPrimitive   = flag.String("primitive", "", "Startup primitive (e.g. sphere, teapot)")
	flagDeformation = flag.String("deformation", "", "Startup deformation mode (e.g. plane, twist)")
	flagQuality     = flag.String("quality", "", "Startup quality: low, default or high")
	flagShaders     = flag.String("shaders", "", "Directory overriding the embedded shaders")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagPrimitive != "" {
		cfg.Viewer.Primitive = *flagPrimitive
	}
	if *flagDeformation != "" {
		cfg.Viewer.Deformation = *flagDeformation
	}
	if *flagQuality != "" {
		cfg.Viewer.Quality = *flagQuality
	}
	if *flagShaders != "" {
		cfg.Assets.ShaderDir = *flagShaders
	}
}
