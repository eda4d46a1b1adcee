package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags, then
// validates the result.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns ./config.yaml, else the one in ConfigDir, else "".
func findConfigFile() string {
	for _, path := range []string{"config.yaml", filepath.Join(ConfigDir(), "config.yaml")} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory: "Shapeshift" under
// os.UserConfigDir on macOS and Windows, "shapeshift" elsewhere. Falls
// back to the working directory when no home is known.
func ConfigDir() string {
	name := "shapeshift"
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		name = "Shapeshift"
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = filepath.Abs(".")
	}
	return filepath.Join(base, name)
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
