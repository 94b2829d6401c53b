// Package config loads the renderer's ambient YAML sidecar: worker pool
// sizing and marcher tuning that sit outside the scene description
// language itself. The load shape (read file, yaml.Unmarshal into a
// tagged struct, wrap errors with the operation name) mirrors
// github.com/gazed/vu/load/shd.go's Shd shader config loader.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds renderer settings that aren't part of a scene file.
type Config struct {
	// Threads overrides the worker pool size; zero means logical CPUs.
	Threads int `yaml:"threads"`

	// TileSize overrides render.DefaultTileSize; zero means the package default.
	TileSize int `yaml:"tile_size"`

	// MaxSteps and MaxDistance override the marcher's sphere-tracing
	// limits; zero means the package defaults.
	MaxSteps    int     `yaml:"max_steps"`
	MaxDistance float64 `yaml:"max_distance"`

	// AsciiRamp overrides the brightness-to-glyph ramp used by the ASCII
	// encoder; empty means the package default.
	AsciiRamp string `yaml:"ascii_ramp"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: yaml %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the zero-value configuration, under which every
// renderer package falls back to its own built-in defaults.
func Default() Config { return Config{} }
