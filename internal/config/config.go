// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/spherewire/internal/view"
	"github.com/Faultbox/spherewire/pkg/sphere"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Sphere   sphere.Params  `yaml:"sphere" toml:"sphere"`
	View     view.Settings  `yaml:"view" toml:"view"`
	Render   RenderConfig   `yaml:"render" toml:"render"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
	Resizable  bool `yaml:"resizable" toml:"resizable"`
}

// RenderConfig holds draw state.
type RenderConfig struct {
	Wireframe  bool       `yaml:"wireframe" toml:"wireframe"`
	ClearColor [4]float32 `yaml:"clear_color,flow" toml:"clear_color"`
	LineColor  [3]float32 `yaml:"line_color,flow" toml:"line_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Resizable:  false,
		},
		Sphere: sphere.DefaultParams(),
		View:   view.DefaultSettings(),
		Render: RenderConfig{
			Wireframe:  true,
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
			LineColor:  [3]float32{1.0, 0.0, 0.0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the config can drive the viewer.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if err := c.Sphere.Validate(); err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	if c.View.Near <= 0 || c.View.Far <= c.View.Near {
		return fmt.Errorf("view: invalid clip range near=%v far=%v", c.View.Near, c.View.Far)
	}
	if c.View.FOVDegrees <= 0 || c.View.FOVDegrees >= 180 {
		return fmt.Errorf("view: fov must be in (0, 180), got %v", c.View.FOVDegrees)
	}
	return nil
}
