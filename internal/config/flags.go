package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagStacks     = flag.Int("stacks", 0, "Sphere divisions around each ring")
	flagSlices     = flag.Int("slices", 0, "Sphere divisions from pole to pole")
	flagRadius     = flag.Float64("radius", 0, "Sphere radius")
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
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	// Zero means unset; negative values are passed through so Validate rejects them.
	if *flagStacks != 0 {
		cfg.Sphere.Stacks = *flagStacks
	}
	if *flagSlices != 0 {
		cfg.Sphere.Slices = *flagSlices
	}
	if *flagRadius != 0 {
		cfg.Sphere.Radius = float32(*flagRadius)
	}
}
