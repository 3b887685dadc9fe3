package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spherewire/pkg/sphere"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.Resizable {
		t.Error("expected resizable to be false by default")
	}

	// Test sphere defaults
	if cfg.Sphere.Stacks != 50 || cfg.Sphere.Slices != 50 {
		t.Errorf("expected 50x50 sphere, got %dx%d", cfg.Sphere.Stacks, cfg.Sphere.Slices)
	}
	if cfg.Sphere.Radius != 0.5 {
		t.Errorf("expected radius 0.5, got %f", cfg.Sphere.Radius)
	}

	// Test render defaults
	if !cfg.Render.Wireframe {
		t.Error("expected wireframe to be true by default")
	}
	if cfg.Render.LineColor != [3]float32{1, 0, 0} {
		t.Errorf("expected red lines, got %v", cfg.Render.LineColor)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

sphere:
  stacks: 24
  slices: 12
  radius: 2.0

view:
  step: 0.5
  spin_axis: [0, 1, 0]

render:
  wireframe: false
  clear_color: [0, 0, 0, 1]

logging:
  level: "debug"
  log_file: "sphere.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Sphere.Stacks != 24 || cfg.Sphere.Slices != 12 || cfg.Sphere.Radius != 2 {
		t.Errorf("unexpected sphere params %+v", cfg.Sphere)
	}

	if cfg.View.Step != 0.5 {
		t.Errorf("expected step 0.5, got %f", cfg.View.Step)
	}
	if cfg.View.SpinAxis[1] != 1 || cfg.View.SpinAxis[0] != 0 {
		t.Errorf("expected spin axis (0,1,0), got %v", cfg.View.SpinAxis)
	}
	// Values missing from the file keep their defaults
	if cfg.View.BaseZ != -1.5 {
		t.Errorf("expected base_z default -1.5, got %f", cfg.View.BaseZ)
	}

	if cfg.Render.Wireframe {
		t.Error("expected wireframe to be false")
	}
	if cfg.Render.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sphere.log" {
		t.Errorf("expected log file 'sphere.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 1024
height = 768

[sphere]
stacks = 8
slices = 4
radius = 1.5

[logging]
level = "warn"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Sphere.Stacks != 8 || cfg.Sphere.Slices != 4 || cfg.Sphere.Radius != 1.5 {
		t.Errorf("unexpected sphere params %+v", cfg.Sphere)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive TOML merge")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"invalid.yaml": "graphics:\n  width: not a number\n  invalid syntax here\n",
		"invalid.toml": "[graphics\nwidth = \n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, name)
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		sphereErr bool
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }, false},
		{"zero stacks", func(c *Config) { c.Sphere.Stacks = 0 }, true},
		{"zero slices", func(c *Config) { c.Sphere.Slices = 0 }, true},
		{"zero radius", func(c *Config) { c.Sphere.Radius = 0 }, true},
		{"far before near", func(c *Config) { c.View.Far = 0.01 }, false},
		{"zero fov", func(c *Config) { c.View.FOVDegrees = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if got := errors.Is(err, sphere.ErrInvalidParameter); got != tt.sphereErr {
				t.Errorf("errors.Is(err, ErrInvalidParameter) = %v, want %v (err: %v)", got, tt.sphereErr, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[graphics]\nwidth = 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.toml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Sphere.Stacks = 33
	cfg.View.SpinAxis[2] = 2
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Sphere.Stacks != 33 {
		t.Errorf("expected stacks 33 after reload, got %d", loaded.Sphere.Stacks)
	}
	if loaded.View.SpinAxis[2] != 2 {
		t.Errorf("expected spin axis z 2 after reload, got %v", loaded.View.SpinAxis)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "sphere flags",
			setup: func() {
				*flagStacks = 10
				*flagSlices = -2
				*flagRadius = 3
			},
			verify: func(cfg *Config) {
				if cfg.Sphere.Stacks != 10 {
					t.Errorf("expected stacks 10, got %d", cfg.Sphere.Stacks)
				}
				if cfg.Sphere.Slices != -2 {
					t.Errorf("expected slices -2 to pass through, got %d", cfg.Sphere.Slices)
				}
				if cfg.Sphere.Radius != 3 {
					t.Errorf("expected radius 3, got %f", cfg.Sphere.Radius)
				}
			},
			teardown: func() {
				*flagStacks = 0
				*flagSlices = 0
				*flagRadius = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
sphere:
  stacks: 20
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Sphere.Stacks != 20 {
		t.Errorf("expected stacks 20 from file, got %d", cfg.Sphere.Stacks)
	}
}

func TestLoadRejectsInvalidSphere(t *testing.T) {
	*flagConfig = filepath.Join(t.TempDir(), "bad.yaml")
	defer func() { *flagConfig = "" }()
	if err := os.WriteFile(*flagConfig, []byte("sphere:\n  radius: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, sphere.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
