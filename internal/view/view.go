// Package view computes the per-frame model, view and projection transforms
// from an explicit view offset.
package view

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is a discrete view input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionForward
	ActionBackward
	ActionQuit
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Offset counts view translation steps along each axis.
type Offset struct {
	DX, DY, DZ int
}

// Apply returns the offset after one action.
func (o Offset) Apply(a Action) Offset {
	switch a {
	case ActionUp:
		o.DY--
	case ActionDown:
		o.DY++
	case ActionLeft:
		o.DX++
	case ActionRight:
		o.DX--
	case ActionForward:
		o.DZ--
	case ActionBackward:
		o.DZ++
	}
	return o
}

// Settings holds the fixed transform parameters.
type Settings struct {
	Step              float32    `yaml:"step" toml:"step"`
	BaseZ             float32    `yaml:"base_z" toml:"base_z"`
	FOVDegrees        float32    `yaml:"fov" toml:"fov"`
	Near              float32    `yaml:"near" toml:"near"`
	Far               float32    `yaml:"far" toml:"far"`
	SpinDegreesPerSec float32    `yaml:"spin_degrees_per_sec" toml:"spin_degrees_per_sec"`
	SpinAxis          mgl32.Vec3 `yaml:"spin_axis,flow" toml:"spin_axis"`
}

// DefaultSettings returns the default view settings.
func DefaultSettings() Settings {
	return Settings{
		Step:              0.15,
		BaseZ:             -1.5,
		FOVDegrees:        45,
		Near:              0.1,
		Far:               100,
		SpinDegreesPerSec: 50,
		SpinAxis:          mgl32.Vec3{1, 0.3, 0.5},
	}
}

// ViewMatrix translates the scene by the offset.
func (s Settings) ViewMatrix(o Offset) mgl32.Mat4 {
	return mgl32.Translate3D(
		float32(o.DX)*s.Step,
		float32(o.DY)*s.Step,
		float32(o.DZ)*s.Step+s.BaseZ,
	)
}

// ProjectionMatrix returns a perspective projection for the given viewport.
func (s Settings) ProjectionMatrix(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(s.FOVDegrees), aspect, s.Near, s.Far)
}

// ModelMatrix spins the model about SpinAxis by elapsed time.
// A zero axis yields the identity.
func (s Settings) ModelMatrix(elapsed time.Duration) mgl32.Mat4 {
	if s.SpinAxis.Len() == 0 {
		return mgl32.Ident4()
	}
	angle := float32(elapsed.Seconds()) * s.SpinDegreesPerSec
	return mgl32.HomogRotate3D(mgl32.DegToRad(angle), s.SpinAxis.Normalize())
}
