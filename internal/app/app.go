// Package app runs the sphere viewer: window, mesh upload and frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spherewire/internal/config"
	"github.com/Faultbox/spherewire/internal/engine/input"
	"github.com/Faultbox/spherewire/internal/engine/renderer"
	"github.com/Faultbox/spherewire/internal/engine/window"
	"github.com/Faultbox/spherewire/internal/logger"
	"github.com/Faultbox/spherewire/internal/view"
	"github.com/Faultbox/spherewire/pkg/sphere"
)

// Title is the window title.
const Title = "Spherewire"

// App is the viewer instance.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	mesh     *renderer.MeshBuffer
	offset   view.Offset
}

// New generates the sphere mesh and brings up the window and GPU resources.
// The mesh is generated first so bad parameters fail before a window opens.
func New(cfg *config.Config) (*App, error) {
	mesh, err := sphere.Generate(cfg.Sphere)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sphere: %w", err)
	}
	logger.Info("sphere generated",
		zap.Int("stacks", cfg.Sphere.Stacks),
		zap.Int("slices", cfg.Sphere.Slices),
		zap.Float32("radius", cfg.Sphere.Radius),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	a := &App{cfg: cfg}

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Resizable:  cfg.Graphics.Resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window, which owns the GL context
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
		Wireframe:  cfg.Render.Wireframe,
		LineColor:  cfg.Render.LineColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.mesh, err = a.renderer.Upload(mesh)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to upload sphere: %w", err)
	}

	a.input = input.New()

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting render loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			return nil
		}

		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
		}

		var quit bool
		a.offset, quit = Step(a.offset, a.input.Actions())
		if quit {
			logger.Info("quit requested")
			return nil
		}

		a.render(now.Sub(start))
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("dx", a.offset.DX),
				zap.Int("dy", a.offset.DY),
				zap.Int("dz", a.offset.DZ),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (a *App) render(elapsed time.Duration) {
	s := a.cfg.View
	width, height := a.renderer.Size()

	a.renderer.Begin()
	a.renderer.Draw(a.mesh,
		s.ModelMatrix(elapsed),
		s.ViewMatrix(a.offset),
		s.ProjectionMatrix(width, height),
	)
	a.renderer.End()
}

// Step applies one frame's actions to the offset in order.
// It stops at the first quit action and reports it.
func Step(o view.Offset, actions []view.Action) (view.Offset, bool) {
	for _, act := range actions {
		if act == view.ActionQuit {
			return o, true
		}
		o = o.Apply(act)
	}
	return o, false
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
