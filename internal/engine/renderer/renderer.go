// Package renderer uploads sphere meshes to the GPU and draws them.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/spherewire/internal/engine/shader"
	"github.com/Faultbox/spherewire/internal/logger"
	"github.com/Faultbox/spherewire/pkg/sphere"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	Wireframe  bool
	LineColor  [3]float32
}

// Renderer owns the sphere shader program and frame state.
type Renderer struct {
	config Config

	program  uint32
	locModel int32
	locView  int32
	locProj  int32
	locColor int32
}

// MeshBuffer is a mesh resident on the GPU.
type MeshBuffer struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// New creates a renderer.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.SphereVertex, shader.SphereFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locModel = shader.Uniform(r.program, "uModel")
	r.locView = shader.Uniform(r.program, "uView")
	r.locProj = shader.Uniform(r.program, "uProjection")
	r.locColor = shader.Uniform(r.program, "uColor")

	logger.Debug("shader program created", zap.Uint32("program", r.program))
	return r, nil
}

// Upload copies a mesh into a new VAO with vertex and index buffers.
// Attribute 0 is the vec3 position.
func (r *Renderer) Upload(m *sphere.Mesh) (*MeshBuffer, error) {
	if m == nil || m.VertexCount() == 0 || m.IndexCount() == 0 {
		return nil, errors.New("upload: empty mesh")
	}

	buf := &MeshBuffer{IndexCount: int32(m.IndexCount())}

	gl.GenVertexArrays(1, &buf.VAO)
	gl.BindVertexArray(buf.VAO)

	gl.GenBuffers(1, &buf.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// The EBO binding is VAO state, so only the array buffer is unbound
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", buf.VAO),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
	)
	return buf, nil
}

// Delete frees the GPU buffers.
func (b *MeshBuffer) Delete() {
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
		b.EBO = 0
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
		b.VBO = 0
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw draws buf as a triangle list with the given transforms.
func (r *Renderer) Draw(buf *MeshBuffer, model, view, projection mgl32.Mat4) {
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProj, 1, false, &projection[0])
	lc := r.config.LineColor
	gl.Uniform3f(r.locColor, lc[0], lc[1], lc[2])

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(buf.VAO)
	gl.DrawElements(gl.TRIANGLES, buf.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
