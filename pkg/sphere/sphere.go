// Package sphere generates UV sphere meshes for indexed triangle-list drawing.
package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// ErrInvalidParameter is returned for malformed tessellation parameters.
var ErrInvalidParameter = errors.New("invalid parameter")

// Mesh size limits. Indices are uint32 and GL draw counts are int32.
const (
	maxVertices = math.MaxUint32
	maxIndices  = math.MaxInt32
)

// Params holds tessellation parameters.
//
// Stacks is the number of azimuthal divisions per ring. Slices is the number
// of polar subdivisions, producing Slices+1 rings from pole to pole.
type Params struct {
	Stacks int     `yaml:"stacks" toml:"stacks"`
	Slices int     `yaml:"slices" toml:"slices"`
	Radius float32 `yaml:"radius" toml:"radius"`
}

// DefaultParams returns the parameters of the default viewer sphere.
func DefaultParams() Params {
	return Params{
		Stacks: 50,
		Slices: 50,
		Radius: 0.5,
	}
}

// Validate reports whether p can be tessellated.
func (p Params) Validate() error {
	if p.Stacks < 1 {
		return fmt.Errorf("%w: stacks must be >= 1, got %d", ErrInvalidParameter, p.Stacks)
	}
	if p.Slices < 1 {
		return fmt.Errorf("%w: slices must be >= 1, got %d", ErrInvalidParameter, p.Slices)
	}
	// Divide before multiplying so oversized counts can't overflow int.
	if uint64(p.Stacks) > maxVertices/(uint64(p.Slices)+1) {
		return fmt.Errorf("%w: %d stacks x %d slices exceeds %d vertices",
			ErrInvalidParameter, p.Stacks, p.Slices, uint64(maxVertices))
	}
	if uint64(p.Stacks) > maxIndices/6/uint64(p.Slices) {
		return fmt.Errorf("%w: %d stacks x %d slices exceeds %d indices",
			ErrInvalidParameter, p.Stacks, p.Slices, maxIndices)
	}
	if math32.IsNaN(p.Radius) || math32.IsInf(p.Radius, 0) {
		return fmt.Errorf("%w: radius must be finite, got %v", ErrInvalidParameter, p.Radius)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidParameter, p.Radius)
	}
	return nil
}

// VertexCount returns the number of vertices Generate produces for p.
// Only meaningful once p validates.
func (p Params) VertexCount() int {
	return (p.Slices + 1) * p.Stacks
}

// IndexCount returns the number of indices Generate produces for p.
func (p Params) IndexCount() int {
	return 6 * p.Slices * p.Stacks
}

// Generate tessellates a sphere centred on the origin.
// Nothing is allocated when p is invalid.
func Generate(p Params) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{
		Vertices: make([]float32, 0, 3*p.VertexCount()),
		Indices:  make([]uint32, 0, p.IndexCount()),
	}
	buildVertices(m, p)
	buildIndices(m, p.Stacks)
	return m, nil
}

// buildVertices emits rings from phi=0 (+Y pole) to phi=pi (-Y pole).
// Pole rings are kept at full width so every ring has the same stride.
func buildVertices(m *Mesh, p Params) {
	phiStep := math32.Pi / float32(p.Slices)
	thetaStep := math32.Pi * 2 / float32(p.Stacks)

	for i := 0; i <= p.Slices; i++ {
		phi := float32(i) * phiStep
		sinPhi, cosPhi := math32.Sincos(phi)

		for j := 0; j < p.Stacks; j++ {
			theta := float32(j) * thetaStep
			sinTheta, cosTheta := math32.Sincos(theta)

			m.Vertices = append(m.Vertices,
				cosTheta*sinPhi*p.Radius,
				cosPhi*p.Radius,
				sinTheta*sinPhi*p.Radius,
			)
		}
	}
}

// buildIndices stitches each ring to the one below it, two triangles per cell.
// The last column of a ring closes back onto column 0.
func buildIndices(m *Mesh, stacks int) {
	total := m.VertexCount()
	s := uint32(stacks)

	for v := 0; v < total-stacks; v++ {
		i := uint32(v)
		if (v+1)%stacks == 0 {
			first := i - s + 1
			wrap := i + 1
			// Unreachable under the loop bound; keeps the last ring in range if it changes.
			if v+1 == total {
				wrap = uint32(total - stacks)
			}
			m.Indices = append(m.Indices,
				i, first, i+s,
				first, i+s, wrap,
			)
			continue
		}
		m.Indices = append(m.Indices,
			i, i+1, i+s,
			i+1, i+s, i+s+1,
		)
	}
}
