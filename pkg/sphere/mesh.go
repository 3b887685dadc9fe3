package sphere

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a tightly packed vertex buffer (x, y, z per vertex) and a
// triangle-list index buffer referencing it.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Triangle returns the three vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]uint32 {
	return [3]uint32{m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]}
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	lo = m.Vertex(0)
	hi = lo
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		for c := 0; c < 3; c++ {
			if v[c] < lo[c] {
				lo[c] = v[c]
			}
			if v[c] > hi[c] {
				hi[c] = v[c]
			}
		}
	}
	return lo, hi
}

// WriteOBJ writes the mesh as a Wavefront OBJ document.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# vertices %d\n# triangles %d\n", m.VertexCount(), m.TriangleCount())
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
	}

	// OBJ indices are 1-based
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}

	return bw.Flush()
}
