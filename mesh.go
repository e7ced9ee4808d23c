package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a closed triangle mesh stored as a flat vertex buffer:
// consecutive x, y, z triples, three vertices per triangle. The buffer
// length is always divisible by 9.
type Mesh struct {
	Vertices []float64
}

// degenerateArea is the squared-area threshold below which a triangle is
// dropped as degenerate during generation.
const degenerateArea = 1e-18

// NewMesh returns an empty mesh with capacity for n triangles.
func NewMesh(n int) *Mesh {
	return &Mesh{Vertices: make([]float64, 0, n*9)}
}

// AddTriangle appends one triangle. Degenerate (zero-area) triangles are
// silently dropped so generators can emit collapsed quads without checks.
func (m *Mesh) AddTriangle(a, b, c r3.Vec) {
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	n := r3.Cross(ab, ac)
	if r3.Norm2(n) < degenerateArea {
		return
	}
	m.Vertices = append(m.Vertices,
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
	)
}

// AddQuad appends the quad a-b-c-d as two triangles.
// Vertices are given in winding order around the quad.
func (m *Mesh) AddQuad(a, b, c, d r3.Vec) {
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)
}

// Append copies all triangles of other into m.
func (m *Mesh) Append(other *Mesh) {
	m.Vertices = append(m.Vertices, other.Vertices...)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 9
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	v := make([]float64, len(m.Vertices))
	copy(v, m.Vertices)
	return &Mesh{Vertices: v}
}

// Triangle returns the i-th triangle's vertices.
func (m *Mesh) Triangle(i int) (a, b, c r3.Vec) {
	o := i * 9
	a = r3.Vec{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
	b = r3.Vec{X: m.Vertices[o+3], Y: m.Vertices[o+4], Z: m.Vertices[o+5]}
	c = r3.Vec{X: m.Vertices[o+6], Y: m.Vertices[o+7], Z: m.Vertices[o+8]}
	return a, b, c
}

// Transform applies an affine matrix to every vertex in place.
// If the matrix mirrors (negative determinant), each triangle's winding is
// reversed so outward orientation is preserved.
func (m *Mesh) Transform(t Matrix) {
	for i := 0; i < len(m.Vertices); i += 3 {
		v := t.Apply(r3.Vec{X: m.Vertices[i], Y: m.Vertices[i+1], Z: m.Vertices[i+2]})
		m.Vertices[i] = v.X
		m.Vertices[i+1] = v.Y
		m.Vertices[i+2] = v.Z
	}
	if t.Det() < 0 {
		m.FlipOrientation()
	}
}

// FlipOrientation reverses the winding of every triangle, turning the mesh
// inside out.
func (m *Mesh) FlipOrientation() {
	for i := 0; i < len(m.Vertices); i += 9 {
		for k := 0; k < 3; k++ {
			m.Vertices[i+3+k], m.Vertices[i+6+k] = m.Vertices[i+6+k], m.Vertices[i+3+k]
		}
	}
}

// BoundingBox returns the axis-aligned min and max corners of the mesh in
// its own frame. An empty mesh yields two zero vectors.
func (m *Mesh) BoundingBox() (min, max r3.Vec) {
	if m.IsEmpty() {
		return r3.Vec{}, r3.Vec{}
	}
	min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < len(m.Vertices); i += 3 {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		min.X = math.Min(min.X, x)
		min.Y = math.Min(min.Y, y)
		min.Z = math.Min(min.Z, z)
		max.X = math.Max(max.X, x)
		max.Y = math.Max(max.Y, y)
		max.Z = math.Max(max.Z, z)
	}
	return min, max
}
