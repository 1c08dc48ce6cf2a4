package mesh

import (
	"github.com/EKlimova/rk9students/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// GenerateNormals computes both vertex and triangle normals.
func (m *Mesh) GenerateNormals() {
	m.GenerateVertexNormals()
	m.GenerateTriangleNormals()
}

// GenerateVertexNormals computes a unit normal per vertex as the
// normalized sum of the unnormalized normals of its triangles, so larger
// triangles weigh more. Rogue vertices get the zero vector.
func (m *Mesh) GenerateVertexNormals() {
	if len(m.triangles) == 0 || len(m.vertices) == 0 {
		return
	}
	normals := make([]r3.Vec, len(m.vertices))
	for _, t := range m.triangles {
		n := d3.Normal(m.vertices[t[0]], m.vertices[t[1]], m.vertices[t[2]])
		for _, v := range t {
			normals[v] = r3.Add(normals[v], n)
		}
	}
	for i := range normals {
		normals[i] = d3.Unit(normals[i])
	}
	m.vertNormals = normals
}

// GenerateTriangleNormals computes a unit normal per triangle following
// its winding. Degenerate triangles get the zero vector.
func (m *Mesh) GenerateTriangleNormals() {
	if len(m.triangles) == 0 {
		return
	}
	normals := make([]r3.Vec, len(m.triangles))
	for i := range m.triangles {
		normals[i] = m.triangleNormal(i)
	}
	m.triNormals = normals
}

func (m *Mesh) triangleNormal(i int) r3.Vec {
	t := m.triangles[i]
	return d3.Unit(d3.Normal(m.vertices[t[0]], m.vertices[t[1]], m.vertices[t[2]]))
}

// TriangleNormal returns the unit normal of triangle i, taken from the
// cached triangle normals when they are populated.
func (m *Mesh) TriangleNormal(i int) r3.Vec {
	if len(m.triNormals) == len(m.triangles) {
		return m.triNormals[i]
	}
	return m.triangleNormal(i)
}

// RegenerateNormals recomputes whichever normals are already populated.
// Positions or topology changes invalidate normals.
func (m *Mesh) RegenerateNormals() {
	if len(m.triNormals) > 0 {
		m.GenerateTriangleNormals()
	}
	if len(m.vertNormals) > 0 {
		m.GenerateVertexNormals()
	}
}

// VertexNormals returns the cached vertex normals, nil if not generated.
// The returned slice must not be modified.
func (m *Mesh) VertexNormals() []r3.Vec { return m.vertNormals }

// TriangleNormals returns the cached triangle normals, nil if not generated.
// The returned slice must not be modified.
func (m *Mesh) TriangleNormals() []r3.Vec { return m.triNormals }
