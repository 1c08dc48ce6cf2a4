// Package mesh implements an indexed triangle mesh with vertex and
// triangle adjacency, crack repair by vertex merging, normal generation
// and smoothing filters.
//
// Vertices are addressed by dense integer indices that stay valid for
// the lifetime of a Mesh. Merging never removes a vertex: the merged
// away vertex keeps its position but is no longer referenced by any
// triangle (a rogue vertex).
package mesh

import (
	"slices"

	"github.com/EKlimova/rk9students/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle holds three vertex indices. Their order defines the winding.
type Triangle [3]int

// Mesh is an indexed triangle mesh. The zero value is an empty mesh.
// A Mesh is not safe for concurrent use.
type Mesh struct {
	vertices  []r3.Vec
	triangles []Triangle
	// vertTris[v] lists the triangles referencing vertex v.
	vertTris [][]int
	// vertVerts[v] lists the vertices sharing a triangle with v, v excluded.
	vertVerts [][]int

	vertNormals []r3.Vec
	triNormals  []r3.Vec

	obs Observer
}

// New returns a mesh over already indexed data. No vertex deduplication
// is done, so coincident vertices remain distinct. The slices are owned
// by the returned Mesh.
func New(vertices []r3.Vec, triangles []Triangle) (*Mesh, error) {
	n := len(vertices)
	for _, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= n {
				return nil, &IndexError{Index: v, Len: n}
			}
		}
	}
	m := &Mesh{
		vertices:  vertices,
		triangles: triangles,
		vertTris:  make([][]int, n),
	}
	for it, tri := range triangles {
		for _, v := range tri {
			m.addVertexTriangle(v, it)
		}
	}
	m.buildNeighbors()
	return m, nil
}

// addVertexTriangle records triangle it as referencing v. Triangles are
// added in ascending order so a repeated slot only needs a check of the
// last element.
func (m *Mesh) addVertexTriangle(v, it int) {
	tris := m.vertTris[v]
	if len(tris) > 0 && tris[len(tris)-1] == it {
		return
	}
	m.vertTris[v] = append(tris, it)
}

// buildNeighbors derives vertex to vertex adjacency from vertTris.
// Each neighbour list is sorted ascending.
func (m *Mesh) buildNeighbors() {
	m.vertVerts = make([][]int, len(m.vertices))
	for v, tris := range m.vertTris {
		var nb []int
		for _, it := range tris {
			for _, w := range m.triangles[it] {
				if w != v {
					nb = append(nb, w)
				}
			}
		}
		m.vertVerts[v] = sortUnique(nb)
	}
}

// SetObserver sets where progress messages are sent. A nil Observer
// silences the mesh.
func (m *Mesh) SetObserver(o Observer) { m.obs = o }

func (m *Mesh) logf(format string, args ...any) {
	if m.obs != nil {
		m.obs.Printf(format, args...)
	}
}

// NumVertices returns the number of stored vertices, rogue ones included.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int { return len(m.triangles) }

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) r3.Vec { return m.vertices[i] }

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) Triangle { return m.triangles[i] }

// TrianglePoints returns the vertex positions of triangle i.
func (m *Mesh) TrianglePoints(i int) [3]r3.Vec {
	t := m.triangles[i]
	return [3]r3.Vec{m.vertices[t[0]], m.vertices[t[1]], m.vertices[t[2]]}
}

// Vertices returns a copy of all vertex positions.
func (m *Mesh) Vertices() []r3.Vec { return slices.Clone(m.vertices) }

// Triangles returns a copy of all triangles.
func (m *Mesh) Triangles() []Triangle { return slices.Clone(m.triangles) }

// VertexTriangles returns the indices of the triangles that reference
// vertex v. The returned slice must not be modified.
func (m *Mesh) VertexTriangles(v int) []int { return m.vertTris[v] }

// VertexNeighbors returns the indices of the vertices that share a
// triangle with v in ascending order. The returned slice must not be modified.
func (m *Mesh) VertexNeighbors(v int) []int { return m.vertVerts[v] }

// RogueVertices returns the vertices no triangle references.
func (m *Mesh) RogueVertices() []int {
	var rogue []int
	for v, tris := range m.vertTris {
		if len(tris) == 0 {
			rogue = append(rogue, v)
		}
	}
	return rogue
}

// Bounds returns the bounding box of all stored vertices, rogue ones included.
// The box is empty for a mesh without vertices.
func (m *Mesh) Bounds() d3.Box {
	bb := d3.EmptyBox()
	for _, v := range m.vertices {
		bb = bb.Include(v)
	}
	return bb
}

// sortUnique sorts s and removes duplicates in place.
func sortUnique(s []int) []int {
	slices.Sort(s)
	return slices.Compact(s)
}
