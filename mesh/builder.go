package mesh

import "gonum.org/v1/gonum/spatial/r3"

// IndexedVertex is a vertex position together with the index assigned
// to it by a Builder.
type IndexedVertex struct {
	r3.Vec
	Index int
}

// Builder assembles a Mesh triangle by triangle, merging vertices
// whose coordinates are exactly equal. No tolerance is applied.
type Builder struct {
	index     map[r3.Vec]int
	vertices  []r3.Vec
	triangles []Triangle
	vertTris  [][]int
}

// NewBuilder returns a Builder. sizeHint is the expected triangle count
// and only affects preallocation.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	// Closed meshes have about half as many vertices as triangles.
	return &Builder{
		index:     make(map[r3.Vec]int, sizeHint/2),
		vertices:  make([]r3.Vec, 0, sizeHint/2),
		triangles: make([]Triangle, 0, sizeHint),
		vertTris:  make([][]int, 0, sizeHint/2),
	}
}

// AddVertex returns the indexed vertex at position p, creating it if no
// vertex with the same coordinates exists yet.
func (b *Builder) AddVertex(p r3.Vec) IndexedVertex {
	if i, ok := b.index[p]; ok {
		return IndexedVertex{Vec: b.vertices[i], Index: i}
	}
	i := len(b.vertices)
	b.index[p] = i
	b.vertices = append(b.vertices, p)
	b.vertTris = append(b.vertTris, nil)
	return IndexedVertex{Vec: p, Index: i}
}

// AddTriangle adds the triangle p0,p1,p2 and returns its index.
func (b *Builder) AddTriangle(p0, p1, p2 r3.Vec) int {
	it := len(b.triangles)
	var tri Triangle
	for j, p := range [3]r3.Vec{p0, p1, p2} {
		v := b.AddVertex(p)
		tri[j] = v.Index
		tris := b.vertTris[v.Index]
		if len(tris) == 0 || tris[len(tris)-1] != it {
			b.vertTris[v.Index] = append(tris, it)
		}
	}
	b.triangles = append(b.triangles, tri)
	return it
}

// NumVertices returns the number of distinct vertices added so far.
func (b *Builder) NumVertices() int { return len(b.vertices) }

// NumTriangles returns the number of triangles added so far.
func (b *Builder) NumTriangles() int { return len(b.triangles) }

// Mesh derives vertex adjacency and returns the assembled mesh.
// The Builder must not be used afterwards.
func (b *Builder) Mesh() *Mesh {
	m := &Mesh{
		vertices:  b.vertices,
		triangles: b.triangles,
		vertTris:  b.vertTris,
	}
	m.buildNeighbors()
	*b = Builder{}
	return m
}
