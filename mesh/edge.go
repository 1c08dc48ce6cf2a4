package mesh

import (
	"github.com/EKlimova/rk9students/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pair is an unordered pair of vertex indices stored lower index first.
type Pair [2]int

// NewPair returns the canonical pair of a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Less orders pairs by first then second index.
func (p Pair) Less(q Pair) bool {
	if p[0] != q[0] {
		return p[0] < q[0]
	}
	return p[1] < q[1]
}

// Edge is a mesh edge between two vertices. Centre is the midpoint of
// its endpoints and is only used to match edges against each other.
type Edge struct {
	V      Pair
	Centre r3.Vec
	id     int // position in the pairing sequence
}

// newEdge returns the canonical edge between vertices a and b.
func (m *Mesh) newEdge(a, b int) Edge {
	return Edge{
		V:      NewPair(a, b),
		Centre: d3.Midpoint(m.vertices[a], m.vertices[b]),
	}
}
