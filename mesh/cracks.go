package mesh

import (
	"sort"

	"github.com/EKlimova/rk9students/internal/d3"
)

// CrackReport summarises a FixCracks run.
type CrackReport struct {
	ProblemEdges int // edges not shared by exactly two triangles
	MergedPairs  int // vertex pairs merged
}

// ProblemEdges returns the edges that are not shared by exactly two
// triangles, sorted by their vertex pair.
func (m *Mesh) ProblemEdges() []Edge {
	seen := make(map[Pair]struct{})
	var edges []Edge
	for i := range m.vertices {
		for _, j := range m.vertVerts[i] {
			if countShared(m.vertTris[i], m.vertTris[j]) == 2 {
				continue
			}
			p := NewPair(i, j)
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			edges = append(edges, m.newEdge(i, j))
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].V.Less(edges[j].V) })
	for i := range edges {
		edges[i].id = i
	}
	return edges
}

// countShared returns the number of triangle indices present in both a and b.
func countShared(a, b []int) int {
	n := 0
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				n++
				break
			}
		}
	}
	return n
}

// FixCracks stitches seams left by near coincident duplicate vertices.
// Problem edges are paired greedily with the unprocessed later edge
// whose centre is closest (first one wins on ties) and the matching
// endpoints of each pair are merged with MergeVertices, lower index kept.
//
// A mesh without problem edges is left alone. An odd number of problem
// edges cannot be paired and yields a *TopologyError without modifying
// the mesh. Populated normals are regenerated after merging.
func (m *Mesh) FixCracks() (CrackReport, error) {
	m.logf("finding cracks")
	edges := m.ProblemEdges()
	report := CrackReport{ProblemEdges: len(edges)}
	if len(edges) == 0 {
		m.logf("no cracks found, the mesh seems to be in good condition")
		return report, nil
	}
	m.logf("found %d problem edges", len(edges))
	if len(edges)%2 != 0 {
		m.logf("the number of problem edges must be even, aborting")
		return report, &TopologyError{ProblemEdges: len(edges)}
	}

	m.logf("pairing problem edges")
	pairs, err := m.pairEdges(edges)
	if err != nil {
		return report, err
	}

	m.logf("merging %d vertex pairs", len(pairs))
	for _, p := range pairs {
		if err := m.MergeVertices(p[0], p[1]); err != nil {
			return report, err
		}
		report.MergedPairs++
	}
	m.RegenerateNormals()
	return report, nil
}

// pairEdges matches problem edges and returns the vertex pairs to merge
// in ascending order. It does not modify the mesh.
func (m *Mesh) pairEdges(edges []Edge) ([]Pair, error) {
	processed := make([]bool, len(edges))
	merge := make(map[Pair]struct{})
	for i := range edges {
		a := edges[i]
		if processed[a.id] {
			continue
		}
		closest := -1
		var closestDist2 float64
		for j := i + 1; j < len(edges); j++ {
			if processed[edges[j].id] {
				continue
			}
			d2 := d3.Dist2(a.Centre, edges[j].Centre)
			if closest < 0 || d2 < closestDist2 {
				closest = j
				closestDist2 = d2
			}
		}
		if closest < 0 {
			return nil, &TopologyError{ProblemEdges: len(edges)}
		}
		b := edges[closest]
		processed[a.id] = true
		processed[b.id] = true

		// Orient b like a so that merges do not cross.
		a0 := m.vertices[a.V[0]]
		if d3.Dist2(a0, m.vertices[b.V[0]]) > d3.Dist2(a0, m.vertices[b.V[1]]) {
			b.V[0], b.V[1] = b.V[1], b.V[0]
		}
		if a.V[0] != b.V[0] {
			merge[NewPair(a.V[0], b.V[0])] = struct{}{}
		}
		if a.V[1] != b.V[1] {
			merge[NewPair(a.V[1], b.V[1])] = struct{}{}
		}
	}
	pairs := make([]Pair, 0, len(merge))
	for p := range merge {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Less(pairs[j]) })
	return pairs, nil
}
