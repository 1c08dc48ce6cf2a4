package mesh

// MergeVertices identifies goner with keeper in all triangles and in the
// adjacency data. Vertices are never renumbered: goner keeps its position
// but ends up referenced by no triangle and adjacent to no vertex.
// Merging a vertex with itself is a no-op. An *IndexError is returned,
// and nothing is changed, when either index is out of range.
func (m *Mesh) MergeVertices(keeper, goner int) error {
	n := len(m.vertices)
	switch {
	case keeper < 0 || keeper >= n:
		return &IndexError{Index: keeper, Len: n}
	case goner < 0 || goner >= n:
		return &IndexError{Index: goner, Len: n}
	case keeper == goner:
		return nil
	}

	for _, it := range m.vertTris[goner] {
		m.vertTris[keeper] = append(m.vertTris[keeper], it)
		tri := &m.triangles[it]
		for j := range tri {
			if tri[j] == goner {
				tri[j] = keeper
			}
		}
	}
	m.vertTris[keeper] = sortUnique(m.vertTris[keeper])
	m.vertTris[goner] = nil

	for _, v := range m.vertVerts[goner] {
		if v == keeper {
			continue
		}
		m.vertVerts[keeper] = append(m.vertVerts[keeper], v)
		nb := m.vertVerts[v]
		for j := range nb {
			if nb[j] == goner {
				nb[j] = keeper
			}
		}
		m.vertVerts[v] = sortUnique(nb)
	}
	// keeper and goner may have been neighbours.
	m.vertVerts[keeper] = sortUnique(removeInts(m.vertVerts[keeper], keeper, goner))
	m.vertVerts[goner] = nil
	return nil
}

// removeInts removes every occurrence of a and b from s in place.
func removeInts(s []int, a, b int) []int {
	out := s[:0]
	for _, v := range s {
		if v != a && v != b {
			out = append(out, v)
		}
	}
	return out
}
