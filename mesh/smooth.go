package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// LaplaceSmooth moves every vertex towards the average of its neighbours
// by scale times the distance to that average. A scale of 0 leaves
// positions unchanged. Rogue vertices are not moved.
func (m *Mesh) LaplaceSmooth(scale float64) {
	m.laplace(scale)
	m.RegenerateNormals()
}

func (m *Mesh) laplace(scale float64) {
	displacements := make([]r3.Vec, len(m.vertices))
	for i, nb := range m.vertVerts {
		if len(nb) == 0 {
			continue
		}
		weight := 1 / float64(len(nb))
		for _, j := range nb {
			displacements[i] = r3.Add(displacements[i], r3.Scale(weight, r3.Sub(m.vertices[j], m.vertices[i])))
		}
	}
	for i := range m.vertices {
		m.vertices[i] = r3.Add(m.vertices[i], r3.Scale(scale, displacements[i]))
	}
}

// TaubinSmooth applies steps rounds of a Laplacian pass with lambda
// followed by one with mu. mu is usually negative and slightly larger
// in magnitude than lambda so the mesh does not shrink.
func (m *Mesh) TaubinSmooth(lambda, mu float64, steps int) {
	m.logf("smoothing mesh using Taubin lambda|mu algorithm (inverse neighbour count weighting)")
	for s := 0; s < steps; s++ {
		m.logf("step %d of %d", s+1, steps)
		m.laplace(lambda)
		m.laplace(mu)
	}
	m.RegenerateNormals()
}

// SetMaxExtent scales all vertices about the origin so the longest side
// of the bounding box becomes extent.
func (m *Mesh) SetMaxExtent(extent float64) error {
	if len(m.vertices) == 0 {
		return ErrEmptyMesh
	}
	current := m.Bounds().MaxSide()
	if current == 0 {
		return errors.New("mesh has zero extent, cannot scale")
	}
	k := extent / current
	m.logf("original max extent: %g", current)
	m.logf("scaling all vertices by a factor of: %g", k)
	for i := range m.vertices {
		m.vertices[i] = r3.Scale(k, m.vertices[i])
	}
	m.RegenerateNormals()
	return nil
}
