package mesh_test

import (
	"errors"
	"testing"

	"github.com/EKlimova/rk9students/internal/d3"
	"github.com/EKlimova/rk9students/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// pyramid returns an open square pyramid with apex 0 above the origin.
func pyramid(t testing.TB) *mesh.Mesh {
	verts := []r3.Vec{
		{Z: 1},
		{X: 1}, {Y: 1}, {X: -1}, {Y: -1},
	}
	tris := []mesh.Triangle{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}}
	m, err := mesh.New(verts, tris)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLaplaceSmoothZeroScale(t *testing.T) {
	m := crackedTetra(t, 1e-3)
	before := m.Vertices()
	m.LaplaceSmooth(0)
	for i, v := range m.Vertices() {
		if v != before[i] {
			t.Errorf("vertex %d moved from %v to %v", i, before[i], v)
		}
	}
}

func TestLaplaceSmooth(t *testing.T) {
	m := pyramid(t)
	m.LaplaceSmooth(1)
	if got := m.Vertex(0); !d3.EqualWithin(got, r3.Vec{}, 1e-15) {
		t.Errorf("apex should move to its neighbour average, got %v", got)
	}
	// Vertex 1 neighbours 0, 2 and 4.
	want := r3.Scale(1./3, r3.Vec{X: 0, Y: 0, Z: 1})
	if got := m.Vertex(1); !d3.EqualWithin(got, want, 1e-15) {
		t.Errorf("vertex 1 got %v, want %v", got, want)
	}
}

func TestLaplaceSmoothSkipsRogue(t *testing.T) {
	m := crackedTetra(t, 1e-3)
	if _, err := m.FixCracks(); err != nil {
		t.Fatal(err)
	}
	rogue := m.RogueVertices()
	before := m.Vertices()
	m.LaplaceSmooth(0.5)
	for _, v := range rogue {
		if m.Vertex(v) != before[v] {
			t.Errorf("rogue vertex %d moved", v)
		}
	}
}

func TestTaubinSmooth(t *testing.T) {
	m := pyramid(t)
	m.GenerateTriangleNormals()
	m.TaubinSmooth(0.5, -0.53, 3)
	apex := m.Vertex(0)
	if apex.Z >= 1 || apex.Z <= 0 {
		t.Errorf("apex should be pulled down but stay above the base, got %v", apex)
	}
	for i := 0; i < m.NumTriangles(); i++ {
		p := m.TrianglePoints(i)
		if got, want := m.TriangleNormals()[i], d3.Unit(d3.Normal(p[0], p[1], p[2])); got != want {
			t.Errorf("triangle %d normal stale: %v", i, got)
		}
	}
	if m.VertexNormals() != nil {
		t.Error("vertex normals generated unexpectedly")
	}
}

func TestSetMaxExtentNegative(t *testing.T) {
	verts := []r3.Vec{
		{X: -3, Y: -2, Z: -1},
		{X: -1, Y: -5, Z: -4},
		{X: -2, Y: -1, Z: -6},
	}
	m, err := mesh.New(verts, []mesh.Triangle{{0, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	bb := m.Bounds()
	if bb.Max != (r3.Vec{X: -1, Y: -1, Z: -1}) || bb.Min != (r3.Vec{X: -3, Y: -5, Z: -6}) {
		t.Fatalf("bounds of negative mesh got %+v", bb)
	}
	if err := m.SetMaxExtent(10); err != nil {
		t.Fatal(err)
	}
	if got := m.Bounds().MaxSide(); got != 10 {
		t.Errorf("max extent got %g, want 10", got)
	}
	if got := m.Vertex(0); got != (r3.Vec{X: -6, Y: -4, Z: -2}) {
		t.Errorf("vertex 0 got %v", got)
	}
}

func TestSetMaxExtentDegenerate(t *testing.T) {
	var empty mesh.Mesh
	if err := empty.SetMaxExtent(1); !errors.Is(err, mesh.ErrEmptyMesh) {
		t.Errorf("want ErrEmptyMesh, got %v", err)
	}
	p := r3.Vec{X: 1, Y: 1, Z: 1}
	m, err := mesh.New([]r3.Vec{p, p, p}, []mesh.Triangle{{0, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetMaxExtent(1); err == nil {
		t.Error("want error for zero extent mesh")
	}
}
