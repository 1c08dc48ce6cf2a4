package mesh_test

import (
	"testing"

	"github.com/EKlimova/rk9students/internal/d3"
	"github.com/EKlimova/rk9students/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGenerateNormalsSingleTriangle(t *testing.T) {
	b := mesh.NewBuilder(1)
	b.AddTriangle(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
	m := b.Mesh()
	if m.TriangleNormals() != nil || m.VertexNormals() != nil {
		t.Fatal("normals should be empty until requested")
	}
	m.GenerateNormals()
	want := r3.Vec{Z: 1}
	if got := m.TriangleNormals()[0]; !d3.EqualWithin(got, want, 1e-15) {
		t.Errorf("face normal got %v, want %v", got, want)
	}
	for i, got := range m.VertexNormals() {
		if !d3.EqualWithin(got, want, 1e-15) {
			t.Errorf("vertex %d normal got %v, want %v", i, got, want)
		}
	}
}

func TestVertexNormalsRogue(t *testing.T) {
	m := crackedTetra(t, 1e-3)
	if _, err := m.FixCracks(); err != nil {
		t.Fatal(err)
	}
	m.GenerateVertexNormals()
	for _, v := range m.RogueVertices() {
		if n := m.VertexNormals()[v]; n != (r3.Vec{}) {
			t.Errorf("rogue vertex %d got normal %v", v, n)
		}
	}
	if m.TriangleNormals() != nil {
		t.Error("triangle normals generated unexpectedly")
	}
}

func TestTriangleNormalFallback(t *testing.T) {
	verts, tris := tetra()
	m, err := mesh.New(verts, tris)
	if err != nil {
		t.Fatal(err)
	}
	uncached := m.TriangleNormal(2)
	m.GenerateTriangleNormals()
	if cached := m.TriangleNormal(2); !d3.EqualWithin(cached, uncached, 1e-15) {
		t.Errorf("cached %v and computed %v normals differ", cached, uncached)
	}
}
