// Package pov writes meshes as POV-Ray mesh2 blocks.
package pov

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/EKlimova/rk9students/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Write writes the vertex_vectors, optional normal_vectors and
// face_indices sections of a mesh2 block. Every stored vertex is
// listed, rogue ones included, so face indices match vertex indices.
// When writeNormals is set and vertex normals are missing they are
// generated on m.
func Write(w io.Writer, m *mesh.Mesh, writeNormals bool) error {
	if m.NumTriangles() == 0 {
		return mesh.ErrEmptyMesh
	}
	if writeNormals && len(m.VertexNormals()) != m.NumVertices() {
		m.GenerateVertexNormals()
	}
	bw := bufio.NewWriter(w)
	writeVectors(bw, "vertex_vectors", m.NumVertices(), m.Vertex)
	if writeNormals {
		normals := m.VertexNormals()
		writeVectors(bw, "normal_vectors", len(normals), func(i int) r3.Vec { return normals[i] })
	}
	writeSection(bw, "face_indices", m.NumTriangles(), func(i int) {
		t := m.Triangle(i)
		fmt.Fprintf(bw, "  <%d,%d,%d>", t[0], t[1], t[2])
	})
	if err := bw.Flush(); err != nil {
		return &mesh.IOError{Op: "write mesh2", Err: err}
	}
	return nil
}

// WriteFile writes m as a mesh2 block to path.
func WriteFile(path string, m *mesh.Mesh, writeNormals bool) error {
	if m.NumTriangles() == 0 {
		return mesh.ErrEmptyMesh
	}
	fp, err := os.Create(path)
	if err != nil {
		return &mesh.IOError{Op: "create", Path: path, Err: err}
	}
	err = Write(fp, m, writeNormals)
	if cerr := fp.Close(); err == nil && cerr != nil {
		err = &mesh.IOError{Op: "close", Path: path, Err: cerr}
	}
	if ioErr, ok := err.(*mesh.IOError); ok && ioErr.Path == "" {
		ioErr.Path = path
	}
	return err
}

func writeVectors(w *bufio.Writer, name string, n int, vec func(int) r3.Vec) {
	writeSection(w, name, n, func(i int) {
		v := vec(i)
		fmt.Fprintf(w, "  <%f,%f,%f>", v.X, v.Y, v.Z)
	})
}

// writeSection writes a named, counted and comma separated list.
// The last element has no trailing comma.
func writeSection(w *bufio.Writer, name string, n int, elem func(int)) {
	fmt.Fprintf(w, " %s\n {\n  %d,\n", name, n)
	for i := 0; i < n; i++ {
		elem(i)
		if i < n-1 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
	}
	w.WriteString(" }\n")
}
