package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EKlimova/rk9students/mesh"
	"github.com/EKlimova/rk9students/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// writeCrackedTetra writes a tetrahedron with one face built from
// slightly displaced copies of two corners.
func writeCrackedTetra(t *testing.T, dir string) string {
	const eps = 1.0 / 1024
	b := mesh.NewBuilder(4)
	a, bb, c, d := r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}
	b.AddTriangle(a, c, bb)
	b.AddTriangle(r3.Vec{X: eps, Y: eps, Z: eps}, r3.Vec{X: 1 + eps, Y: eps, Z: eps}, d)
	b.AddTriangle(bb, c, d)
	b.AddTriangle(c, a, d)
	path := filepath.Join(dir, "cracked.stl")
	if err := stl.WriteFile(path, b.Mesh(), 0); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("meshfix %v: %v", args, err)
	}
	return out.String()
}

func TestFixThenInfo(t *testing.T) {
	dir := t.TempDir()
	in := writeCrackedTetra(t, dir)
	if got := run(t, "info", in); !strings.Contains(got, "Problem edges: 6") {
		t.Errorf("info before fix:\n%s", got)
	}
	out := filepath.Join(dir, "fixed.stl")
	run(t, "fix", in, "-o", out, "--buffer", "3")
	got := run(t, "info", out)
	for _, want := range []string{"Triangles: 4", "Vertices: 4 (0 rogue)", "Problem edges: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("info after fix missing %q:\n%s", want, got)
		}
	}
}

func TestExports(t *testing.T) {
	dir := t.TempDir()
	in := writeCrackedTetra(t, dir)
	inc := filepath.Join(dir, "tetra.inc")
	run(t, "pov", in, "-o", inc, "--normals", "--fix-cracks")
	b, err := os.ReadFile(inc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "normal_vectors") {
		t.Errorf("pov output lacks normals:\n%s", b)
	}
	run(t, "smooth", in, "-o", filepath.Join(dir, "smooth.stl"), "--steps", "2", "--fix-cracks")
	run(t, "scale", in, "-o", filepath.Join(dir, "scaled.stl"), "--extent", "10")
	png := filepath.Join(dir, "tetra.png")
	run(t, "preview", in, "-o", png, "--width", "32", "--height", "32")
	if fi, err := os.Stat(png); err != nil || fi.Size() == 0 {
		t.Errorf("preview not written: %v", err)
	}
}

func TestMissingInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--quiet", "info", filepath.Join(t.TempDir(), "nope.stl")})
	if err := cmd.Execute(); err == nil {
		t.Error("want error for missing input")
	}
}

func TestPreviewCreateError(t *testing.T) {
	dir := t.TempDir()
	in := writeCrackedTetra(t, dir)
	out := filepath.Join(dir, "missing", "tetra.png")
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--quiet", "preview", in, "-o", out})
	err := cmd.Execute()
	var ioerr *mesh.IOError
	if !errors.As(err, &ioerr) {
		t.Fatalf("want IOError, got %v", err)
	}
	if ioerr.Path != out || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error %v", err)
	}
}
