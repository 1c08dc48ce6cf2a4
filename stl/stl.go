// Package stl reads and writes binary STL files as indexed meshes.
//
// Reading deduplicates vertices by exact coordinates and builds the
// mesh adjacency. Both directions move data in chunks of a configurable
// number of triangles; the chunk width only affects throughput.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/EKlimova/rk9students/mesh"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	headerSize   = 80
	triangleSize = 50 // twelve float32 and a uint16 attribute.

	// DefaultBufferWidth is the number of triangles moved per chunk
	// when no width is given.
	DefaultBufferWidth = 1 << 10
)

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [headerSize]uint8 // Header
	Count uint32            // Number of triangles
}

// ReadOptions configures Read.
type ReadOptions struct {
	// GenerateNormals computes vertex and triangle normals after loading.
	// Normals stored in the file are always discarded.
	GenerateNormals bool
	// BufferWidth is the number of triangles read per chunk.
	// Values <= 0 select DefaultBufferWidth.
	BufferWidth int
	// Strict rejects files with NaN or infinite vertex coordinates.
	Strict bool
	// Observer receives progress messages and is attached to the
	// returned mesh. Nil means silent.
	Observer mesh.Observer
}

// Read decodes a binary STL stream. Malformed, truncated or ASCII input
// yields a *mesh.FormatError.
func Read(r io.Reader, opts ReadOptions) (*mesh.Mesh, error) {
	obs := opts.Observer
	if obs == nil {
		obs = mesh.Discard
	}
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, &mesh.FormatError{Msg: "reading STL header", Err: err}
	}
	if bytes.EqualFold(header[:5], []byte("solid")) {
		return nil, &mesh.FormatError{Msg: "encountered ASCII STL header, only binary STL is supported"}
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, &mesh.FormatError{Msg: "reading STL triangle count", Err: err}
	}
	obs.Printf("triangles: %d", count)

	width := opts.BufferWidth
	if width <= 0 {
		width = DefaultBufferWidth
	}
	total := int(count)
	// count is untrusted; grow past one chunk only as data arrives.
	b := mesh.NewBuilder(min(total, width))
	buf := make([]byte, triangleSize*min(width, total))
	var d stlTriangle
	for read := 0; read < total; {
		n := min(width, total-read)
		chunk := buf[:n*triangleSize]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, &mesh.FormatError{Msg: fmt.Sprintf("%d/%d STL triangles read", read, total), Err: err}
		}
		for i := 0; i < n; i++ {
			d.get(chunk[i*triangleSize:])
			if opts.Strict {
				if err := d.validate(); err != nil {
					return nil, &mesh.FormatError{Msg: fmt.Sprintf("STL triangle %d", read+i), Err: err}
				}
			}
			b.AddTriangle(r3From3F32(d.Vertex1), r3From3F32(d.Vertex2), r3From3F32(d.Vertex3))
		}
		read += n
	}
	obs.Printf("vertices: %d (of which %d are unique)", 3*total, b.NumVertices())

	m := b.Mesh()
	m.SetObserver(opts.Observer)
	if opts.GenerateNormals {
		obs.Printf("generating normals")
		m.GenerateNormals()
	}
	return m, nil
}

// ReadFile opens and decodes the binary STL file at path.
func ReadFile(path string, opts ReadOptions) (*mesh.Mesh, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, &mesh.IOError{Op: "open", Path: path, Err: err}
	}
	defer fp.Close()
	if opts.Observer != nil {
		opts.Observer.Printf("reading file: %s", path)
	}
	return Read(fp, opts)
}

// Write encodes m as binary STL with a zeroed header. Cached triangle
// normals are written when complete, otherwise normals are computed from
// the vertices. Rogue vertices are skipped since only triangles are
// written. A failed write yields a *mesh.IOError and leaves the output
// incomplete.
func Write(w io.Writer, m *mesh.Mesh, bufferWidth int) error {
	nt := m.NumTriangles()
	if nt == 0 {
		return mesh.ErrEmptyMesh
	}
	if uint64(nt) > math.MaxUint32 {
		return fmt.Errorf("%d triangles do not fit in an STL file", nt)
	}
	if bufferWidth <= 0 {
		bufferWidth = DefaultBufferWidth
	}
	header := stlHeader{
		Count: uint32(nt),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return &mesh.IOError{Op: "write STL header", Err: err}
	}
	buf := make([]byte, triangleSize*min(bufferWidth, nt))
	n := 0
	for i := 0; i < nt; i++ {
		d := makeSTLTriangle(m.TriangleNormal(i), m.TrianglePoints(i))
		d.put(buf[n*triangleSize:])
		n++
		if n*triangleSize == len(buf) || i == nt-1 {
			if _, err := w.Write(buf[:n*triangleSize]); err != nil {
				return &mesh.IOError{Op: fmt.Sprintf("write STL triangles %d-%d", i+1-n, i), Err: err}
			}
			n = 0
		}
	}
	return nil
}

// WriteFile writes m as binary STL to path, truncating an existing file.
func WriteFile(path string, m *mesh.Mesh, bufferWidth int) error {
	if m.NumTriangles() == 0 {
		return mesh.ErrEmptyMesh
	}
	fp, err := os.Create(path)
	if err != nil {
		return &mesh.IOError{Op: "create", Path: path, Err: err}
	}
	err = Write(fp, m, bufferWidth)
	if cerr := fp.Close(); err == nil && cerr != nil {
		err = &mesh.IOError{Op: "close", Path: path, Err: cerr}
	}
	var ioErr *mesh.IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = path
	}
	return err
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func makeSTLTriangle(n r3.Vec, v [3]r3.Vec) stlTriangle {
	return stlTriangle{
		Normal:  f32From3R3(n),
		Vertex1: f32From3R3(v[0]),
		Vertex2: f32From3R3(v[1]),
		Vertex3: f32From3R3(v[2]),
	}
}

func (t stlTriangle) put(b []byte) {
	if len(b) < triangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < triangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
	// attribute is ignored.
}

func (t stlTriangle) validate() error {
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	return nil
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func f32From3R3(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
