// Package preview renders a shaded image of a mesh for quick inspection.
package preview

import (
	"image"
	"image/png"
	"io"

	"github.com/EKlimova/rk9students/mesh"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options configures a render. The zero value is usable: missing fields
// take the values of DefaultOptions.
type Options struct {
	Width, Height int // output size in pixels
	Supersample   int // render at this multiple of the size then downscale
	FovY          float64
	Near, Far     float64
	// Eye, LookAt and Up are given in the bi-unit cube the mesh is fitted into.
	Eye, LookAt, Up r3.Vec
	Color           string // object colour as hex
	Background      string
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      768,
		Supersample: 2,
		FovY:        30,
		Near:        1,
		Far:         10,
		Eye:         r3.Vec{X: 3, Y: 3, Z: 3},
		Up:          r3.Vec{Z: 1},
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.Supersample <= 0 {
		o.Supersample = d.Supersample
	}
	if o.FovY <= 0 {
		o.FovY = d.FovY
	}
	if o.Near <= 0 || o.Far <= o.Near {
		o.Near, o.Far = d.Near, d.Far
	}
	if o.Eye == (r3.Vec{}) {
		o.Eye = d.Eye
	}
	if o.Up == (r3.Vec{}) {
		o.Up = d.Up
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

// Render draws m with a Phong shader. Rogue vertices do not show since
// only triangles are drawn.
func Render(m *mesh.Mesh, opts Options) (image.Image, error) {
	if m.NumTriangles() == 0 {
		return nil, mesh.ErrEmptyMesh
	}
	opts = opts.withDefaults()
	triangles := make([]*fauxgl.Triangle, m.NumTriangles())
	for i := range triangles {
		p := m.TrianglePoints(i)
		triangles[i] = fauxgl.NewTriangleForPoints(vec(p[0]), vec(p[1]), vec(p[2]))
	}
	fm := fauxgl.NewTriangleMesh(triangles)
	// fit mesh in a bi-unit cube centered at the origin
	fm.BiUnitCube()

	var (
		scale  = opts.Supersample
		eye    = vec(opts.Eye)
		center = vec(opts.LookAt)
		up     = vec(opts.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		aspect = float64(opts.Width) / float64(opts.Height)
	)
	context := fauxgl.NewContext(opts.Width*scale, opts.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(opts.Background))
	matrix := fauxgl.LookAt(eye, center, up).Perspective(opts.FovY, aspect, opts.Near, opts.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(opts.Color)
	context.Shader = shader
	context.DrawMesh(fm)

	img := context.Image()
	if scale > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(opts.Width), uint(opts.Height), img, resize.Bilinear)
	}
	return img, nil
}

// WritePNG renders m and encodes the result as PNG to w.
func WritePNG(w io.Writer, m *mesh.Mesh, opts Options) error {
	img, err := Render(m, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return &mesh.IOError{Op: "write png", Err: err}
	}
	return nil
}

func vec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
