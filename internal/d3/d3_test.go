package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxNegativeCoordinates(t *testing.T) {
	pts := []r3.Vec{
		{X: -3, Y: -2, Z: -1},
		{X: -1, Y: -5, Z: -4},
		{X: -2, Y: -1, Z: -6},
	}
	b := EmptyBox()
	if !b.Empty() {
		t.Fatal("new box should be empty")
	}
	for _, p := range pts {
		b = b.Include(p)
	}
	want := Box{Min: r3.Vec{X: -3, Y: -5, Z: -6}, Max: r3.Vec{X: -1, Y: -1, Z: -1}}
	if !b.Equals(want, 0) {
		t.Errorf("got box %+v, want %+v", b, want)
	}
	if got := b.MaxSide(); got != 5 {
		t.Errorf("max side got %g, want 5", got)
	}
}

func TestUnitZero(t *testing.T) {
	u := Unit(r3.Vec{})
	if u != (r3.Vec{}) {
		t.Errorf("unit of zero vector should be zero, got %v", u)
	}
	u = Unit(r3.Vec{Z: 4})
	if !EqualWithin(u, r3.Vec{Z: 1}, 1e-15) {
		t.Errorf("got %v, want (0,0,1)", u)
	}
}

func TestNormalWinding(t *testing.T) {
	n := Normal(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
	if n != (r3.Vec{Z: 1}) {
		t.Errorf("got %v, want (0,0,1)", n)
	}
	if d := Dist2(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 2, Y: 4, Z: 6}); math.Abs(d-14) > 0 {
		t.Errorf("dist2 got %g, want 14", d)
	}
	if m := Midpoint(r3.Vec{X: 2}, r3.Vec{Y: 4}); m != (r3.Vec{X: 1, Y: 2}) {
		t.Errorf("midpoint got %v", m)
	}
}
