// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := 1e-9
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return math.Abs(math.Sqrt(dx*dx+dy*dy)) < tol
}

func TestTransformOffset(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}

	r := Affine2D{}.Offset(o).Transform(p)
	if !eq(r, Pt(3, -1)) {
		t.Errorf("offset transformation mismatch: have %v, want {3 -1}", r)
	}
	i := Affine2D{}.Offset(o).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("offset transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformScale(t *testing.T) {
	p := Point{X: 1, Y: 2}
	s := Point{X: -1, Y: 2}

	r := Affine2D{}.Scale(Point{}, s).Transform(p)
	if !eq(r, Pt(-1, 4)) {
		t.Errorf("scale transformation mismatch: have %v, want {-1 4}", r)
	}
	i := Affine2D{}.Scale(Point{}, s).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("scale transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformRotate(t *testing.T) {
	p := Point{X: 1, Y: 0}
	a := math.Pi / 2

	r := Affine2D{}.Rotate(Point{}, a).Transform(p)
	if !eq(r, Pt(0, 1)) {
		t.Errorf("rotate transformation mismatch: have %v, want {0 1}", r)
	}
	i := Affine2D{}.Rotate(Point{}, a).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("rotate transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformShear(t *testing.T) {
	p := Point{X: 1, Y: 1}

	r := Affine2D{}.Shear(Point{}, math.Pi/4, 0).Transform(p)
	if !eq(r, Pt(2, 1)) {
		t.Errorf("shear transformation mismatch: have %v, want {2 1}", r)
	}
	i := Affine2D{}.Shear(Point{}, math.Pi/4, 0).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("shear transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformMultiply(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}
	s := Point{X: -1, Y: 2}
	a := math.Pi / 2

	r := Affine2D{}.Offset(o).Scale(Point{}, s).Rotate(Point{}, a).Transform(p)
	if !eq(r, Pt(2, -3)) {
		t.Errorf("complex transformation mismatch: have %v, want {2 -3}", r)
	}
	i := Affine2D{}.Offset(o).Scale(Point{}, s).Rotate(Point{}, a).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("complex transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestPrimes(t *testing.T) {
	xform := NewAffine2D(2, 3, 5, 7, 11, 13)
	// Verify the representation round-trips through Elems.
	sx, hx, ox, hy, sy, oy := xform.Elems()
	if sx != 2 || hx != 3 || ox != 5 || hy != 7 || sy != 11 || oy != 13 {
		t.Errorf("elems mismatch: have %v %v %v %v %v %v", sx, hx, ox, hy, sy, oy)
	}
	// The zero value is the identity.
	p := Pt(17, 19)
	if got := (Affine2D{}).Transform(p); got != p {
		t.Errorf("identity transform mismatch: have %v, want %v", got, p)
	}
	// A transform composed with its inverse is the identity.
	got := xform.Mul(xform.Invert()).Transform(p)
	if !eq(got, p) {
		t.Errorf("inverse composition mismatch: have %v, want %v", got, p)
	}
}
