package drift

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{1, 0}) {
		t.Fatalf("zero vector normalized to %v, want (1,0)", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec2{{3, 4}, {-1, 2}, {0.001, 0}, {-5, -5}} {
		n := v.Normalize()
		if !approx(n.Len(), 1) {
			t.Fatalf("Normalize(%v).Len() = %v, want 1", v, n.Len())
		}
	}
}

func TestPerpRotation(t *testing.T) {
	p := Vec2{3, 4}.Perp()
	if p != (Vec2{-4, 3}) {
		t.Fatalf("Perp(3,4) = %v, want (-4,3)", p)
	}
	if d := (Vec2{3, 4}).Dot(p); !approx(d, 0) {
		t.Fatalf("Perp not orthogonal, dot = %v", d)
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	for _, p := range []Vec2{{0, 0}, {10, 5}, {0, 5}, {10, 0}, {5, 2.5}} {
		if !r.Contains(p) {
			t.Fatalf("%v should be inside %v", p, r)
		}
	}
	for _, p := range []Vec2{{-0.001, 2}, {10.001, 2}, {5, -0.001}, {5, 5.001}} {
		if r.Contains(p) {
			t.Fatalf("%v should be outside %v", p, r)
		}
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{0, 0, 10, 5}.Expand(2)
	want := Rect{-2, -2, 12, 7}
	if r != want {
		t.Fatalf("Expand = %v, want %v", r, want)
	}
	if !approx(r.Width(), 14) || !approx(r.Height(), 9) {
		t.Fatalf("expanded size = %v x %v, want 14 x 9", r.Width(), r.Height())
	}
	if c := r.Center(); !approx(c.X, 5) || !approx(c.Y, 2.5) {
		t.Fatalf("center moved to %v", c)
	}
}

func TestHalfExtents(t *testing.T) {
	hx, hy := Rect{-30, -30, 830, 630}.HalfExtents()
	if !approx(hx, 430) || !approx(hy, 330) {
		t.Fatalf("half extents = %v, %v, want 430, 330", hx, hy)
	}
}
