package drift

import "math"

// Vec2 is an immutable 2D vector; every operation returns a new value.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(u Vec2) Vec2    { return Vec2{v.X + u.X, v.Y + u.Y} }
func (v Vec2) Sub(u Vec2) Vec2    { return Vec2{v.X - u.X, v.Y - u.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(u Vec2) float64 { return v.X*u.X + v.Y*u.Y }

// Perp returns the vector rotated 90 degrees: (x, y) -> (-y, x).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector. A zero vector normalizes to (1, 0) so
// travel math downstream always has a defined direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{1, 0}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is axis-aligned with Right >= Left and Bottom >= Top.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2}
}

// HalfExtents returns half the width and half the height.
func (r Rect) HalfExtents() (hx, hy float64) {
	return r.Width() / 2, r.Height() / 2
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Expand grows the rectangle outward by m on all four sides.
func (r Rect) Expand(m float64) Rect {
	return Rect{r.Left - m, r.Top - m, r.Right + m, r.Bottom + m}
}
