package drift

import "math"

const (
	// DefaultSafetyMargin absorbs anti-aliasing and stroke overdraw beyond
	// the sprite's own bounding radius.
	DefaultSafetyMargin = 2.0

	// DefaultBackoff places the spawn line marginally outside the padded
	// rectangle so a recycled sprite re-enters on its very next step.
	DefaultBackoff = 0.1
)

// SpriteRadius is the bounding-circle radius of a w x h sprite plus margin.
func SpriteRadius(w, h, margin float64) float64 {
	return 0.5*math.Hypot(w, h) + margin
}

// PaddedRect expands the canvas by radius on all four sides so that culling
// and respawn decisions account for sprite size, not just its center point.
func PaddedRect(canvasW, canvasH, radius float64) Rect {
	return Rect{0, 0, canvasW, canvasH}.Expand(radius)
}

// support returns the distance from the rect center to its boundary along
// the unit direction u.
func support(r Rect, u Vec2) float64 {
	hx, hy := r.HalfExtents()
	return math.Abs(u.X)*hx + math.Abs(u.Y)*hy
}

// SpawnLine is the segment, perpendicular to the travel direction, that
// recycled sprites re-enter from. It spans Base +- HalfSpan along PerpUnit.
type SpawnLine struct {
	Base     Vec2
	PerpUnit Vec2
	HalfSpan float64
}

// ComputeSpawnLine places the line just outside padded on the side sprites
// arrive from (opposite the travel direction), with a span long enough to
// cover the rectangle's full cross-section perpendicular to travel.
func ComputeSpawnLine(padded Rect, dir Vec2, backoff float64) SpawnLine {
	perp := dir.Perp()
	return SpawnLine{
		Base:     padded.Center().Sub(dir.Mul(support(padded, dir) + backoff)),
		PerpUnit: perp,
		HalfSpan: support(padded, perp),
	}
}

// Sample draws a uniformly distributed point across the line's full span, so
// recycled sprites do not cluster at the rectangle's midline.
func (l SpawnLine) Sample(rng func() float64) Vec2 {
	return l.Base.Add(l.PerpUnit.Mul((rng()*2 - 1) * l.HalfSpan))
}

// TraversalDistance is the full travel length from the spawn line across the
// padded rectangle and out the far side.
func TraversalDistance(padded Rect, dir Vec2, backoff float64) float64 {
	return 2*support(padded, dir) + 2*backoff
}
