package drift

import (
	"fmt"
	"math"
)

// OffscreenCoord is the sentinel normalized coordinate reported for an
// invisible sprite so renderers can skip it without their own bounds test.
const OffscreenCoord = 10.0

// entryPullback scales the sprite radius when pulling the entry point back
// from the canvas edge, guaranteeing fully off-screen placement.
const entryPullback = 2.5

// Journey computes a sprite's position in closed form from absolute elapsed
// time. It carries no mutable state: the same inputs always give the same
// output, which lets scenes authored against absolute-time semantics seek,
// replay, and start sprites mid-flight (negative start phase included).
// Unlike the incremental Stepper, each recycle cycle ends with an explicit
// off-screen delay before the sprite re-enters.
type Journey struct {
	Seed  string
	Layer int
	Index int

	// U, V is the grid-normalized initial position; no angle applied yet.
	U, V float64

	AngleDeg       float64
	Depth          float64
	MotionScale    float64
	TimeMultiplier float64
	StartPhase     float64
	Delay          float64 // off-screen pause before each re-entry, seconds
	SpriteW        float64
	SpriteH        float64
	SafetyMargin   float64
}

// At returns the normalized position (roughly within [-10, 10]) and
// visibility for the given elapsed animation time. Values outside [0, 1]
// mean off-screen. A zero-area canvas reports the sprite invisible without
// computing anything.
func (j *Journey) At(elapsed, canvasW, canvasH float64) (u, v float64, visible bool) {
	if canvasW <= 0 || canvasH <= 0 {
		return OffscreenCoord, OffscreenCoord, false
	}

	radius := SpriteRadius(j.SpriteW, j.SpriteH, j.SafetyMargin)
	speed := Speed(Clamp01(j.Depth), j.MotionScale)
	start := Vec2{j.U * canvasW, j.V * canvasH}
	if speed <= 0 {
		// Static sprite: visibility still depends on its fixed position.
		return j.report(start, canvasW, canvasH, radius)
	}

	rad := j.AngleDeg * math.Pi / 180
	dir := Vec2{math.Cos(rad), math.Sin(rad)}

	travelDistance := exitDistance(start, dir, PaddedRect(canvasW, canvasH, radius))
	travelTime := travelDistance / speed
	cycleTime := travelTime + j.Delay
	if cycleTime <= 0 {
		// Degenerate geometry: the start never intersects the padded rect.
		cycleTime = 1
	}

	t := elapsed*j.TimeMultiplier + j.StartPhase
	movementDistance := t * speed

	if movementDistance >= 0 && movementDistance < travelDistance {
		// Still on the first journey from the authored start position.
		return j.report(start.Add(dir.Mul(movementDistance)), canvasW, canvasH, radius)
	}

	// Negative movement means the sprite was scheduled to start off-canvas;
	// positive past travelDistance means it genuinely exited. Both collapse
	// into a signed time offset from the first exit.
	var timeSinceExit float64
	if movementDistance < 0 {
		timeSinceExit = movementDistance / speed
	} else {
		timeSinceExit = (movementDistance - travelDistance) / speed
	}

	cycle := math.Floor(timeSinceExit / cycleTime)
	timeInCycle := timeSinceExit - cycle*cycleTime

	entry := j.entryPoint(dir, canvasW, canvasH, radius, int64(cycle))
	if timeInCycle < j.Delay {
		// Waiting off-canvas at the entry point.
		return j.report(entry, canvasW, canvasH, radius)
	}
	moved := (timeInCycle - j.Delay) * speed
	return j.report(entry.Add(dir.Mul(moved)), canvasW, canvasH, radius)
}

// exitDistance returns the parametric distance from start along dir to the
// first padded-rectangle edge crossing. Edges parallel to the travel
// direction are skipped rather than divided by zero, and only crossings
// whose cross-coordinate actually falls on the edge count.
func exitDistance(start, dir Vec2, padded Rect) float64 {
	best := math.Inf(1)
	if dir.X != 0 {
		for _, x := range [2]float64{padded.Left, padded.Right} {
			t := (x - start.X) / dir.X
			if t > 0 && t < best {
				y := start.Y + dir.Y*t
				if y >= padded.Top && y <= padded.Bottom {
					best = t
				}
			}
		}
	}
	if dir.Y != 0 {
		for _, y := range [2]float64{padded.Top, padded.Bottom} {
			t := (y - start.Y) / dir.Y
			if t > 0 && t < best {
				x := start.X + dir.X*t
				if x >= padded.Left && x <= padded.Right {
					best = t
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		// Start already outside the padded rect and moving away.
		return 0
	}
	return best
}

// entryPoint picks the canvas edge the sprite re-enters from by bucketing
// the travel angle into four 90-degree quadrants centered on 0/90/180/270
// (ties resolve to the lower bucket), samples a seeded perpendicular offset
// for the given cycle, and pulls the point back off-screen against travel.
func (j *Journey) entryPoint(dir Vec2, canvasW, canvasH, radius float64, cycle int64) Vec2 {
	base, span := entryGeometry(j.AngleDeg, canvasW, canvasH, radius)
	rng := SeededRand(fmt.Sprintf("%s-journey-%d-%d-%d", j.Seed, j.Layer, j.Index, cycle))
	offset := (rng()*2 - 1) * span / 2
	return base.Add(dir.Perp().Mul(offset)).Sub(dir.Mul(entryPullback * radius))
}

// entryGeometry returns the midpoint of the entry edge and the perpendicular
// span covering the canvas dimension orthogonal to travel plus a sprite
// diameter of padding.
func entryGeometry(angleDeg, canvasW, canvasH, radius float64) (base Vec2, span float64) {
	angle := math.Mod(angleDeg, 360)
	if angle < 0 {
		angle += 360
	}
	switch {
	case angle >= 315 || angle < 45:
		// Moving right: enters from the left edge.
		return Vec2{0, canvasH / 2}, canvasH + 2*radius
	case angle < 135:
		// Moving down: enters from the top edge.
		return Vec2{canvasW / 2, 0}, canvasW + 2*radius
	case angle < 225:
		// Moving left: enters from the right edge.
		return Vec2{canvasW, canvasH / 2}, canvasH + 2*radius
	default:
		// Moving up: enters from the bottom edge.
		return Vec2{canvasW / 2, canvasH}, canvasW + 2*radius
	}
}

// report converts a world position into normalized output plus visibility.
// A sprite is visible iff its center lies within the canvas padded by the
// sprite radius on all sides; an invisible axis collapses to the sentinel.
func (j *Journey) report(pos Vec2, canvasW, canvasH, radius float64) (float64, float64, bool) {
	if pos.X >= -radius && pos.X <= canvasW+radius &&
		pos.Y >= -radius && pos.Y <= canvasH+radius {
		return pos.X / canvasW, pos.Y / canvasH, true
	}
	u := pos.X / canvasW
	v := pos.Y / canvasH
	switch {
	case pos.X < -radius:
		u = -OffscreenCoord
	case pos.X > canvasW+radius:
		u = OffscreenCoord
	}
	switch {
	case pos.Y < -radius:
		v = -OffscreenCoord
	case pos.Y > canvasH+radius:
		v = OffscreenCoord
	}
	return u, v, false
}
