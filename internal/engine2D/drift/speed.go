package drift

// BaseSpeed is the travel speed in pixels per animation-second at depth 0
// and 1x motion scale.
const BaseSpeed = 7.0

// depthSpeedRange is the additional speed multiplier gained between depth 0
// (farthest) and depth 1 (nearest).
const depthSpeedRange = 1.5

// Speed maps normalized depth to pixels per second. Monotonic non-decreasing
// in depth: depth 0 gives BaseSpeed, depth 1 gives 2.5x BaseSpeed. Callers
// clamp depth to [0, 1] and keep motionScale >= 0.
func Speed(depth, motionScale float64) float64 {
	return BaseSpeed * (1 + depth*depthSpeedRange) * motionScale
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
