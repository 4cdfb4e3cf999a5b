package drift

import "fmt"

// Stepper advances one sprite frame by frame. Pos and Cycle are owned
// exclusively by this value and mutated only through Place and Step; the
// identity fields never change after creation and key every respawn
// generator, so two runs with the same scene seed recycle sprites to
// bit-identical coordinates.
type Stepper struct {
	Seed  string
	Layer int
	Index int

	Pos   Vec2
	Cycle int
}

func (s *Stepper) seedKey(cycle int) string {
	return fmt.Sprintf("%s-drift-%d-%d-%d", s.Seed, s.Layer, s.Index, cycle)
}

// Place scatters the sprite along its future path: a spawn-line sample plus
// a random fraction of the full cross-rectangle traversal, both drawn from
// the cycle-0 generator. Without this every sprite in a layer would start
// bunched on the entry edge.
func (s *Stepper) Place(padded Rect, dir Vec2, backoff float64) {
	line := ComputeSpawnLine(padded, dir, backoff)
	rng := SeededRand(s.seedKey(0))
	start := line.Sample(rng)
	progress := rng()
	s.Pos = start.Add(dir.Mul(progress * TraversalDistance(padded, dir, backoff)))
}

// Step advances the sprite by dir*speed*dt. When the result leaves the
// padded rectangle the sprite has fully exited and is recycled onto the
// spawn line, sampled with a fresh generator keyed by the next cycle number.
// Returns whether the committed position is inside the padded rectangle.
func (s *Stepper) Step(padded Rect, dir Vec2, speed, dt, backoff float64) bool {
	next := s.Pos.Add(dir.Mul(speed * dt))
	if padded.Contains(next) {
		s.Pos = next
		return true
	}
	s.Cycle++
	line := ComputeSpawnLine(padded, dir, backoff)
	s.Pos = line.Sample(SeededRand(s.seedKey(s.Cycle)))
	return padded.Contains(s.Pos)
}
