package drift

import "hash/fnv"

// hashKey reduces a seed key to 32 bits of generator state. FNV-1a is stable
// across platforms, and the empty string hashes to the offset basis, so a
// missing scene seed still produces a defined, repeatable stream.
func hashKey(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// SeededRand returns a generator of values in [0, 1) fully determined by key.
// Construction is cheap enough to do per respawn decision, which is exactly
// how callers must use it: one generator per decision, never shared across
// sprites, or replays of the same scene seed stop being reproducible.
func SeededRand(key string) func() float64 {
	state := hashKey(key)
	return func() float64 {
		state += 0x6d2b79f5
		z := state
		z = (z ^ (z >> 15)) * (z | 1)
		z ^= z + (z^(z>>7))*(z|61)
		z ^= z >> 14
		return float64(z) / (1 << 32)
	}
}
