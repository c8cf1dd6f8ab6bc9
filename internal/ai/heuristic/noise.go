package heuristic

import "math/rand/v2"

// Noise yields a pseudo-random integer in [0, n).
type Noise interface {
	IntN(n int) int
}

// RandomNoise draws from the process-wide math/rand/v2 source.
type RandomNoise struct{}

func (RandomNoise) IntN(n int) int { return rand.IntN(n) }

// SeededNoise returns a reproducible noise source.
func SeededNoise(seed uint64) Noise {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedNoise always yields the same value, clamped into [0, n).
type FixedNoise int

func (f FixedNoise) IntN(n int) int {
	v := int(f)
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
