package domain

import "math/rand/v2"

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. A zero seed picks a random one.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedSource replays a fixed list of draws, cycling when exhausted.
type FixedSource struct {
	Draws []float64
	next  int
}

// Float64 returns the next scripted draw, or 0 when no draws are set.
func (f *FixedSource) Float64() float64 {
	if len(f.Draws) == 0 {
		return 0
	}

	v := f.Draws[f.next%len(f.Draws)]
	f.next++

	return v
}
