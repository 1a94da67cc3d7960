package estbench

import (
	"math/rand"
)

// Sampler owns an explicitly seeded pseudorandom source.
//
// Every experiment in this package draws through a Sampler instead of the
// package-global generator, so a run is fully determined by its seed:
// re-running with the same seed reproduces every draw bit-for-bit, and two
// experiments never interleave through hidden shared state.
//
// A Sampler is single-owner: its internal state advances with every draw
// and it is not safe for concurrent use. Callers that want independent
// streams should create one Sampler per stream with distinct seeds.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value.
//
// The underlying generator is the standard library's seeded source, whose
// seed-to-sequence mapping is stable across releases. A fixed seed is the
// whole reproducibility contract: same seed, same sequence.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// UniformInts draws n values independently and uniformly, with replacement,
// from the discrete range {1, …, max}.
//
// With replacement means repeats are allowed, so n may equal or exceed max.
// The caller validates n ≥ 1 and max ≥ 1.
func (s *Sampler) UniformInts(n, max int) []int {
	draws := make([]int, n)
	for i := range draws {
		draws[i] = 1 + s.rng.Intn(max)
	}
	return draws
}

// Float64 draws a single value uniformly from [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// UniformFloat64 draws a single value uniformly from [lo, hi).
func (s *Sampler) UniformFloat64(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// NormFloat64 draws a single value from the Normal(mean, stddev) distribution.
func (s *Sampler) NormFloat64(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}
