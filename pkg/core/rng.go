package core

import "math/rand/v2"

// Source is the uniform [0,1) random stream consumed by probabilistic rules.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Fork derives an independent RNG whose seed is drawn from r. Forking in a
// fixed order yields the same children for the same parent seed.
func (r *RNG) Fork() *RNG {
	return NewRNG(int64(r.r.Uint64()))
}

// NewLayoutRNG returns the stream used to place the initial cells for seed.
// It is forked from NewRNG(seed) and does not share its draws.
func NewLayoutRNG(seed int64) *RNG {
	return NewRNG(seed).Fork()
}
