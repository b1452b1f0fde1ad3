package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws the seed from the runtime source instead.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if seed == 0 {
		s = rand.Uint64()
	}
	return &RNG{r: rand.New(rand.NewPCG(s, 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
