package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded random number generator. It is not safe for
// concurrent use; give each goroutine its own source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed. A zero seed
// is replaced by the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Uint32 returns a uniformly distributed uint32
func (r *RandSource) Uint32() uint32 {
	return r.rng.Uint32()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// BernoulliBool returns true with probability p, false otherwise
func (r *RandSource) BernoulliBool(p float64) bool {
	return r.rng.Float64() < p
}

// Mask returns a 32-bit mask where each bit is set independently with
// probability density. Density 0 always yields 0 and density 1 yields all ones.
func (r *RandSource) Mask(density float64) uint32 {
	switch {
	case density <= 0:
		return 0
	case density >= 1:
		return ^uint32(0)
	}
	var m uint32
	for i := 0; i < 32; i++ {
		if r.BernoulliBool(density) {
			m |= 1 << i
		}
	}
	return m
}
