package common

import "math/rand"

// Rand is the subset of *rand.Rand the simulation draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Between draws uniformly from [lo, hi).
func Between(r Rand, lo, hi float64) float64 {
	if r == nil || hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	if r == nil || p <= 0 {
		return false
	}
	return r.Float64() < p
}
