// Package rng is the explicit random source threaded through generation and
// placement. Nothing in the repository draws from global random state; two
// States built from the same seed replay the same stream.
package rng

import (
	"math"
	"math/rand/v2"
)

// Source is the random stream consumed by the partitioner and the level
type Source interface {
	// UniformInt returns a value in [lo, hi], both inclusive
	UniformInt(lo, hi int) int
	// Normal returns a draw from N(mean, stddev)
	Normal(mean, stddev float64) float64
	// CoinFlip returns true with probability 1/2
	CoinFlip() bool
}

// State is a PCG-backed Source
type State struct {
	seed uint64
	r    *rand.Rand
}

// New creates a State seeded with seed
func New(seed uint64) *State {
	s := &State{}
	s.Reseed(seed)
	return s
}

// Reseed restarts the stream from seed
func (s *State) Reseed(seed uint64) {
	s.seed = seed
	s.r = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed the current stream started from
func (s *State) Seed() uint64 {
	return s.seed
}

// UniformInt returns a value in [lo, hi]; lo > hi is treated as swapped
func (s *State) UniformInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Normal returns a draw from N(mean, stddev); stddev <= 0 returns mean
func (s *State) Normal(mean, stddev float64) float64 {
	if stddev <= 0 || math.IsNaN(stddev) {
		return mean
	}
	return mean + s.r.NormFloat64()*stddev
}

// CoinFlip returns true with probability 1/2
func (s *State) CoinFlip() bool {
	return s.r.IntN(2) == 1
}

// NormalClamped draws N(mean, stddev), rounds to the nearest integer and
// clamps the result into [lo, hi]
func NormalClamped(src Source, mean, stddev float64, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	v := int(math.Round(src.Normal(mean, stddev)))
	return min(max(v, lo), hi)
}

// Chance succeeds with probability num/den
func Chance(src Source, num, den int) bool {
	if den <= 0 || num <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return src.UniformInt(1, den) <= num
}
