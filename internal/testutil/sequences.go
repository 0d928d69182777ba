package testutil

import "math/rand/v2"

// Ascending returns [0, 1, ..., n-1].
func Ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// DeterministicInts returns n values in [0, limit) from a fixed seed, so
// property tests are reproducible.
func DeterministicInts(seed uint64, n, limit int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(limit)
	}
	return out
}
