package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a uniform random int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Float64 returns a uniform random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Sample draws k distinct indices from [0, n) uniformly at random
// without replacement using a partial Fisher-Yates shuffle.
func (r *RNG) Sample(n, k int) []int {
	if k > n {
		k = n
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + r.rand.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}

// Derive creates an independently seeded RNG for worker index i.
// The derived seed is a splitmix64 mix of the base seed and the index,
// so distinct workers never share a generator stream.
func (r *RNG) Derive(i int) *RNG {
	return NewRNG(DeriveSeed(r.seed, i))
}

// DeriveSeed mixes a base seed with a worker index into a new seed.
func DeriveSeed(base int64, i int) int64 {
	z := uint64(base) + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
