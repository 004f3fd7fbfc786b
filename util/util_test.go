package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	t.Run("WithoutReplacement", func(t *testing.T) {
		rng := NewRNG(4711)

		s := rng.Sample(100, 32)
		require.Len(t, s, 32)

		seen := make(map[int]bool, len(s))
		for _, i := range s {
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, 100)
			assert.False(t, seen[i], "index %d drawn twice", i)
			seen[i] = true
		}
	})

	t.Run("FullPopulation", func(t *testing.T) {
		rng := NewRNG(4711)

		s := rng.Sample(8, 8)
		require.Len(t, s, 8)

		seen := make(map[int]bool, len(s))
		for _, i := range s {
			seen[i] = true
		}
		assert.Len(t, seen, 8)
	})

	t.Run("KLargerThanN", func(t *testing.T) {
		rng := NewRNG(4711)

		s := rng.Sample(4, 10)
		assert.Len(t, s, 4)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := NewRNG(42).Sample(50, 10)
		b := NewRNG(42).Sample(50, 10)
		assert.Equal(t, a, b)
	})
}

func TestDeriveSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 64; i++ {
		s := DeriveSeed(4711, i)
		assert.False(t, seen[s], "seed collision at worker %d", i)
		seen[s] = true
	}

	// Distinct base seeds give distinct derived streams.
	assert.NotEqual(t, DeriveSeed(1, 0), DeriveSeed(2, 0))
}

func TestDerive(t *testing.T) {
	base := NewRNG(99)

	a := base.Derive(0)
	b := base.Derive(1)

	assert.NotEqual(t, a.Seed(), b.Seed())
	assert.NotEqual(t, a.Sample(1000, 5), b.Sample(1000, 5))
}
