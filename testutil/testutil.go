package testutil

import (
	"math/rand"
	"strings"
)

// Generator produces synthetic attribute columns with planted outliers.
type Generator struct {
	rand *rand.Rand
	seed int64
}

// NewGenerator creates a Generator with the specified seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Cluster returns a numeric attribute column of n observations drawn from a
// normal distribution around center with the given spread, with nOutliers of
// them replaced by values displaced far (50 spreads) from the center. The
// returned indices identify the planted outliers.
func (g *Generator) Cluster(n int, center, spread float64, nOutliers int) ([]float64, []int) {
	col := make([]float64, n)
	for i := range col {
		col[i] = center + g.rand.NormFloat64()*spread
	}

	if nOutliers > n {
		nOutliers = n
	}

	outliers := make([]int, 0, nOutliers)
	for _, i := range g.rand.Perm(n)[:nOutliers] {
		sign := 1.0
		if g.rand.Intn(2) == 0 {
			sign = -1.0
		}
		col[i] = center + sign*(50+g.rand.Float64()*10)*spread
		outliers = append(outliers, i)
	}

	return col, outliers
}

// Uniform returns a numeric attribute column of n observations drawn
// uniformly from [0, 1).
func (g *Generator) Uniform(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = g.rand.Float64()
	}
	return col
}

// Labels returns a text attribute column of n observations drawn uniformly
// from the given values. With no values given, every cell is "a".
func (g *Generator) Labels(n int, values ...string) []string {
	if len(values) == 0 {
		values = []string{"a"}
	}

	col := make([]string, n)
	for i := range col {
		col[i] = values[g.rand.Intn(len(values))]
	}
	return col
}

// LongLabel returns a label of the given length, guaranteed to order after
// every shorter label under length-first text comparison.
func LongLabel(length int) string {
	return strings.Repeat("z", length)
}
