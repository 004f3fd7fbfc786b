package itree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/isoforest/dataset"
)

func TestAveragePathLength(t *testing.T) {
	t.Run("NoCorrectionBelowTwo", func(t *testing.T) {
		assert.Equal(t, 0.0, AveragePathLength(0))
		assert.Equal(t, 0.0, AveragePathLength(1))
	})

	t.Run("PositiveAndIncreasing", func(t *testing.T) {
		prev := 0.0
		for n := 2; n <= 1024; n *= 2 {
			c := AveragePathLength(n)
			assert.Greater(t, c, 0.0, "c(%d)", n)
			assert.Greater(t, c, prev, "c(%d) not increasing", n)
			prev = c
		}
	})

	t.Run("ClosedForm", func(t *testing.T) {
		// c(2) = 2*(ln(1) + gamma) - 2*(1/2)
		want := 2*0.57721566490153286 - 1
		assert.InDelta(t, want, AveragePathLength(2), 1e-12)

		// c(256) from the closed form directly.
		want = 2*(math.Log(255)+0.57721566490153286) - 2*255.0/256.0
		assert.InDelta(t, want, AveragePathLength(256), 1e-12)
	})
}

func TestPathLength(t *testing.T) {
	data, err := dataset.NewMatrix(
		[][]float64{{1, 2, 3, math.NaN()}},
		[][]string{{"a", "ab", "ba", "bbb"}},
	)
	require.NoError(t, err)

	t.Run("SingletonLeafIsExactDepth", func(t *testing.T) {
		tree := &Tree{Root: &Node{
			Attr:     0,
			SplitNum: 1.5,
			Left:     &Node{NObs: 1},
			Right:    &Node{NObs: 1},
		}}

		assert.Equal(t, 1.0, tree.PathLength(data, 0))
		assert.Equal(t, 1.0, tree.PathLength(data, 1))
	})

	t.Run("CrowdedLeafGetsCorrection", func(t *testing.T) {
		tree := &Tree{Root: &Node{
			Attr:     0,
			SplitNum: 1.5,
			Left:     &Node{NObs: 1},
			Right:    &Node{NObs: 5},
		}}

		want := 1.0 + AveragePathLength(5)
		assert.InDelta(t, want, tree.PathLength(data, 2), 1e-12)
	})

	t.Run("NaNRoutesLeft", func(t *testing.T) {
		tree := &Tree{Root: &Node{
			Attr:     0,
			SplitNum: 2.0,
			Left:     &Node{NObs: 1},
			Right:    &Node{NObs: 5},
		}}

		// Observation 3 is NaN on attribute 0: left, no correction.
		assert.Equal(t, 1.0, tree.PathLength(data, 3))
	})

	t.Run("TextRouting", func(t *testing.T) {
		// Split on text attribute (unified index 1) with value "bb".
		tree := &Tree{Root: &Node{
			Attr:      1,
			SplitText: "bb",
			Left:      &Node{NObs: 1},
			Right:     &Node{NObs: 5},
		}}

		correction := AveragePathLength(5)

		assert.Equal(t, 1.0, tree.PathLength(data, 0))                   // "a" shorter: left
		assert.Equal(t, 1.0, tree.PathLength(data, 1))                   // "ab" <= "bb": left
		assert.InDelta(t, 1.0+correction, tree.PathLength(data, 2), 0)   // "ba" > "bb": right
		assert.InDelta(t, 1.0+correction, tree.PathLength(data, 3), 0)   // "bbb" longer: right
	})

	t.Run("EmptyLeafScoresThroughLeafRule", func(t *testing.T) {
		tree := &Tree{Root: &Node{
			Attr:     0,
			SplitNum: 0.5,
			Left:     &Node{NObs: 0},
			Right:    &Node{NObs: 4},
		}}

		// Nothing went left during growth, but a query can still land there.
		nanData, err := dataset.NewMatrix([][]float64{{0.25}}, nil)
		require.NoError(t, err)

		assert.Equal(t, 1.0, tree.PathLength(nanData, 0))
	})
}
