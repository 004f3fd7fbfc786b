// Package itree implements the isolation tree core: randomized recursive
// partitioning of a sample into a height-capped binary tree, and the
// path-length walk used for anomaly scoring.
//
// A tree is grown once from a sample of observation indices and is immutable
// afterwards, so concurrent read-only walks are safe.
package itree

import (
	"math"

	"github.com/hupe1980/isoforest/dataset"
	"github.com/hupe1980/isoforest/util"
)

// Node is a node in an isolation tree. A node is a leaf iff it has no
// children; a split node always has exactly two children, even when a
// partition came up empty.
type Node struct {
	Left  *Node // Left child ("split value or smaller"; nil for leaves)
	Right *Node // Right child ("greater"; nil for leaves)

	// NObs is the number of observations that reached this node during
	// growth. For leaves it feeds the path-length correction.
	NObs int

	// Attr is the unified attribute index of the split. Indices below the
	// dataset's NumericAttrs() address the numeric matrix; the rest address
	// the text matrix at offset Attr-NumericAttrs().
	Attr int

	SplitNum  float64 // Numeric split threshold (numeric splits only)
	SplitText string  // Text split value (text splits only)
}

// Leaf reports whether the node is an external node.
func (n *Node) Leaf() bool {
	return n.Left == nil
}

// Tree owns the root of a grown isolation tree.
type Tree struct {
	Root *Node
}

// MaxHeight returns the growth height cap for a given sample size,
// ceil(log2(treeSize)).
func MaxHeight(treeSize int) int {
	return int(math.Ceil(math.Log2(float64(treeSize))))
}

// Builder grows isolation trees over a fixed dataset with a fixed height
// cap. A Builder holds no mutable state, so a single Builder may be shared
// by concurrent workers as long as each worker brings its own generator.
type Builder struct {
	data      dataset.Accessor
	maxHeight int
}

// NewBuilder creates a Builder for the given dataset and height cap.
func NewBuilder(data dataset.Accessor, maxHeight int) *Builder {
	return &Builder{data: data, maxHeight: maxHeight}
}

// Grow builds one isolation tree from the given sample of observation
// indices, drawing attribute and pivot choices from rng.
func (b *Builder) Grow(rng *util.RNG, sample []int) *Tree {
	return &Tree{Root: b.grow(rng, sample, 0)}
}

func (b *Builder) grow(rng *util.RNG, sample []int, height int) *Node {
	nObs := len(sample)
	if nObs <= 1 || height >= b.maxHeight {
		return &Node{NObs: nObs}
	}

	nNum := b.data.NumericAttrs()
	attr := rng.Intn(nNum + b.data.TextAttrs())
	pivot := sample[rng.Intn(nObs)]

	node := &Node{NObs: nObs, Attr: attr}

	lobs := make([]int, 0, nObs)
	robs := make([]int, 0, nObs)

	if attr < nNum {
		// Numeric split: the threshold is the pivot observation's value.
		// A constant column funnels everything to one side; the height cap
		// bounds the recursion regardless.
		val := b.data.Numeric(attr, pivot)
		node.SplitNum = val

		for _, i := range sample {
			if numericGoesLeft(b.data.Numeric(attr, i), val) {
				lobs = append(lobs, i)
			} else {
				robs = append(robs, i)
			}
		}
	} else {
		val := b.data.Text(attr-nNum, pivot)
		node.SplitText = val

		for _, i := range sample {
			if textGoesLeft(b.data.Text(attr-nNum, i), val) {
				lobs = append(lobs, i)
			} else {
				robs = append(robs, i)
			}
		}
	}

	node.Left = b.grow(rng, lobs, height+1)
	node.Right = b.grow(rng, robs, height+1)

	return node
}

// numericGoesLeft is the numeric routing rule, shared bit-for-bit between
// growth and scoring. NaN orders below every value: under a NaN split value
// only NaN goes left; under a real split value NaN and values <= the split
// go left.
func numericGoesLeft(obsVal, splitVal float64) bool {
	if math.IsNaN(splitVal) {
		return math.IsNaN(obsVal)
	}
	return math.IsNaN(obsVal) || obsVal <= splitVal
}

// textGoesLeft is the text routing rule, shared bit-for-bit between growth
// and scoring: shorter strings order first, ties break lexicographically.
func textGoesLeft(obsVal, splitVal string) bool {
	if len(obsVal) != len(splitVal) {
		return len(obsVal) < len(splitVal)
	}
	return obsVal <= splitVal
}
