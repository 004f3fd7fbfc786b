package itree

import (
	"math"

	"github.com/hupe1980/isoforest/dataset"
)

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.57721566490153286

// AveragePathLength returns c(n), the expected path length of an
// unsuccessful search in a random binary search tree of n items:
//
//	c(n) = 2*(ln(n-1) + gamma) - 2*(n-1)/n
//
// It corrects leaf depths for observations whose further separation the
// height cap left unobserved. For n <= 1 no correction applies and the
// result is 0.
func AveragePathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	f := float64(n)
	return 2*(math.Log(f-1)+eulerGamma) - 2*(f-1)/f
}

// PathLength walks the tree for one observation and returns its estimated
// isolation depth: the number of edges to the leaf it lands in, plus the
// average-path-length correction when that leaf held more than one training
// observation.
//
// The routing applied here is the same predicate applied during growth.
func (t *Tree) PathLength(data dataset.Accessor, obs int) float64 {
	depth := 0
	node := t.Root

	for !node.Leaf() {
		if nNum := data.NumericAttrs(); node.Attr < nNum {
			if numericGoesLeft(data.Numeric(node.Attr, obs), node.SplitNum) {
				node = node.Left
			} else {
				node = node.Right
			}
		} else {
			if textGoesLeft(data.Text(node.Attr-nNum, obs), node.SplitText) {
				node = node.Left
			} else {
				node = node.Right
			}
		}
		depth++
	}

	if node.NObs <= 1 {
		return float64(depth)
	}
	return float64(depth) + AveragePathLength(node.NObs)
}
