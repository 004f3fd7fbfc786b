package isoforest

import "gonum.org/v1/gonum/stat"

// Stats describes the structure of a grown forest.
type Stats struct {
	Trees         int     // Trees grown so far
	Nodes         int     // Total nodes across all trees
	Leaves        int     // External nodes across all trees
	MaxDepth      int     // Deepest leaf across all trees, in edges
	MeanLeafDepth float64 // Mean leaf depth across all trees
}

// Stats walks every grown tree and returns aggregate structural statistics.
// Useful for sanity-checking growth (the max depth never exceeds
// MaxTreeHeight) and for sizing comparisons between seeds.
func (f *Forest) Stats() Stats {
	f.mu.Lock()
	trees := f.trees
	f.mu.Unlock()

	var s Stats
	var depths []float64

	for _, tree := range trees {
		ts := tree.Stats()

		s.Trees++
		s.Nodes += ts.Nodes
		s.Leaves += ts.Leaves
		if ts.MaxDepth > s.MaxDepth {
			s.MaxDepth = ts.MaxDepth
		}

		for _, d := range ts.LeafDepth {
			depths = append(depths, float64(d))
		}
	}

	if len(depths) > 0 {
		s.MeanLeafDepth = stat.Mean(depths, nil)
	}

	return s
}
