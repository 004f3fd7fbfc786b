package itree

// Stats describes the structure of a grown tree.
type Stats struct {
	Nodes     int // Total nodes, split and leaf
	Leaves    int // External nodes
	MaxDepth  int // Deepest leaf, in edges from the root
	LeafDepth []int
}

// Stats walks the tree and returns its structural statistics. LeafDepth
// holds one entry per leaf, in walk order.
func (t *Tree) Stats() Stats {
	var s Stats
	t.Root.collect(&s, 0)
	return s
}

func (n *Node) collect(s *Stats, depth int) {
	s.Nodes++

	if n.Leaf() {
		s.Leaves++
		s.LeafDepth = append(s.LeafDepth, depth)
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		return
	}

	n.Left.collect(s, depth+1)
	n.Right.collect(s, depth+1)
}
