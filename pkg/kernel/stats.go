package kernel

// Stats summarizes an octree's shape — useful for tuning BuildParams and
// for verifying test fixtures stay within MAX_DEPTH / leaf-capacity
// assumptions (spec.md §8's property tests rely on this to distinguish
// "triangles landed at leaves" from "some landed at interior nodes").
//
// Adapted from the teacher's BVH.getStats/collectStats (totalNodes,
// leafNodes, maxDepth, avgDepth), generalized to also report triangles
// stuck at interior nodes, since that bucket is this tree's own concern
// and the teacher's binary BVH has no equivalent.
type Stats struct {
	TotalNodes        int
	LeafNodes         int
	MaxDepth          int
	TotalTriangles    int
	InteriorTriangles int // triangles stuck at interior nodes (never leaf-paired)
}

// Stats computes summary statistics for the kernel's tree.
func (k *Kernel) Stats() Stats {
	var s Stats
	if k.Root == nil {
		return s
	}
	collectStats(k.Root, 0, &s)
	return s
}

func collectStats(node *Node, depth int, s *Stats) {
	s.TotalNodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	s.TotalTriangles += len(node.Triangles)

	if node.IsLeaf() {
		s.LeafNodes++
		return
	}

	s.InteriorTriangles += len(node.Triangles)
	for _, c := range node.Children {
		if c != nil {
			collectStats(c, depth+1, s)
		}
	}
}
