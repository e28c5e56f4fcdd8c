package kernel

// leafPair is one candidate (nodeA, nodeB) pair whose bounding boxes
// overlap and which are both leaves — the unit of work the dual-tree
// descent hands off to triangle-pair testing.
type leafPair struct {
	a, b *Node
}

// descendPairs implements spec.md §4.3's simultaneous dual-tree descent.
// It only pairs leaf-with-leaf candidates; triangles lodged at interior
// nodes (the "stuck at interior" bucket, or MAX_DEPTH overflow) are not
// visited here. This is the documented, preserved limitation from
// spec.md §4.3/§9 strategy (a) — "Preserve (faithful reimplementation)".
func descendPairs(a, b *Node) []leafPair {
	var pairs []leafPair
	var descend func(a, b *Node)
	descend = func(a, b *Node) {
		if !a.BBox.Intersects(b.BBox) {
			return
		}
		aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
		switch {
		case aLeaf && bLeaf:
			pairs = append(pairs, leafPair{a, b})
		case aLeaf:
			for _, c := range b.Children {
				if c != nil {
					descend(a, c)
				}
			}
		case bLeaf:
			for _, c := range a.Children {
				if c != nil {
					descend(c, b)
				}
			}
		default:
			for _, ca := range a.Children {
				if ca == nil {
					continue
				}
				for _, cb := range b.Children {
					if cb != nil {
						descend(ca, cb)
					}
				}
			}
		}
	}
	descend(a, b)
	return pairs
}
