package kernel

import "github.com/df07/meshxsect/pkg/geom"

// Node is an interior or leaf node of the octree spatial index. A node is
// a leaf iff all 8 child slots are nil; a non-leaf may still carry
// triangles directly (the "stuck at interior" bucket, see spec.md §9).
//
// Node shape is grounded on other_examples' o0olele-octree-go OctreeNode
// (BBox, Children[8], per-node Triangles), generalized from its packed
// leaf/occupied flag byte to the teacher's preferred style of plain,
// named fields (see e.g. core.BVHNode, which also distinguishes leaf vs
// interior by a nil-ness check rather than a flag).
type Node struct {
	BBox      geom.AABB
	Children  [8]*Node
	Triangles []geom.Triangle
}

// IsLeaf reports whether node has no children.
func (n *Node) IsLeaf() bool {
	for _, c := range n.Children {
		if c != nil {
			return false
		}
	}
	return true
}

func newLeaf(bbox geom.AABB) *Node {
	return &Node{BBox: bbox}
}
