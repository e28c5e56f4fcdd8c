package kernel

import "github.com/df07/meshxsect/pkg/geom"

// insert implements spec.md §4.2's Insert(node, tri, depth):
//
//  1. Past MAX_DEPTH, append directly (overflow escape hatch, guarantees
//     termination).
//  2. At a leaf under capacity, append. At a leaf at capacity, split then
//     retry at the same node, depth+1.
//  3. At an interior node, recurse into every child whose bbox contains
//     any vertex of tri; a triangle straddling children this way may be
//     inserted into more than one child. If no child accepts it, it is
//     appended directly to the interior node (the "stuck at interior"
//     bucket spec.md §9 documents).
//
// Grounded on the teacher's core.BVHNode/buildBVH recursive shape,
// generalized from a binary median-split to the spec's 8-way vertex-
// containment insertion rule (the teacher's own insertion rule does not
// apply here — no pack example builds an insertion-by-vertex-containment
// tree, so this follows spec.md §4.2's algorithm directly).
func insert(node *Node, tri geom.Triangle, depth int, params BuildParams) {
	if depth > params.MaxDepth {
		node.Triangles = append(node.Triangles, tri)
		return
	}

	if node.IsLeaf() {
		if len(node.Triangles) < params.MaxTrianglesPerNode {
			node.Triangles = append(node.Triangles, tri)
			return
		}
		split(node)
		insert(node, tri, depth+1, params)
		return
	}

	accepted := false
	for _, child := range node.Children {
		if child.BBox.ContainsAnyVertex(tri) {
			insert(child, tri, depth+1, params)
			accepted = true
		}
	}
	if !accepted {
		node.Triangles = append(node.Triangles, tri)
	}
}

// split implements spec.md §4.2's Split(node): subdivide node.bbox into 8
// fixed octants, then redistribute node's current triangles — each moved
// to the first child that fully contains all 3 of its vertices, or else
// to the child whose center is nearest the triangle's barycenter (ties
// broken by lowest octant index in both rules). Split never recurses;
// re-splitting happens because Insert retries after calling Split.
func split(node *Node) {
	for i := 0; i < 8; i++ {
		node.Children[i] = newLeaf(node.BBox.Octant(i))
	}

	pending := node.Triangles
	node.Triangles = nil

	for _, tri := range pending {
		placed := false
		for _, child := range node.Children {
			if child.BBox.ContainsAllVertices(tri) {
				child.Triangles = append(child.Triangles, tri)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		center := tri.Barycenter()
		best := 0
		bestDist := node.Children[0].BBox.Center().Sub(center).Length()
		for i := 1; i < 8; i++ {
			d := node.Children[i].BBox.Center().Sub(center).Length()
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		node.Children[best].Triangles = append(node.Children[best].Triangles, tri)
	}
}
