package kernel

import "github.com/df07/meshxsect/pkg/geom"

// IntersectTriangle implements spec.md §4.2's intersect_triangle(tri): a
// BFS from the root. For every visited node whose bbox overlaps tri
// (tested exactly via AABB.IntersectsTriangle — the same separating-axis
// predicate original_source/src/utility.h's intersectBoxTriangle applies
// in OctreeKernel::intersectKernelTriangle, rather than the looser
// bbox-vs-bbox bound), leaves are filtered by the triangle-triangle
// predicate and matches appended to the result; interior nodes push their
// non-empty children. The returned sequence may contain the same stored
// triangle more than once if it was duplicated across nodes at insert
// time — callers dedupe by (face_id, triangle_index).
//
// Dispatches on k.Variant: VariantOctree walks Root with this BFS,
// VariantKDTree recurses queryKDTriangle over KDRoot (see kdtree.go).
func (k *Kernel) IntersectTriangle(tri geom.Triangle) []geom.Triangle {
	if k.Variant == VariantKDTree {
		return queryKDTriangle(k.KDRoot, tri)
	}

	if k.Root == nil {
		return nil
	}

	var out []geom.Triangle
	queue := []*Node{k.Root}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if !node.BBox.IntersectsTriangle(tri) {
			continue
		}

		if node.IsLeaf() {
			for _, stored := range node.Triangles {
				if stored.Intersects(tri) {
					out = append(out, stored)
				}
			}
			continue
		}

		for _, c := range node.Children {
			if c != nil {
				queue = append(queue, c)
			}
		}
	}

	return out
}
