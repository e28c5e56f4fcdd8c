package geom

import "math"

const separatingAxisEpsilon = 1e-10

// IntersectsAABB is the AABB-vs-triangle overlap predicate from spec.md
// §4.1: a separating-axis test on the 13 candidate axes (3 box axes, the
// triangle's own normal, and the 9 edge-edge cross products). It returns
// true iff no separating axis is found, i.e. the triangle and the box
// overlap (including touching).
//
// Grounded on other_examples' o0olele-octree-go Triangle.IntersectsAABB,
// generalized from float32 to float64 and from a free Triangle/AABB pair
// to this package's Triangle/AABB types.
func (b AABB) IntersectsTriangle(t Triangle) bool {
	// Quick reject: bounding boxes must themselves overlap.
	if !b.Intersects(t.BoundingBox()) {
		return false
	}

	// Triangle fully inside the box is a fast accept.
	if b.Contains(t.V0) && b.Contains(t.V1) && b.Contains(t.V2) {
		return true
	}

	center := b.Center()
	half := b.Size().Scale(0.5)

	v0 := t.V0.Sub(center)
	v1 := t.V1.Sub(center)
	v2 := t.V2.Sub(center)

	f0 := v1.Sub(v0)
	f1 := v2.Sub(v1)
	f2 := v0.Sub(v2)

	// Triangle's own plane normal.
	normal := f0.Cross(f1)
	if normal.Length() > separatingAxisEpsilon {
		if !testSeparatingAxis(normal, v0, v1, v2, half) {
			return false
		}
	}

	// The three box face normals.
	boxAxes := [3]Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for _, axis := range boxAxes {
		if !testSeparatingAxis(axis, v0, v1, v2, half) {
			return false
		}
	}

	// The 9 cross products of each box axis with each triangle edge.
	edges := [3]Vec3{f0, f1, f2}
	for _, u := range boxAxes {
		for _, f := range edges {
			axis := u.Cross(f)
			if axis.Length() < separatingAxisEpsilon {
				continue // degenerate axis: edge parallel to box axis, skip
			}
			if !testSeparatingAxis(axis, v0, v1, v2, half) {
				return false
			}
		}
	}

	return true
}

// testSeparatingAxis projects the (box-centered) triangle vertices and the
// box half-extents onto axis and reports whether the projections overlap.
func testSeparatingAxis(axis Vec3, v0, v1, v2, half Vec3) bool {
	p0 := v0.Dot(axis)
	p1 := v1.Dot(axis)
	p2 := v2.Dot(axis)

	triMin := math.Min(p0, math.Min(p1, p2))
	triMax := math.Max(p0, math.Max(p1, p2))

	r := math.Abs(half.X*axis.X) + math.Abs(half.Y*axis.Y) + math.Abs(half.Z*axis.Z)

	return !(triMax < -r || triMin > r)
}
