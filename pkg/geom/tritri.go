package geom

import "math"

const triTriEpsilon = 1e-9

// Intersects is the robust triangle-triangle overlap predicate from
// spec.md §4.1: true iff the two closed triangles share at least one
// point. Exact for non-degenerate input; the coplanar sub-case is handled
// explicitly. Degenerate (zero-area) triangles never panic — they fall
// through to the coplanar-or-rejected path and return a conservative
// answer.
//
// No example in the retrieved pack implements 3-D triangle-triangle
// overlap directly (the closest neighbors only do ray-triangle), so this
// is the classic plane-separation algorithm (Möller 1997) written from
// its published structure in this repository's own style, not copied from
// any single source file.
func (t Triangle) Intersects(other Triangle) bool {
	v0, v1, v2 := t.V0, t.V1, t.V2
	u0, u1, u2 := other.V0, other.V1, other.V2

	// Plane of the other triangle; signed distances of this triangle's
	// vertices to it.
	n2 := u1.Sub(u0).Cross(u2.Sub(u0))
	d2 := -n2.Dot(u0)
	dv0 := snapZero(n2.Dot(v0) + d2)
	dv1 := snapZero(n2.Dot(v1) + d2)
	dv2 := snapZero(n2.Dot(v2) + d2)

	dv0dv1 := dv0 * dv1
	dv0dv2 := dv0 * dv2
	if dv0dv1 > 0 && dv0dv2 > 0 {
		return false // V all on one side of U's plane
	}

	// Plane of this triangle; signed distances of other's vertices to it.
	n1 := v1.Sub(v0).Cross(v2.Sub(v0))
	d1 := -n1.Dot(v0)
	du0 := snapZero(n1.Dot(u0) + d1)
	du1 := snapZero(n1.Dot(u1) + d1)
	du2 := snapZero(n1.Dot(u2) + d1)

	du0du1 := du0 * du1
	du0du2 := du0 * du2
	if du0du1 > 0 && du0du2 > 0 {
		return false // U all on one side of V's plane
	}

	// Direction of the line where the two planes meet.
	d := n1.Cross(n2)

	// Dominant axis of d: project onto it for a stable 1-D comparison.
	axis := dominantAxis(d)
	vp0, vp1, vp2 := component(v0, axis), component(v1, axis), component(v2, axis)
	up0, up1, up2 := component(u0, axis), component(u1, axis), component(u2, axis)

	if d.Length() < triTriEpsilon {
		// Planes are (numerically) parallel: coplanar case.
		return coplanarIntersects(n1, v0, v1, v2, u0, u1, u2)
	}

	i0a, i0b, ok0 := interval(vp0, vp1, vp2, dv0, dv1, dv2, dv0dv1, dv0dv2)
	if !ok0 {
		return coplanarIntersects(n1, v0, v1, v2, u0, u1, u2)
	}
	i1a, i1b, ok1 := interval(up0, up1, up2, du0, du1, du2, du0du1, du0du2)
	if !ok1 {
		return coplanarIntersects(n1, v0, v1, v2, u0, u1, u2)
	}

	if i0a > i0b {
		i0a, i0b = i0b, i0a
	}
	if i1a > i1b {
		i1a, i1b = i1b, i1a
	}

	return i0b >= i1a && i1b >= i0a
}

func snapZero(x float64) float64 {
	if math.Abs(x) < triTriEpsilon {
		return 0
	}
	return x
}

func dominantAxis(v Vec3) int {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// interval computes the 1-D interval (projected on the dominant axis of the
// two planes' intersection line) where the triangle (vv0,vv1,vv2) crosses
// the other triangle's plane, given the signed distances (d0,d1,d2) of its
// vertices to that plane. ok is false when the vertex-distance pattern
// does not isolate a single vertex (i.e. the triangle is coplanar with the
// other plane), signalling the caller to fall back to the coplanar test.
func interval(vv0, vv1, vv2, d0, d1, d2 float64, d0d1, d0d2 float64) (a, b float64, ok bool) {
	switch {
	case d0d1 > 0:
		// d0,d1 same side; d2 isolated (or on the plane).
		return isect(vv2, vv0, vv1, d2, d0, d1), isect(vv2, vv1, vv0, d2, d1, d0), true
	case d0d2 > 0:
		return isect(vv1, vv0, vv2, d1, d0, d2), isect(vv1, vv2, vv0, d1, d2, d0), true
	case d1*d2 > 0 || d0 != 0:
		return isect(vv0, vv1, vv2, d0, d1, d2), isect(vv0, vv2, vv1, d0, d2, d1), true
	case d1 != 0:
		return isect(vv1, vv0, vv2, d1, d0, d2), isect(vv1, vv2, vv0, d1, d2, d0), true
	case d2 != 0:
		return isect(vv2, vv0, vv1, d2, d0, d1), isect(vv2, vv1, vv0, d2, d1, d0), true
	default:
		return 0, 0, false
	}
}

// isect returns the projected coordinate where the edge (isolated vertex
// "iso" at parameter dIso) to vertex "other" (at parameter dOther) crosses
// the plane (distance 0), linearly interpolating vvIso/vvOther.
func isect(vvIso, vvA, _ float64, dIso, dA, _ float64) float64 {
	return vvIso + (vvA-vvIso)*dIso/(dIso-dA)
}

// coplanarIntersects handles the coplanar sub-case: two coplanar triangles
// intersect iff any edge of one crosses the other, or a vertex of one lies
// inside the other. Both triangles are projected onto the 2-D plane formed
// by dropping the axis with the largest component of the shared normal.
func coplanarIntersects(n Vec3, v0, v1, v2, u0, u1, u2 Vec3) bool {
	drop := dominantAxis(n)
	a0, b0 := project2D(v0, drop)
	a1, b1 := project2D(v1, drop)
	a2, b2 := project2D(v2, drop)
	c0, d0 := project2D(u0, drop)
	c1, d1 := project2D(u1, drop)
	c2, d2 := project2D(u2, drop)

	vTri := [3][2]float64{{a0, b0}, {a1, b1}, {a2, b2}}
	uTri := [3][2]float64{{c0, d0}, {c1, d1}, {c2, d2}}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if segmentsIntersect2D(vTri[i], vTri[(i+1)%3], uTri[j], uTri[(j+1)%3]) {
				return true
			}
		}
	}

	if pointInTriangle2D(vTri[0], uTri) || pointInTriangle2D(uTri[0], vTri) {
		return true
	}

	return false
}

func project2D(v Vec3, drop int) (float64, float64) {
	switch drop {
	case 0:
		return v.Y, v.Z
	case 1:
		return v.X, v.Z
	default:
		return v.X, v.Y
	}
}

func cross2D(ox, oy, ax, ay, bx, by float64) float64 {
	return (ax-ox)*(by-oy) - (ay-oy)*(bx-ox)
}

// segmentsIntersect2D reports whether closed segments p0-p1 and q0-q1
// intersect, including touching endpoints and collinear overlap.
func segmentsIntersect2D(p0, p1, q0, q1 [2]float64) bool {
	d1 := cross2D(q0[0], q0[1], q1[0], q1[1], p0[0], p0[1])
	d2 := cross2D(q0[0], q0[1], q1[0], q1[1], p1[0], p1[1])
	d3 := cross2D(p0[0], p0[1], p1[0], p1[1], q0[0], q0[1])
	d4 := cross2D(p0[0], p0[1], p1[0], p1[1], q1[0], q1[1])

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment2D(q0, q1, p0) {
		return true
	}
	if d2 == 0 && onSegment2D(q0, q1, p1) {
		return true
	}
	if d3 == 0 && onSegment2D(p0, p1, q0) {
		return true
	}
	if d4 == 0 && onSegment2D(p0, p1, q1) {
		return true
	}

	return false
}

func onSegment2D(a, b, p [2]float64) bool {
	return math.Min(a[0], b[0])-triTriEpsilon <= p[0] && p[0] <= math.Max(a[0], b[0])+triTriEpsilon &&
		math.Min(a[1], b[1])-triTriEpsilon <= p[1] && p[1] <= math.Max(a[1], b[1])+triTriEpsilon
}

// pointInTriangle2D reports whether p lies inside or on tri, using the
// sign of the cross product across all three edges.
func pointInTriangle2D(p [2]float64, tri [3][2]float64) bool {
	d1 := cross2D(tri[0][0], tri[0][1], tri[1][0], tri[1][1], p[0], p[1])
	d2 := cross2D(tri[1][0], tri[1][1], tri[2][0], tri[2][1], p[0], p[1])
	d3 := cross2D(tri[2][0], tri[2][1], tri[0][0], tri[0][1], p[0], p[1])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}
