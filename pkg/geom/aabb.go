package geom

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from explicit min/max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the tightest AABB enclosing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return AABB{Min: min, Max: max}
}

// IsValid reports whether min <= max on every axis.
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Center returns the box's center point.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Union returns the smallest AABB enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Intersects reports closed-interval overlap on all three axes;
// touching (coincident) faces count as intersecting per spec.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Contains reports whether point lies inside or on the boundary of b.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsAnyVertex reports whether any of the triangle's three vertices
// lies inside or on b.
func (b AABB) ContainsAnyVertex(t Triangle) bool {
	return b.Contains(t.V0) || b.Contains(t.V1) || b.Contains(t.V2)
}

// ContainsAllVertices reports whether all three of the triangle's vertices
// lie inside or on b.
func (b AABB) ContainsAllVertices(t Triangle) bool {
	return b.Contains(t.V0) && b.Contains(t.V1) && b.Contains(t.V2)
}

// Octant enumerates the fixed, deterministic 8-way split of an AABB around
// its center: bit 0 selects +X vs -X, bit 1 selects +Y vs -Y, bit 2 selects
// +Z vs -Z. This is the "standard corner-by-corner" enumeration spec.md
// §4.2 leaves as an implementation choice.
func (b AABB) Octant(i int) AABB {
	c := b.Center()
	min, max := b.Min, b.Max

	lo := func(axisMin, axisCenter float64) (float64, float64) { return axisMin, axisCenter }
	hi := func(axisCenter, axisMax float64) (float64, float64) { return axisCenter, axisMax }

	var xMin, xMax, yMin, yMax, zMin, zMax float64
	if i&1 == 0 {
		xMin, xMax = lo(min.X, c.X)
	} else {
		xMin, xMax = hi(c.X, max.X)
	}
	if i&2 == 0 {
		yMin, yMax = lo(min.Y, c.Y)
	} else {
		yMin, yMax = hi(c.Y, max.Y)
	}
	if i&4 == 0 {
		zMin, zMax = lo(min.Z, c.Z)
	} else {
		zMin, zMax = hi(c.Z, max.Z)
	}

	return AABB{Min: Vec3{xMin, yMin, zMin}, Max: Vec3{xMax, yMax, zMax}}
}
