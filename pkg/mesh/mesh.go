// Package mesh defines the external-collaborator input shape (spec.md §6):
// the triangulated mesh data a host application supplies to the kernel,
// before any world transform is applied.
package mesh

import "github.com/df07/meshxsect/pkg/geom"

// Polygon is one source polygon, fan-triangulated into VertexIndices
// (triangle_count*3 indices into the mesh's shared Vertices array) with a
// single object-space Normal shared by every sub-triangle the polygon
// produces.
type Polygon struct {
	Normal        geom.Vec3
	VertexIndices []int // len is a multiple of 3; each triple is one sub-triangle
}

// TriangleCount returns how many sub-triangles this polygon fan-triangulates into.
func (p Polygon) TriangleCount() int {
	return len(p.VertexIndices) / 3
}

// PolygonMesh is a triangulated mesh in object-space coordinates: a shared
// vertex array plus a face table of polygons (each referencing vertices by
// index). FaceID for polygon i is i (spec.md §3: face ids are bounded
// above by PolygonCount).
type PolygonMesh struct {
	Vertices []geom.Vec3
	Polygons []Polygon
}

// PolygonCount returns the number of polygons (faces) in the mesh.
func (m PolygonMesh) PolygonCount() int {
	return len(m.Polygons)
}

// TriangleCount returns the total number of sub-triangles across all polygons.
func (m PolygonMesh) TriangleCount() int {
	n := 0
	for _, p := range m.Polygons {
		n += p.TriangleCount()
	}
	return n
}

// IsEmpty reports whether the mesh has zero triangles.
func (m PolygonMesh) IsEmpty() bool {
	return m.TriangleCount() == 0
}
