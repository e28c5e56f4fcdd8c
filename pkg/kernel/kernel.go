package kernel

import (
	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/mesh"
)

// Variant tags the spatial-division strategy a Kernel implements, per
// spec.md §9's "polymorphic kernel" note: the reference exposes a
// SpatialDivisionKernel base with multiple concrete strategies (octree,
// k-d tree, and an Embree-backed one it never wires into this spec's
// scope). A tagged sum type stands in for that base so Intersect can
// reject a kernel-variant mismatch with ErrIncompatibleKernel at the
// call, not via a failed dynamic cast.
type Variant int

const (
	VariantOctree Variant = iota
	VariantKDTree
)

// Kernel is a single spatial-division tree plus the build parameters it
// was built with — one kernel per mesh, per spec.md §3. Kernels are cheap
// to construct and are expected to live for exactly one intersection
// query. Root is populated for VariantOctree; KDRoot for VariantKDTree —
// exactly one is non-nil for any Kernel this package constructs.
type Kernel struct {
	Root    *Node
	KDRoot  *kdNode
	Params  BuildParams
	Variant Variant
}

// buildTriangles fan-triangulates every polygon of m into world-space
// triangles, applying transform to both vertices and (via
// TransformDirection) the polygon normal. Shared by Build and
// BuildKDTree, which differ only in how the resulting triangles are
// inserted into their respective trees.
func buildTriangles(m mesh.PolygonMesh, transform geom.Matrix4) []geom.Triangle {
	var out []geom.Triangle
	for faceID, polygon := range m.Polygons {
		worldNormal := transform.TransformDirection(polygon.Normal)
		triCount := polygon.TriangleCount()
		for ti := 0; ti < triCount; ti++ {
			i0 := polygon.VertexIndices[ti*3]
			i1 := polygon.VertexIndices[ti*3+1]
			i2 := polygon.VertexIndices[ti*3+2]

			out = append(out, geom.Triangle{
				FaceID:        faceID,
				TriangleIndex: ti,
				V0:            transform.TransformPoint(m.Vertices[i0]),
				V1:            transform.TransformPoint(m.Vertices[i1]),
				V2:            transform.TransformPoint(m.Vertices[i2]),
				Normal:        worldNormal,
			})
		}
	}
	return out
}

// Build constructs an octree kernel over mesh m: every polygon's
// sub-triangles are transformed into world space and inserted into the
// root. bbox is the caller-supplied world-space bounding box enclosing
// the transformed mesh (spec.md §6); it must be valid (min <= max on
// every axis) or Build fails fast with ErrDegenerateBBox. An empty mesh
// is not an error — it builds successfully with an empty root (spec.md
// §7).
func Build(m mesh.PolygonMesh, transform geom.Matrix4, bbox geom.AABB, params BuildParams) (*Kernel, error) {
	if !bbox.IsValid() {
		return nil, ErrDegenerateBBox
	}

	k := &Kernel{
		Root:    newLeaf(bbox),
		Params:  params,
		Variant: VariantOctree,
	}

	for _, tri := range buildTriangles(m, transform) {
		insert(k.Root, tri, 0, params)
	}

	return k, nil
}
