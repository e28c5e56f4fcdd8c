package kernel

import (
	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/mesh"
)

// unitCubeMesh returns an axis-aligned unit cube centered at origin, 6
// quad faces each fan-triangulated into 2 sub-triangles. Face order:
// -X, +X, -Y, +Y, -Z, +Z.
func unitCubeMesh() mesh.PolygonMesh {
	v := []geom.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5}, // 0
		{X: 0.5, Y: -0.5, Z: -0.5},  // 1
		{X: 0.5, Y: 0.5, Z: -0.5},   // 2
		{X: -0.5, Y: 0.5, Z: -0.5},  // 3
		{X: -0.5, Y: -0.5, Z: 0.5},  // 4
		{X: 0.5, Y: -0.5, Z: 0.5},   // 5
		{X: 0.5, Y: 0.5, Z: 0.5},    // 6
		{X: -0.5, Y: 0.5, Z: 0.5},   // 7
	}

	quad := func(normal geom.Vec3, a, b, c, d int) mesh.Polygon {
		return mesh.Polygon{
			Normal:        normal,
			VertexIndices: []int{a, b, c, a, c, d},
		}
	}

	polys := []mesh.Polygon{
		quad(geom.NewVec3(-1, 0, 0), 0, 4, 7, 3), // -X
		quad(geom.NewVec3(1, 0, 0), 1, 2, 6, 5),  // +X
		quad(geom.NewVec3(0, -1, 0), 0, 1, 5, 4), // -Y
		quad(geom.NewVec3(0, 1, 0), 3, 7, 6, 2),  // +Y
		quad(geom.NewVec3(0, 0, -1), 0, 3, 2, 1), // -Z
		quad(geom.NewVec3(0, 0, 1), 4, 5, 6, 7),  // +Z
	}

	return mesh.PolygonMesh{Vertices: v, Polygons: polys}
}

// unitCubeBBox returns the world-space AABB for a cube built with the
// given translation offset (the mesh is centered at origin, extent ±0.5).
func unitCubeBBox(offset geom.Vec3) geom.AABB {
	return geom.NewAABB(
		geom.NewVec3(-0.5+offset.X, -0.5+offset.Y, -0.5+offset.Z),
		geom.NewVec3(0.5+offset.X, 0.5+offset.Y, 0.5+offset.Z),
	)
}

func buildCubeKernel(t interface{ Fatalf(string, ...interface{}) }, offset geom.Vec3) *Kernel {
	transform := geom.Translation(offset)
	bbox := unitCubeBBox(offset)
	k, err := Build(unitCubeMesh(), transform, bbox, DefaultBuildParams())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return k
}

// tetrahedronMesh returns a regular-ish tetrahedron with 4 triangular faces.
func tetrahedronMesh(v0, v1, v2, v3 geom.Vec3) mesh.PolygonMesh {
	v := []geom.Vec3{v0, v1, v2, v3}
	tri := func(a, b, c int) mesh.Polygon {
		e1 := v[b].Sub(v[a])
		e2 := v[c].Sub(v[a])
		return mesh.Polygon{Normal: e1.Cross(e2).Normalize(), VertexIndices: []int{a, b, c}}
	}
	polys := []mesh.Polygon{
		tri(0, 1, 2),
		tri(0, 3, 1),
		tri(1, 3, 2),
		tri(2, 3, 0),
	}
	return mesh.PolygonMesh{Vertices: v, Polygons: polys}
}

func meshBBox(m mesh.PolygonMesh, transform geom.Matrix4) geom.AABB {
	pts := make([]geom.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i] = transform.TransformPoint(v)
	}
	return geom.NewAABBFromPoints(pts...)
}
