package kernel

import (
	"math"
	"testing"

	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/mesh"
)

func TestInsert_SplitsAtCapacity(t *testing.T) {
	bbox := geom.NewAABB(geom.NewVec3(-10, -10, -10), geom.NewVec3(10, 10, 10))
	params := BuildParams{MaxTrianglesPerNode: 2, MaxDepth: 32}
	root := newLeaf(bbox)

	tri := func(id int, offset float64) geom.Triangle {
		return geom.Triangle{
			FaceID: id,
			V0:     geom.NewVec3(offset, offset, offset),
			V1:     geom.NewVec3(offset+0.1, offset, offset),
			V2:     geom.NewVec3(offset, offset+0.1, offset),
		}
	}

	insert(root, tri(0, -5), 0, params)
	insert(root, tri(1, -5), 0, params)
	if !root.IsLeaf() {
		t.Fatalf("expected root still a leaf at capacity, got split")
	}

	// A third insert exceeds capacity: the node must split before accepting it.
	insert(root, tri(2, 5), 0, params)
	if root.IsLeaf() {
		t.Fatalf("expected root to have split after exceeding capacity")
	}
	if len(root.Triangles) != 0 {
		t.Fatalf("expected split node to clear its own triangle list, got %d", len(root.Triangles))
	}

	var total int
	for _, c := range root.Children {
		total += len(c.Triangles)
	}
	if total != 3 {
		t.Fatalf("expected all 3 triangles redistributed to children, got %d", total)
	}
}

func TestInsert_MaxDepthOverflowGoesToInteriorBucket(t *testing.T) {
	bbox := geom.NewAABB(geom.NewVec3(-1, -1, -1), geom.NewVec3(1, 1, 1))
	params := BuildParams{MaxTrianglesPerNode: 1, MaxDepth: 0}
	root := newLeaf(bbox)

	tri := geom.Triangle{V0: geom.NewVec3(0, 0, 0), V1: geom.NewVec3(0.1, 0, 0), V2: geom.NewVec3(0, 0.1, 0)}
	insert(root, tri, 0, params)

	// The second insert at depth 0 finds the root at capacity (cap 1), so
	// the root splits and the retry runs at depth 1 > MaxDepth 0.
	tri2 := geom.Triangle{V0: geom.NewVec3(-0.5, -0.5, -0.5), V1: geom.NewVec3(-0.4, -0.5, -0.5), V2: geom.NewVec3(-0.5, -0.4, -0.5)}
	insert(root, tri2, 0, params)

	if root.IsLeaf() {
		t.Fatalf("expected split to have occurred")
	}
	// The split moved the first triangle into a child; past MAX_DEPTH the
	// 2nd triangle is appended to the root itself, now an interior node.
	var childCount int
	for _, c := range root.Children {
		childCount += len(c.Triangles)
	}
	if childCount != 1 {
		t.Fatalf("expected only the first triangle in the children, got %d", childCount)
	}
	if len(root.Triangles) != 1 {
		t.Fatalf("expected the overflowed insert in the root's interior bucket, got %d", len(root.Triangles))
	}
}

func TestSplit_FirstContainingChildWinsOverBarycenterRule(t *testing.T) {
	bbox := geom.NewAABB(geom.NewVec3(-2, -2, -2), geom.NewVec3(2, 2, 2))
	node := newLeaf(bbox)

	// A tiny triangle fully inside octant 0 (the -x,-y,-z corner).
	tiny := geom.Triangle{
		FaceID: 42,
		V0:     geom.NewVec3(-1.5, -1.5, -1.5),
		V1:     geom.NewVec3(-1.4, -1.5, -1.5),
		V2:     geom.NewVec3(-1.5, -1.4, -1.5),
	}
	node.Triangles = []geom.Triangle{tiny}

	split(node)

	if len(node.Children[0].Triangles) != 1 {
		t.Fatalf("expected triangle fully contained in octant 0, got it in %+v", node.Children)
	}
	for i := 1; i < 8; i++ {
		if len(node.Children[i].Triangles) != 0 {
			t.Fatalf("expected no triangles outside octant 0, found one in octant %d", i)
		}
	}
}

func TestSplit_StraddlingTriangleGoesToNearestCenterByBarycenter(t *testing.T) {
	bbox := geom.NewAABB(geom.NewVec3(-2, -2, -2), geom.NewVec3(2, 2, 2))
	node := newLeaf(bbox)

	// A triangle straddling the -x,-y,-z octant and its neighbors, with its
	// barycenter sitting deep in octant 0.
	straddling := geom.Triangle{
		FaceID: 7,
		V0:     geom.NewVec3(-1.9, -1.9, -1.9),
		V1:     geom.NewVec3(0.1, -1.9, -1.9),
		V2:     geom.NewVec3(-1.9, 0.1, -1.9),
	}
	node.Triangles = []geom.Triangle{straddling}

	split(node)

	found := -1
	for i, c := range node.Children {
		if len(c.Triangles) == 1 {
			found = i
		}
	}
	if found != 0 {
		t.Fatalf("expected straddling triangle placed by nearest-barycenter rule in octant 0, got octant %d", found)
	}
}

func TestBuild_FanTriangulatedPolygonReportsOneFaceID(t *testing.T) {
	// A single polygon fan-triangulated into many sub-triangles must still
	// surface exactly one face_id, however many sub-triangles intersect.
	const fanCount = 16
	vertices := make([]geom.Vec3, 0, fanCount+2)
	vertices = append(vertices, geom.NewVec3(0, 0, 0)) // hub
	for i := 0; i <= fanCount; i++ {
		theta := 2 * math.Pi * float64(i) / float64(fanCount)
		vertices = append(vertices, geom.NewVec3(math.Cos(theta), math.Sin(theta), 0))
	}

	indices := make([]int, 0, fanCount*3)
	for i := 1; i <= fanCount; i++ {
		indices = append(indices, 0, i, i+1)
	}

	m := mesh.PolygonMesh{
		Vertices: vertices,
		Polygons: []mesh.Polygon{{Normal: geom.NewVec3(0, 0, 1), VertexIndices: indices}},
	}

	bbox := geom.NewAABBFromPoints(vertices...)
	k, err := Build(m, geom.Identity(), bbox, DefaultBuildParams())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// The crosser: the unit cube centred on the fan's hub; its four side
	// faces cut through the fan's plane z=0.
	crosser := buildCubeKernel(t, geom.Vec3{})

	facesA, _, err := k.Intersect(crosser, 1)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if len(facesA) != 1 {
		t.Fatalf("expected exactly one distinct face id from the fan, got %v", facesA)
	}
	if _, ok := facesA[0]; !ok {
		t.Fatalf("expected face id 0, got %v", facesA)
	}
}
