package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/mesh"
)

// LoadGLTF reads a glTF/GLB document's default scene and flattens every
// triangle primitive of every mesh into a single PolygonMesh, baking each
// node's translation (accumulated down the node hierarchy) into the
// emitted vertex positions; node rotation and scale are not applied. Materials,
// textures and animation (present in the source format) have no bearing
// on surface intersection and are not read.
func LoadGLTF(filename string) (mesh.PolygonMesh, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("open glTF document: %w", err)
	}

	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}
	if sceneIndex >= len(doc.Scenes) {
		return mesh.PolygonMesh{}, fmt.Errorf("glTF document has no scene %d", sceneIndex)
	}
	scene := doc.Scenes[sceneIndex]

	out := mesh.PolygonMesh{}
	for _, nodeIndex := range scene.Nodes {
		if err := appendGLTFNode(doc, nodeIndex, geom.Identity(), &out); err != nil {
			return mesh.PolygonMesh{}, err
		}
	}
	return out, nil
}

func appendGLTFNode(doc *gltf.Document, nodeIndex uint32, parentTransform geom.Matrix4, out *mesh.PolygonMesh) error {
	node := doc.Nodes[nodeIndex]
	local := gltfNodeTransform(node)
	world := parentTransform.Mul(local)

	if node.Mesh != nil {
		if err := appendGLTFMesh(doc, *node.Mesh, world, out); err != nil {
			return err
		}
	}
	for _, childIndex := range node.Children {
		if err := appendGLTFNode(doc, childIndex, world, out); err != nil {
			return err
		}
	}
	return nil
}

// gltfNodeTransform bakes a node's translation into a Matrix4. The node's
// rotation and scale (uniform or not) are not applied; see DESIGN.md.
func gltfNodeTransform(node *gltf.Node) geom.Matrix4 {
	t := node.TranslationOrDefault()
	return geom.Translation(geom.NewVec3(float64(t[0]), float64(t[1]), float64(t[2])))
}

func appendGLTFMesh(doc *gltf.Document, meshIndex uint32, transform geom.Matrix4, out *mesh.PolygonMesh) error {
	docMesh := doc.Meshes[meshIndex]
	for _, primitive := range docMesh.Primitives {
		if primitive.Mode != gltf.PrimitiveTriangles {
			continue
		}

		positionIndex, ok := primitive.Attributes["POSITION"]
		if !ok {
			return fmt.Errorf("glTF primitive missing POSITION attribute")
		}
		positionAccessor := doc.Accessors[positionIndex]

		var positions [][3]float32
		positions, err := modeler.ReadPosition(doc, positionAccessor, positions)
		if err != nil {
			return fmt.Errorf("read glTF positions: %w", err)
		}

		var normals [][3]float32
		if normalIndex, ok := primitive.Attributes["NORMAL"]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normalIndex], normals)
			if err != nil {
				return fmt.Errorf("read glTF normals: %w", err)
			}
		}

		var indices []uint32
		if primitive.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indices)
			if err != nil {
				return fmt.Errorf("read glTF indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		if len(indices)%3 != 0 {
			return fmt.Errorf("glTF triangle primitive has non-multiple-of-3 index count: %d", len(indices))
		}

		base := len(out.Vertices)
		for _, p := range positions {
			out.Vertices = append(out.Vertices, transform.TransformPoint(geom.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))))
		}

		for i := 0; i < len(indices); i += 3 {
			i0, i1, i2 := base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2])
			normal := faceNormalFromIndices(out.Vertices, i0, i1, i2)
			if len(normals) > 0 {
				n := normals[indices[i]]
				normal = transform.TransformDirection(geom.NewVec3(float64(n[0]), float64(n[1]), float64(n[2])))
			}
			out.Polygons = append(out.Polygons, mesh.Polygon{
				Normal:        normal,
				VertexIndices: []int{i0, i1, i2},
			})
		}
	}
	return nil
}

func faceNormalFromIndices(vertices []geom.Vec3, i0, i1, i2 int) geom.Vec3 {
	e1 := vertices[i1].Sub(vertices[i0])
	e2 := vertices[i2].Sub(vertices[i0])
	return e1.Cross(e2).Normalize()
}
