// Package loaders reads external mesh files into the pkg/mesh.PolygonMesh
// shape the kernel builds against. Adapted from the teacher's PLY reader:
// same header-parsing and binary-little-endian vertex/face layout, pared
// down to the geometry properties the kernel cares about (positions and
// triangle indices) since colors, texture coordinates and per-vertex
// scalar attributes have no bearing on surface intersection.
package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/mesh"
)

type plyProperty struct {
	name     string
	isList   bool
	listType string
	dataType string
}

type plyHeader struct {
	format      string
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty
}

// LoadPLY reads a binary little-endian PLY file and returns a PolygonMesh
// with one polygon per face, an n-vertex face fan-triangulated into n-2
// sub-triangles. Face normals are computed from the face's first three
// vertices, since PLY carries per-vertex (not per-face) normals when it
// carries any at all.
func LoadPLY(filename string) (mesh.PolygonMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("open PLY file: %w", err)
	}
	defer file.Close()

	header, headerSize, err := parsePLYHeader(file)
	if err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("parse PLY header: %w", err)
	}
	if header.format != "binary_little_endian" {
		return mesh.PolygonMesh{}, fmt.Errorf("unsupported PLY format: %s", header.format)
	}

	if _, err := file.Seek(int64(headerSize), io.SeekStart); err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("seek to PLY binary data: %w", err)
	}

	vertices, err := readPLYVertices(file, header)
	if err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("read PLY vertices: %w", err)
	}

	polys, err := readPLYFaces(file, header, vertices)
	if err != nil {
		return mesh.PolygonMesh{}, fmt.Errorf("read PLY faces: %w", err)
	}

	return mesh.PolygonMesh{Vertices: vertices, Polygons: polys}, nil
}

func parsePLYHeader(file *os.File) (*plyHeader, int, error) {
	header := &plyHeader{}
	scanner := bufio.NewScanner(file)
	var bytesRead int
	var currentElement string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 2 {
				header.format = parts[1]
			}
		case "element":
			if len(parts) < 3 {
				continue
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, 0, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, 0, err
			}
			switch currentElement {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return header, bytesRead, nil
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{isList: true, listType: parts[1], dataType: parts[2], name: parts[3]}, nil
	}
	return plyProperty{dataType: parts[0], name: parts[1]}, nil
}

func plyPropertySize(dataType string) int {
	switch dataType {
	case "char", "uchar", "int8", "uint8":
		return 1
	case "short", "ushort", "int16", "uint16":
		return 2
	case "int", "uint", "int32", "uint32", "float", "float32":
		return 4
	case "double", "float64", "int64", "uint64":
		return 8
	default:
		return 4
	}
}

func readPLYVertices(r io.Reader, header *plyHeader) ([]geom.Vec3, error) {
	xIdx, yIdx, zIdx := -1, -1, -1
	vertexSize := 0
	offsets := make([]int, len(header.vertexProps))
	for i, p := range header.vertexProps {
		offsets[i] = vertexSize
		switch p.name {
		case "x":
			xIdx = i
		case "y":
			yIdx = i
		case "z":
			zIdx = i
		}
		vertexSize += plyPropertySize(p.dataType)
	}
	if xIdx < 0 || yIdx < 0 || zIdx < 0 {
		return nil, fmt.Errorf("PLY vertex element missing x/y/z properties")
	}

	buf := make([]byte, vertexSize*header.vertexCount)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	vertices := make([]geom.Vec3, header.vertexCount)
	for i := 0; i < header.vertexCount; i++ {
		base := i * vertexSize
		x := readPLYFloat(buf[base+offsets[xIdx]:], header.vertexProps[xIdx].dataType)
		y := readPLYFloat(buf[base+offsets[yIdx]:], header.vertexProps[yIdx].dataType)
		z := readPLYFloat(buf[base+offsets[zIdx]:], header.vertexProps[zIdx].dataType)
		vertices[i] = geom.NewVec3(x, y, z)
	}
	return vertices, nil
}

func readPLYFloat(b []byte, dataType string) float64 {
	switch dataType {
	case "double", "float64":
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
}

func readPLYFaces(r io.Reader, header *plyHeader, vertices []geom.Vec3) ([]mesh.Polygon, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	polys := make([]mesh.Polygon, 0, header.faceCount)

	for i := 0; i < header.faceCount; i++ {
		var indices []int
		for _, prop := range header.faceProps {
			isVertexList := prop.isList && (prop.name == "vertex_indices" || prop.name == "vertex_index")
			if isVertexList {
				count, err := readPLYListCount(br, prop.listType)
				if err != nil {
					return nil, fmt.Errorf("read face %d vertex count: %w", i, err)
				}
				indices, err = readPLYIndexList(br, prop.dataType, count)
				if err != nil {
					return nil, fmt.Errorf("read face %d indices: %w", i, err)
				}
			} else if err := skipPLYProperty(br, prop); err != nil {
				return nil, fmt.Errorf("skip face %d property %s: %w", i, prop.name, err)
			}
		}

		if len(indices) < 3 {
			return nil, fmt.Errorf("face %d has fewer than 3 vertices", i)
		}

		vertexIndices := fanTriangulate(indices)
		e1 := vertices[indices[1]].Sub(vertices[indices[0]])
		e2 := vertices[indices[2]].Sub(vertices[indices[0]])
		polys = append(polys, mesh.Polygon{
			Normal:        e1.Cross(e2).Normalize(),
			VertexIndices: vertexIndices,
		})
	}
	return polys, nil
}

// fanTriangulate turns an n-gon's index list into n-2 fan triangles sharing
// vertex 0, matching the polygon fan-triangulation the kernel expects.
func fanTriangulate(polyIndices []int) []int {
	out := make([]int, 0, (len(polyIndices)-2)*3)
	for i := 1; i+1 < len(polyIndices); i++ {
		out = append(out, polyIndices[0], polyIndices[i], polyIndices[i+1])
	}
	return out
}

func readPLYListCount(r io.Reader, listType string) (int, error) {
	switch listType {
	case "uchar", "uint8", "char", "int8":
		var c uint8
		err := binary.Read(r, binary.LittleEndian, &c)
		return int(c), err
	case "ushort", "uint16", "short", "int16":
		var c uint16
		err := binary.Read(r, binary.LittleEndian, &c)
		return int(c), err
	default:
		var c int32
		err := binary.Read(r, binary.LittleEndian, &c)
		return int(c), err
	}
}

func readPLYIndexList(r io.Reader, dataType string, count int) ([]int, error) {
	out := make([]int, count)
	switch dataType {
	case "uint", "uint32":
		buf := make([]uint32, count)
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = int(v)
		}
	default:
		buf := make([]int32, count)
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = int(v)
		}
	}
	return out, nil
}

func skipPLYProperty(r *bufio.Reader, prop plyProperty) error {
	if !prop.isList {
		_, err := r.Discard(plyPropertySize(prop.dataType))
		return err
	}
	count, err := readPLYListCount(r, prop.listType)
	if err != nil {
		return err
	}
	_, err = r.Discard(count * plyPropertySize(prop.dataType))
	return err
}
