// Command meshxsect loads two triangulated mesh files and reports the
// face ids of each that participate in their surface intersection. It is
// the thin host-application stand-in spec.md deliberately leaves out of
// scope for the kernel itself.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/meshxsect/pkg/diag"
	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/intersect"
	"github.com/df07/meshxsect/pkg/kernel"
	"github.com/df07/meshxsect/pkg/loaders"
	"github.com/df07/meshxsect/pkg/mesh"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	inputA, err := loadMeshInput("A", cfg.MeshA)
	if err != nil {
		slog.Error("load mesh A", "error", err, "path", cfg.MeshA)
		os.Exit(1)
	}
	inputB, err := loadMeshInput("B", cfg.MeshB)
	if err != nil {
		slog.Error("load mesh B", "error", err, "path", cfg.MeshB)
		os.Exit(1)
	}

	opts := intersect.Options{
		BuildParams: kernel.BuildParams{
			MaxTrianglesPerNode: cfg.MaxTrianglesPerNode,
			MaxDepth:            cfg.MaxDepth,
		},
		NumWorkers:  cfg.NumWorkers,
		Diagnostics: diag.NewSlogDiagnostics(slog.Default()),
	}

	result, err := intersect.Intersect(inputA, inputB, opts)
	if err != nil {
		slog.Error("intersect", "error", err)
		os.Exit(1)
	}

	fmt.Printf("mesh A faces: %v\n", result.SortedFacesA())
	fmt.Printf("mesh B faces: %v\n", result.SortedFacesB())
}

func loadMeshInput(label, path string) (intersect.MeshInput, error) {
	m, err := loadMesh(path)
	if err != nil {
		return intersect.MeshInput{}, err
	}
	if m.IsEmpty() {
		slog.Warn("mesh has zero triangles", "label", label, "path", path)
	}

	bbox := geom.NewAABBFromPoints(m.Vertices...)
	return intersect.MeshInput{
		Label:     label,
		Mesh:      m,
		Transform: geom.Identity(),
		BBox:      bbox,
	}, nil
}

func loadMesh(path string) (mesh.PolygonMesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ply":
		return loaders.LoadPLY(path)
	case ".gltf", ".glb":
		return loaders.LoadGLTF(path)
	default:
		return mesh.PolygonMesh{}, fmt.Errorf("unsupported mesh file extension: %s", ext)
	}
}
