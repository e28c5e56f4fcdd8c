// Package intersect implements the intersection driver (spec.md §4.4):
// given two triangulated meshes, their world transforms, and their
// world-space bounding boxes, build one octree kernel per mesh and report
// the two sets of face ids that participate in the cross-mesh surface
// intersection.
package intersect

import (
	"sort"

	"github.com/google/uuid"

	"github.com/df07/meshxsect/pkg/geom"
	"github.com/df07/meshxsect/pkg/kernel"
	"github.com/df07/meshxsect/pkg/mesh"
)

// MeshInput bundles one mesh's external-collaborator inputs (spec.md §6):
// the triangulated mesh, its world transform, its world-space bounding
// box, and a label used only for diagnostics.
type MeshInput struct {
	Label     string
	Mesh      mesh.PolygonMesh
	Transform geom.Matrix4
	BBox      geom.AABB
}

// Result is the pair of face-id sets spec.md §3 calls IntersectionResult.
type Result struct {
	FacesA map[int]struct{}
	FacesB map[int]struct{}
}

// SortedFacesA returns FacesA as an ascending sorted slice, for stable
// output (e.g. CLI printing, test assertions).
func (r Result) SortedFacesA() []int { return sortedKeys(r.FacesA) }

// SortedFacesB returns FacesB as an ascending sorted slice.
func (r Result) SortedFacesB() []int { return sortedKeys(r.FacesB) }

// Options tunes a single Intersect call.
type Options struct {
	BuildParams kernel.BuildParams
	NumWorkers  int // 0 lets the kernel choose a serial/parallel default
	Diagnostics kernel.Diagnostics
}

// DefaultOptions returns spec.md's reference build parameters, a single
// worker (serial), and a no-op diagnostics sink.
func DefaultOptions() Options {
	return Options{
		BuildParams: kernel.DefaultBuildParams(),
		NumWorkers:  1,
		Diagnostics: kernel.NopDiagnostics{},
	}
}

// Intersect runs the four steps of spec.md §4.4: build kernel_A, build
// kernel_B, invoke kernel_A.Intersect(kernel_B), then validate and collapse
// the returned face ids into the two output sets. A face_id outside
// [0, polygon_count) for its mesh is dropped and reported to Diagnostics
// (spec.md §7's InvalidFaceId) rather than failing the whole query.
func Intersect(a, b MeshInput, opts Options) (Result, error) {
	if opts.Diagnostics == nil {
		opts.Diagnostics = kernel.NopDiagnostics{}
	}

	kernelA, err := kernel.Build(a.Mesh, a.Transform, a.BBox, opts.BuildParams)
	if err != nil {
		return Result{}, err
	}
	kernelB, err := kernel.Build(b.Mesh, b.Transform, b.BBox, opts.BuildParams)
	if err != nil {
		return Result{}, err
	}

	rawA, rawB, err := kernelA.Intersect(kernelB, opts.NumWorkers)
	if err != nil {
		return Result{}, err
	}

	queryID := uuid.New()
	facesA := validateFaceIDs(rawA, a.Mesh.PolygonCount(), a.Label, queryID, opts.Diagnostics)
	facesB := validateFaceIDs(rawB, b.Mesh.PolygonCount(), b.Label, queryID, opts.Diagnostics)

	return Result{FacesA: facesA, FacesB: facesB}, nil
}

func validateFaceIDs(raw map[int]struct{}, polygonCount int, label string, queryID uuid.UUID, diag kernel.Diagnostics) map[int]struct{} {
	out := make(map[int]struct{}, len(raw))
	for faceID := range raw {
		if faceID < 0 || faceID >= polygonCount {
			diag.InvalidFaceID(queryID, label, faceID, polygonCount)
			continue
		}
		out[faceID] = struct{}{}
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
