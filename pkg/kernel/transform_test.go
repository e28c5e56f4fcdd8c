package kernel

import (
	"testing"

	"github.com/df07/meshxsect/pkg/geom"
)

// Intersection results are covariant under a shared rigid transform: if
// both meshes are shifted by the same translation, the reported face ids
// are unchanged (spec.md's transform-covariance property).
func TestKernel_TransformCovariance(t *testing.T) {
	a1 := buildCubeKernel(t, geom.Vec3{})
	b1 := buildCubeKernel(t, geom.NewVec3(0.5, 0, 0))
	facesA1, facesB1, err := a1.Intersect(b1, 1)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}

	shift := geom.NewVec3(100, -50, 25)
	a2 := buildCubeKernel(t, shift)
	b2 := buildCubeKernel(t, shift.Add(geom.NewVec3(0.5, 0, 0)))
	facesA2, facesB2, err := a2.Intersect(b2, 1)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}

	if !setsEqual(facesA1, facesA2) || !setsEqual(facesB1, facesB2) {
		t.Errorf("expected translation-covariant results: shifted=(%v,%v) unshifted=(%v,%v)", facesA2, facesB2, facesA1, facesB1)
	}
}
