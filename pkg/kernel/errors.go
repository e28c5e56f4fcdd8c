package kernel

import "github.com/pkg/errors"

// ErrDegenerateBBox is returned by Build when the supplied enclosing bbox
// is empty or inverted (min.i > max.i on any axis). Build fails fast.
var ErrDegenerateBBox = errors.New("kernel: degenerate bounding box")

// ErrIncompatibleKernel is returned by Intersect when given a kernel
// variant it cannot pair with — e.g. pairing a VariantOctree kernel
// (Build) with a VariantKDTree one (BuildKDTree). This mirrors
// OctreeKernel::intersectKernelKernel's dynamic_cast-and-reject against
// otherKernel in original_source/src/kernel/OctreeKernel.cpp, and is
// also the faithful outcome for any pairing involving a k-d tree kernel:
// the reference's own KDTreeKernel::intersectKernelKernel never performs
// a real dual-tree descent, it unconditionally returns an empty
// K2KIntersection stub. Dual-tree Intersect here only supports pairing
// two VariantOctree kernels; everything else is incompatible.
var ErrIncompatibleKernel = errors.New("kernel: incompatible kernel variant")

// Note: EmptyMesh is explicitly NOT an error per spec.md §7 — a mesh with
// zero triangles builds a kernel with an empty root, and queries against
// it simply return empty results.
