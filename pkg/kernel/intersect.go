package kernel

// Intersect implements spec.md §4.2's kernel-vs-kernel query: dual-tree
// traversal to find candidate leaf pairs, triangle-triangle testing within
// each pair, and face-id collection into the two output sets. The sets
// are unordered and deduplicated by construction (map keys).
//
// numWorkers controls how many goroutines share the triangle-pair testing
// loop (spec.md §5); 1 runs it on a single goroutine, 0 or less uses
// runtime.NumCPU() workers. The returned
// sets are identical regardless of numWorkers — p2/p3 (set semantics,
// symmetry) do not depend on traversal or scheduling order.
func (k *Kernel) Intersect(other *Kernel, numWorkers int) (facesA, facesB map[int]struct{}, err error) {
	if k == nil || other == nil || k.Variant != VariantOctree || other.Variant != VariantOctree {
		return nil, nil, ErrIncompatibleKernel
	}

	facesA = map[int]struct{}{}
	facesB = map[int]struct{}{}

	if k.Root == nil || other.Root == nil {
		return facesA, facesB, nil
	}

	pairs := descendPairs(k.Root, other.Root)
	hits := runPairTests(pairs, numWorkers)

	for _, h := range hits {
		facesA[h.faceIDA] = struct{}{}
		facesB[h.faceIDB] = struct{}{}
	}

	return facesA, facesB, nil
}
