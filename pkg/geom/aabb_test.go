package geom

import "testing"

func TestAABB_Intersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "disjoint boxes",
			a:        NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)),
			b:        NewAABB(NewVec3(3, 3, 3), NewVec3(5, 5, 5)),
			expected: false,
		},
		{
			name:     "overlapping boxes",
			a:        NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)),
			b:        NewAABB(NewVec3(0.5, 0.5, 0.5), NewVec3(2, 2, 2)),
			expected: true,
		},
		{
			name:     "touching faces count as intersecting",
			a:        NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)),
			b:        NewAABB(NewVec3(1, -1, -1), NewVec3(3, 1, 1)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAABB_ContainsVertexPredicates(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2))

	inside := Triangle{V0: NewVec3(0.5, 0.5, 0.5), V1: NewVec3(1, 1, 1), V2: NewVec3(1.5, 0.5, 1)}
	if !box.ContainsAllVertices(inside) {
		t.Error("expected all vertices contained")
	}
	if !box.ContainsAnyVertex(inside) {
		t.Error("expected any vertex contained")
	}

	straddling := Triangle{V0: NewVec3(1, 1, 1), V1: NewVec3(5, 5, 5), V2: NewVec3(6, 6, 6)}
	if box.ContainsAllVertices(straddling) {
		t.Error("expected not all vertices contained")
	}
	if !box.ContainsAnyVertex(straddling) {
		t.Error("expected at least one vertex contained")
	}

	outside := Triangle{V0: NewVec3(5, 5, 5), V1: NewVec3(6, 6, 6), V2: NewVec3(7, 7, 7)}
	if box.ContainsAnyVertex(outside) {
		t.Error("expected no vertex contained")
	}
}

func TestAABB_Octant(t *testing.T) {
	box := NewAABB(NewVec3(-2, -2, -2), NewVec3(2, 2, 2))

	// Octant 0 (all low) should be the -x,-y,-z corner.
	o0 := box.Octant(0)
	if o0.Min != (Vec3{-2, -2, -2}) || o0.Max != (Vec3{0, 0, 0}) {
		t.Errorf("octant 0 = %+v, want min(-2,-2,-2) max(0,0,0)", o0)
	}

	// Octant 7 (all high) should be the +x,+y,+z corner.
	o7 := box.Octant(7)
	if o7.Min != (Vec3{0, 0, 0}) || o7.Max != (Vec3{2, 2, 2}) {
		t.Errorf("octant 7 = %+v, want min(0,0,0) max(2,2,2)", o7)
	}

	// All 8 octants union back to the original box.
	union := box.Octant(0)
	for i := 1; i < 8; i++ {
		union = union.Union(box.Octant(i))
	}
	if union.Min != box.Min || union.Max != box.Max {
		t.Errorf("octant union = %+v, want %+v", union, box)
	}
}

func TestAABB_IsValid(t *testing.T) {
	if !NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).IsValid() {
		t.Error("expected valid bbox")
	}
	if NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1)).IsValid() {
		t.Error("expected invalid (inverted) bbox")
	}
}
