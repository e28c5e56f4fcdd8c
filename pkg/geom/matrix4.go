package geom

import "github.com/go-gl/mathgl/mgl64"

// Matrix4 is a 4x4 affine world transform. It wraps mgl64.Mat4 so the
// kernel and driver never deal with column-major index arithmetic directly.
type Matrix4 struct {
	m mgl64.Mat4
}

// Identity returns the identity transform.
func Identity() Matrix4 {
	return Matrix4{m: mgl64.Ident4()}
}

// NewMatrix4FromRowMajor builds a Matrix4 from 16 row-major values
// (the layout external collaborators typically supply).
func NewMatrix4FromRowMajor(row [16]float64) Matrix4 {
	// mgl64.Mat4 is column-major; transpose on the way in.
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = row[r*4+c]
		}
	}
	return Matrix4{m: m}
}

// Translation returns a pure translation transform.
func Translation(t Vec3) Matrix4 {
	return Matrix4{m: mgl64.Translate3D(t.X, t.Y, t.Z)}
}

// Mul composes two transforms: (a.Mul(b)).TransformPoint(p) == a.TransformPoint(b.TransformPoint(p)).
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	return Matrix4{m: a.m.Mul4(b.m)}
}

// TransformPoint applies the full affine transform (rotation + translation +
// scale/shear) to a point.
func (a Matrix4) TransformPoint(p Vec3) Vec3 {
	v := a.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// TransformDirection applies only the linear (rotation/scale) part of the
// transform, ignoring translation. Used for the polygon normal per
// spec's resolved open question: the normal is rotated, not inverse-
// transpose corrected.
func (a Matrix4) TransformDirection(v Vec3) Vec3 {
	r := a.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}
