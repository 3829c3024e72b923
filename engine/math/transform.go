package math

import "github.com/go-gl/mathgl/mgl32"

// ModelTransform accumulates the model matrix of one object. Operations are
// applied on the right, so the newest operation acts first in object space.
type ModelTransform struct {
	matrix mgl32.Mat4
}

func NewModelTransform() ModelTransform {
	return ModelTransform{matrix: mgl32.Ident4()}
}

// Apply translates by t, scales uniformly by s and rotates rotSpeedDeg degrees
// around the axis r, in that order. Zero inputs are skipped.
func (t *ModelTransform) Apply(translation mgl32.Vec3, scale float32, axis mgl32.Vec3, rotSpeedDeg float32) {
	if translation != (mgl32.Vec3{}) {
		t.Translate(translation)
	}
	if scale != 0 {
		t.Scale(scale)
	}
	if axis != (mgl32.Vec3{}) {
		t.Rotate(axis, rotSpeedDeg)
	}
}

func (t *ModelTransform) Translate(v mgl32.Vec3) {
	t.matrix = t.Matrix().Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

func (t *ModelTransform) Scale(s float32) {
	t.matrix = t.Matrix().Mul4(mgl32.Scale3D(s, s, s))
}

func (t *ModelTransform) Rotate(axis mgl32.Vec3, degrees float32) {
	if axis.Len() == 0 {
		return
	}
	t.matrix = t.Matrix().Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize()))
}

// Reset restores the identity matrix.
func (t *ModelTransform) Reset() {
	t.matrix = mgl32.Ident4()
}

func (t *ModelTransform) Matrix() mgl32.Mat4 {
	if t.matrix == (mgl32.Mat4{}) {
		return mgl32.Ident4()
	}
	return t.matrix
}

func (t *ModelTransform) IsIdentity() bool {
	return t.Matrix() == mgl32.Ident4()
}

// Position is the translation column of the model matrix.
func (t *ModelTransform) Position() mgl32.Vec3 {
	return t.Matrix().Col(3).Vec3()
}

// ScaleFactors are the lengths of the three basis columns, the per-axis
// scale once rotation is factored out.
func (t *ModelTransform) ScaleFactors() mgl32.Vec3 {
	m := t.Matrix()
	return mgl32.Vec3{m.Col(0).Vec3().Len(), m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()}
}
