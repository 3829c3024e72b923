package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelTransformZeroInputsKeepMatrix(t *testing.T) {
	m := NewModelTransform()
	m.Translate(mgl32.Vec3{1, 2, 3})
	before := m.Matrix()

	m.Apply(mgl32.Vec3{}, 0, mgl32.Vec3{}, 5)
	assert.Equal(t, before, m.Matrix())

	m.Apply(mgl32.Vec3{}, 1, mgl32.Vec3{}, 5)
	assert.True(t, before.ApproxEqual(m.Matrix()))
}

func TestModelTransformResetIsExactIdentity(t *testing.T) {
	m := NewModelTransform()
	m.Apply(mgl32.Vec3{0.1, 0, 0}, 1.1, mgl32.Vec3{0, 1, 0}, 5)
	assert.False(t, m.IsIdentity())

	m.Reset()
	assert.Equal(t, mgl32.Ident4(), m.Matrix())
}

func TestModelTransformApplyOrder(t *testing.T) {
	m := NewModelTransform()
	translation := mgl32.Vec3{1, 0, 0}
	axis := mgl32.Vec3{0, 0, 1}
	m.Apply(translation, 2, axis, 90)

	expected := mgl32.Translate3D(1, 0, 0).
		Mul4(mgl32.Scale3D(2, 2, 2)).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(90), axis))
	assert.True(t, expected.ApproxEqualThreshold(m.Matrix(), 1e-6))

	// a point on x is rotated onto y, doubled, then moved along x
	p := m.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec4{1, 2, 0, 1}, 1e-5))
}

func TestModelTransformZeroValueActsAsIdentity(t *testing.T) {
	var m ModelTransform
	assert.Equal(t, mgl32.Ident4(), m.Matrix())

	m.Translate(mgl32.Vec3{0, 0, 1})
	assert.Equal(t, mgl32.Translate3D(0, 0, 1), m.Matrix())
}

func TestModelTransformRotateIgnoresZeroAxis(t *testing.T) {
	m := NewModelTransform()
	m.Rotate(mgl32.Vec3{}, 45)
	assert.True(t, m.IsIdentity())
}

func TestModelTransformPositionAndScale(t *testing.T) {
	m := NewModelTransform()
	assert.Equal(t, mgl32.Vec3{}, m.Position())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.ScaleFactors())

	m.Translate(mgl32.Vec3{1, 2, 3})
	m.Scale(2)
	m.Rotate(mgl32.Vec3{0, 0, 1}, 90)

	assert.True(t, mgl32.Vec3{1, 2, 3}.ApproxEqual(m.Position()))
	assert.True(t, mgl32.Vec3{2, 2, 2}.ApproxEqualThreshold(m.ScaleFactors(), 1e-5))
}
