package components

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

/** @brief The oblique angle a camera starts with, in radians. */
const DefaultObliqueAngle float32 = math32.Pi / 4

/**
 * @brief Represents the viewer of the scene: a position (eye) looking at a
 * reference point, plus the parameters of its projection. View and
 * Projection are rebuilt by UpdateView and UpdateProjection once per frame.
 */
type Camera struct {
	/** @brief The position of this camera. */
	Eye mgl32.Vec3
	/** @brief The point the camera looks at. */
	Ref mgl32.Vec3
	/** @brief The up direction used to orient the view. */
	Up mgl32.Vec3

	/**
	 * @brief Translation to apply on the next view update, expressed in
	 * camera space (x right, y up, z towards the viewer).
	 */
	Offset mgl32.Vec3
	/**
	 * @brief Rotation to apply on the next view update, in degrees.
	 * x turns around the camera Y axis, y around X and z around Z.
	 */
	RotOffset mgl32.Vec3

	/** @brief Vertical field of view in degrees. */
	FOV  float32
	Near float32
	Far  float32
	/** @brief Half extent of the orthographic volume. */
	Top float32

	/** @brief Oblique shear factor, 0 disables the shear. */
	ObliqueScale float32
	/** @brief Oblique shear angle in radians. */
	ObliqueAngle float32

	/** @brief True for perspective projection, false for parallel. */
	Perspective bool

	View       mgl32.Mat4
	Projection mgl32.Mat4

	defaultEye mgl32.Vec3
	defaultRef mgl32.Vec3
}

func NewCamera(eye, ref, up mgl32.Vec3, fov, near, far, top float32, perspective bool) *Camera {
	c := &Camera{
		Eye:          eye,
		Ref:          ref,
		Up:           up,
		FOV:          fov,
		Near:         near,
		Far:          far,
		Top:          top,
		Perspective:  perspective,
		ObliqueAngle: DefaultObliqueAngle,
		defaultEye:   eye,
		defaultRef:   ref,
	}
	c.View = mgl32.LookAtV(c.Eye, c.Ref, c.Up)
	c.Projection = mgl32.Ident4()
	return c
}

// Direction returns the vector from the eye to the reference point.
func (c *Camera) Direction() mgl32.Vec3 {
	return c.Ref.Sub(c.Eye)
}

// ResetEye moves the camera back to its initial position.
func (c *Camera) ResetEye() {
	c.Eye = c.defaultEye
	c.View = mgl32.LookAtV(c.Eye, c.Ref, c.Up)
}

// ResetRef points the camera back at its initial reference point.
func (c *Camera) ResetRef() {
	c.Ref = c.defaultRef
	c.View = mgl32.LookAtV(c.Eye, c.Ref, c.Up)
}

/**
 * @brief Applies the pending Offset and RotOffset and rebuilds the view matrix.
 * Both are consumed relative to the current view, so they should be
 * refreshed by input handling every frame.
 */
func (c *Camera) UpdateView() {
	if c.Offset != (mgl32.Vec3{}) {
		inv := c.View.Inv()
		move := mgl32.Translate3D(c.Offset.X(), c.Offset.Y(), c.Offset.Z())

		eye := inv.Mul4(move).Mul4(c.View).Mul4x1(c.Eye.Vec4(1))
		ref := inv.Mul4(move).Mul4(c.View).Mul4x1(c.Ref.Vec4(1))
		c.Eye = eye.Vec3()
		c.Ref = ref.Vec3()
	}

	if c.RotOffset != (mgl32.Vec3{}) {
		rot := mgl32.Ident4()
		if c.RotOffset.X() != 0 {
			rot = rot.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(c.RotOffset.X()), mgl32.Vec3{0, 1, 0}))
		}
		if c.RotOffset.Y() != 0 {
			rot = rot.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(c.RotOffset.Y()), mgl32.Vec3{1, 0, 0}))
		}
		if c.RotOffset.Z() != 0 {
			rot = rot.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(c.RotOffset.Z()), mgl32.Vec3{0, 0, 1}))
		}

		// the reference point in camera space sits straight ahead of the eye
		view := mgl32.LookAtV(c.Eye, c.Ref, c.Up)
		ahead := mgl32.Vec4{0, 0, -c.Direction().Len(), 1}
		ref := view.Inv().Mul4x1(rot.Mul4x1(ahead))
		c.Ref = ref.Vec3()
	}

	c.View = mgl32.LookAtV(c.Eye, c.Ref, c.Up)
}

/**
 * @brief Rebuilds the projection matrix for the given aspect ratio
 * (width / height). The oblique shear only applies to parallel projection.
 */
func (c *Camera) UpdateProjection(aspect float32) {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Perspective {
		c.Projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
		return
	}
	c.Projection = mgl32.Ortho(-c.Top, c.Top, -c.Top, c.Top, c.Near, c.Far)
	if c.ObliqueScale != 0 {
		c.Projection = c.Projection.Mul4(ObliqueShear(c.ObliqueScale, c.ObliqueAngle))
	}
}

// ObliqueShear returns the shear matrix moving z into x and y by a*cos(angle)
// and a*sin(angle).
func ObliqueShear(a, angle float32) mgl32.Mat4 {
	shear := mgl32.Ident4()
	shear.Set(0, 2, a*math32.Cos(angle))
	shear.Set(1, 2, a*math32.Sin(angle))
	return shear
}
