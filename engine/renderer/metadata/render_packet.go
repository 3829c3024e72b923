package metadata

import "github.com/go-gl/mathgl/mgl32"

// FrameData holds the per-frame uniforms shared by every object.
type FrameData struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	Ambient        mgl32.Vec4
	LightPosition  mgl32.Vec4
	LightColor     mgl32.Vec4
}

type RenderPacket struct {
	DeltaTime float64
	Frame     FrameData
	Objects   []*Object
}
