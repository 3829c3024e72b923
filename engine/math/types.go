package math

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex3D is the interleaved vertex layout uploaded to the GPU.
type Vertex3D struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Texcoord mgl32.Vec2
}

// Byte layout of Vertex3D, used when describing vertex attributes.
var (
	Vertex3DStride         = int32(unsafe.Sizeof(Vertex3D{}))
	Vertex3DPositionOffset = int(unsafe.Offsetof(Vertex3D{}.Position))
	Vertex3DNormalOffset   = int(unsafe.Offsetof(Vertex3D{}.Normal))
	Vertex3DTexcoordOffset = int(unsafe.Offsetof(Vertex3D{}.Texcoord))
)

// Length is the distance of the vertex position from the origin.
func (v Vertex3D) Length() float32 {
	return v.Position.Len()
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.ApproxEqual(vert1.Position) &&
		vert0.Normal.ApproxEqual(vert1.Normal) &&
		vert0.Texcoord.ApproxEqual(vert1.Texcoord)
}
