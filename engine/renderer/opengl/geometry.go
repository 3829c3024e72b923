package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/studio3d/engine/math"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

const (
	attribPosition uint32 = 0
	attribNormal   uint32 = 1
	attribTexcoord uint32 = 2
)

func createGeometry(object *metadata.Object) {
	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(object.Vertices)*int(math.Vertex3DStride), unsafe.Pointer(&object.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(object.Indices)*4, unsafe.Pointer(&object.Indices[0]), gl.STATIC_DRAW)

	stride := math.Vertex3DStride
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, uintptr(math.Vertex3DPositionOffset))
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, uintptr(math.Vertex3DNormalOffset))
	gl.EnableVertexAttribArray(attribTexcoord)
	gl.VertexAttribPointerWithOffset(attribTexcoord, 2, gl.FLOAT, false, stride, uintptr(math.Vertex3DTexcoordOffset))

	gl.BindVertexArray(0)

	object.GPU.VAO = vao
	object.GPU.VBO = vbo
	object.GPU.EBO = ebo
}

func destroyGeometry(object *metadata.Object) {
	if object.GPU.EBO != 0 {
		gl.DeleteBuffers(1, &object.GPU.EBO)
	}
	if object.GPU.VBO != 0 {
		gl.DeleteBuffers(1, &object.GPU.VBO)
	}
	if object.GPU.VAO != 0 {
		gl.DeleteVertexArrays(1, &object.GPU.VAO)
	}
	object.GPU.VAO, object.GPU.VBO, object.GPU.EBO = 0, 0, 0
}
