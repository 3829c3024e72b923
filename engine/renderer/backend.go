package renderer

import "github.com/spaghettifunk/studio3d/engine/renderer/metadata"

type RendererBackend interface {
	Initialize(vertexSource, fragmentSource string) error
	Shutdown() error
	Resized(width, height int)
	BeginFrame()
	EndFrame()
	SetFrameUniforms(frame *metadata.FrameData)
	UploadObject(object *metadata.Object) error
	UploadTexture(object *metadata.Object, data *metadata.TextureData) error
	DrawObject(object *metadata.Object)
	DestroyObject(object *metadata.Object)
}
