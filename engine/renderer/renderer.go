package renderer

import (
	"fmt"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// Renderer is the frontend the rest of the engine talks to. It owns the
// lifecycle of the GPU copies of objects; the backend only knows how to
// issue the calls.
type Renderer struct {
	backend     RendererBackend
	initialized bool
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(vertexSource, fragmentSource string) error {
	if err := r.backend.Initialize(vertexSource, fragmentSource); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

func (r *Renderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	r.initialized = false
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height int) {
	r.backend.Resized(width, height)
}

// DrawFrame clears the frame, uploads the shared uniforms and draws every
// object that has been uploaded.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if !r.initialized {
		return fmt.Errorf("renderer is not initialized")
	}
	r.backend.BeginFrame()
	r.backend.SetFrameUniforms(&packet.Frame)
	for _, object := range packet.Objects {
		if object == nil || !object.GPU.Uploaded() {
			continue
		}
		r.backend.DrawObject(object)
	}
	r.backend.EndFrame()
	return nil
}

// UploadObject sends the mesh of object to the GPU, replacing any previous copy.
func (r *Renderer) UploadObject(object *metadata.Object) error {
	if object.GPU.Uploaded() {
		r.backend.DestroyObject(object)
	}
	if err := r.backend.UploadObject(object); err != nil {
		core.LogError("could not upload %s: %s", object.FileName, err)
		return err
	}
	return nil
}

func (r *Renderer) UploadTexture(object *metadata.Object, data *metadata.TextureData) error {
	return r.backend.UploadTexture(object, data)
}

func (r *Renderer) DestroyObject(object *metadata.Object) {
	if object == nil || !object.GPU.Uploaded() {
		return
	}
	r.backend.DestroyObject(object)
}
