package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

type fakeBackend struct {
	calls     []string
	nextVAO   uint32
	uploadErr error
	drawn     []*metadata.Object
	frame     *metadata.FrameData
}

func (f *fakeBackend) Initialize(vertexSource, fragmentSource string) error {
	f.calls = append(f.calls, "initialize")
	if vertexSource == "" {
		return errors.New("empty shader")
	}
	return nil
}

func (f *fakeBackend) Shutdown() error {
	f.calls = append(f.calls, "shutdown")
	return nil
}

func (f *fakeBackend) Resized(width, height int) {
	f.calls = append(f.calls, "resized")
}

func (f *fakeBackend) BeginFrame() { f.calls = append(f.calls, "begin") }
func (f *fakeBackend) EndFrame()   { f.calls = append(f.calls, "end") }

func (f *fakeBackend) SetFrameUniforms(frame *metadata.FrameData) {
	f.calls = append(f.calls, "uniforms")
	f.frame = frame
}

func (f *fakeBackend) UploadObject(object *metadata.Object) error {
	f.calls = append(f.calls, "upload")
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.nextVAO++
	object.GPU.VAO = f.nextVAO
	return nil
}

func (f *fakeBackend) UploadTexture(object *metadata.Object, data *metadata.TextureData) error {
	f.calls = append(f.calls, "texture")
	object.GPU.Texture = 1
	return nil
}

func (f *fakeBackend) DrawObject(object *metadata.Object) {
	f.calls = append(f.calls, "draw")
	f.drawn = append(f.drawn, object)
}

func (f *fakeBackend) DestroyObject(object *metadata.Object) {
	f.calls = append(f.calls, "destroy")
	object.GPU = metadata.GPUHandles{}
}

func TestDrawFrameSkipsObjectsNotUploaded(t *testing.T) {
	backend := &fakeBackend{}
	r := New(backend)
	require.NoError(t, r.Initialize("vert", "frag"))

	uploaded := metadata.NewObject("a.obj", "a.obj")
	require.NoError(t, r.UploadObject(uploaded))
	pending := metadata.NewObject("b.obj", "b.obj")

	packet := &metadata.RenderPacket{Objects: []*metadata.Object{uploaded, pending, nil}}
	require.NoError(t, r.DrawFrame(packet))

	assert.Equal(t, []*metadata.Object{uploaded}, backend.drawn)
	assert.Equal(t, []string{"initialize", "upload", "begin", "uniforms", "draw", "end"}, backend.calls)
	assert.Same(t, &packet.Frame, backend.frame)
}

func TestDrawFrameRequiresInitialize(t *testing.T) {
	r := New(&fakeBackend{})
	assert.Error(t, r.DrawFrame(&metadata.RenderPacket{}))

	assert.Error(t, r.Initialize("", "frag"))
	assert.Error(t, r.DrawFrame(&metadata.RenderPacket{}))
}

func TestUploadObjectReplacesPreviousCopy(t *testing.T) {
	backend := &fakeBackend{}
	r := New(backend)
	object := metadata.NewObject("a.obj", "a.obj")

	require.NoError(t, r.UploadObject(object))
	require.NoError(t, r.UploadObject(object))
	assert.Equal(t, []string{"upload", "destroy", "upload"}, backend.calls)
	assert.Equal(t, uint32(2), object.GPU.VAO)

	r.DestroyObject(object)
	r.DestroyObject(object)
	assert.False(t, object.GPU.Uploaded())
	assert.Equal(t, []string{"upload", "destroy", "upload", "destroy"}, backend.calls)
}

func TestUploadObjectFailure(t *testing.T) {
	backend := &fakeBackend{uploadErr: errors.New("out of memory")}
	r := New(backend)
	object := metadata.NewObject("a.obj", "a.obj")

	assert.Error(t, r.UploadObject(object))
	assert.False(t, object.GPU.Uploaded())
}

func TestShutdownOnlyOnce(t *testing.T) {
	backend := &fakeBackend{}
	r := New(backend)
	require.NoError(t, r.Shutdown())
	require.NoError(t, r.Initialize("vert", "frag"))
	require.NoError(t, r.Shutdown())
	require.NoError(t, r.Shutdown())
	assert.Equal(t, []string{"initialize", "shutdown"}, backend.calls)
}
