package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

func newWorld() *WorldContext {
	return NewWorldContext(core.DefaultConfig())
}

func TestNewWorldContextFromConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	w := NewWorldContext(cfg)

	assert.Equal(t, mgl32.Vec3(cfg.Camera.Eye), w.Camera.Eye)
	assert.Equal(t, mgl32.Vec4(cfg.Light.Position), w.Light.Position)
	assert.Equal(t, w.Ambient, w.DefaultAmbient)
	assert.Equal(t, cfg.Speeds.Rotation, w.Speeds.Rotation)
	assert.Nil(t, w.SelectedObject())
}

func TestSelectObject(t *testing.T) {
	w := newWorld()
	assert.ErrorIs(t, w.SelectObject(0), core.ErrNoObjectSelected)

	a := metadata.NewObject("a.obj", "/a.obj")
	b := metadata.NewObject("b.obj", "/b.obj")
	w.AddObject(a)
	assert.Equal(t, 1, w.AddObject(b))

	require.NoError(t, w.SelectObject(1))
	assert.Same(t, b, w.SelectedObject())
	assert.ErrorIs(t, w.SelectObject(2), core.ErrNoObjectSelected)
	assert.ErrorIs(t, w.SelectObject(-1), core.ErrNoObjectSelected)
	assert.Same(t, b, w.SelectedObject())
	assert.Equal(t, []int{0}, w.FindObjects("/a.obj"))
}

func TestUpdateMatricesTransformsSelectedOnly(t *testing.T) {
	w := newWorld()
	a := metadata.NewObject("a.obj", "")
	b := metadata.NewObject("b.obj", "")
	w.AddObject(a)
	w.AddObject(b)
	require.NoError(t, w.SelectObject(1))

	w.Transform.Translate = mgl32.Vec3{0.1, 0, 0}
	w.UpdateMatrices(1)

	assert.True(t, a.Model.IsIdentity())
	assert.True(t, b.Model.Matrix().ApproxEqual(mgl32.Translate3D(0.1, 0, 0)))

	w.Transform = TransformInput{Reset: true}
	w.UpdateMatrices(1)
	assert.True(t, b.Model.IsIdentity())
	assert.False(t, w.Transform.Reset)
}

func TestUpdateMatricesWithoutObjects(t *testing.T) {
	w := newWorld()
	w.Transform.Reset = true
	w.Camera.Offset = mgl32.Vec3{0, 0, -1}
	w.UpdateMatrices(4.0 / 3.0)

	assert.False(t, w.Transform.Reset)
	assert.True(t, w.Camera.Eye.ApproxEqual(mgl32.Vec3{0, 0, 1}))
	assert.NotEqual(t, mgl32.Ident4(), w.Camera.Projection)
}

func TestRemoveAndClearObjects(t *testing.T) {
	w := newWorld()
	for _, name := range []string{"a", "b", "c"} {
		w.AddObject(metadata.NewObject(name, ""))
	}
	require.NoError(t, w.SelectObject(2))

	removed := w.RemoveObject(2)
	assert.Equal(t, "c", removed.FileName)
	assert.Equal(t, 1, w.Selected)
	assert.Nil(t, w.RemoveObject(5))

	w.ClearObjects()
	assert.Empty(t, w.Objects)
	assert.Equal(t, 0, w.Selected)
	assert.Nil(t, w.RemoveObject(0))
}

func TestRenderPacket(t *testing.T) {
	w := newWorld()
	w.AddObject(metadata.NewObject("a", ""))
	w.Light.Position = mgl32.Vec4{1, 2, 3, 0}
	w.Ambient = mgl32.Vec4{0.5, 0.5, 0.5, 1}

	packet := w.RenderPacket(0.016)
	assert.Equal(t, 0.016, packet.DeltaTime)
	assert.Equal(t, w.Camera.Eye, packet.Frame.CameraPosition)
	assert.Equal(t, w.Light.Position, packet.Frame.LightPosition)
	assert.Equal(t, w.Ambient, packet.Frame.Ambient)
	assert.Len(t, packet.Objects, 1)

	w.ResetAmbient()
	assert.Equal(t, w.DefaultAmbient, w.Ambient)
}
