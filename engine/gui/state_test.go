package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/studio3d/engine/core"
)

func TestToggleForKey(t *testing.T) {
	s := NewWindowState("", "")
	assert.True(t, s.ShowOverlay)

	assert.True(t, s.ToggleForKey(core.KEY_F1, false))
	assert.True(t, s.ShowScene)
	assert.True(t, s.ToggleForKey(core.KEY_F1, false))
	assert.False(t, s.ShowScene)

	assert.True(t, s.ToggleForKey(core.KEY_F9, false))
	assert.True(t, s.ShowLog)
	assert.True(t, s.ToggleForKey(core.KEY_F10, false))
	assert.True(t, s.ShowKeyReference)

	assert.False(t, s.ToggleForKey(core.KEY_F7, true))
	assert.False(t, s.ToggleForKey(core.KEY_A, true))
}

func TestObjectWindowsNeedObjects(t *testing.T) {
	s := NewWindowState("", "")

	s.ToggleForKey(core.KEY_F2, false)
	s.ToggleForKey(core.KEY_F3, false)
	s.ToggleForKey(core.KEY_F4, false)
	assert.False(t, s.ShowObjectTransform)
	assert.False(t, s.ShowObjectMaterial)
	assert.False(t, s.ShowObjectInfo)

	s.ToggleForKey(core.KEY_F2, true)
	s.ToggleForKey(core.KEY_F3, true)
	s.ToggleForKey(core.KEY_F4, true)
	assert.True(t, s.ShowObjectTransform)
	assert.True(t, s.ShowObjectMaterial)
	assert.True(t, s.ShowObjectInfo)

	s.CloseObjectWindows()
	assert.False(t, s.ShowObjectTransform)
	assert.False(t, s.ShowObjectMaterial)
	assert.False(t, s.ShowObjectInfo)
}

func TestNewWindowStateChoosers(t *testing.T) {
	s := NewWindowState("objs", "texs")
	assert.Equal(t, "objs", s.ObjectChooser.Dir)
	assert.True(t, s.ObjectChooser.Matches("teapot.OBJ"))
	assert.False(t, s.ObjectChooser.Matches("teapot.png"))
	assert.True(t, s.TextureChooser.Matches("brick.png"))
	assert.False(t, s.TextureChooser.Matches("brick.obj"))
}
