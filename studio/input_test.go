package studio

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/systems"
)

func newWorld() *systems.WorldContext {
	return systems.NewWorldContext(core.DefaultConfig())
}

func TestApplyKeyMovesCamera(t *testing.T) {
	w := newWorld()
	cam := w.Speeds.Camera

	assert.True(t, applyKey(w, core.KEY_A, true))
	assert.True(t, applyKey(w, core.KEY_Q, true))
	assert.True(t, applyKey(w, core.KEY_W, true))
	assert.Equal(t, mgl32.Vec3{-cam, cam, -cam}, w.Camera.Offset)

	// releasing the opposite key of a pair still stops that axis
	applyKey(w, core.KEY_D, false)
	assert.Equal(t, mgl32.Vec3{0, cam, -cam}, w.Camera.Offset)

	applyKey(w, core.KEY_E, true)
	assert.Equal(t, -cam, w.Camera.Offset.Y())
}

func TestApplyKeyTransformsObject(t *testing.T) {
	w := newWorld()
	tra := w.Speeds.Translation

	applyKey(w, core.KEY_J, true)
	applyKey(w, core.KEY_I, true)
	applyKey(w, core.KEY_H, true)
	assert.Equal(t, mgl32.Vec3{-tra, tra, -tra}, w.Transform.Translate)

	applyKey(w, core.KEY_UP, true)
	applyKey(w, core.KEY_RIGHT, true)
	applyKey(w, core.KEY_COMMA, true)
	assert.Equal(t, mgl32.Vec3{-1, 1, 1}, w.Transform.Rotate)

	applyKey(w, core.KEY_DOWN, false)
	assert.Equal(t, mgl32.Vec3{0, 1, 1}, w.Transform.Rotate)
}

func TestApplyKeyScaleAndReset(t *testing.T) {
	w := newWorld()
	sca := w.Speeds.Scale

	applyKey(w, core.KEY_ADD, true)
	assert.Equal(t, 1+sca, w.Transform.Scale)
	applyKey(w, core.KEY_SUBTRACT, true)
	assert.Equal(t, 1-sca, w.Transform.Scale)
	applyKey(w, core.KEY_ADD, false)
	assert.Zero(t, w.Transform.Scale)

	applyKey(w, core.KEY_R, true)
	assert.True(t, w.Transform.Reset)
	// the reset is consumed by the next matrix update, not by the release
	applyKey(w, core.KEY_R, false)
	assert.True(t, w.Transform.Reset)
}

func TestApplyKeyUnbound(t *testing.T) {
	w := newWorld()
	assert.False(t, applyKey(w, core.KEY_ESCAPE, true))
	assert.False(t, applyKey(w, core.KEY_F1, true))
	assert.Equal(t, mgl32.Vec3{}, w.Camera.Offset)
}
