package studio

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/systems"
)

// axis pairs: pressing either key sets the axis, releasing either clears it.
type binding struct {
	axis int
	sign float32
}

var cameraKeys = map[core.KeyCode]binding{
	core.KEY_A: {0, -1},
	core.KEY_D: {0, 1},
	core.KEY_Q: {1, 1},
	core.KEY_E: {1, -1},
	core.KEY_W: {2, -1},
	core.KEY_S: {2, 1},
}

var rotationKeys = map[core.KeyCode]binding{
	core.KEY_UP:     {0, -1},
	core.KEY_DOWN:   {0, 1},
	core.KEY_LEFT:   {1, -1},
	core.KEY_RIGHT:  {1, 1},
	core.KEY_COMMA:  {2, 1},
	core.KEY_PERIOD: {2, -1},
}

var translationKeys = map[core.KeyCode]binding{
	core.KEY_J: {0, -1},
	core.KEY_L: {0, 1},
	core.KEY_I: {1, 1},
	core.KEY_K: {1, -1},
	core.KEY_Y: {2, 1},
	core.KEY_H: {2, -1},
}

// applyKey updates the camera and transform input of world for a key press or
// release and reports whether the key is bound. The values stay in place
// while the key is held, so the motion repeats every frame.
func applyKey(world *systems.WorldContext, key core.KeyCode, pressed bool) bool {
	if b, ok := cameraKeys[key]; ok {
		setAxis(&world.Camera.Offset, b, world.Speeds.Camera, pressed)
		return true
	}
	if b, ok := rotationKeys[key]; ok {
		setAxis(&world.Transform.Rotate, b, 1, pressed)
		return true
	}
	if b, ok := translationKeys[key]; ok {
		setAxis(&world.Transform.Translate, b, world.Speeds.Translation, pressed)
		return true
	}

	switch key {
	case core.KEY_ADD, core.KEY_SUBTRACT:
		world.Transform.Scale = 0
		if pressed {
			if key == core.KEY_ADD {
				world.Transform.Scale = 1 + world.Speeds.Scale
			} else {
				world.Transform.Scale = 1 - world.Speeds.Scale
			}
		}
	case core.KEY_R:
		if pressed {
			world.Transform.Reset = true
		}
	default:
		return false
	}
	return true
}

func setAxis(v *mgl32.Vec3, b binding, speed float32, pressed bool) {
	if pressed {
		v[b.axis] = b.sign * speed
		return
	}
	v[b.axis] = 0
}
