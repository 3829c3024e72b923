package metadata

import "github.com/go-gl/mathgl/mgl32"

// LightSource is a single point light. The defaults are kept so the GUI can
// restore them.
type LightSource struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4

	DefaultPosition mgl32.Vec4
	DefaultColor    mgl32.Vec4
}

func NewLightSource(position, color mgl32.Vec4) LightSource {
	return LightSource{
		Position:        position,
		Color:           color,
		DefaultPosition: position,
		DefaultColor:    color,
	}
}

func (l *LightSource) ResetPosition() {
	l.Position = l.DefaultPosition
}

func (l *LightSource) ResetColor() {
	l.Color = l.DefaultColor
}
