package engine

import (
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/platform"
)

// Game is the application run by the engine. Every callback runs on the
// thread owning the GL context.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

// Initialize runs once the window and its GL context exist.
type Initialize func(p *platform.Platform, metrics *core.Metrics) error
type Update func(deltaTime float64) error

// Render draws one frame; the engine swaps buffers afterwards.
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
