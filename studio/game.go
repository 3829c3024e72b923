package studio

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine"
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/gui"
	"github.com/spaghettifunk/studio3d/engine/platform"
	"github.com/spaghettifunk/studio3d/engine/renderer"
	"github.com/spaghettifunk/studio3d/engine/renderer/opengl"
	"github.com/spaghettifunk/studio3d/engine/systems"
)

// GuiShader is the name of the shader pair the controls are drawn with.
const GuiShader = "imgui"

type Studio struct {
	*engine.Game
}

type studioState struct {
	config *core.Config
	// objects loaded right after start up
	startup []string

	platform *platform.Platform
	metrics  *core.Metrics
	renderer *renderer.Renderer
	systems  *systems.SystemManager
	gui      *gui.Context
	console  *gui.Console
	windows  *gui.WindowState

	width  uint32
	height uint32
}

// New wires the studio callbacks for the engine. The files in objects are
// loaded once the window is up.
func New(cfg *core.Config, objects []string) *Studio {
	s := &Studio{
		Game: &engine.Game{
			ApplicationConfig: engine.NewApplicationConfig(cfg),
			State: &studioState{
				config:  cfg,
				startup: objects,
				console: gui.NewConsole(cfg.Log.ConsoleLines),
				windows: gui.NewWindowState(cfg.Paths.Objects, cfg.Paths.Textures),
			},
		},
	}

	s.FnInitialize = s.Initialize
	s.FnUpdate = s.Update
	s.FnRender = s.Render
	s.FnOnResize = s.OnResize
	s.FnShutdown = s.Shutdown

	return s
}

func (s *Studio) state() *studioState {
	return s.State.(*studioState)
}

func (s *Studio) Initialize(p *platform.Platform, metrics *core.Metrics) error {
	core.LogDebug("Studio Initialize fn....")
	state := s.state()
	state.platform = p
	state.metrics = metrics

	w, h := p.FramebufferSize()
	state.renderer = renderer.New(opengl.New(w, h))

	sm, err := systems.NewSystemManager(state.config, state.renderer, state.console)
	if err != nil {
		return err
	}
	state.systems = sm
	if err := sm.Initialize(); err != nil {
		return fmt.Errorf("failed to build the %s shader: %w", systems.PhongShader, err)
	}

	src, err := sm.LoadShader(GuiShader)
	if err != nil {
		return err
	}
	ctx, err := gui.NewContext(p, src.Vertex, src.Fragment)
	if err != nil {
		return fmt.Errorf("failed to build the %s shader: %w", GuiShader, err)
	}
	state.gui = ctx

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, s, s.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, s, s.onKey)

	for _, path := range state.startup {
		// failures are reported in the log window
		_ = sm.Scene.LoadObject(path)
	}
	state.console.Addf("%s ready", gui.Version)
	return nil
}

func (s *Studio) Update(deltaTime float64) error {
	s.state().systems.Update()
	return nil
}

func (s *Studio) Render(deltaTime float64) error {
	state := s.state()

	state.gui.NewFrame(deltaTime)
	s.handleMouse()
	s.drawGui()

	aspect := float32(1)
	if state.height > 0 {
		aspect = float32(state.width) / float32(state.height)
	}
	if err := state.systems.DrawFrame(deltaTime, aspect); err != nil {
		return err
	}

	state.gui.Render()
	return nil
}

// handleMouse orbits the camera while the left button drags over the scene.
func (s *Studio) handleMouse() {
	state := s.state()
	camera := state.systems.World.Camera
	if core.InputIsButtonDown(core.BUTTON_LEFT) && !state.gui.AnyWindowFocused() && !state.gui.WantCaptureMouse() {
		dx, dy := core.InputGetMouseDelta()
		camera.RotOffset = mgl32.Vec3{float32(-dx), float32(-dy), 0}
		return
	}
	camera.RotOffset = mgl32.Vec3{}
}

func (s *Studio) drawGui() {
	state := s.state()
	world := state.systems.World
	scene := state.systems.Scene
	windows := state.windows

	gui.MainMenuBar(windows, world, scene)
	gui.SceneWindow(&windows.ShowScene, world, scene)

	if object := world.SelectedObject(); object != nil {
		gui.ObjectTransformWindow(&windows.ShowObjectTransform, object, &world.Speeds)
		gui.ObjectMaterialWindow(&windows.ShowObjectMaterial, object)
		gui.ObjectInfoWindow(&windows.ShowObjectInfo, object)
	}
	gui.CameraWindow(&windows.ShowCamera, world.Camera)
	gui.LightSourcesWindow(&windows.ShowLights, world)
	gui.KeyReferenceWindow(&windows.ShowKeyReference)
	gui.StudioOverlay(windows, world, state.metrics, state.gui.DisplaySize())

	if path := gui.FileChooserWindow(windows.ObjectChooser); path != "" {
		_ = scene.LoadObject(path)
	}
	if path := gui.FileChooserWindow(windows.TextureChooser); path != "" {
		_ = scene.LoadTexture(path)
	}

	gui.SettingsWindow(&windows.ShowSettings, &world.Speeds)
	gui.LogWindow(&windows.ShowLog, state.console, state.gui)
}

func (s *Studio) OnResize(width uint32, height uint32) error {
	state := s.state()
	state.width = width
	state.height = height
	if state.renderer != nil {
		state.renderer.OnResize(int(width), int(height))
	}
	return nil
}

func (s *Studio) Shutdown() error {
	state := s.state()
	core.EventUnregister(core.EVENT_CODE_KEY_PRESSED, s)
	core.EventUnregister(core.EVENT_CODE_KEY_RELEASED, s)

	if state.gui != nil {
		state.gui.Shutdown()
	}
	if state.systems != nil {
		return state.systems.Shutdown()
	}
	return nil
}

func (s *Studio) onKey(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	e, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	state := s.state()
	world := state.systems.World
	pressed := code == core.EVENT_CODE_KEY_PRESSED

	// releases always go through so a held motion cannot get stuck
	if pressed && state.gui.WantCaptureKeyboard() {
		return false
	}
	if pressed && state.windows.ToggleForKey(e.KeyCode, len(world.Objects) > 0) {
		return true
	}
	if applyKey(world, e.KeyCode, pressed) {
		return true
	}
	if pressed {
		core.LogDebug("'%d' key pressed in window.", e.KeyCode)
	}
	return false
}
