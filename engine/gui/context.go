package gui

import (
	"github.com/mmp/imgui-go/v4"

	"github.com/spaghettifunk/studio3d/engine/core"
)

// Platform is the window the GUI is drawn into.
type Platform interface {
	WindowSize() (int, int)
	FramebufferSize() (int, int)
	ClipboardText() (string, error)
	SetClipboardText(text string)
}

type clipboard struct {
	platform Platform
}

func (c clipboard) Text() (string, error) {
	return c.platform.ClipboardText()
}

func (c clipboard) SetText(text string) {
	c.platform.SetClipboardText(text)
}

// Context owns the imgui state. Input reaches it through the core input state
// and events, so it works with any platform that feeds those.
type Context struct {
	imguiContext *imgui.Context
	io           imgui.IO
	platform     Platform
	renderer     *Renderer

	displaySize     [2]float32
	framebufferSize [2]float32
}

// NewContext creates the imgui context and its renderer from the given shader
// sources. The GL context must be current.
func NewContext(p Platform, vertexSource, fragmentSource string) (*Context, error) {
	c := &Context{
		imguiContext: imgui.CreateContext(nil),
		platform:     p,
	}
	c.io = imgui.CurrentIO()
	c.io.SetIniFilename("")
	c.io.SetClipboard(clipboard{platform: p})
	imgui.StyleColorsDark()
	setKeyMapping(c.io)

	r, err := NewRenderer(vertexSource, fragmentSource)
	if err != nil {
		c.imguiContext.Destroy()
		return nil, err
	}
	c.renderer = r

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, c, c.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, c, c.onKey)
	core.EventRegister(core.EVENT_CODE_CHAR, c, c.onChar)
	return c, nil
}

// keyMapping binds the keys imgui navigates and edits with to core key codes.
func keyMapping() map[int]core.KeyCode {
	return map[int]core.KeyCode{
		imgui.KeyTab:        core.KEY_TAB,
		imgui.KeyLeftArrow:  core.KEY_LEFT,
		imgui.KeyRightArrow: core.KEY_RIGHT,
		imgui.KeyUpArrow:    core.KEY_UP,
		imgui.KeyDownArrow:  core.KEY_DOWN,
		imgui.KeyPageUp:     core.KEY_PRIOR,
		imgui.KeyPageDown:   core.KEY_NEXT,
		imgui.KeyHome:       core.KEY_HOME,
		imgui.KeyEnd:        core.KEY_END,
		imgui.KeyInsert:     core.KEY_INSERT,
		imgui.KeyDelete:     core.KEY_DELETE,
		imgui.KeyBackspace:  core.KEY_BACKSPACE,
		imgui.KeySpace:      core.KEY_SPACE,
		imgui.KeyEnter:      core.KEY_ENTER,
		imgui.KeyEscape:     core.KEY_ESCAPE,
		imgui.KeyA:          core.KEY_A,
		imgui.KeyC:          core.KEY_C,
		imgui.KeyV:          core.KEY_V,
		imgui.KeyX:          core.KEY_X,
		imgui.KeyY:          core.KEY_Y,
		imgui.KeyZ:          core.KEY_Z,
	}
}

func setKeyMapping(io imgui.IO) {
	for imguiKey, key := range keyMapping() {
		io.KeyMap(imguiKey, int(key))
	}
}

func (c *Context) onKey(code core.SystemEventCode, sender interface{}, listener interface{}, ctx core.EventContext) bool {
	e, ok := ctx.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	if code == core.EVENT_CODE_KEY_PRESSED {
		c.io.KeyPress(int(e.KeyCode))
	} else {
		c.io.KeyRelease(int(e.KeyCode))
	}
	// the studio bindings see the key too
	return false
}

func (c *Context) onChar(code core.SystemEventCode, sender interface{}, listener interface{}, ctx core.EventContext) bool {
	e, ok := ctx.Data.(*core.CharEvent)
	if !ok {
		return false
	}
	c.io.AddInputCharacters(string(e.Char))
	return true
}

// NewFrame feeds this frame's display and input state to imgui and starts a
// new imgui frame.
func (c *Context) NewFrame(deltaTime float64) {
	w, h := c.platform.WindowSize()
	fw, fh := c.platform.FramebufferSize()
	c.displaySize = [2]float32{float32(w), float32(h)}
	c.framebufferSize = [2]float32{float32(fw), float32(fh)}
	c.io.SetDisplaySize(imgui.Vec2{X: c.displaySize[0], Y: c.displaySize[1]})

	if deltaTime <= 0 {
		deltaTime = 1.0 / 60.0
	}
	c.io.SetDeltaTime(float32(deltaTime))

	x, y := core.InputGetMousePosition()
	c.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for _, button := range []core.Button{core.BUTTON_LEFT, core.BUTTON_RIGHT, core.BUTTON_MIDDLE} {
		c.io.SetMouseButtonDown(int(button), core.InputIsButtonDown(button))
	}
	if wheel := core.InputGetWheelDelta(); wheel != 0 {
		c.io.AddMouseWheelDelta(0, float32(wheel))
	}

	c.io.KeyCtrl(int(core.KEY_LCONTROL), int(core.KEY_RCONTROL))
	c.io.KeyShift(int(core.KEY_LSHIFT), int(core.KEY_RSHIFT))
	c.io.KeyAlt(int(core.KEY_LMENU), int(core.KEY_RMENU))
	c.io.KeySuper(int(core.KEY_LSUPER), int(core.KEY_RSUPER))

	imgui.NewFrame()
}

// Render finishes the imgui frame and draws it.
func (c *Context) Render() {
	imgui.Render()
	c.renderer.Render(c.displaySize, c.framebufferSize, imgui.RenderedDrawData())
}

func (c *Context) WantCaptureMouse() bool {
	return c.io.WantCaptureMouse()
}

func (c *Context) WantCaptureKeyboard() bool {
	return c.io.WantCaptureKeyboard()
}

// AnyWindowFocused reports whether a GUI window holds the focus.
func (c *Context) AnyWindowFocused() bool {
	return imgui.IsWindowFocusedV(imgui.FocusedFlagsAnyWindow)
}

func (c *Context) DisplaySize() imgui.Vec2 {
	return imgui.Vec2{X: c.displaySize[0], Y: c.displaySize[1]}
}

func (c *Context) SetClipboardText(text string) {
	c.platform.SetClipboardText(text)
}

func (c *Context) Shutdown() {
	core.EventUnregister(core.EVENT_CODE_KEY_PRESSED, c)
	core.EventUnregister(core.EVENT_CODE_KEY_RELEASED, c)
	core.EventUnregister(core.EVENT_CODE_CHAR, c)
	if c.renderer != nil {
		c.renderer.Dispose()
		c.renderer = nil
	}
	if c.imguiContext != nil {
		c.imguiContext.Destroy()
		c.imguiContext = nil
	}
}
