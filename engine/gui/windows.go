package gui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mmp/imgui-go/v4"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/components"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
	"github.com/spaghettifunk/studio3d/engine/systems"
)

const Version = "3D Studio v1.0"

// SphereSubdivisions is the detail of spheres added from the menu.
const SphereSubdivisions = 3

// SceneActions are the scene changes the windows can request.
type SceneActions interface {
	LoadObject(path string) error
	LoadTexture(path string) error
	AddSphere(subdivisions int) error
	RemoveSelected() error
	ClearScene()
}

// ClipboardWriter receives copied text.
type ClipboardWriter interface {
	SetClipboardText(text string)
}

const clamp = imgui.SliderFlagsAlwaysClamp

const labelColumn float32 = 200

func labelValue(label, value string) {
	imgui.Text(label)
	imgui.SameLineV(labelColumn, -1)
	imgui.Text(value)
}

func sectionHeader(title string) {
	imgui.Separator()
	imgui.Text(title)
}

func vec3Readout(v mgl32.Vec3, names [3]string) {
	imgui.Text(fmt.Sprintf("%s: %.3f", names[0], v[0]))
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%s: %.3f", names[1], v[1]))
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%s: %.3f", names[2], v[2]))
}

var xyz = [3]string{"X", "Y", "Z"}
var rgb = [3]string{"R", "G", "B"}

// MainMenuBar draws the menu at the top of the window. Entries that need an
// object are disabled while the scene is empty.
func MainMenuBar(state *WindowState, world *systems.WorldContext, scene SceneActions) {
	if !imgui.BeginMainMenuBar() {
		aboutPopupModal(&state.AboutOpen)
		return
	}
	hasObjects := len(world.Objects) > 0

	if imgui.BeginMenu("File") {
		if imgui.MenuItem("Load New Object") {
			state.ObjectChooser.Show()
		}
		if imgui.MenuItemV("Load New Texture", "", false, hasObjects) {
			state.TextureChooser.Show()
		}
		if imgui.MenuItem("Add Sphere") {
			_ = scene.AddSphere(SphereSubdivisions)
		}
		if imgui.MenuItemV("Remove Selected Object", "", false, hasObjects) {
			_ = scene.RemoveSelected()
			if len(world.Objects) == 0 {
				state.CloseObjectWindows()
			}
		}
		if imgui.MenuItemV("Reset Scene", "", false, hasObjects) {
			scene.ClearScene()
			state.CloseObjectWindows()
		}
		if imgui.MenuItemV("Settings", "", state.ShowSettings, true) {
			state.ShowSettings = !state.ShowSettings
		}
		imgui.Separator()
		if imgui.MenuItem("Quit") {
			core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, nil, core.EventContext{})
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("View") {
		toggleItem("Loaded Objects", "F1", &state.ShowScene, true)
		imgui.Separator()
		toggleItem("Object Transformation", "F2", &state.ShowObjectTransform, hasObjects)
		toggleItem("Object Material", "F3", &state.ShowObjectMaterial, hasObjects)
		toggleItem("Object Information", "F4", &state.ShowObjectInfo, hasObjects)
		imgui.Separator()
		toggleItem("Camera Information", "F5", &state.ShowCamera, true)
		toggleItem("Light Sources", "F6", &state.ShowLights, true)
		imgui.Separator()
		toggleItem("Studio Overlay", "", &state.ShowOverlay, true)
		toggleItem("Log Window", "F9", &state.ShowLog, true)
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Help") {
		toggleItem("Keyboard Shortcuts Reference", "F10", &state.ShowKeyReference, true)
		imgui.Separator()
		if imgui.MenuItem("About") {
			state.AboutOpen = true
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()

	aboutPopupModal(&state.AboutOpen)
}

func toggleItem(label, shortcut string, value *bool, enabled bool) {
	if imgui.MenuItemV(label, shortcut, *value, enabled) {
		*value = !*value
	}
}

func aboutPopupModal(open *bool) {
	if !*open {
		return
	}
	imgui.OpenPopup("About")
	if imgui.BeginPopupModalV("About", open, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text(Version)
		imgui.Separator()
		imgui.Text("Viewer and editor for Wavefront OBJ models.")
		imgui.Text("Rendered with OpenGL 4.1, controls drawn with Dear ImGui.")
		imgui.Separator()
		if imgui.ButtonV("OK", imgui.Vec2{X: 120}) {
			*open = false
			imgui.CloseCurrentPopup()
		}
		imgui.SetItemDefaultFocus()
		imgui.EndPopup()
	}
}

// SceneWindow lists the loaded objects and lets the user pick the selected one.
func SceneWindow(open *bool, world *systems.WorldContext, scene SceneActions) {
	if !*open {
		return
	}
	if imgui.BeginV("Scene", open, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text("Current Loaded Objects:")
		imgui.Separator()
		if len(world.Objects) == 0 {
			imgui.Text("No objects currently loaded!")
		}
		for i, object := range world.Objects {
			imgui.Text(object.FileName)
			imgui.SameLineV(labelColumn, -1)
			if i == world.Selected {
				imgui.Text("(Selected)")
				continue
			}
			if imgui.Button(fmt.Sprintf("Select##%d", i)) {
				_ = world.SelectObject(i)
			}
		}
		imgui.Separator()
		if len(world.Objects) > 0 && imgui.Button("Remove Selected") {
			_ = scene.RemoveSelected()
		}
	}
	imgui.End()
}

// ObjectInfoWindow shows the counters of the selected object and its display
// toggles.
func ObjectInfoWindow(open *bool, object *metadata.Object) {
	if !*open || object == nil {
		return
	}
	if imgui.BeginV("Object Information", open, imgui.WindowFlagsAlwaysAutoResize) {
		info := &object.Info
		imgui.Text("Object File Name: " + object.FileName)
		if object.FilePath != "" {
			imgui.Text("Path: " + object.FilePath)
		}
		imgui.Separator()
		labelValue("Shapes:", fmt.Sprint(info.NShapes))
		labelValue("Vertices:", fmt.Sprint(info.NVertices))
		labelValue("Indices:", fmt.Sprint(info.NIndices))
		labelValue("Faces:", fmt.Sprint(info.NFaces))
		labelValue("Normals:", fmt.Sprint(info.NVertexNormals))
		labelValue("Texture Coordinates:", fmt.Sprint(info.NTexCoords))
		labelValue("Materials:", fmt.Sprint(len(object.Materials)))
		imgui.Checkbox("Wireframe Mode", &info.ShowWireframe)
		if info.HasTexture {
			imgui.Checkbox("Show Texture", &info.ShowTexture)
			if object.Texture != nil {
				imgui.Text(fmt.Sprintf("Texture: %s (%dx%d)", object.Texture.Name, object.Texture.Width, object.Texture.Height))
			}
		} else {
			imgui.Text("No texture loaded")
		}
	}
	imgui.End()
}

// ObjectTransformWindow shows where the selected object sits and steps its
// model matrix with the same speeds the keyboard uses.
func ObjectTransformWindow(open *bool, object *metadata.Object, speeds *systems.Speeds) {
	if !*open || object == nil {
		return
	}
	if imgui.BeginV("Object Transformation", open, imgui.WindowFlagsAlwaysAutoResize) {
		model := &object.Model

		sectionHeader("Position")
		vec3Readout(model.Position(), xyz)
		sectionHeader("Scale")
		vec3Readout(model.ScaleFactors(), xyz)

		sectionHeader("Translate")
		for i, name := range xyz {
			step := mgl32.Vec3{}
			step[i] = speeds.Translation
			if imgui.Button("-" + name + "##translate") {
				model.Translate(step.Mul(-1))
			}
			imgui.SameLine()
			if imgui.Button("+" + name + "##translate") {
				model.Translate(step)
			}
			if i < len(xyz)-1 {
				imgui.SameLine()
			}
		}

		sectionHeader("Rotate")
		for i, name := range xyz {
			axis := mgl32.Vec3{}
			axis[i] = 1
			if imgui.Button("-" + name + "##rotate") {
				model.Rotate(axis, -speeds.Rotation)
			}
			imgui.SameLine()
			if imgui.Button("+" + name + "##rotate") {
				model.Rotate(axis, speeds.Rotation)
			}
			if i < len(xyz)-1 {
				imgui.SameLine()
			}
		}

		sectionHeader("Uniform Scale")
		if imgui.Button("Shrink") {
			model.Scale(1 - speeds.Scale)
		}
		imgui.SameLine()
		if imgui.Button("Grow") {
			model.Scale(1 + speeds.Scale)
		}

		imgui.Separator()
		if imgui.Button("Reset Transformations") {
			model.Reset()
		}
	}
	imgui.End()
}

// ObjectMaterialWindow edits the shininess of the selected object and its
// default material. The coefficients of materials read from an .mtl file are
// only shown; they are edited by switching to the default material.
func ObjectMaterialWindow(open *bool, object *metadata.Object) {
	if !*open || object == nil {
		return
	}
	if imgui.BeginV("Object Material", open, imgui.WindowFlagsAlwaysAutoResize) {
		def := &object.DefaultMaterial

		sectionHeader("Shininess")
		if imgui.SliderFloatV("Alpha", &def.Shininess, metadata.MinShininess, metadata.MaxShininess, "%.2f", clamp) {
			for i := range object.Materials {
				object.Materials[i].Shininess = def.Shininess
			}
		}

		if object.Info.UseDefaultMaterial {
			sectionHeader("Ambient Light")
			imgui.SliderFloat3V("ka", (*[3]float32)(&def.Ambient), 0, 1, "%.2f", clamp)
			sectionHeader("Diffuse Light")
			imgui.SliderFloat3V("kd", (*[3]float32)(&def.Diffuse), 0, 1, "%.2f", clamp)
			sectionHeader("Specular Light")
			imgui.SliderFloat3V("ks", (*[3]float32)(&def.Specular), 0, 1, "%.2f", clamp)
		} else {
			sectionHeader("Materials")
			for _, m := range object.Materials {
				imgui.Text(m.Name)
				vec3Readout(m.Diffuse, rgb)
			}
		}

		if object.Info.HasMaterials {
			imgui.Separator()
			imgui.Checkbox("Use default material", &object.Info.UseDefaultMaterial)
		}
	}
	imgui.End()
}

var projectionNames = [2]string{"Perspective", "Parallel"}

// CameraWindow shows the camera position and the projection settings.
func CameraWindow(open *bool, camera *components.Camera) {
	if !*open {
		return
	}
	if imgui.BeginV("Camera", open, imgui.WindowFlagsAlwaysAutoResize) {
		sectionHeader("Positions")
		imgui.Text("Camera Position (eye):")
		vec3Readout(camera.Eye, xyz)
		imgui.Text("Reference Point (ref):")
		vec3Readout(camera.Ref, xyz)
		if imgui.Button("Reset Camera Position") {
			camera.ResetEye()
		}
		if imgui.Button("Reset Reference Point") {
			camera.ResetRef()
		}

		sectionHeader("Projection")
		current := 1
		if camera.Perspective {
			current = 0
		}
		if imgui.BeginCombo("Projection type", projectionNames[current]) {
			for i, name := range projectionNames {
				if imgui.SelectableV(name, i == current, 0, imgui.Vec2{}) {
					camera.Perspective = i == 0
				}
			}
			imgui.EndCombo()
		}
		if camera.Perspective {
			imgui.SliderFloatV("Field of view", &camera.FOV, 20, 160, "%1.0f", clamp)
			imgui.SliderFloatV("Far", &camera.Far, 1, 1000, "%1.0f", clamp)
		} else {
			imgui.SliderFloatV("Top", &camera.Top, 1, 100, "%.1f", clamp)
			imgui.SliderFloatV("Far", &camera.Far, 1, 1000, "%1.0f", clamp)
			imgui.SliderFloatV("Oblique scale", &camera.ObliqueScale, 0, 1, "%.1f", clamp)
			degrees := mgl32.RadToDeg(camera.ObliqueAngle)
			if imgui.SliderFloatV("Oblique angle", &degrees, 15, 75, "%1.0f deg", clamp) {
				camera.ObliqueAngle = mgl32.DegToRad(degrees)
			}
		}
	}
	imgui.End()
}

// LightSourcesWindow edits the light position and color and the ambient term.
func LightSourcesWindow(open *bool, world *systems.WorldContext) {
	if !*open {
		return
	}
	if imgui.BeginV("Light Sources", open, imgui.WindowFlagsAlwaysAutoResize) {
		light := &world.Light

		sectionHeader("Position")
		position := light.Position.Vec3()
		if imgui.SliderFloat3V("Position", (*[3]float32)(&position), -10, 10, "%.2f", clamp) {
			light.Position = position.Vec4(light.Position.W())
		}
		if imgui.Button("Reset Light Position") {
			light.ResetPosition()
		}

		sectionHeader("Color")
		color := light.Color.Vec3()
		if imgui.SliderFloat3V("Color", (*[3]float32)(&color), 0, 1, "%.2f", clamp) {
			light.Color = color.Vec4(light.Color.W())
		}
		if imgui.Button("Reset Light Color") {
			light.ResetColor()
		}

		sectionHeader("Ambient Light Intensity")
		ambient := world.Ambient.Vec3()
		if imgui.SliderFloat3V("Ambient", (*[3]float32)(&ambient), 0, 1, "%.2f", clamp) {
			world.Ambient = ambient.Vec4(world.Ambient.W())
		}
		if imgui.Button("Reset Ambient Intensity") {
			world.ResetAmbient()
		}
	}
	imgui.End()
}

type shortcut struct {
	action string
	key    string
}

var shortcutSections = []struct {
	title string
	keys  []shortcut
}{
	{"Camera Controls", []shortcut{
		{"Move camera up:", "'Q'"},
		{"Move camera down:", "'E'"},
		{"Move camera left:", "'A'"},
		{"Move camera right:", "'D'"},
		{"Move camera forward:", "'W'"},
		{"Move camera backward:", "'S'"},
		{"Rotate camera:", "Left mouse drag"},
	}},
	{"Translations", []shortcut{
		{"Move object up:", "'I'"},
		{"Move object down:", "'K'"},
		{"Move object left:", "'J'"},
		{"Move object right:", "'L'"},
		{"Move object forward:", "'Y'"},
		{"Move object backward:", "'H'"},
	}},
	{"Rotations", []shortcut{
		{"Rotate object up:", "'Arrow Up'"},
		{"Rotate object down:", "'Arrow Down'"},
		{"Rotate object left:", "'Arrow Left'"},
		{"Rotate object right:", "'Arrow Right'"},
		{"Rotate object left on z-axis:", "'COMMA'"},
		{"Rotate object right on z-axis:", "'PERIOD'"},
	}},
	{"Scaling", []shortcut{
		{"Scale object up:", "'Keypad +'"},
		{"Scale object down:", "'Keypad -'"},
	}},
	{"Miscellaneous", []shortcut{
		{"Reset object transformations:", "'R'"},
	}},
	{"Window Shortcuts", []shortcut{
		{"Loaded Objects:", "'F1'"},
		{"Object Transformation:", "'F2'"},
		{"Object Material:", "'F3'"},
		{"Object Information:", "'F4'"},
		{"Camera Information:", "'F5'"},
		{"Light Sources:", "'F6'"},
		{"Log Window:", "'F9'"},
		{"Keyboard Shortcuts:", "'F10'"},
	}},
}

func KeyReferenceWindow(open *bool) {
	if !*open {
		return
	}
	if imgui.BeginV("Keyboard Shortcuts", open, 0) {
		for _, section := range shortcutSections {
			sectionHeader(section.title)
			for _, s := range section.keys {
				imgui.Text(s.action)
				imgui.SameLineV(250, -1)
				imgui.Text(s.key)
			}
		}
	}
	imgui.End()
}

const overlayPad float32 = 10

// StudioOverlay is the small transparent window with the version, the frame
// rate and the loaded objects. Its corner is picked from a context menu.
func StudioOverlay(state *WindowState, world *systems.WorldContext, metrics *core.Metrics, displaySize imgui.Vec2) {
	if !state.ShowOverlay {
		return
	}
	top := imgui.FrameHeight()
	corner := state.OverlayCorner
	pos := imgui.Vec2{X: overlayPad, Y: top + overlayPad}
	pivot := imgui.Vec2{}
	if corner&1 != 0 {
		pos.X = displaySize.X - overlayPad
		pivot.X = 1
	}
	if corner&2 != 0 {
		pos.Y = displaySize.Y - overlayPad
		pivot.Y = 1
	}
	imgui.SetNextWindowPosV(pos, imgui.ConditionAlways, pivot)
	imgui.SetNextWindowBgAlpha(0.35)

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav | imgui.WindowFlagsNoMove
	if imgui.BeginV("Overlay", &state.ShowOverlay, flags) {
		imgui.Text(Version)
		imgui.Separator()
		if metrics != nil {
			imgui.Text(fmt.Sprintf("%.1f FPS (%.2f ms)", metrics.FPS(), metrics.FrameTime()))
		}
		if len(world.Objects) > 0 {
			imgui.Text("Loaded object(s):")
			for i, object := range world.Objects {
				if i == world.Selected {
					imgui.Text(object.FileName + " (Selected)")
				} else {
					imgui.Text(object.FileName)
				}
			}
		}
		if imgui.BeginPopupContextWindow() {
			for i, name := range []string{"Top-left (default)", "Top-right", "Bottom-left", "Bottom-right"} {
				if imgui.MenuItemV(name, "", corner == i, true) {
					state.OverlayCorner = i
				}
			}
			if imgui.MenuItem("Close") {
				state.ShowOverlay = false
			}
			imgui.EndPopup()
		}
	}
	imgui.End()
}

// LogWindow shows the console history.
func LogWindow(open *bool, console *Console, clip ClipboardWriter) {
	if !*open {
		return
	}
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 300}, imgui.ConditionFirstUseEver)
	if imgui.BeginV("Studio Log", open, 0) {
		clearLog := imgui.Button("Clear")
		imgui.SameLine()
		copied := imgui.Button("Copy")
		imgui.SameLine()
		imgui.Checkbox("Auto-scroll", &console.AutoScroll)
		imgui.Separator()

		if clearLog {
			console.Clear()
		}
		if copied && clip != nil {
			clip.SetClipboardText(console.Text())
		}

		if imgui.BeginChildV("scrolling", imgui.Vec2{}, false, imgui.WindowFlagsHorizontalScrollbar) {
			imgui.PushStyleVarVec2(imgui.StyleVarItemSpacing, imgui.Vec2{})
			for _, line := range console.Lines() {
				imgui.Text(line)
			}
			imgui.PopStyleVar()
			if console.AutoScroll && imgui.ScrollY() >= imgui.ScrollMaxY() {
				imgui.SetScrollHereY(1)
			}
		}
		imgui.EndChild()
	}
	imgui.End()
}

// SettingsWindow edits the per-frame speeds of the keyboard controls.
func SettingsWindow(open *bool, speeds *systems.Speeds) {
	if !*open {
		return
	}
	if imgui.BeginV("Settings", open, 0) {
		sectionHeader("Camera Settings")
		imgui.Text("Camera Speed")
		imgui.SliderFloatV("##camera", &speeds.Camera, 0, 1, "%.2f", clamp)
		sectionHeader("Transformation Settings")
		imgui.Text("Translation Speed")
		imgui.SliderFloatV("##translation", &speeds.Translation, 0, 1, "%.2f", clamp)
		imgui.Text("Rotation Speed")
		imgui.SliderFloatV("##rotation", &speeds.Rotation, 0, 10, "%.2f", clamp)
		imgui.Text("Scaling Speed")
		imgui.SliderFloatV("##scale", &speeds.Scale, 0, 1, "%.2f", clamp)
	}
	imgui.End()
}

// FileChooserWindow draws an open chooser and returns the path the user
// picked, or "" while nothing has been picked.
func FileChooserWindow(fc *FileChooser) string {
	if !fc.Open {
		return ""
	}
	chosen := ""
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 480, Y: 360}, imgui.ConditionFirstUseEver)
	if imgui.BeginV(fc.Title, &fc.Open, 0) {
		imgui.Text(fc.absDir())
		imgui.Separator()
		if err := fc.Err(); err != nil {
			imgui.Text(err.Error())
		}

		clicked, doubleClicked := -1, false
		if imgui.BeginChildV("entries", imgui.Vec2{Y: -32}, true, 0) {
			for i, entry := range fc.Entries() {
				label := entry.Name
				if entry.IsDir {
					label += "/"
				}
				if imgui.SelectableV(label, i == fc.Selected(), imgui.SelectableFlagsAllowDoubleClick, imgui.Vec2{}) {
					clicked = i
					doubleClicked = imgui.IsMouseDoubleClicked(0)
				}
			}
		}
		imgui.EndChild()

		if clicked >= 0 {
			isFile := !fc.Entries()[clicked].IsDir
			fc.Select(clicked)
			if isFile && doubleClicked {
				chosen = fc.Chosen()
			}
		}

		imgui.InputText("File", &fc.Path)
		imgui.SameLine()
		if imgui.Button("Open") {
			chosen = fc.Chosen()
		}
		imgui.SameLine()
		if imgui.Button("Cancel") {
			fc.Close()
		}
	}
	imgui.End()

	if chosen != "" {
		fc.Close()
	}
	return chosen
}
