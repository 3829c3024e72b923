package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/components"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// TransformInput is the transformation requested for the selected object
// during the current frame. Input handling writes it, UpdateMatrices consumes it.
type TransformInput struct {
	Translate mgl32.Vec3
	// Rotate is the rotation axis; its sign picks the direction.
	Rotate mgl32.Vec3
	// Scale is the uniform scale factor, 0 means no scaling this frame.
	Scale float32
	Reset bool
}

// Speeds are the per-frame steps applied while a key is held.
type Speeds struct {
	Rotation    float32
	Translation float32
	Scale       float32
	Camera      float32
}

// WorldContext is everything the renderer, the input handling and the GUI
// share about the scene. It is owned by the render thread and passed down
// explicitly.
type WorldContext struct {
	Camera *components.Camera
	Light  metadata.LightSource

	Ambient        mgl32.Vec4
	DefaultAmbient mgl32.Vec4

	Objects  []*metadata.Object
	Selected int

	Transform TransformInput
	Speeds    Speeds
}

func NewWorldContext(cfg *core.Config) *WorldContext {
	cam := cfg.Camera
	camera := components.NewCamera(
		mgl32.Vec3(cam.Eye), mgl32.Vec3(cam.Ref), mgl32.Vec3(cam.Up),
		cam.FOV, cam.Near, cam.Far, cam.Top, cam.Perspective,
	)
	return &WorldContext{
		Camera:         camera,
		Light:          metadata.NewLightSource(mgl32.Vec4(cfg.Light.Position), mgl32.Vec4(cfg.Light.Color)),
		Ambient:        mgl32.Vec4(cfg.Light.Ambient),
		DefaultAmbient: mgl32.Vec4(cfg.Light.Ambient),
		Speeds: Speeds{
			Rotation:    cfg.Speeds.Rotation,
			Translation: cfg.Speeds.Translation,
			Scale:       cfg.Speeds.Scale,
			Camera:      cfg.Speeds.Camera,
		},
	}
}

// UpdateMatrices applies this frame's transform input to the selected object
// and rebuilds the view and projection matrices.
func (w *WorldContext) UpdateMatrices(aspect float32) {
	if object := w.SelectedObject(); object != nil {
		t := &w.Transform
		object.UpdateModelMatrix(t.Translate, t.Scale, t.Rotate, w.Speeds.Rotation, &t.Reset)
	}
	w.Transform.Reset = false
	w.Camera.UpdateView()
	w.Camera.UpdateProjection(aspect)
}

func (w *WorldContext) AddObject(object *metadata.Object) int {
	w.Objects = append(w.Objects, object)
	return len(w.Objects) - 1
}

func (w *WorldContext) SelectObject(i int) error {
	if i < 0 || i >= len(w.Objects) {
		return core.ErrNoObjectSelected
	}
	w.Selected = i
	return nil
}

// SelectedObject is nil when the scene is empty.
func (w *WorldContext) SelectedObject() *metadata.Object {
	if w.Selected < 0 || w.Selected >= len(w.Objects) {
		return nil
	}
	return w.Objects[w.Selected]
}

// RemoveObject drops the object at i and keeps the selection on a valid index.
func (w *WorldContext) RemoveObject(i int) *metadata.Object {
	if i < 0 || i >= len(w.Objects) {
		return nil
	}
	object := w.Objects[i]
	w.Objects = append(w.Objects[:i], w.Objects[i+1:]...)
	if w.Selected >= len(w.Objects) {
		w.Selected = len(w.Objects) - 1
	}
	if w.Selected < 0 {
		w.Selected = 0
	}
	return object
}

func (w *WorldContext) ClearObjects() {
	w.Objects = nil
	w.Selected = 0
}

// FindObjects returns the indices of the objects loaded from path.
func (w *WorldContext) FindObjects(path string) []int {
	var found []int
	for i, object := range w.Objects {
		if object.FilePath == path {
			found = append(found, i)
		}
	}
	return found
}

func (w *WorldContext) ResetAmbient() {
	w.Ambient = w.DefaultAmbient
}

// RenderPacket snapshots what the renderer needs for one frame.
func (w *WorldContext) RenderPacket(deltaTime float64) *metadata.RenderPacket {
	return &metadata.RenderPacket{
		DeltaTime: deltaTime,
		Frame: metadata.FrameData{
			View:           w.Camera.View,
			Projection:     w.Camera.Projection,
			CameraPosition: w.Camera.Eye,
			Ambient:        w.Ambient,
			LightPosition:  w.Light.Position,
			LightColor:     w.Light.Color,
		},
		Objects: w.Objects,
	}
}
