package gui

import (
	"github.com/spaghettifunk/studio3d/engine/assets/loaders"
	"github.com/spaghettifunk/studio3d/engine/core"
)

// Overlay corners, in the order the overlay context menu lists them.
const (
	OverlayTopLeft = iota
	OverlayTopRight
	OverlayBottomLeft
	OverlayBottomRight
)

// WindowState is which studio windows are visible.
type WindowState struct {
	ShowScene           bool
	ShowObjectTransform bool
	ShowObjectInfo      bool
	ShowObjectMaterial  bool
	ShowCamera          bool
	ShowLights          bool
	ShowKeyReference    bool
	ShowOverlay         bool
	ShowLog             bool
	ShowSettings        bool
	AboutOpen           bool

	OverlayCorner int

	ObjectChooser  *FileChooser
	TextureChooser *FileChooser
}

func NewWindowState(objectsDir, texturesDir string) *WindowState {
	return &WindowState{
		ShowOverlay:    true,
		OverlayCorner:  OverlayTopLeft,
		ObjectChooser:  NewFileChooser("Load Object", objectsDir, []string{".obj"}),
		TextureChooser: NewFileChooser("Load Texture", texturesDir, loaders.TextureExtensions),
	}
}

// ToggleForKey flips the window bound to a function key. The object windows
// only open when there is something to show. It reports whether key is bound.
func (s *WindowState) ToggleForKey(key core.KeyCode, hasObjects bool) bool {
	switch key {
	case core.KEY_F1:
		s.ShowScene = !s.ShowScene
	case core.KEY_F2:
		if hasObjects {
			s.ShowObjectTransform = !s.ShowObjectTransform
		}
	case core.KEY_F3:
		if hasObjects {
			s.ShowObjectMaterial = !s.ShowObjectMaterial
		}
	case core.KEY_F4:
		if hasObjects {
			s.ShowObjectInfo = !s.ShowObjectInfo
		}
	case core.KEY_F5:
		s.ShowCamera = !s.ShowCamera
	case core.KEY_F6:
		s.ShowLights = !s.ShowLights
	case core.KEY_F9:
		s.ShowLog = !s.ShowLog
	case core.KEY_F10:
		s.ShowKeyReference = !s.ShowKeyReference
	default:
		return false
	}
	return true
}

// CloseObjectWindows hides the windows that need a selected object.
func (s *WindowState) CloseObjectWindows() {
	s.ShowObjectTransform = false
	s.ShowObjectInfo = false
	s.ShowObjectMaterial = false
}
