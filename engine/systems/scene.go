package systems

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/studio3d/engine/assets"
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/math"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// SphereName is the file name given to generated spheres.
const SphereName = "sphere"

// Uploader moves objects and textures to the GPU.
type Uploader interface {
	UploadObject(object *metadata.Object) error
	UploadTexture(object *metadata.Object, data *metadata.TextureData) error
	DestroyObject(object *metadata.Object)
}

type AssetLoader interface {
	LoadAsset(path string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
}

// Watcher reports changes to loaded files, see assets.AssetManager.
type Watcher interface {
	Watch(path string) error
	Unwatch(path string) error
}

// Console receives the messages shown to the user.
type Console interface {
	Addf(format string, args ...interface{})
}

type SceneLoaderConfig struct {
	// Directories searched for relative paths that do not exist as given.
	ObjectsDir  string
	TexturesDir string
}

// SceneLoader implements the load, reload and clear flows of the studio. A
// failed load never changes the scene.
type SceneLoader struct {
	config   SceneLoaderConfig
	world    *WorldContext
	assets   AssetLoader
	uploader Uploader
	watcher  Watcher
	console  Console
}

// NewSceneLoader wires a loader for world. watcher may be nil to disable hot
// reload.
func NewSceneLoader(config SceneLoaderConfig, world *WorldContext, al AssetLoader, up Uploader, w Watcher, c Console) *SceneLoader {
	return &SceneLoader{
		config:   config,
		world:    world,
		assets:   al,
		uploader: up,
		watcher:  w,
		console:  c,
	}
}

// LoadObject parses path, uploads it and appends it to the scene as the
// selected object.
func (sl *SceneLoader) LoadObject(path string) error {
	if path == "" {
		sl.console.Addf("No file specified, returning.")
		return core.ErrNoFileSpecified
	}
	path = resolvePath(path, sl.config.ObjectsDir)
	// the watcher reports absolute paths
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	name := filepath.Base(path)
	sl.console.Addf("Loading %s...", name)

	object, err := sl.loadObject(path)
	if err != nil {
		sl.console.Addf("Failed to load \"%s\", returning.", name)
		sl.console.Addf("%s", err)
		return err
	}

	index := sl.world.AddObject(object)
	sl.world.Selected = index
	sl.watch(path)
	if lib := object.MaterialLibrary; lib != "" && filepath.Dir(lib) != filepath.Dir(path) {
		sl.watch(lib)
	}
	sl.console.Addf("Successfully loaded \"%s\"", name)
	core.LogInfo("loaded %s: %d vertices, %d faces", name, object.Info.NVertices, object.Info.NFaces)

	sl.loadDiffuseMap(object)
	return nil
}

func (sl *SceneLoader) loadObject(path string) (*metadata.Object, error) {
	res, err := sl.assets.LoadAsset(path, metadata.ResourceTypeModel, nil)
	if err != nil {
		return nil, err
	}
	object, ok := res.Data.(*metadata.Object)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected resource data %T", core.ErrUnknown, res.Data)
	}
	if err := sl.uploader.UploadObject(object); err != nil {
		return nil, err
	}
	return object, nil
}

// loadDiffuseMap applies the first diffuse map referenced by the object's
// materials, when the file exists.
func (sl *SceneLoader) loadDiffuseMap(object *metadata.Object) {
	for _, m := range object.Materials {
		if m.DiffuseMap == "" {
			continue
		}
		if _, err := os.Stat(m.DiffuseMap); err != nil {
			core.LogWarn("diffuse map %s of material %s not found", m.DiffuseMap, m.Name)
			continue
		}
		if err := sl.applyTexture(object, m.DiffuseMap); err != nil {
			core.LogWarn("could not apply diffuse map %s: %s", m.DiffuseMap, err)
		}
		return
	}
}

// LoadTexture decodes path and binds it to the selected object.
func (sl *SceneLoader) LoadTexture(path string) error {
	if path == "" {
		sl.console.Addf("No texture specified, returning.")
		return core.ErrNoFileSpecified
	}
	object := sl.world.SelectedObject()
	if object == nil {
		sl.console.Addf("No object selected, load an object first.")
		return core.ErrNoObjectSelected
	}
	path = resolvePath(path, sl.config.TexturesDir)
	name := filepath.Base(path)
	sl.console.Addf("Loading %s...", name)

	if err := sl.applyTexture(object, path); err != nil {
		sl.console.Addf("Failed to load texture \"%s\"", name)
		sl.console.Addf("%s", err)
		return err
	}
	sl.console.Addf("Successfully loaded texture \"%s\"", name)
	return nil
}

func (sl *SceneLoader) applyTexture(object *metadata.Object, path string) error {
	res, err := sl.assets.LoadAsset(path, metadata.ResourceTypeImage, nil)
	if err != nil {
		return err
	}
	data, ok := res.Data.(*metadata.TextureData)
	if !ok {
		return fmt.Errorf("%w: unexpected resource data %T", core.ErrUnknown, res.Data)
	}
	if err := sl.uploader.UploadTexture(object, data); err != nil {
		return err
	}
	object.Texture = &metadata.Texture{
		Name:   filepath.Base(path),
		Path:   path,
		Width:  data.Width,
		Height: data.Height,
	}
	object.Info.HasTexture = true
	object.Info.ShowTexture = true
	return nil
}

// AddSphere appends a generated unit sphere to the scene.
func (sl *SceneLoader) AddSphere(subdivisions int) error {
	vertices, indices := math.GenerateSphere(subdivisions)
	object := metadata.NewObject(SphereName, "")
	object.Vertices = vertices
	object.Indices = indices
	object.Groups = []metadata.MaterialGroup{{Material: -1, Offset: 0, Count: len(indices)}}
	object.Info = metadata.ObjectInfo{
		NShapes:            1,
		NVertices:          len(vertices),
		NFaces:             len(indices) / 3,
		NIndices:           len(indices),
		NVertexNormals:     len(vertices),
		NTexCoords:         len(vertices),
		ObjectLoaded:       true,
		HasTexCoords:       true,
		HasNormals:         true,
		UseDefaultMaterial: true,
	}

	if err := sl.uploader.UploadObject(object); err != nil {
		sl.console.Addf("Failed to create sphere: %s", err)
		return err
	}
	sl.world.Selected = sl.world.AddObject(object)
	sl.console.Addf("Added sphere with %d faces", object.Info.NFaces)
	return nil
}

// Reload replaces every object loaded from path with a fresh parse of the
// file. Model matrices, textures and display toggles carry over.
func (sl *SceneLoader) Reload(path string) error {
	indices := sl.world.FindObjects(path)
	if len(indices) == 0 {
		return nil
	}
	name := filepath.Base(path)

	var errs []error
	for _, i := range indices {
		old := sl.world.Objects[i]
		fresh, err := sl.loadObject(path)
		if err != nil {
			sl.console.Addf("Failed to reload \"%s\", keeping the previous version.", name)
			errs = append(errs, err)
			continue
		}

		fresh.ID = old.ID
		fresh.Model = old.Model
		fresh.Info.ShowWireframe = old.Info.ShowWireframe
		fresh.Info.UseDefaultMaterial = old.Info.UseDefaultMaterial || !fresh.Info.HasMaterials
		fresh.DefaultMaterial = old.DefaultMaterial
		if old.Info.HasTexture {
			fresh.Texture = old.Texture
			fresh.GPU.Texture = old.GPU.Texture
			fresh.Info.HasTexture = true
			fresh.Info.ShowTexture = old.Info.ShowTexture
			old.GPU.Texture = 0
		}
		sl.uploader.DestroyObject(old)
		sl.world.Objects[i] = fresh
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	sl.console.Addf("Reloaded \"%s\"", name)
	return nil
}

// ReloadMaterials refreshes, by name, the materials of every object that was
// loaded with the library at path, or lives next to it.
func (sl *SceneLoader) ReloadMaterials(path string) error {
	res, err := sl.assets.LoadAsset(path, metadata.ResourceTypeMaterial, nil)
	if err != nil {
		sl.console.Addf("Failed to reload materials \"%s\"", filepath.Base(path))
		return err
	}
	materials, ok := res.Data.([]metadata.Material)
	if !ok {
		return fmt.Errorf("%w: unexpected resource data %T", core.ErrUnknown, res.Data)
	}
	byName := make(map[string]metadata.Material, len(materials))
	for _, m := range materials {
		byName[m.Name] = m
	}

	updated := 0
	for _, object := range sl.world.Objects {
		if !usesLibrary(object, path) {
			continue
		}
		for i := range object.Materials {
			if m, ok := byName[object.Materials[i].Name]; ok {
				object.Materials[i] = m
				updated++
			}
		}
	}
	if updated > 0 {
		sl.console.Addf("Reloaded %d material(s) from \"%s\"", updated, filepath.Base(path))
	}
	return nil
}

// HandleChanges applies the file changes reported by the watcher.
func (sl *SceneLoader) HandleChanges(paths []string) {
	for _, path := range paths {
		var err error
		switch assets.DetermineAssetType(path) {
		case metadata.ResourceTypeModel:
			err = sl.Reload(path)
		case metadata.ResourceTypeMaterial:
			err = sl.ReloadMaterials(path)
		}
		if err != nil {
			core.LogError("reload of %s failed: %s", path, err)
		}
	}
}

// RemoveSelected takes the selected object out of the scene and frees it.
func (sl *SceneLoader) RemoveSelected() error {
	object := sl.world.RemoveObject(sl.world.Selected)
	if object == nil {
		return core.ErrNoObjectSelected
	}
	sl.release(object)
	sl.console.Addf("Removed \"%s\"", object.FileName)
	return nil
}

// ClearScene frees every object and empties the scene.
func (sl *SceneLoader) ClearScene() {
	objects := sl.world.Objects
	sl.world.ClearObjects()
	for _, object := range objects {
		sl.release(object)
	}
	sl.console.Addf("Scene cleared")
}

func (sl *SceneLoader) release(object *metadata.Object) {
	sl.uploader.DestroyObject(object)
	if object.FilePath == "" || sl.watcher == nil {
		return
	}
	if len(sl.world.FindObjects(object.FilePath)) == 0 {
		if err := sl.watcher.Unwatch(object.FilePath); err != nil {
			core.LogWarn("could not stop watching %s: %s", object.FilePath, err)
		}
	}
	lib := object.MaterialLibrary
	if lib == "" || filepath.Dir(lib) == filepath.Dir(object.FilePath) {
		return
	}
	for _, other := range sl.world.Objects {
		if other.MaterialLibrary == lib {
			return
		}
	}
	if err := sl.watcher.Unwatch(lib); err != nil {
		core.LogWarn("could not stop watching %s: %s", lib, err)
	}
}

func (sl *SceneLoader) watch(path string) {
	if sl.watcher == nil {
		return
	}
	if err := sl.watcher.Watch(path); err != nil {
		core.LogWarn("could not watch %s: %s", path, err)
	}
}

// usesLibrary reports whether object took its materials from the library at
// path. Objects without a resolved library match libraries in their directory.
func usesLibrary(object *metadata.Object, path string) bool {
	if object.FilePath == "" {
		return false
	}
	if object.MaterialLibrary != "" {
		return samePath(object.MaterialLibrary, path)
	}
	return samePath(filepath.Dir(object.FilePath), filepath.Dir(path))
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// resolvePath tries dir/path when path does not exist as given.
func resolvePath(path, dir string) string {
	if _, err := os.Stat(path); err == nil || dir == "" || filepath.IsAbs(path) {
		return path
	}
	candidate := filepath.Join(dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
