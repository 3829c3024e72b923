package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/studio3d/engine/assets/loaders"
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

var ErrManagerClosed = errors.New("asset manager already closed")

type AssetConfig struct {
	// Normalize loaded models to the unit sphere.
	Normalize bool
	// Directory holding shader sources, empty for the built-in ones.
	ShaderDir string
	// Second place to look for material libraries.
	MaterialDir string
}

// AssetManager dispatches loads to the registered loaders and watches the
// files of loaded objects for changes. Changes are buffered until Poll so
// that callers apply them on their own goroutine.
type AssetManager struct {
	loaders map[metadata.ResourceType]Loader

	mutex   sync.Mutex
	watched map[string]struct{}
	dirs    map[string]int
	pending map[string]struct{}

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	isClosed bool
}

func NewAssetManager(cfg AssetConfig) (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		loaders:  make(map[metadata.ResourceType]Loader),
		watched:  make(map[string]struct{}),
		dirs:     make(map[string]int),
		pending:  make(map[string]struct{}),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(metadata.ResourceTypeModel, &loaders.ModelLoader{Normalize: cfg.Normalize, MaterialDir: cfg.MaterialDir})
	am.registerLoader(metadata.ResourceTypeImage, &loaders.TextureLoader{})
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{Dir: cfg.ShaderDir})
	am.registerLoader(metadata.ResourceTypeMaterial, &loaders.MaterialLoader{})

	am.wg.Add(1)
	go am.start()
	return am, nil
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads a file using the loader registered for resourceType.
func (am *AssetManager) LoadAsset(path string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	loader, ok := am.loaders[resourceType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for asset type: %s", resourceType)
	}
	return loader.Load(path, resourceType, params)
}

func (am *AssetManager) UnloadAsset(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	loader, ok := am.loaders[resource.Type]
	if !ok {
		return fmt.Errorf("no loader registered for asset type: %s", resource.Type)
	}
	return loader.Unload(resource)
}

// Watch starts reporting changes to path. The parent directory is watched so
// that editors replacing the file on save are still seen.
func (am *AssetManager) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return ErrManagerClosed
	}
	if _, ok := am.watched[abs]; ok {
		return nil
	}

	dir := filepath.Dir(abs)
	if am.dirs[dir] == 0 {
		if err := am.fsnotify.Add(dir); err != nil {
			return err
		}
	}
	am.dirs[dir]++
	am.watched[abs] = struct{}{}
	return nil
}

// Unwatch stops reporting changes to path.
func (am *AssetManager) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if _, ok := am.watched[abs]; !ok {
		return nil
	}
	delete(am.watched, abs)
	delete(am.pending, abs)

	dir := filepath.Dir(abs)
	am.dirs[dir]--
	if am.dirs[dir] <= 0 {
		delete(am.dirs, dir)
		if !am.isClosed {
			return am.fsnotify.Remove(dir)
		}
	}
	return nil
}

// Poll returns the watched files (and material libraries next to them) that
// changed since the previous call, without blocking.
func (am *AssetManager) Poll() []string {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if len(am.pending) == 0 {
		return nil
	}
	changed := make([]string, 0, len(am.pending))
	for path := range am.pending {
		changed = append(changed, path)
	}
	am.pending = make(map[string]struct{})
	return changed
}

func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	am.mutex.Unlock()

	close(am.done)
	am.wg.Wait()
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("file watcher: %s", err)

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) handleFileEvent(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	_, watched := am.watched[abs]
	if !watched && !(DetermineAssetType(abs) == metadata.ResourceTypeMaterial && am.dirs[filepath.Dir(abs)] > 0) {
		return
	}
	core.LogDebug("asset changed on disk: %s", abs)
	am.pending[abs] = struct{}{}
}

func DetermineAssetType(path string) metadata.ResourceType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return metadata.ResourceTypeModel
	case ".mtl":
		return metadata.ResourceTypeMaterial
	case ".glsl":
		return metadata.ResourceTypeShader
	}
	for _, e := range loaders.TextureExtensions {
		if ext == e {
			return metadata.ResourceTypeImage
		}
	}
	return metadata.ResourceTypeNone
}
