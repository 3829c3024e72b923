package systems

import (
	"fmt"

	"github.com/spaghettifunk/studio3d/engine/assets"
	"github.com/spaghettifunk/studio3d/engine/assets/loaders"
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// PhongShader is the name of the program every object is drawn with.
const PhongShader = "phong"

type SystemManager struct {
	World  *WorldContext
	Scene  *SceneLoader
	Assets *assets.AssetManager

	renderer *renderer.Renderer
	watch    bool
}

func NewSystemManager(cfg *core.Config, r *renderer.Renderer, console Console) (*SystemManager, error) {
	am, err := assets.NewAssetManager(assets.AssetConfig{
		Normalize:   cfg.Loader.Normalize,
		ShaderDir:   cfg.Paths.Shaders,
		MaterialDir: cfg.Paths.Materials,
	})
	if err != nil {
		return nil, err
	}

	world := NewWorldContext(cfg)

	var watcher Watcher
	if cfg.Loader.Watch {
		watcher = am
	}
	scene := NewSceneLoader(SceneLoaderConfig{
		ObjectsDir:  cfg.Paths.Objects,
		TexturesDir: cfg.Paths.Textures,
	}, world, am, r, watcher, console)

	return &SystemManager{
		World:    world,
		Scene:    scene,
		Assets:   am,
		renderer: r,
		watch:    cfg.Loader.Watch,
	}, nil
}

// Initialize builds the shader program. A shader that fails to compile or
// link is returned as is; the caller treats it as fatal.
func (sm *SystemManager) Initialize() error {
	src, err := sm.LoadShader(PhongShader)
	if err != nil {
		return err
	}
	return sm.renderer.Initialize(src.Vertex, src.Fragment)
}

// LoadShader reads the sources of the named shader pair. The resource is
// released right away, only the sources are kept.
func (sm *SystemManager) LoadShader(name string) (*loaders.ShaderSource, error) {
	res, err := sm.Assets.LoadAsset(name, metadata.ResourceTypeShader, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sm.Assets.UnloadAsset(res); err != nil {
			core.LogWarn("%s", err)
		}
	}()

	src, ok := res.Data.(*loaders.ShaderSource)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected shader resource %T", core.ErrUnknown, res.Data)
	}
	return src, nil
}

// Update applies the file changes seen since the previous frame.
func (sm *SystemManager) Update() {
	if !sm.watch {
		return
	}
	changed := sm.Assets.Poll()
	if len(changed) == 0 {
		return
	}
	sm.Scene.HandleChanges(changed)
	for _, path := range changed {
		core.EventFire(core.EVENT_CODE_FILE_CHANGED, sm, core.EventContext{Data: &core.FileEvent{Path: path}})
	}
}

// DrawFrame advances the world matrices and renders the scene.
func (sm *SystemManager) DrawFrame(deltaTime float64, aspect float32) error {
	sm.World.UpdateMatrices(aspect)
	return sm.renderer.DrawFrame(sm.World.RenderPacket(deltaTime))
}

func (sm *SystemManager) Shutdown() error {
	for _, object := range sm.World.Objects {
		sm.renderer.DestroyObject(object)
	}
	sm.World.ClearObjects()
	if err := sm.renderer.Shutdown(); err != nil {
		return err
	}
	return sm.Assets.Shutdown()
}
