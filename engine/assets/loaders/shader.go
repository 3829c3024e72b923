package loaders

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

//go:embed shaders/*.glsl
var builtinShaders embed.FS

// ShaderSource is a vertex/fragment pair.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// ShaderLoader reads <name>.vert.glsl and <name>.frag.glsl from Dir, or from
// the shaders compiled into the binary when Dir is empty.
type ShaderLoader struct {
	Dir string
}

func (sl *ShaderLoader) Load(name string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	src, err := sl.LoadSource(name)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeShader,
		Name:     name,
		FullPath: sl.path(name, "vert"),
		DataSize: uint64(len(src.Vertex) + len(src.Fragment)),
		Data:     src,
	}, nil
}

func (sl *ShaderLoader) Unload(*metadata.Resource) error {
	return nil
}

func (sl *ShaderLoader) LoadSource(name string) (*ShaderSource, error) {
	vert, err := sl.read(name, "vert")
	if err != nil {
		return nil, err
	}
	frag, err := sl.read(name, "frag")
	if err != nil {
		return nil, err
	}
	return &ShaderSource{Name: name, Vertex: vert, Fragment: frag}, nil
}

func (sl *ShaderLoader) read(name, stage string) (string, error) {
	path := sl.path(name, stage)
	var (
		data []byte
		err  error
	)
	if sl.Dir == "" {
		data, err = builtinShaders.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s shader %q: %w", stage, name, err)
	}
	return string(data), nil
}

func (sl *ShaderLoader) path(name, stage string) string {
	file := fmt.Sprintf("%s.%s.glsl", name, stage)
	if sl.Dir == "" {
		// embed.FS paths always use forward slashes
		return "shaders/" + file
	}
	return filepath.Join(sl.Dir, file)
}
