package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/g3n/engine/loader/obj"
	g3nmath "github.com/g3n/engine/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/math"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// MaterialLoader reads a standalone .mtl library. Materials are returned
// sorted by name as []metadata.Material.
type MaterialLoader struct{}

func (ml *MaterialLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// an empty object stream makes the decoder parse only the library
	dec, err := obj.DecodeReader(strings.NewReader(""), file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse material library %s: %w", path, err)
	}

	names := make([]string, 0, len(dec.Materials))
	for name := range dec.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make([]metadata.Material, 0, len(names))
	for _, name := range names {
		materials = append(materials, convertMaterial(dec.Materials[name], filepath.Dir(path)))
	}

	return &metadata.Resource{
		Type:     metadata.ResourceTypeMaterial,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(len(materials)),
		Data:     materials,
	}, nil
}

func (ml *MaterialLoader) Unload(*metadata.Resource) error {
	return nil
}

// convertMaterial copies a decoded .mtl entry. Out of range values are
// clamped and reported rather than rejected.
func convertMaterial(m *obj.Material, dir string) metadata.Material {
	mat := metadata.Material{
		Name:      m.Name,
		Ambient:   colorToVec(m.Ambient),
		Diffuse:   colorToVec(m.Diffuse),
		Specular:  colorToVec(m.Specular),
		Shininess: m.Shininess,
		Opacity:   m.Opacity,
	}
	// the decoder leaves d at zero when the library does not set it
	if mat.Opacity == 0 {
		mat.Opacity = 1
	}
	if m.MapKd != "" {
		mat.DiffuseMap = m.MapKd
		if !filepath.IsAbs(mat.DiffuseMap) {
			mat.DiffuseMap = filepath.Join(dir, mat.DiffuseMap)
		}
	}

	if err := validateMaterial(&mat); err != nil {
		core.LogWarn("material %q: %s, clamping", mat.Name, err)
		sanitizeMaterial(&mat)
	}
	return mat
}

func validateMaterial(material *metadata.Material) error {
	if material.Name == "" {
		return fmt.Errorf("material name is required")
	}
	if !isValidColour(material.Ambient) {
		return fmt.Errorf("ambient (Ka) values must be between 0.0 and 1.0")
	}
	if !isValidColour(material.Diffuse) {
		return fmt.Errorf("diffuse (Kd) values must be between 0.0 and 1.0")
	}
	if !isValidColour(material.Specular) {
		return fmt.Errorf("specular (Ks) values must be between 0.0 and 1.0")
	}
	if material.Shininess < 0 {
		return fmt.Errorf("shininess must be a non-negative value")
	}
	if !inRange(material.Opacity) {
		return fmt.Errorf("opacity must be between 0.0 and 1.0")
	}
	return nil
}

func sanitizeMaterial(material *metadata.Material) {
	if material.Name == "" {
		material.Name = metadata.DefaultMaterialName
	}
	material.Ambient = math.ClampVec3(material.Ambient, 0, 1)
	material.Diffuse = math.ClampVec3(material.Diffuse, 0, 1)
	material.Specular = math.ClampVec3(material.Specular, 0, 1)
	if material.Shininess < 0 {
		material.Shininess = 0
	}
	material.Opacity = math.Clamp(material.Opacity, 0, 1)
}

func colorToVec(c g3nmath.Color) mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func isValidColour(v mgl32.Vec3) bool {
	return inRange(v.X()) && inRange(v.Y()) && inRange(v.Z())
}

// Check if a float32 value is within [0.0, 1.0]
func inRange(value float32) bool {
	return value >= 0.0 && value <= 1.0
}
