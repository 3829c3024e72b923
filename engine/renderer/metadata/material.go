package metadata

import "github.com/go-gl/mathgl/mgl32"

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/** @brief Shininess slider range exposed to the user. */
const (
	MinShininess float32 = 0
	MaxShininess float32 = 50
)

/**
 * @brief Phong reflection coefficients of a surface, either read from
 * an .mtl file or the studio default.
 */
type Material struct {
	/** @brief The name of the material. */
	Name string
	/** @brief Ambient reflection (Ka). */
	Ambient mgl32.Vec3
	/** @brief Diffuse reflection (Kd). */
	Diffuse mgl32.Vec3
	/** @brief Specular reflection (Ks). */
	Specular mgl32.Vec3
	/** @brief Specular exponent, uploaded as `alpha`. */
	Shininess float32
	/** @brief Dissolve (d), 1 is opaque. */
	Opacity float32
	/** @brief Absolute path of the diffuse texture map, if any. */
	DiffuseMap string
}

func DefaultMaterial() Material {
	return Material{
		Name:      DefaultMaterialName,
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: 2,
		Opacity:   1,
	}
}

/**
 * @brief A run of indices drawn with one material.
 */
type MaterialGroup struct {
	/** @brief Index into Object.Materials, -1 for the default material. */
	Material int
	/** @brief First index of the run in Object.Indices. */
	Offset int
	/** @brief Number of indices in the run. */
	Count int
}
