package metadata

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/spaghettifunk/studio3d/engine/math"
)

// ObjectInfo is what the studio knows about a loaded object. The counters are
// filled by the loader; the flags are toggled from the GUI.
type ObjectInfo struct {
	NShapes        int
	NVertices      int
	NFaces         int
	NIndices       int
	NVertexNormals int
	NTexCoords     int

	ObjectLoaded       bool
	ShowWireframe      bool
	ShowTexture        bool
	HasTexture         bool
	HasTexCoords       bool
	HasNormals         bool
	HasMaterials       bool
	UseDefaultMaterial bool
}

// GPUHandles are the OpenGL names owned by an object once uploaded.
type GPUHandles struct {
	VAO     uint32
	VBO     uint32
	EBO     uint32
	Texture uint32
}

func (h GPUHandles) Uploaded() bool {
	return h.VAO != 0
}

// Object is one mesh in the scene together with its model matrix.
type Object struct {
	ID       uuid.UUID
	FileName string
	FilePath string
	// MaterialLibrary is the resolved .mtl file, empty when none was found.
	MaterialLibrary string

	Vertices []math.Vertex3D
	Indices  []uint32
	Groups   []MaterialGroup

	Materials       []Material
	DefaultMaterial Material

	Model   math.ModelTransform
	Info    ObjectInfo
	Texture *Texture

	GPU GPUHandles
}

func NewObject(fileName, filePath string) *Object {
	return &Object{
		ID:              uuid.New(),
		FileName:        fileName,
		FilePath:        filePath,
		DefaultMaterial: DefaultMaterial(),
		Model:           math.NewModelTransform(),
	}
}

// MaterialFor returns the material a group is drawn with. The default material
// wins when the object has no materials or the user asked for it.
func (o *Object) MaterialFor(g MaterialGroup) Material {
	if o.Info.UseDefaultMaterial || g.Material < 0 || g.Material >= len(o.Materials) {
		return o.DefaultMaterial
	}
	return o.Materials[g.Material]
}

func (o *Object) VertexPositions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(o.Vertices))
	for i, v := range o.Vertices {
		out[i] = v.Position
	}
	return out
}

func (o *Object) VertexNormals() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(o.Vertices))
	for i, v := range o.Vertices {
		out[i] = v.Normal
	}
	return out
}

func (o *Object) Texcoords() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(o.Vertices))
	for i, v := range o.Vertices {
		out[i] = v.Texcoord
	}
	return out
}

func (o *Object) LargestVertexLength() float32 {
	return math.LargestVertexLength(o.Vertices)
}

// UpdateModelMatrix applies one frame of transform input. The reset flag is
// consumed.
func (o *Object) UpdateModelMatrix(translation mgl32.Vec3, scale float32, axis mgl32.Vec3, rotSpeed float32, reset *bool) {
	o.Model.Apply(translation, scale, axis, rotSpeed)
	if reset != nil && *reset {
		o.Model.Reset()
		*reset = false
	}
}
