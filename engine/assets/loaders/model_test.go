package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/math"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

const quadOBJ = `# unit quad without normals or texcoords
o quad
v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
f 1 2 3 4
`

const triangleOBJ = `mtllib tri.mtl
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0.5
vt 0 1
vn 0 0 1
usemtl red
f 1/1/1 2/2/1 3/3/1
`

const triangleMTL = `newmtl red
Ka 0.1 0.1 0.1
Kd 1 0 0
Ks 0.5 0.5 0.5
Ns 10
map_Kd red.png
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestModelLoaderTriangulatesAndGeneratesNormals(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quad.obj", quadOBJ)

	ml := &ModelLoader{}
	object, err := ml.LoadObject(path)
	require.NoError(t, err)

	assert.Equal(t, "quad.obj", object.FileName)
	assert.Len(t, object.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, object.Indices)
	assert.Equal(t, 1, object.Info.NFaces)
	assert.Equal(t, 1, object.Info.NShapes)
	assert.Equal(t, 6, object.Info.NIndices)
	assert.False(t, object.Info.HasNormals)
	assert.False(t, object.Info.HasTexCoords)
	assert.True(t, object.Info.ObjectLoaded)

	for i, v := range object.Vertices {
		assert.True(t, v.Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}), "vertex %d normal %v", i, v.Normal)
		assert.GreaterOrEqual(t, v.Texcoord.X(), float32(0))
		assert.LessOrEqual(t, v.Texcoord.X(), float32(1))
		assert.GreaterOrEqual(t, v.Texcoord.Y(), float32(0))
		assert.LessOrEqual(t, v.Texcoord.Y(), float32(1))
	}
	// positions are untouched without normalization
	assert.Equal(t, mgl32.Vec3{2, 2, 0}, object.Vertices[2].Position)
}

func TestModelLoaderNormalizes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quad.obj", quadOBJ)

	ml := &ModelLoader{Normalize: true}
	object, err := ml.LoadObject(path)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, math.LargestVertexLength(object.Vertices), 1e-5)
	// (2,0,0) is scaled by 1/|(2,2,0)|
	assert.True(t, object.Vertices[1].Position.ApproxEqualThreshold(mgl32.Vec3{0.70710677, 0, 0}, 1e-5))
}

func TestModelLoaderReadsAttributesAndMaterials(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.mtl", triangleMTL)
	path := writeFile(t, dir, "tri.obj", triangleOBJ)

	object, err := (&ModelLoader{}).LoadObject(path)
	require.NoError(t, err)

	require.Len(t, object.Vertices, 3)
	assert.True(t, object.Info.HasNormals)
	assert.True(t, object.Info.HasTexCoords)
	assert.Equal(t, mgl32.Vec2{1, 0.5}, object.Vertices[1].Texcoord)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, object.Vertices[2].Normal)

	require.Len(t, object.Materials, 1)
	red := object.Materials[0]
	assert.Equal(t, "red", red.Name)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, red.Diffuse)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, red.Specular)
	assert.Equal(t, float32(10), red.Shininess)
	assert.Equal(t, filepath.Join(dir, "red.png"), red.DiffuseMap)

	assert.True(t, object.Info.HasMaterials)
	assert.False(t, object.Info.UseDefaultMaterial)
	assert.Equal(t, []metadata.MaterialGroup{{Material: 0, Offset: 0, Count: 3}}, object.Groups)
}

func TestModelLoaderSharesIdenticalCorners(t *testing.T) {
	content := `o two
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	path := writeFile(t, t.TempDir(), "two.obj", content)

	object, err := (&ModelLoader{}).LoadObject(path)
	require.NoError(t, err)
	assert.Len(t, object.Vertices, 4)
	assert.Equal(t, 2, object.Info.NFaces)
	// both faces share one material run
	assert.Len(t, object.Groups, 1)
	assert.Equal(t, 6, object.Groups[0].Count)
}

func TestModelLoaderMissingFile(t *testing.T) {
	_, err := (&ModelLoader{}).LoadObject(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(t, err, core.ErrParseObject)

	_, err = (&ModelLoader{}).LoadObject("")
	assert.ErrorIs(t, err, core.ErrNoFileSpecified)
}

func TestModelLoaderEmptyMesh(t *testing.T) {
	path := writeFile(t, t.TempDir(), "points.obj", "o points\nv 0 0 0\nv 1 1 1\n")
	_, err := (&ModelLoader{}).LoadObject(path)
	assert.ErrorIs(t, err, core.ErrEmptyMesh)
}

func TestModelLoaderResource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quad.obj", quadOBJ)
	res, err := (&ModelLoader{}).Load(path, metadata.ResourceTypeModel, nil)
	require.NoError(t, err)
	assert.Equal(t, metadata.ResourceTypeModel, res.Type)
	assert.IsType(t, &metadata.Object{}, res.Data)
}

func TestModelLoaderSearchesMaterialDir(t *testing.T) {
	objDir, libDir := t.TempDir(), t.TempDir()
	writeFile(t, libDir, "tri.mtl", triangleMTL)
	path := writeFile(t, objDir, "tri.obj", triangleOBJ)

	object, err := (&ModelLoader{}).LoadObject(path)
	require.NoError(t, err)
	assert.Empty(t, object.MaterialLibrary)
	for _, m := range object.Materials {
		assert.NotEqual(t, mgl32.Vec3{1, 0, 0}, m.Diffuse)
	}

	object, err = (&ModelLoader{MaterialDir: libDir}).LoadObject(path)
	require.NoError(t, err)
	assert.True(t, object.Info.HasMaterials)
	assert.False(t, object.Info.UseDefaultMaterial)
	assert.Equal(t, filepath.Join(libDir, "tri.mtl"), object.MaterialLibrary)

	require.Len(t, object.Materials, 1)
	red := object.Materials[0]
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, red.Diffuse)
	// texture maps resolve next to the library that names them
	assert.Equal(t, filepath.Join(libDir, "red.png"), red.DiffuseMap)
}

func TestFindMaterialLibrary(t *testing.T) {
	dir, libDir := t.TempDir(), t.TempDir()
	path := writeFile(t, dir, "a.obj", "mtllib missing.mtl other.mtl\no a\n")
	assert.Equal(t, "", findMaterialLibrary(path, ""))
	assert.Equal(t, "", findMaterialLibrary(path, libDir))

	writeFile(t, libDir, "other.mtl", "newmtl x\n")
	assert.Equal(t, "", findMaterialLibrary(path, ""))
	assert.Equal(t, filepath.Join(libDir, "other.mtl"), findMaterialLibrary(path, libDir))

	// the object's own directory wins
	writeFile(t, dir, "other.mtl", "newmtl x\n")
	assert.Equal(t, filepath.Join(dir, "other.mtl"), findMaterialLibrary(path, libDir))

	// a later library next to the object beats an earlier one in the search dir
	writeFile(t, libDir, "missing.mtl", "newmtl y\n")
	assert.Equal(t, filepath.Join(dir, "other.mtl"), findMaterialLibrary(path, libDir))
}

func TestMaterialLoader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lib.mtl", triangleMTL+"\nnewmtl bright\nKd 2 0.5 0.5\n")

	res, err := (&MaterialLoader{}).Load(path, metadata.ResourceTypeMaterial, nil)
	require.NoError(t, err)
	materials := res.Data.([]metadata.Material)
	require.Len(t, materials, 2)

	assert.Equal(t, "bright", materials[0].Name)
	// out of range colour is clamped
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.5}, materials[0].Diffuse)
	assert.Equal(t, float32(1), materials[0].Opacity)
	assert.Equal(t, "red", materials[1].Name)
}
