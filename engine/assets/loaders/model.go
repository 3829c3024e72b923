package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/math"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// ModelLoader turns a Wavefront .obj (plus its .mtl library) into an Object
// ready for upload.
type ModelLoader struct {
	// Normalize rescales the positions to fit the unit sphere.
	Normalize bool
	// MaterialDir is searched for mtllib files missing from the object's
	// directory.
	MaterialDir string
}

func (ml *ModelLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	object, err := ml.LoadObject(path)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeModel,
		Name:     object.FileName,
		FullPath: path,
		DataSize: uint64(int(math.Vertex3DStride)*len(object.Vertices) + 4*len(object.Indices)),
		Data:     object,
	}, nil
}

func (ml *ModelLoader) Unload(*metadata.Resource) error {
	return nil
}

// vertexKey identifies one unique corner of a face. Missing attributes are -1.
type vertexKey struct {
	position int
	uv       int
	normal   int
}

func (ml *ModelLoader) LoadObject(path string) (*metadata.Object, error) {
	if path == "" {
		return nil, core.ErrNoFileSpecified
	}

	mtlPath := findMaterialLibrary(path, ml.MaterialDir)
	dec, err := obj.Decode(path, mtlPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", core.ErrParseObject, path, err)
	}
	for _, w := range dec.Warnings {
		core.LogWarn("%s: %s", filepath.Base(path), w)
	}

	object := metadata.NewObject(filepath.Base(path), path)
	// map_Kd and friends are relative to the library, not the object
	mtlDir := filepath.Dir(path)
	if mtlPath != "" {
		mtlDir = filepath.Dir(mtlPath)
	}
	object.MaterialLibrary = mtlPath
	b := &meshBuilder{
		dec:         dec,
		object:      object,
		lookup:      make(map[vertexKey]uint32),
		materialIdx: make(map[string]int),
		mtlDir:      mtlDir,
		hasNormals:  true,
		hasUVs:      true,
	}
	for i := range dec.Objects {
		b.addShape(&dec.Objects[i])
	}

	if len(object.Indices) == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrEmptyMesh, path)
	}

	if ml.Normalize {
		math.NormalizeVertexPositions(object.Vertices)
	}
	if !b.hasNormals {
		math.GenerateVertexNormals(object.Vertices, object.Indices)
	}
	if !b.hasUVs {
		math.GenerateSphericalTexcoords(object.Vertices, math.LargestVertexLength(object.Vertices))
	}

	info := &object.Info
	info.NShapes = len(dec.Objects)
	info.NVertices = len(object.Vertices)
	info.NIndices = len(object.Indices)
	info.NFaces = b.faces
	info.HasNormals = b.hasNormals
	info.HasTexCoords = b.hasUVs
	info.HasMaterials = len(object.Materials) > 0
	info.UseDefaultMaterial = !info.HasMaterials
	info.NVertexNormals = len(dec.Normals) / 3
	if !b.hasNormals {
		info.NVertexNormals = len(object.Vertices)
	}
	info.NTexCoords = len(dec.Uvs) / 2
	if !b.hasUVs {
		info.NTexCoords = len(object.Vertices)
	}
	info.ObjectLoaded = true

	core.LogDebug("loaded %s: %d shapes, %d vertices, %d faces", object.FileName, info.NShapes, info.NVertices, info.NFaces)
	return object, nil
}

type meshBuilder struct {
	dec         *obj.Decoder
	object      *metadata.Object
	lookup      map[vertexKey]uint32
	materialIdx map[string]int
	mtlDir      string
	faces       int
	hasNormals  bool
	hasUVs      bool
}

func (b *meshBuilder) addShape(shape *obj.Object) {
	for i := range shape.Faces {
		face := &shape.Faces[i]
		if len(face.Vertices) < 3 {
			continue
		}
		b.faces++

		corners := make([]uint32, len(face.Vertices))
		for c := range face.Vertices {
			corners[c] = b.corner(face, c)
		}

		start := len(b.object.Indices)
		// fan triangulation of polygons
		for k := 1; k+1 < len(corners); k++ {
			b.object.Indices = append(b.object.Indices, corners[0], corners[k], corners[k+1])
		}
		b.addToGroup(b.material(face.Material), start, len(b.object.Indices)-start)
	}
}

func (b *meshBuilder) corner(face *obj.Face, c int) uint32 {
	key := vertexKey{
		position: validIndex(face.Vertices, c, len(b.dec.Vertices)/3),
		uv:       validIndex(face.Uvs, c, len(b.dec.Uvs)/2),
		normal:   validIndex(face.Normals, c, len(b.dec.Normals)/3),
	}
	if key.uv < 0 {
		b.hasUVs = false
	}
	if key.normal < 0 {
		b.hasNormals = false
	}
	if idx, ok := b.lookup[key]; ok {
		return idx
	}

	var v math.Vertex3D
	if key.position >= 0 {
		p := b.dec.Vertices[3*key.position:]
		v.Position = mgl32.Vec3{p[0], p[1], p[2]}
	}
	if key.uv >= 0 {
		t := b.dec.Uvs[2*key.uv:]
		v.Texcoord = mgl32.Vec2{t[0], t[1]}
	}
	if key.normal >= 0 {
		n := b.dec.Normals[3*key.normal:]
		v.Normal = mgl32.Vec3{n[0], n[1], n[2]}
	}

	idx := uint32(len(b.object.Vertices))
	b.object.Vertices = append(b.object.Vertices, v)
	b.lookup[key] = idx
	return idx
}

// material returns the index of the named material in object.Materials,
// adding it on first use. Unknown or empty names map to -1.
func (b *meshBuilder) material(name string) int {
	if name == "" {
		return -1
	}
	if idx, ok := b.materialIdx[name]; ok {
		return idx
	}
	m, ok := b.dec.Materials[name]
	if !ok || m == nil {
		b.materialIdx[name] = -1
		return -1
	}
	idx := len(b.object.Materials)
	b.object.Materials = append(b.object.Materials, convertMaterial(m, b.mtlDir))
	b.materialIdx[name] = idx
	return idx
}

func (b *meshBuilder) addToGroup(material, offset, count int) {
	groups := b.object.Groups
	if n := len(groups); n > 0 && groups[n-1].Material == material && groups[n-1].Offset+groups[n-1].Count == offset {
		groups[n-1].Count += count
		return
	}
	b.object.Groups = append(groups, metadata.MaterialGroup{Material: material, Offset: offset, Count: count})
}

func validIndex(indices []int, c int, n int) int {
	if c >= len(indices) {
		return -1
	}
	if idx := indices[c]; idx >= 0 && idx < n {
		return idx
	}
	return -1
}

// findMaterialLibrary returns the first mtllib referenced by the object file
// that exists next to it or, failing that, in searchDir. An empty result lets
// the decoder fall back to <name>.mtl and then to its default material.
func findMaterialLibrary(objPath, searchDir string) string {
	file, err := os.Open(objPath)
	if err != nil {
		return ""
	}
	defer file.Close()

	dir := filepath.Dir(objPath)
	var fallback string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "mtllib") {
			continue
		}
		for _, name := range strings.Fields(line)[1:] {
			candidate := name
			if !filepath.IsAbs(candidate) {
				candidate = filepath.Join(dir, name)
			}
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
			if fallback != "" || searchDir == "" || filepath.IsAbs(name) {
				continue
			}
			if _, err := os.Stat(filepath.Join(searchDir, name)); err == nil {
				fallback = filepath.Join(searchDir, name)
			}
		}
	}
	return fallback
}
