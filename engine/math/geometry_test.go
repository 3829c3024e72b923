package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func cube() ([]Vertex3D, []uint32) {
	positions := []mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	vertices := make([]Vertex3D, len(positions))
	for i, p := range positions {
		vertices[i].Position = p
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return vertices, indices
}

func flipWinding(indices []uint32) []uint32 {
	flipped := append([]uint32(nil), indices...)
	for i := 0; i+2 < len(flipped); i += 3 {
		flipped[i+1], flipped[i+2] = flipped[i+2], flipped[i+1]
	}
	return flipped
}

func TestGenerateVertexNormalsUnitLength(t *testing.T) {
	vertices, indices := cube()
	GenerateVertexNormals(vertices, indices)

	for i, v := range vertices {
		assert.InDelta(t, 1.0, v.Normal.Len(), epsilon, "vertex %d", i)
		// corners of a cube centred on the origin point outwards
		assert.Greater(t, v.Normal.Dot(v.Position), float32(0), "vertex %d", i)
	}
}

func TestGenerateVertexNormalsFlippedWindingNegates(t *testing.T) {
	vertices, indices := cube()
	GenerateVertexNormals(vertices, indices)

	flipped, _ := cube()
	GenerateVertexNormals(flipped, flipWinding(indices))

	for i := range vertices {
		assert.True(t, vertices[i].Normal.Mul(-1).ApproxEqualThreshold(flipped[i].Normal, epsilon), "vertex %d", i)
	}
}

func TestGenerateVertexNormalsSingleTriangle(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{5, 5, 5}}, // unused
	}
	GenerateVertexNormals(vertices, []uint32{0, 1, 2})

	for i := 0; i < 3; i++ {
		assert.True(t, vertices[i].Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}))
	}
	assert.Equal(t, mgl32.Vec3{}, vertices[3].Normal)
}

func TestGenerateVertexNormalsDegenerateTriangle(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{2, 0, 0}},
	}
	GenerateVertexNormals(vertices, []uint32{0, 1, 2})

	for _, v := range vertices {
		assert.Equal(t, mgl32.Vec3{}, v.Normal)
	}
}

func TestNormalizeVertexPositions(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{2, 0, 0}},
		{Position: mgl32.Vec3{0, 4, 0}},
		{Position: mgl32.Vec3{0, 0, -8}},
		{Position: mgl32.Vec3{1, 1, 1}},
	}
	before := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		before[i] = v.Position
	}

	NormalizeVertexPositions(vertices)

	assert.InDelta(t, 1.0, LargestVertexLength(vertices), epsilon)
	for i, v := range vertices {
		// every position is scaled by the same factor
		assert.True(t, before[i].Mul(1.0/8.0).ApproxEqualThreshold(v.Position, epsilon), "vertex %d", i)
	}
}

func TestNormalizeVertexPositionsAllAtOrigin(t *testing.T) {
	vertices := []Vertex3D{{}, {}}
	NormalizeVertexPositions(vertices)
	assert.Equal(t, []Vertex3D{{}, {}}, vertices)
	assert.Zero(t, LargestVertexLength(nil))
}

func TestGenerateSphericalTexcoordsInRange(t *testing.T) {
	vertices, _ := cube()
	vertices = append(vertices,
		Vertex3D{Position: mgl32.Vec3{0, 0, 1}},
		Vertex3D{Position: mgl32.Vec3{0, 0, -1}},
		Vertex3D{Position: mgl32.Vec3{1, 0, 0}},
		Vertex3D{},
	)
	GenerateSphericalTexcoords(vertices, LargestVertexLength(vertices))

	for i, v := range vertices {
		assert.GreaterOrEqual(t, v.Texcoord.X(), float32(0), "vertex %d", i)
		assert.LessOrEqual(t, v.Texcoord.X(), float32(1), "vertex %d", i)
		assert.GreaterOrEqual(t, v.Texcoord.Y(), float32(0), "vertex %d", i)
		assert.LessOrEqual(t, v.Texcoord.Y(), float32(1), "vertex %d", i)
	}
}

func TestGenerateSphericalTexcoordsKnownValues(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{-1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 1}},
	}
	GenerateSphericalTexcoords(vertices, 1)

	assert.InDelta(t, 0.0, vertices[0].Texcoord.X(), epsilon)
	assert.InDelta(t, 1.0, vertices[1].Texcoord.X(), epsilon)
	assert.InDelta(t, 0.5, vertices[2].Texcoord.X(), epsilon)
	assert.InDelta(t, 0.75, vertices[2].Texcoord.Y(), epsilon)
}

func TestGenerateSphere(t *testing.T) {
	vertices, indices := GenerateSphere(2)

	require.Len(t, indices, 4*16*3)
	for i, v := range vertices {
		assert.InDelta(t, 1.0, v.Position.Len(), 1e-4, "vertex %d", i)
		assert.True(t, v.Position.ApproxEqualThreshold(v.Normal, 1e-4), "vertex %d", i)
	}
	for _, idx := range indices {
		assert.Less(t, int(idx), len(vertices))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(30, 0, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, mgl32.Vec3{0, 0.5, 1}, ClampVec3(mgl32.Vec3{-2, 0.5, 3}, 0, 1))
}
