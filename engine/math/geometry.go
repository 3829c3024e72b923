package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// GenerateVertexNormals computes smooth per-vertex normals. Every triangle adds
// its unit face normal to the normals of its three corners, then each vertex
// normal is normalized once. Degenerate triangles add nothing and vertices
// that belong to no triangle are left with a zero normal.
func GenerateVertexNormals(vertices []Vertex3D, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = mgl32.Vec3{}
	}

	n := uint32(len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := safeNormalize(edge1.Cross(edge2))

		vertices[i0].Normal = vertices[i0].Normal.Add(normal)
		vertices[i1].Normal = vertices[i1].Normal.Add(normal)
		vertices[i2].Normal = vertices[i2].Normal.Add(normal)
	}

	for i := range vertices {
		vertices[i].Normal = safeNormalize(vertices[i].Normal)
	}
}

// GenerateSphericalTexcoords maps every vertex onto a sphere of radius r:
// s = acos(x/r)/π and t = atan(z/y)/π + 0.5. Both land in [0,1].
func GenerateSphericalTexcoords(vertices []Vertex3D, r float32) {
	for i := range vertices {
		vertices[i].Texcoord = sphericalTexcoord(vertices[i].Position, r)
	}
}

func sphericalTexcoord(p mgl32.Vec3, r float32) mgl32.Vec2 {
	if r <= 0 {
		return mgl32.Vec2{0.5, 0.5}
	}
	s := math32.Acos(Clamp(p.X()/r, -1, 1)) / math32.Pi

	var t float32
	switch {
	case p.Y() != 0:
		t = math32.Atan(p.Z()/p.Y())/math32.Pi + 0.5
	case p.Z() > 0:
		t = 1
	case p.Z() < 0:
		t = 0
	default:
		t = 0.5
	}
	return mgl32.Vec2{s, t}
}

// LargestVertexLength returns the largest distance from the origin of any
// vertex, or 0 when there are none.
func LargestVertexLength(vertices []Vertex3D) float32 {
	var largest float32
	for _, v := range vertices {
		if l := v.Length(); l > largest {
			largest = l
		}
	}
	return largest
}

// NormalizeVertexPositions scales every position by 1/largest length so that
// the mesh fits in the unit sphere. Meshes collapsed on the origin are left
// untouched.
func NormalizeVertexPositions(vertices []Vertex3D) {
	largest := LargestVertexLength(vertices)
	if largest == 0 {
		return
	}
	for i := range vertices {
		vertices[i].Position = vertices[i].Position.Mul(1 / largest)
	}
}

// GenerateSphere approximates a unit sphere by subdividing the faces of a
// tetrahedron `subdivisions` times. Normals point away from the origin.
func GenerateSphere(subdivisions int) ([]Vertex3D, []uint32) {
	if subdivisions < 0 {
		subdivisions = 0
	}
	s := &sphereBuilder{}
	v := [4]uint32{
		s.add(mgl32.Vec3{0, 0, 1}),
		s.add(mgl32.Vec3{0, 0.942809, -0.333333}),
		s.add(mgl32.Vec3{-0.816497, -0.471405, -0.333333}),
		s.add(mgl32.Vec3{0.816497, -0.471405, -0.333333}),
	}
	s.divide(v[0], v[1], v[2], subdivisions)
	s.divide(v[3], v[2], v[1], subdivisions)
	s.divide(v[0], v[3], v[1], subdivisions)
	s.divide(v[0], v[2], v[3], subdivisions)

	GenerateSphericalTexcoords(s.vertices, 1)
	return s.vertices, s.indices
}

type sphereBuilder struct {
	vertices []Vertex3D
	indices  []uint32
}

func (s *sphereBuilder) add(p mgl32.Vec3) uint32 {
	unit := safeNormalize(p)
	s.vertices = append(s.vertices, Vertex3D{Position: unit, Normal: unit})
	return uint32(len(s.vertices) - 1)
}

func (s *sphereBuilder) divide(a, b, c uint32, n int) {
	if n == 0 {
		s.indices = append(s.indices, a, b, c)
		return
	}
	pa := s.vertices[a].Position
	pb := s.vertices[b].Position
	pc := s.vertices[c].Position
	ab := s.add(pa.Add(pb))
	ac := s.add(pa.Add(pc))
	bc := s.add(pb.Add(pc))
	s.divide(a, ab, ac, n-1)
	s.divide(c, ac, bc, n-1)
	s.divide(b, bc, ab, n-1)
	s.divide(ab, bc, ac, n-1)
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
