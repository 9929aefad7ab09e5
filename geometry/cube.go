package geometry

import "github.com/go-gl/mathgl/mgl32"

var cubePositions = []float32{
	// front
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	-1, 1, 1,
	// back
	-1, -1, -1,
	-1, 1, -1,
	1, 1, -1,
	1, -1, -1,
	// top
	-1, 1, -1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	// bottom
	-1, -1, -1,
	1, -1, -1,
	1, -1, 1,
	-1, -1, 1,
	// right
	1, -1, -1,
	1, 1, -1,
	1, 1, 1,
	1, -1, 1,
	// left
	-1, -1, -1,
	-1, -1, 1,
	-1, 1, 1,
	-1, 1, -1,
}

var cubeFaceNormals = [6]mgl32.Vec3{
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
}

// DefaultFaceColors are the cube face colors: white, red, green, blue, magenta, cyan
var DefaultFaceColors = [6]mgl32.Vec4{
	{1, 1, 1, 1},
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 0, 1, 1},
	{0, 1, 1, 1},
}

// Cube returns the 2x2x2 cube centered on the origin, with normals and
// texture coordinates, 4 vertices per face and 36 triangle indices.
func Cube() *Mesh {
	m := &Mesh{
		Name:         "cube",
		PositionSize: 3,
		Positions:    append([]float32(nil), cubePositions...),
		Normals:      make([]float32, 0, 72),
		TexCoords:    make([]float32, 0, 48),
	}
	indices := make([]uint16, 0, 36)
	for f, n := range cubeFaceNormals {
		for i := 0; i < 4; i++ {
			m.Normals = append(m.Normals, n[:]...)
		}
		m.TexCoords = append(m.TexCoords, 0, 0, 1, 0, 1, 1, 0, 1)
		base := uint16(4 * f)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.Parts = []Part{{Mode: Triangles, Indices: indices}}
	return m
}

// ColoredCube returns a Cube with one color per face
func ColoredCube(faceColors [6]mgl32.Vec4) *Mesh {
	m := Cube()
	m.Name = "colored-cube"
	m.Colors = make([]float32, 0, 96)
	for _, c := range faceColors {
		for i := 0; i < 4; i++ {
			m.Colors = append(m.Colors, c[:]...)
		}
	}
	return m
}
