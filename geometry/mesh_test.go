package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorsAreValid(t *testing.T) {
	meshes := []*Mesh{
		Square(),
		Cube(),
		ColoredCube(DefaultFaceColors),
		Floor(5),
		Hexagon(),
		Triangle(),
		ZigZagStrip(),
	}
	for _, m := range meshes {
		t.Run(m.Name, func(t *testing.T) {
			assert.NoError(t, m.Validate())
		})
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	assert.Equal(t, 24, m.VertexCount())
	require.Len(t, m.Parts, 1)
	assert.Len(t, m.Parts[0].Indices, 36)
	assert.Len(t, Faces(m.Parts[0]), 12)
	assert.Nil(t, m.Colors)
	for f := 0; f < 6; f++ {
		for i := 0; i < 4; i++ {
			v := 4*f + i
			n := m.Normal(v)
			// every vertex of a face lies on the plane its normal points to
			assert.Equal(t, float32(1), m.Position(v).Dot(n), "vertex %d", v)
		}
	}
}

func TestColoredCube(t *testing.T) {
	m := ColoredCube(DefaultFaceColors)
	require.Len(t, m.Colors, 96)
	assert.Equal(t, []float32{1, 1, 1, 1}, m.Colors[0:4])
	assert.Equal(t, []float32{1, 0, 0, 1}, m.Colors[16:20])
	assert.Equal(t, []float32{0, 1, 1, 1}, m.Colors[92:96])
}

func TestFloor(t *testing.T) {
	m := Floor(5)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, mgl32.Vec3{5, 0, 5}, m.Position(0))
	assert.Equal(t, mgl32.Vec3{-5, 0, 5}, m.Position(3))
	assert.Equal(t, TriangleFan, m.Parts[0].Mode)
	assert.Len(t, Faces(m.Parts[0]), 2)
}

func TestSquare(t *testing.T) {
	m := Square()
	assert.Equal(t, 2, m.PositionSize)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, mgl32.Vec3{1, -1, 0}, m.Position(3))
	assert.Equal(t, []int{0, 1, 2, 3}, m.Parts[0].Vertices())
}

func TestZigZagStrip(t *testing.T) {
	m := ZigZagStrip()
	assert.Equal(t, 22, m.VertexCount())
	require.Len(t, m.Parts, 3)
	expected := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		10, 10, 11,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}
	assert.Equal(t, expected, m.Parts[0].Indices)
	assert.Len(t, Faces(m.Parts[0]), 18)
	assert.Equal(t, Part{Mode: LineStrip, First: 11, Count: 11}, m.Parts[2])
	assert.InDelta(t, -0.3, m.Position(11).Y(), 1e-6)
	assert.InDelta(t, -0.5, m.Position(12).Y(), 1e-6)
	assert.InDelta(t, 0.5, m.Position(21).X(), 1e-6)
}

func TestHexagonIsClosed(t *testing.T) {
	m := Hexagon()
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, m.Position(0), m.Position(6))
}

func TestValidate(t *testing.T) {
	testdata := []struct {
		name string
		mesh Mesh
	}{
		{"position size", Mesh{PositionSize: 4, Positions: make([]float32, 8), Parts: []Part{{Mode: Points, Count: 1}}}},
		{"ragged positions", Mesh{PositionSize: 3, Positions: make([]float32, 7), Parts: []Part{{Mode: Points, Count: 1}}}},
		{"empty", Mesh{PositionSize: 3}},
		{"normals", Mesh{PositionSize: 3, Positions: make([]float32, 9), Normals: make([]float32, 6), Parts: []Part{{Mode: Triangles, Count: 3}}}},
		{"colors", Mesh{PositionSize: 2, Positions: make([]float32, 6), Colors: make([]float32, 4), Parts: []Part{{Mode: Triangles, Count: 3}}}},
		{"no parts", Mesh{PositionSize: 2, Positions: make([]float32, 6)}},
		{"index range", Mesh{PositionSize: 2, Positions: make([]float32, 6), Parts: []Part{{Mode: Triangles, Indices: []uint16{0, 1, 3}}}}},
		{"no indices", Mesh{PositionSize: 2, Positions: make([]float32, 6), Parts: []Part{{Mode: Triangles, Indices: []uint16{}}}}},
		{"vertex range", Mesh{PositionSize: 2, Positions: make([]float32, 6), Parts: []Part{{Mode: Triangles, First: 1, Count: 3}}}},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			assert.ErrorIs(t, d.mesh.Validate(), ErrInvalidMesh)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "triangle-strip", TriangleStrip.String())
	assert.Equal(t, "mode(42)", Mode(42).String())
	assert.True(t, TriangleFan.IsTriangles())
	assert.False(t, LineStrip.IsTriangles())
}
