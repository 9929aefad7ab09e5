package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinStrips(t *testing.T) {
	testdata := []struct {
		name     string
		strips   [][]uint16
		expected []uint16
	}{
		{"none", nil, nil},
		{"single", [][]uint16{{0, 1, 2, 3}}, []uint16{0, 1, 2, 3}},
		{"even", [][]uint16{{0, 1, 2, 3}, {4, 5, 6, 7}}, []uint16{0, 1, 2, 3, 3, 4, 4, 5, 6, 7}},
		{"odd", [][]uint16{{0, 1, 2}, {3, 4, 5}}, []uint16{0, 1, 2, 2, 2, 3, 3, 4, 5}},
		{"skips empty", [][]uint16{{0, 1, 2, 3}, {}, {4, 5, 6}}, []uint16{0, 1, 2, 3, 3, 4, 4, 5, 6}},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.expected, JoinStrips(d.strips...))
		})
	}
}

func TestJoinStripsKeepsWinding(t *testing.T) {
	first := []uint16{0, 1, 2}
	second := []uint16{3, 4, 5, 6}
	joined := Faces(Part{Mode: TriangleStrip, Indices: JoinStrips(first, second)})
	separate := append(
		Faces(Part{Mode: TriangleStrip, Indices: first}),
		Faces(Part{Mode: TriangleStrip, Indices: second})...)
	assert.Equal(t, separate, joined)
}

func TestFaces(t *testing.T) {
	testdata := []struct {
		name     string
		part     Part
		expected []Face
	}{
		{"triangles", Part{Mode: Triangles, Indices: []uint16{0, 1, 2, 2, 3, 0}}, []Face{{0, 1, 2}, {2, 3, 0}}},
		{"strip range", Part{Mode: TriangleStrip, First: 2, Count: 4}, []Face{{2, 3, 4}, {4, 3, 5}}},
		{"fan", Part{Mode: TriangleFan, Indices: []uint16{0, 1, 2, 3}}, []Face{{0, 1, 2}, {0, 2, 3}}},
		{"degenerate dropped", Part{Mode: TriangleStrip, Indices: []uint16{0, 1, 1, 2}}, nil},
		{"lines", Part{Mode: LineStrip, First: 0, Count: 5}, nil},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.expected, Faces(d.part))
		})
	}
}
