package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the primitive type used to assemble the vertices of a Part
type Mode int

const (
	Points Mode = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

var modeNames = map[Mode]string{
	Points:        "points",
	Lines:         "lines",
	LineStrip:     "line-strip",
	Triangles:     "triangles",
	TriangleStrip: "triangle-strip",
	TriangleFan:   "triangle-fan",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// IsTriangles returns true if the mode produces filled triangles
func (m Mode) IsTriangles() bool {
	return m == Triangles || m == TriangleStrip || m == TriangleFan
}

// Part is one draw call over a mesh. It is indexed when Indices is not nil,
// otherwise it covers the vertex range [First, First+Count).
type Part struct {
	Mode    Mode
	Indices []uint16
	First   int
	Count   int
}

// Len returns the number of vertices submitted by the part
func (p Part) Len() int {
	if p.Indices != nil {
		return len(p.Indices)
	}
	return p.Count
}

// Vertices returns the sequence of vertex indices submitted by the part
func (p Part) Vertices() []int {
	out := make([]int, p.Len())
	if p.Indices != nil {
		for i, idx := range p.Indices {
			out[i] = int(idx)
		}
		return out
	}
	for i := range out {
		out[i] = p.First + i
	}
	return out
}

// Mesh holds flat vertex attribute arrays and the parts drawing them.
// Normals and TexCoords are optional, Colors holds RGBA per vertex and is
// optional too: meshes without colors are drawn with a constant color.
type Mesh struct {
	Name         string
	PositionSize int
	Positions    []float32
	Normals      []float32
	Colors       []float32
	TexCoords    []float32
	Parts        []Part
}

// ErrInvalidMesh is returned by Validate for inconsistent meshes
var ErrInvalidMesh = errors.New("invalid mesh")

func (m *Mesh) VertexCount() int {
	if m.PositionSize == 0 {
		return 0
	}
	return len(m.Positions) / m.PositionSize
}

// Position returns the position of vertex i, z is 0 for 2D meshes
func (m *Mesh) Position(i int) mgl32.Vec3 {
	var v mgl32.Vec3
	copy(v[:], m.Positions[i*m.PositionSize:(i+1)*m.PositionSize])
	return v
}

// Normal returns the normal of vertex i
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

func (m *Mesh) Validate() error {
	if m.PositionSize != 2 && m.PositionSize != 3 {
		return fmt.Errorf("%w %s: position size %d", ErrInvalidMesh, m.Name, m.PositionSize)
	}
	if len(m.Positions)%m.PositionSize != 0 {
		return fmt.Errorf("%w %s: %d position components not a multiple of %d", ErrInvalidMesh, m.Name, len(m.Positions), m.PositionSize)
	}
	n := m.VertexCount()
	if n == 0 {
		return fmt.Errorf("%w %s: no vertices", ErrInvalidMesh, m.Name)
	}
	if n > 0xffff {
		return fmt.Errorf("%w %s: %d vertices exceed 16 bit indices", ErrInvalidMesh, m.Name, n)
	}
	attributes := []struct {
		name string
		data []float32
		size int
	}{
		{"normals", m.Normals, 3},
		{"colors", m.Colors, 4},
		{"texture coordinates", m.TexCoords, 2},
	}
	for _, a := range attributes {
		if a.data != nil && len(a.data) != n*a.size {
			return fmt.Errorf("%w %s: %d %s for %d vertices", ErrInvalidMesh, m.Name, len(a.data)/a.size, a.name, n)
		}
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("%w %s: no parts", ErrInvalidMesh, m.Name)
	}
	for i, p := range m.Parts {
		if p.Indices != nil {
			if len(p.Indices) == 0 {
				return fmt.Errorf("%w %s: part %d has no indices", ErrInvalidMesh, m.Name, i)
			}
			for _, idx := range p.Indices {
				if int(idx) >= n {
					return fmt.Errorf("%w %s: part %d index %d out of range", ErrInvalidMesh, m.Name, i, idx)
				}
			}
			continue
		}
		if p.First < 0 || p.Count <= 0 || p.First+p.Count > n {
			return fmt.Errorf("%w %s: part %d range [%d,%d) out of range", ErrInvalidMesh, m.Name, i, p.First, p.First+p.Count)
		}
	}
	return nil
}
