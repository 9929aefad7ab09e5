package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Indices of the cylinder parts
const (
	CylinderRound = iota
	CylinderBottom
	CylinderTop
)

// ErrBadParameter is returned by generators for out of range parameters
var ErrBadParameter = errors.New("bad mesh parameter")

// Cylinder generates an open-ended tube standing on the y=0 plane with n
// vertices around the circumference and m height subdivisions, plus a
// bottom and a top lid. The round part is a single triangle strip made of m
// rows joined with degenerate triangles, each lid is a triangle fan of n
// vertices.
//
// Vertices are laid out as m+1 rings of n vertices from bottom to top,
// followed by the n bottom lid vertices and the n top lid vertices, for a
// total of n*(m+1) + 2n.
func Cylinder(n, m int, radius, height float32) (*Mesh, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cylinder needs at least 3 vertices around, got %d", ErrBadParameter, n)
	}
	if m < 1 {
		return nil, fmt.Errorf("%w: cylinder needs at least 1 subdivision, got %d", ErrBadParameter, m)
	}
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cylinder size %gx%g", ErrBadParameter, radius, height)
	}
	vertexCount := n*(m+1) + 2*n
	if vertexCount > 0xffff {
		return nil, fmt.Errorf("%w: %d cylinder vertices exceed 16 bit indices", ErrBadParameter, vertexCount)
	}

	mesh := &Mesh{
		Name:         "cylinder",
		PositionSize: 3,
		Positions:    make([]float32, 0, 3*vertexCount),
		Normals:      make([]float32, 0, 3*vertexCount),
	}
	ring := make([][2]float32, n)
	for i := range ring {
		t := float64(i) / float64(n) * 2 * math.Pi
		ring[i] = [2]float32{float32(math.Cos(t)), float32(math.Sin(t))}
	}
	for j := 0; j <= m; j++ {
		y := float32(j) / float32(m) * height
		for _, c := range ring {
			mesh.Positions = append(mesh.Positions, radius*c[0], y, radius*c[1])
			mesh.Normals = append(mesh.Normals, c[0], 0, c[1])
		}
	}
	for _, lid := range []struct{ y, ny float32 }{{0, -1}, {height, 1}} {
		for _, c := range ring {
			mesh.Positions = append(mesh.Positions, radius*c[0], lid.y, radius*c[1])
			mesh.Normals = append(mesh.Normals, 0, lid.ny, 0)
		}
	}

	strips := make([][]uint16, m)
	for j := range strips {
		upper, lower := uint16((j+1)*n), uint16(j*n)
		s := make([]uint16, 0, 2*n+2)
		for i := 0; i < n; i++ {
			s = append(s, upper+uint16(i), lower+uint16(i))
		}
		strips[j] = append(s, upper, lower)
	}
	bottom := make([]uint16, n)
	top := make([]uint16, n)
	for i := 0; i < n; i++ {
		bottom[i] = uint16((m+1)*n + i)
		top[i] = uint16((m+2)*n + i)
	}
	mesh.Parts = []Part{
		CylinderRound:  {Mode: TriangleStrip, Indices: JoinStrips(strips...)},
		CylinderBottom: {Mode: TriangleFan, Indices: bottom},
		CylinderTop:    {Mode: TriangleFan, Indices: top},
	}
	return mesh, nil
}
