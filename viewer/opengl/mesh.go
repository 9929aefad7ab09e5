package opengl

import (
	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var modes = map[geometry.Mode]uint32{
	geometry.Points:        gl.POINTS,
	geometry.Lines:         gl.LINES,
	geometry.LineStrip:     gl.LINE_STRIP,
	geometry.Triangles:     gl.TRIANGLES,
	geometry.TriangleStrip: gl.TRIANGLE_STRIP,
	geometry.TriangleFan:   gl.TRIANGLE_FAN,
}

type part struct {
	mode  uint32
	ebo   uint32
	first int32
	count int32
}

// vao holds the buffers of one uploaded mesh. The color attribute array is
// only enabled when the mesh has per-vertex colors.
type vao struct {
	name      string
	vao       uint32
	buffers   []uint32
	parts     []part
	hasColors bool
}

func uploadMesh(m *geometry.Mesh) *vao {
	v := &vao{name: m.Name, hasColors: m.Colors != nil}
	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	attributes := []struct {
		location uint32
		size     int32
		data     []float32
	}{
		{shaders.PositionAttrib, int32(m.PositionSize), m.Positions},
		{shaders.NormalAttrib, 3, m.Normals},
		{shaders.ColorAttrib, 4, m.Colors},
		{shaders.TexCoordAttrib, 2, m.TexCoords},
	}
	for _, a := range attributes {
		if a.data == nil {
			gl.DisableVertexAttribArray(a.location)
			continue
		}
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(a.data), gl.Ptr(a.data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointer(a.location, a.size, gl.FLOAT, false, 0, nil)
		v.buffers = append(v.buffers, vbo)
	}
	gl.BindVertexArray(0)

	for _, p := range m.Parts {
		gp := part{mode: modes[p.Mode], first: int32(p.First), count: int32(p.Len())}
		if p.Indices != nil {
			gl.GenBuffers(1, &gp.ebo)
			gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gp.ebo)
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(p.Indices), gl.Ptr(p.Indices), gl.STATIC_DRAW)
			v.buffers = append(v.buffers, gp.ebo)
		}
		v.parts = append(v.parts, gp)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return v
}

func (v *vao) bind() {
	gl.BindVertexArray(v.vao)
}

func (v *vao) drawPart(i int) {
	p := v.parts[i]
	if p.ebo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
		gl.DrawElements(p.mode, p.count, gl.UNSIGNED_SHORT, nil)
		return
	}
	gl.DrawArrays(p.mode, p.first, p.count)
}

func (v *vao) delete() {
	if len(v.buffers) > 0 {
		gl.DeleteBuffers(int32(len(v.buffers)), &v.buffers[0])
	}
	gl.DeleteVertexArrays(1, &v.vao)
}
