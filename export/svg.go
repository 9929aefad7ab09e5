// Package export writes wireframe drawings of meshes as SVG documents.
package export

import (
	"fmt"
	"io"
	"strings"

	"bitbucket.org/kleinnic74/glplayground/geometry"

	svg "github.com/ajstarks/svgo"
	"github.com/go-gl/mathgl/mgl32"
)

// Style is the look of the drawn edges
type Style struct {
	Stroke string
	Width  float32
	Fill   string
}

// DefaultStyle draws black hairlines without fill
var DefaultStyle = Style{Stroke: "black", Width: 1, Fill: "none"}

func (s Style) attrs() []string {
	fill := s.Fill
	if fill == "" {
		fill = "none"
	}
	return []string{
		fmt.Sprintf(`stroke="%s"`, s.Stroke),
		fmt.Sprintf(`stroke-width="%gpx"`, s.Width),
		fmt.Sprintf(`fill="%s"`, fill),
		`stroke-linejoin="round"`,
	}
}

// viewport maps clip coordinates to SVG coordinates, y pointing down
type viewport struct {
	mvp           mgl32.Mat4
	width, height float32
}

// project returns the SVG coordinates of the vertex and false if it lies
// behind the eye
func (v viewport) project(p mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := v.mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * v.width,
		(1 - ndc.Y()) / 2 * v.height,
	}, true
}

// path builds the SVG path of the given vertices, closed if requested.
// It returns false if any vertex is behind the eye.
func (v viewport) path(mesh *geometry.Mesh, vertices []int, closed bool) (string, bool) {
	var b strings.Builder
	for i, idx := range vertices {
		pt, ok := v.project(mesh.Position(idx))
		if !ok {
			return "", false
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %.2f %.2f ", cmd, pt.X(), pt.Y())
	}
	if closed {
		b.WriteString("Z")
	}
	return strings.TrimSpace(b.String()), true
}

// errWriter keeps the first write error, svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}

// WriteSVG draws every primitive of mesh, transformed by the combined
// projection and model-view matrix mvp, into a width x height SVG
// document. Triangles are outlined, degenerate triangles and primitives
// behind the eye are skipped. Each part becomes a group.
func WriteSVG(w io.Writer, mesh *geometry.Mesh, mvp mgl32.Mat4, width, height int, style Style) (int, error) {
	if err := mesh.Validate(); err != nil {
		return 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("bad canvas size %dx%d", width, height)
	}
	out := &errWriter{w: w}
	canvas := svg.New(out)
	vp := viewport{mvp: mvp, width: float32(width), height: float32(height)}
	attrs := style.attrs()

	canvas.Start(width, height)
	canvas.Title(mesh.Name)
	drawn := 0
	for i, part := range mesh.Parts {
		canvas.Group(fmt.Sprintf(`id="%s-%d"`, mesh.Name, i), fmt.Sprintf(`class="%s"`, part.Mode))
		for _, shape := range outlines(part) {
			d, ok := vp.path(mesh, shape.vertices, shape.closed)
			if !ok {
				continue
			}
			canvas.Path(d, attrs...)
			drawn++
		}
		canvas.Gend()
	}
	canvas.End()
	return drawn, out.err
}

type outline struct {
	vertices []int
	closed   bool
}

func outlines(p geometry.Part) []outline {
	if p.Mode.IsTriangles() {
		tris := geometry.Faces(p)
		out := make([]outline, len(tris))
		for i := range tris {
			out[i] = outline{vertices: tris[i][:], closed: true}
		}
		return out
	}
	vertices := p.Vertices()
	switch p.Mode {
	case geometry.LineStrip:
		if len(vertices) < 2 {
			return nil
		}
		return []outline{{vertices: vertices}}
	case geometry.Lines:
		var out []outline
		for i := 0; i+1 < len(vertices); i += 2 {
			out = append(out, outline{vertices: vertices[i : i+2]})
		}
		return out
	default:
		// points become zero-length closed paths, visible with round caps
		out := make([]outline, len(vertices))
		for i := range vertices {
			out[i] = outline{vertices: vertices[i : i+1], closed: true}
		}
		return out
	}
}
