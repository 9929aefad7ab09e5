package demos

import (
	"context"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	white   = mgl32.Vec4{1, 1, 1, 1}
	magenta = mgl32.Vec4{1, 0, 1, 1}
)

// Shapes draws 2D shapes in clip space: a hexagon outline, a triangle with
// a color per vertex and a zig-zag band with its outline
type Shapes struct {
	program  viewer.ProgramID
	hexagon  viewer.MeshID
	triangle viewer.MeshID
	strip    viewer.MeshID
}

func NewShapes() *Shapes {
	return &Shapes{}
}

func (s *Shapes) Name() string {
	return "shapes"
}

func (s *Shapes) Init(ctx context.Context, d viewer.Device) (err error) {
	if s.program, err = d.Program(shaders.Colored); err != nil {
		return err
	}
	if s.hexagon, err = d.Upload(geometry.Hexagon()); err != nil {
		return err
	}
	if s.triangle, err = d.Upload(geometry.Triangle()); err != nil {
		return err
	}
	s.strip, err = d.Upload(geometry.ZigZagStrip())
	return err
}

func (s *Shapes) Resize(width, height int) {}

func (s *Shapes) Update(dt float32, in *viewer.Input) {}

func (s *Shapes) Draw(p *viewer.Pipeline) error {
	d := p.Device()
	d.ClearColor(white)
	d.Clear()
	d.UseProgram(s.program)
	p.SetProjection(mgl32.Ident4())
	p.Reset(mgl32.Ident4())

	d.SetColor(black)
	if err := p.Draw(s.hexagon); err != nil {
		return err
	}
	if err := p.Draw(s.triangle); err != nil {
		return err
	}
	d.SetColor(magenta)
	if err := p.DrawPart(s.strip, 0); err != nil {
		return err
	}
	d.SetColor(black)
	if err := p.DrawPart(s.strip, 1); err != nil {
		return err
	}
	return p.DrawPart(s.strip, 2)
}
