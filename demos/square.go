package demos

import (
	"context"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

// Square draws a square with a color per corner
type Square struct {
	camera  *viewer.Camera
	program viewer.ProgramID
	square  viewer.MeshID
}

func NewSquare() *Square {
	return &Square{camera: fixedCamera()}
}

func (s *Square) Name() string {
	return "square"
}

func (s *Square) Init(ctx context.Context, d viewer.Device) (err error) {
	if s.program, err = d.Program(shaders.Colored); err != nil {
		return err
	}
	s.square, err = d.Upload(geometry.Square())
	return err
}

func (s *Square) Resize(width, height int) {
	s.camera.Resize(width, height)
}

func (s *Square) Update(dt float32, in *viewer.Input) {}

func (s *Square) Draw(p *viewer.Pipeline) error {
	begin(p, s.camera, s.program, black)
	p.Translate(mgl32.Vec3{0, 0, -6})
	return p.Draw(s.square)
}
