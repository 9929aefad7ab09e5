package demos

import (
	"context"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"
)

// Cube spins a cube with one color per face
type Cube struct {
	camera  *viewer.Camera
	program viewer.ProgramID
	cube    viewer.MeshID
	spin    spin
}

func NewCube() *Cube {
	return &Cube{camera: fixedCamera()}
}

func (c *Cube) Name() string {
	return "cube"
}

func (c *Cube) Init(ctx context.Context, d viewer.Device) (err error) {
	if c.program, err = d.Program(shaders.Colored); err != nil {
		return err
	}
	c.cube, err = d.Upload(geometry.ColoredCube(geometry.DefaultFaceColors))
	return err
}

func (c *Cube) Resize(width, height int) {
	c.camera.Resize(width, height)
}

func (c *Cube) Update(dt float32, in *viewer.Input) {
	c.spin.update(dt)
}

func (c *Cube) Draw(p *viewer.Pipeline) error {
	begin(p, c.camera, c.program, black)
	c.spin.apply(p)
	return p.Draw(c.cube)
}
