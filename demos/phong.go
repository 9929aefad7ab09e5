package demos

import (
	"context"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

// Phong spins the colored cube under a white point light shaded per
// fragment
type Phong struct {
	camera  *viewer.Camera
	program viewer.ProgramID
	cube    viewer.MeshID
	spin    spin
	light   viewer.Light
}

func NewPhong() *Phong {
	return &Phong{
		camera: fixedCamera(),
		light: viewer.Light{
			Position: mgl32.Vec3{5, 5, 0},
			Ambient:  viewer.Gray(0.2),
			Diffuse:  viewer.Gray(1),
			Specular: viewer.Gray(1),
		},
	}
}

func (c *Phong) Name() string {
	return "phong"
}

func (c *Phong) Init(ctx context.Context, d viewer.Device) (err error) {
	if c.program, err = d.Program(shaders.Phong); err != nil {
		return err
	}
	c.cube, err = d.Upload(geometry.ColoredCube(geometry.DefaultFaceColors))
	return err
}

func (c *Phong) Resize(width, height int) {
	c.camera.Resize(width, height)
}

func (c *Phong) Update(dt float32, in *viewer.Input) {
	c.spin.update(dt)
}

func (c *Phong) Draw(p *viewer.Pipeline) error {
	begin(p, c.camera, c.program, black)
	white := viewer.Material{Ambient: viewer.Gray(1), Diffuse: viewer.Gray(1), Specular: viewer.Gray(1)}
	p.Device().SetLighting(c.light.Reflect(white, c.camera.View()))
	c.spin.apply(p)
	return p.Draw(c.cube)
}
