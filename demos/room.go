package demos

import (
	"context"
	"math"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	red       = mgl32.Vec4{1, 0, 0, 1}
	darkGray  = mgl32.Vec4{0.1, 0.1, 0.1, 1}
	brown     = mgl32.Vec4{0.6, 0.3, 0, 1}
	leafGreen = mgl32.Vec4{0.5, 0.8, 0.3, 1}
	glassBlue = mgl32.Vec4{0.3, 0.3, 0.7, 0.5}

	floorMaterial = viewer.Material{
		Ambient:  viewer.Gray(0.8),
		Diffuse:  viewer.Gray(0.5),
		Specular: viewer.Gray(0.3),
	}
	cubeMaterial = viewer.Material{
		Ambient:  viewer.Gray(1),
		Diffuse:  viewer.Gray(0.7),
		Specular: viewer.Gray(0.6),
	}
	cylinderMaterial = viewer.Material{
		Ambient:  viewer.Gray(1),
		Diffuse:  viewer.Gray(1),
		Specular: viewer.Gray(1),
	}
)

const (
	cubePeriod     = 2
	cubeRadius     = 5
	cylinderPeriod = 4
	minCubeScale   = 0.1
	maxCubeScale   = 5
)

// room is the scene of a floor, a cube and a table seen from (8,5,-10),
// optionally with an orbiting cube, a transparent spinning cylinder and
// lighting
type room struct {
	name     string
	camera   *viewer.Camera
	controls *viewer.Controls

	floorY    float32
	cubeColor mgl32.Vec4
	orbit     bool
	cylinder  bool
	lit       bool
	light     viewer.Light
	shading   shaders.Shading

	cubeAngle     float32
	cubeScale     float32
	cylinderAngle float32

	device    viewer.Device
	floorMesh viewer.MeshID
	cubeMesh  viewer.MeshID
	cylMesh   viewer.MeshID
	scene     *viewer.Scene
}

func newRoom(name string) *room {
	camera := viewer.NewCamera(mgl32.Vec3{8, 5, -10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(60))
	return &room{
		name:      name,
		camera:    camera,
		floorY:    -1,
		cubeColor: darkGray,
		cubeScale: 1,
		light: viewer.Light{
			Position: mgl32.Vec3{0, 20, 0},
			Ambient:  viewer.Gray(0.2),
			Diffuse:  viewer.Gray(0.7),
			Specular: viewer.Gray(0.8),
		},
	}
}

func (r *room) Name() string {
	return r.name
}

func (r *room) Init(ctx context.Context, d viewer.Device) (err error) {
	r.device = d
	if _, err = d.Program(r.shading.Source()); err != nil {
		return err
	}
	if r.floorMesh, err = d.Upload(geometry.Floor(5)); err != nil {
		return err
	}
	if r.cubeMesh, err = d.Upload(geometry.Cube()); err != nil {
		return err
	}
	r.scene = viewer.NewScene()
	r.scene.Add(viewer.DrawFunc(r.drawFloor))
	r.scene.Add(viewer.DrawFunc(r.drawCube))
	r.scene.Add(viewer.DrawFunc(r.drawTable))
	if r.cylinder {
		mesh, err := geometry.Cylinder(20, 10, 1, 1)
		if err != nil {
			return err
		}
		if r.cylMesh, err = d.Upload(mesh); err != nil {
			return err
		}
		r.scene.AddTransparent(viewer.DrawFunc(r.drawCylinder))
	}
	logging.From(ctx).Debug("Scene ready",
		zap.String("demo", r.name),
		zap.Int("objects", r.scene.Len()),
		logging.Vec3("eye", r.camera.Eye()),
		logging.Vec3("light", r.light.Position))
	return nil
}

func (r *room) Resize(width, height int) {
	r.camera.Resize(width, height)
}

func (r *room) Update(dt float32, in *viewer.Input) {
	if r.orbit {
		r.cubeAngle += 2 * math.Pi * dt / cubePeriod
	}
	if r.cylinder {
		r.cylinderAngle += dt / cylinderPeriod * 2 * math.Pi
	}
	if r.controls == nil {
		return
	}
	r.controls.Update(in)
	if in.Pressed(viewer.KeyC) {
		r.cubeScale = mgl32.Clamp(r.cubeScale+0.1, minCubeScale, maxCubeScale)
	}
	if in.Pressed(viewer.KeyV) {
		r.cubeScale = mgl32.Clamp(r.cubeScale-0.1, minCubeScale, maxCubeScale)
	}
}

func (r *room) Draw(p *viewer.Pipeline) error {
	program, err := r.device.Program(r.shading.Source())
	if err != nil {
		return err
	}
	d := p.Device()
	d.ClearColor(white)
	d.Clear()
	d.UseProgram(program)
	p.SetProjection(r.camera.Projection())
	p.Reset(r.camera.View())
	return r.scene.Draw(p)
}

// surface sets the color and the light reflected by the next object
func (r *room) surface(p *viewer.Pipeline, color mgl32.Vec4, m viewer.Material) {
	d := p.Device()
	d.SetColor(color)
	if r.lit {
		d.SetLighting(r.light.Reflect(m, r.camera.View()))
	}
}

func (r *room) drawFloor(p *viewer.Pipeline) error {
	r.surface(p, red, floorMaterial)
	p.Translate(mgl32.Vec3{0, r.floorY, 0})
	return p.Draw(r.floorMesh)
}

func (r *room) drawCube(p *viewer.Pipeline) error {
	r.surface(p, r.cubeColor, cubeMaterial)
	y := mgl32.Vec3{0, 1, 0}
	if r.orbit {
		p.Rotate(r.cubeAngle, y)
		p.Translate(mgl32.Vec3{cubeRadius, 0, 0})
		p.Rotate(-r.cubeAngle, y)
	} else {
		p.Rotate(mgl32.DegToRad(30), y)
	}
	p.Translate(mgl32.Vec3{0, 5, 0})
	if r.orbit {
		p.Scale(mgl32.Vec3{r.cubeScale, r.cubeScale, r.cubeScale})
	}
	return p.Draw(r.cubeMesh)
}

func (r *room) drawTable(p *viewer.Pipeline) error {
	r.surface(p, brown, cubeMaterial)
	p.Push()
	p.Translate(mgl32.Vec3{0, 1, 0})
	p.Scale(mgl32.Vec3{2.5, 0.25, 2.5})
	if err := p.Draw(r.cubeMesh); err != nil {
		return err
	}
	if err := p.Pop(); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		p.Rotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
		p.Push()
		p.Translate(mgl32.Vec3{2, 0, 2})
		p.Scale(mgl32.Vec3{0.25, 1, 0.25})
		if err := p.Draw(r.cubeMesh); err != nil {
			return err
		}
		if err := p.Pop(); err != nil {
			return err
		}
	}
	return nil
}

func (r *room) drawCylinder(p *viewer.Pipeline) error {
	r.surface(p, glassBlue, cylinderMaterial)
	p.Translate(mgl32.Vec3{0, 3, 0})
	p.Rotate(r.cylinderAngle, mgl32.Vec3{0, 0, 1})
	p.Translate(mgl32.Vec3{0, -0.5, 0})
	return p.Draw(r.cylMesh)
}

func (r *room) state() State {
	return State{
		Fovy:      r.camera.Fovy(),
		View:      r.camera.Rotation(),
		Shading:   r.shading,
		CubeScale: r.cubeScale,
	}
}

func (r *room) restore(s State) {
	if s.Fovy > 0 {
		r.camera.SetFovy(s.Fovy)
	}
	if s.View != (mgl32.Mat4{}) {
		r.camera.SetRotation(s.View)
	}
	if s.CubeScale > 0 {
		r.cubeScale = mgl32.Clamp(s.CubeScale, minCubeScale, maxCubeScale)
	}
	if r.lit {
		r.shading = s.Shading
	}
}
