package demos

import (
	"math"

	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

var black = mgl32.Vec4{0, 0, 0, 1}

// fixedCamera sits at the origin looking down the negative z axis
func fixedCamera() *viewer.Camera {
	return viewer.NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(45))
}

// spin turns an object a quarter turn per second around (1,1,1) and y,
// 6 units in front of the camera
type spin struct {
	rotation float32
}

func (s *spin) update(dt float32) {
	s.rotation += dt * math.Pi / 2
}

func (s *spin) apply(p *viewer.Pipeline) {
	p.Translate(mgl32.Vec3{0, 0, -6})
	p.Rotate(s.rotation, mgl32.Vec3{1, 1, 1})
	p.Rotate(s.rotation, mgl32.Vec3{0, 1, 0})
}

// begin clears the frame and resets the matrices for a fixed camera
func begin(p *viewer.Pipeline, camera *viewer.Camera, program viewer.ProgramID, clear mgl32.Vec4) {
	d := p.Device()
	d.ClearColor(clear)
	d.Clear()
	d.UseProgram(program)
	p.SetProjection(camera.Projection())
	p.Reset(camera.View())
}
