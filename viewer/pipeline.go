package viewer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// ErrStackEmpty is returned when popping a matrix that was never pushed
var ErrStackEmpty = errors.New("matrix stack is empty")

// Pipeline keeps the projection and a model-view matrix stack and uploads
// them to a Device. Transformations multiply the current model-view matrix
// on the right, so the last one applied is the first one seen by vertices.
type Pipeline struct {
	device     Device
	projection mgl32.Mat4
	stack      *matstack.MatStack
}

func NewPipeline(device Device) *Pipeline {
	return &Pipeline{
		device:     device,
		projection: mgl32.Ident4(),
		stack:      matstack.NewMatStack(),
	}
}

func (p *Pipeline) Device() Device {
	return p.device
}

// SetProjection stores and uploads the projection matrix
func (p *Pipeline) SetProjection(m mgl32.Mat4) {
	p.projection = m
	p.device.SetProjection(m)
}

func (p *Pipeline) Projection() mgl32.Mat4 {
	return p.projection
}

// Reset drops all pushed matrices and loads m as model-view matrix
func (p *Pipeline) Reset(m mgl32.Mat4) {
	p.stack = matstack.NewMatStack()
	p.stack.Load(m)
}

func (p *Pipeline) ModelView() mgl32.Mat4 {
	return p.stack.Peek()
}

// NormalMatrix returns the inverse transpose of the upper 3x3 part of the
// model-view matrix
func (p *Pipeline) NormalMatrix() mgl32.Mat3 {
	return p.stack.Peek().Mat3().Inv().Transpose()
}

// Depth returns the number of pushed matrices
func (p *Pipeline) Depth() int {
	return len(*p.stack) - 1
}

// Push saves a copy of the current model-view matrix
func (p *Pipeline) Push() {
	p.stack.Push()
}

// Pop restores the last pushed model-view matrix
func (p *Pipeline) Pop() error {
	if err := p.stack.Pop(); err != nil {
		return ErrStackEmpty
	}
	return nil
}

func (p *Pipeline) Mul(m mgl32.Mat4) {
	p.stack.RightMul(m)
}

func (p *Pipeline) Translate(v mgl32.Vec3) {
	p.stack.RightMul(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate rotates by rads around axis, which does not need to be normalized
func (p *Pipeline) Rotate(rads float32, axis mgl32.Vec3) {
	p.stack.RightMul(mgl32.HomogRotate3D(rads, axis.Normalize()))
}

func (p *Pipeline) Scale(v mgl32.Vec3) {
	p.stack.RightMul(mgl32.Scale3D(v[0], v[1], v[2]))
}

// Upload sends the model-view and normal matrices to the device
func (p *Pipeline) Upload() {
	p.device.SetModelView(p.ModelView())
	p.device.SetNormalMatrix(p.NormalMatrix())
}

// Draw uploads the matrices and draws the mesh
func (p *Pipeline) Draw(mesh MeshID) error {
	p.Upload()
	return p.device.Draw(mesh)
}

// DrawPart uploads the matrices and draws one part of the mesh
func (p *Pipeline) DrawPart(mesh MeshID, part int) error {
	p.Upload()
	return p.device.DrawPart(mesh, part)
}
