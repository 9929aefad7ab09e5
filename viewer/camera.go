package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Field of view limits in radians
const (
	MinFovy = 0.1
	MaxFovy = math.Pi - 0.1
)

// Camera is a perspective camera looking from Eye at Target. Rotations
// applied by the user accumulate in a view matrix multiplied after the
// look-at transform.
type Camera struct {
	eye, target, up mgl32.Vec3
	fovy            float32
	near, far       float32
	width, height   int
	rotation        mgl32.Mat4
	projection      mgl32.Mat4
	dirty           bool
}

// NewCamera creates a camera with the given field of view in radians and
// a [0.1, 100] depth range
func NewCamera(eye, target, up mgl32.Vec3, fovy float32) *Camera {
	return &Camera{
		eye:      eye,
		target:   target,
		up:       up,
		fovy:     clampFovy(fovy),
		near:     0.1,
		far:      100,
		width:    1,
		height:   1,
		rotation: mgl32.Ident4(),
		dirty:    true,
	}
}

func (c *Camera) Eye() mgl32.Vec3 {
	return c.eye
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Right returns the axis used for vertical rotations
func (c *Camera) Right() mgl32.Vec3 {
	return c.up.Cross(c.target.Sub(c.eye).Normalize())
}

func (c *Camera) Fovy() float32 {
	return c.fovy
}

func (c *Camera) SetFovy(fovy float32) {
	c.fovy = clampFovy(fovy)
	c.dirty = true
}

// Zoom multiplies the field of view by f
func (c *Camera) Zoom(f float32) {
	c.SetFovy(c.fovy * f)
}

func (c *Camera) SetDepthRange(near, far float32) {
	c.near, c.far = near, far
	c.dirty = true
}

func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.dirty = c.dirty || c.width != width || c.height != height
	c.width, c.height = width, height
}

func (c *Camera) Aspect() float32 {
	return float32(c.width) / float32(c.height)
}

func (c *Camera) Projection() mgl32.Mat4 {
	if c.dirty {
		c.projection = mgl32.Perspective(c.fovy, c.Aspect(), c.near, c.far)
		c.dirty = false
	}
	return c.projection
}

// LookAt returns the view matrix without the user rotation
func (c *Camera) LookAt() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

// View returns the look-at matrix followed by the user rotation
func (c *Camera) View() mgl32.Mat4 {
	return c.LookAt().Mul4(c.rotation)
}

func (c *Camera) Rotation() mgl32.Mat4 {
	return c.rotation
}

func (c *Camera) SetRotation(m mgl32.Mat4) {
	c.rotation = m
}

// Rotate adds a rotation of rads around axis before the current rotation
func (c *Camera) Rotate(rads float32, axis mgl32.Vec3) {
	c.rotation = mgl32.HomogRotate3D(rads, axis.Normalize()).Mul4(c.rotation)
}

// RotateHorizontal rotates around the up axis
func (c *Camera) RotateHorizontal(rads float32) {
	c.Rotate(rads, c.up)
}

// RotateVertical rotates around the right axis
func (c *Camera) RotateVertical(rads float32) {
	c.Rotate(rads, c.Right())
}

// ResetView drops all user rotations
func (c *Camera) ResetView() {
	c.rotation = mgl32.Ident4()
}

func clampFovy(fovy float32) float32 {
	return mgl32.Clamp(fovy, MinFovy, MaxFovy)
}
