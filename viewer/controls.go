package viewer

import "github.com/go-gl/mathgl/mgl32"

// Controls moves a camera from the keyboard and mouse
//
//	left/right  rotate around the up axis
//	up/down     rotate around the right axis
//	z/x         widen/narrow the field of view
//	r           reset the view
//	mouse drag  rotate, one degree per pixel
type Controls struct {
	Camera *Camera
	// Step is the rotation per frame a held arrow key applies
	Step float32
	// DragStep is the rotation per pixel of mouse movement
	DragStep float32
}

func NewControls(c *Camera) *Controls {
	return &Controls{
		Camera:   c,
		Step:     mgl32.DegToRad(5),
		DragStep: mgl32.DegToRad(1),
	}
}

func (c *Controls) Update(in *Input) {
	if in.Pressed(KeyZ) {
		c.Camera.Zoom(1.1)
	}
	if in.Pressed(KeyX) {
		c.Camera.Zoom(0.9)
	}
	if in.Pressed(KeyLeft) {
		c.Camera.RotateHorizontal(-c.Step)
	}
	if in.Pressed(KeyRight) {
		c.Camera.RotateHorizontal(c.Step)
	}
	if in.Pressed(KeyUp) {
		c.Camera.RotateVertical(c.Step)
	}
	if in.Pressed(KeyDown) {
		c.Camera.RotateVertical(-c.Step)
	}
	if in.Pressed(KeyR) {
		c.Camera.ResetView()
	}
	if dx, dy, ok := in.Drag(); ok && (dx != 0 || dy != 0) {
		c.Camera.RotateHorizontal(float32(dx) * c.DragStep)
		c.Camera.RotateVertical(float32(-dy) * c.DragStep)
	}
}
