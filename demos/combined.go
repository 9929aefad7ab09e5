package demos

import (
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"
)

// Combined is the lit room with the orbiting cube and a transparent
// cylinder spinning above the table. Keys 1, 2 and 3 switch between no
// lighting, Gouraud and Phong shading.
type Combined struct {
	*room
}

func NewCombined(shading shaders.Shading) *Combined {
	r := newRoom("combined")
	r.orbit = true
	r.cylinder = true
	r.lit = true
	r.shading = shading
	r.floorY = -1.001
	r.cubeColor = leafGreen
	r.controls = viewer.NewControls(r.camera)
	return &Combined{room: r}
}

func (c *Combined) Update(dt float32, in *viewer.Input) {
	c.room.Update(dt, in)
	one, two, three := in.Pressed(viewer.Key1), in.Pressed(viewer.Key2), in.Pressed(viewer.Key3)
	switch {
	case one:
		c.shading = shaders.None
	case two:
		c.shading = shaders.GouraudShading
	case three:
		c.shading = shaders.PhongShading
	}
}

// Shading returns the current shading
func (c *Combined) Shading() shaders.Shading {
	return c.shading
}

func (c *Combined) State() State {
	return c.state()
}

func (c *Combined) Restore(s State) {
	c.restore(s)
}
