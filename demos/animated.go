package demos

import "bitbucket.org/kleinnic74/glplayground/viewer"

// Animated is the room with the cube orbiting the table every two seconds.
// The camera follows the keyboard and mouse, c and v grow and shrink the
// cube.
type Animated struct {
	*room
}

func NewAnimated() *Animated {
	r := newRoom("animated")
	r.orbit = true
	r.controls = viewer.NewControls(r.camera)
	return &Animated{room: r}
}

func (a *Animated) State() State {
	return a.state()
}

func (a *Animated) Restore(s State) {
	a.restore(s)
}
