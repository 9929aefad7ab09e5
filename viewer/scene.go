package viewer

import "fmt"

// Drawable can be drawn through a pipeline
type Drawable interface {
	Draw(p *Pipeline) error
}

// DrawFunc adapts a function to a Drawable
type DrawFunc func(p *Pipeline) error

func (f DrawFunc) Draw(p *Pipeline) error {
	return f(p)
}

// Scene draws opaque objects first, then transparent objects with blending
// enabled and depth writes disabled. Each object is drawn on its own copy
// of the model-view matrix.
type Scene struct {
	opaque      []Drawable
	transparent []Drawable
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(d Drawable) {
	s.opaque = append(s.opaque, d)
}

func (s *Scene) AddTransparent(d Drawable) {
	s.transparent = append(s.transparent, d)
}

func (s *Scene) Len() int {
	return len(s.opaque) + len(s.transparent)
}

func (s *Scene) Draw(p *Pipeline) error {
	device := p.Device()
	device.SetBlending(false)
	if err := drawAll(p, s.opaque); err != nil {
		return err
	}
	if len(s.transparent) == 0 {
		return nil
	}
	device.SetBlending(true)
	defer device.SetBlending(false)
	return drawAll(p, s.transparent)
}

func drawAll(p *Pipeline, objects []Drawable) error {
	for i, o := range objects {
		depth := p.Depth()
		p.Push()
		err := o.Draw(p)
		if popErr := p.Pop(); popErr != nil && err == nil {
			err = popErr
		}
		if err != nil {
			return fmt.Errorf("drawing object %d: %w", i, err)
		}
		if p.Depth() != depth {
			return fmt.Errorf("drawing object %d: unbalanced matrix stack, depth %d instead of %d", i, p.Depth(), depth)
		}
	}
	return nil
}
