// Package demos contains the playground programs. Each demo uploads its
// shaders and meshes to a viewer.Device once in Init, then advances its
// animation in Update and issues its draw calls in Draw on every frame.
package demos

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownDemo is returned by New for names not in Names()
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one playground program
type Demo interface {
	Name() string
	// Init creates the GPU objects of the demo. It is called again after
	// the GPU context was lost and restored.
	Init(ctx context.Context, d viewer.Device) error
	Resize(width, height int)
	// Update advances the demo by dt seconds and applies user input
	Update(dt float32, in *viewer.Input)
	Draw(p *viewer.Pipeline) error
}

// State is the part of a demo worth keeping between runs
type State struct {
	Fovy      float32         `json:"fovy"`
	View      mgl32.Mat4      `json:"view"`
	Shading   shaders.Shading `json:"shading"`
	CubeScale float32         `json:"cubeScale"`
}

// Stateful is implemented by demos whose view can be saved and restored
type Stateful interface {
	State() State
	Restore(State)
}

// Options configures the demos
type Options struct {
	// Texture is the image file shown by the lighting demo
	Texture string
	// Shading is the initial shading of the combined demo
	Shading shaders.Shading
}

type factory func(Options) Demo

var registry = map[string]factory{
	"square":   func(Options) Demo { return NewSquare() },
	"cube":     func(Options) Demo { return NewCube() },
	"lighting": func(o Options) Demo { return NewLighting(o.Texture) },
	"phong":    func(Options) Demo { return NewPhong() },
	"shapes":   func(Options) Demo { return NewShapes() },
	"matrices": func(Options) Demo { return NewMatrices() },
	"animated": func(Options) Demo { return NewAnimated() },
	"combined": func(o Options) Demo { return NewCombined(o.Shading) },
}

// Names returns the names of all demos, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the demo with the given name
func New(name string, o Options) (Demo, error) {
	f, found := registry[name]
	if !found {
		return nil, fmt.Errorf("%w '%s', expected one of %v", ErrUnknownDemo, name, Names())
	}
	return f(o), nil
}
