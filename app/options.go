package app

import (
	"errors"
	"fmt"
	"os"

	"bitbucket.org/kleinnic74/glplayground/consts"
	"bitbucket.org/kleinnic74/glplayground/demos"
	"bitbucket.org/kleinnic74/glplayground/shaders"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is wrapped by the errors of Options.Validate
var ErrInvalidOptions = errors.New("invalid options")

type Options struct {
	Demo      string          `yaml:"demo" json:"demo"`
	Width     int             `yaml:"width" json:"width"`
	Height    int             `yaml:"height" json:"height"`
	Title     string          `yaml:"title" json:"title"`
	TargetFps int             `yaml:"targetFps" json:"targetFps"`
	VSync     bool            `yaml:"vsync" json:"vsync"`
	Texture   string          `yaml:"texture" json:"texture"`
	Shading   shaders.Shading `yaml:"shading" json:"shading"`
	Prefs     string          `yaml:"prefs" json:"prefs"`
	DebugAddr string          `yaml:"debugAddr" json:"debugAddr"`
}

func DefaultOptions() Options {
	return Options{
		Demo:      "combined",
		Width:     640,
		Height:    480,
		Title:     consts.AppName,
		TargetFps: 60,
		VSync:     true,
		Shading:   shaders.None,
		Prefs:     consts.AppName + ".db",
	}
}

// LoadOptions reads the YAML options file at path on top of the defaults.
// A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return o, nil
	} else if err != nil {
		return o, fmt.Errorf("reading options: %w", err)
	}
	if err = yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parsing options %s: %w", path, err)
	}
	return o, nil
}

func (o Options) Validate() error {
	if _, err := demos.New(o.Demo, demos.Options{}); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.TargetFps < 0 {
		return fmt.Errorf("%w: negative target fps %d", ErrInvalidOptions, o.TargetFps)
	}
	return nil
}

func (o Options) demoOptions() demos.Options {
	return demos.Options{Texture: o.Texture, Shading: o.Shading}
}
