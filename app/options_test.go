package app

import (
	"os"
	"path/filepath"
	"testing"

	"bitbucket.org/kleinnic74/glplayground/shaders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsMissingFile(t *testing.T) {
	o, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), o)
	assert.NoError(t, o.Validate())
}

func TestDefaultOptionsStartUnlit(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, shaders.None, o.Shading)
	assert.Equal(t, shaders.None, o.demoOptions().Shading)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	content := "demo: animated\nwidth: 1024\nshading: gouraud\nvsync: false\ndebugAddr: localhost:7070\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o, err := LoadOptions(path)
	require.NoError(t, err)
	expected := DefaultOptions()
	expected.Demo = "animated"
	expected.Width = 1024
	expected.Shading = shaders.GouraudShading
	expected.VSync = false
	expected.DebugAddr = "localhost:7070"
	assert.Equal(t, expected, o)
}

func TestLoadOptionsBadYAML(t *testing.T) {
	testdata := map[string]string{
		"syntax":  "demo: [combined\n",
		"type":    "width: wide\n",
		"shading": "shading: toon\n",
	}
	for name, content := range testdata {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "playground.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := LoadOptions(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	testdata := []struct {
		name   string
		modify func(*Options)
		valid  bool
	}{
		{"defaults", func(*Options) {}, true},
		{"unknown demo", func(o *Options) { o.Demo = "teapot" }, false},
		{"zero width", func(o *Options) { o.Width = 0 }, false},
		{"negative height", func(o *Options) { o.Height = -1 }, false},
		{"negative fps", func(o *Options) { o.TargetFps = -1 }, false},
		{"unpaced", func(o *Options) { o.TargetFps = 0 }, true},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			o := DefaultOptions()
			d.modify(&o)
			err := o.Validate()
			if d.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			}
		})
	}
}
