package opengl

import (
	"testing"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"

	"github.com/stretchr/testify/assert"
)

func TestSourceKey(t *testing.T) {
	all := []shaders.Source{shaders.Colored, shaders.TexturedLit, shaders.Gouraud, shaders.Phong}
	keys := make(map[uint32]string)
	for _, s := range all {
		k := sourceKey(s)
		assert.Equal(t, k, sourceKey(s), "key of %s is stable", s.Name)
		if other, found := keys[k]; found {
			t.Errorf("%s and %s share key %08x", s.Name, other, k)
		}
		keys[k] = s.Name
	}
	renamed := shaders.Colored
	renamed.Name = "other"
	assert.NotEqual(t, sourceKey(shaders.Colored), sourceKey(renamed))
}

func TestErrors(t *testing.T) {
	err := CompileError{Program: "phong", Stage: "fragment", Log: "0:12: syntax error\n"}
	assert.Equal(t, "compiling fragment shader of phong: 0:12: syntax error", err.Error())
	assert.Equal(t, "linking phong: missing main", LinkError{Program: "phong", Log: " missing main"}.Error())
	assert.Equal(t, "draw cube: GL error 0x0502", GLError{Op: "draw cube", Code: 0x0502}.Error())
}

func TestEveryModeIsMapped(t *testing.T) {
	for m := geometry.Points; m <= geometry.TriangleFan; m++ {
		_, found := modes[m]
		assert.True(t, found, "mode %s", m)
	}
}
