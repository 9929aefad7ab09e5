package shaders

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesDeclareCommonInterface(t *testing.T) {
	for _, s := range []Source{Colored, TexturedLit, Gouraud, Phong} {
		t.Run(s.Name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(s.Vertex, "#version 410"))
			assert.True(t, strings.HasPrefix(s.Fragment, "#version 410"))
			assert.NotContains(t, s.Vertex+s.Fragment, "\x00")
			assert.Contains(t, s.Vertex, fmt.Sprintf("location = %d) in vec4 aPosition", PositionAttrib))
			assert.Contains(t, s.Vertex, ProjectionUniform)
			assert.Contains(t, s.Vertex, ModelViewUniform)
		})
	}
}

func TestLitSourcesDeclareLightUniforms(t *testing.T) {
	for _, s := range []Source{Gouraud, Phong} {
		all := s.Vertex + s.Fragment
		for _, u := range []string{LightPositionUniform, AmbientLightUniform, DiffuseLightUniform, SpecularLightUniform, NormalMatrixUniform} {
			assert.Contains(t, all, u, "%s misses %s", s.Name, u)
		}
	}
}

func TestShading(t *testing.T) {
	testdata := []struct {
		name    string
		shading Shading
		source  Source
	}{
		{"none", None, Colored},
		{"gouraud", GouraudShading, Gouraud},
		{"phong", PhongShading, Phong},
	}
	for _, d := range testdata {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.name, d.shading.String())
			assert.Equal(t, d.source.Name, d.shading.Source().Name)
			parsed, err := ParseShading(strings.ToUpper(d.name))
			require.NoError(t, err)
			assert.Equal(t, d.shading, parsed)
		})
	}
	_, err := ParseShading("flat")
	assert.Error(t, err)
	assert.Equal(t, "shading(7)", Shading(7).String())
}

func TestShadingJSON(t *testing.T) {
	var v struct {
		Shading Shading `json:"shading"`
	}
	v.Shading = PhongShading
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shading":"phong"}`, string(data))
	require.NoError(t, json.Unmarshal([]byte(`{"shading":"gouraud"}`), &v))
	assert.Equal(t, GouraudShading, v.Shading)
}
