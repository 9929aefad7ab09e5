// Package shaders holds the GLSL programs used by the demos.
//
// All programs share the same vertex attribute locations and uniform names,
// so any mesh can be drawn with any program: attributes missing from a mesh
// are left disabled and read their constant value.
package shaders

// Vertex attribute locations
const (
	PositionAttrib = 0
	NormalAttrib   = 1
	ColorAttrib    = 2
	TexCoordAttrib = 3
)

// Uniform names
const (
	ProjectionUniform    = "uProjection"
	ModelViewUniform     = "uModelView"
	NormalMatrixUniform  = "uNormalMatrix"
	LightPositionUniform = "uLightPosition"
	AmbientLightUniform  = "uAmbientLight"
	DiffuseLightUniform  = "uDiffuseLight"
	SpecularLightUniform = "uSpecularLight"
	SamplerUniform       = "uSampler"
)

// Uniforms lists every uniform name a program may declare
var Uniforms = []string{
	ProjectionUniform,
	ModelViewUniform,
	NormalMatrixUniform,
	LightPositionUniform,
	AmbientLightUniform,
	DiffuseLightUniform,
	SpecularLightUniform,
	SamplerUniform,
}

// Source is a vertex and fragment shader pair
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Colored passes the vertex color through without lighting
var Colored = Source{
	Name: "colored",
	Vertex: `#version 410 core
layout(location = 0) in vec4 aPosition;
layout(location = 2) in vec4 aColor;

uniform mat4 uProjection;
uniform mat4 uModelView;

out vec4 vColor;

void main() {
	gl_Position = uProjection * uModelView * aPosition;
	vColor = aColor;
}
`,
	Fragment: `#version 410 core
in vec4 vColor;
out vec4 fragColor;

void main() {
	fragColor = vColor;
}
`,
}

// TexturedLit samples a texture and applies a fixed white directional light
var TexturedLit = Source{
	Name: "textured-lit",
	Vertex: `#version 410 core
layout(location = 0) in vec4 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 3) in vec2 aTexCoord;

uniform mat4 uProjection;
uniform mat4 uModelView;
uniform mat3 uNormalMatrix;

out vec2 vTexCoord;
out vec3 vLighting;

void main() {
	gl_Position = uProjection * uModelView * aPosition;
	vTexCoord = aTexCoord;

	vec3 ambient = vec3(0.3, 0.3, 0.3);
	vec3 directionalColor = vec3(1.0, 1.0, 1.0);
	vec3 direction = normalize(vec3(0.85, 0.8, 0.75));
	vec3 normal = normalize(uNormalMatrix * aNormal);
	float directional = max(dot(normal, direction), 0.0);
	vLighting = ambient + directionalColor * directional;
}
`,
	Fragment: `#version 410 core
in vec2 vTexCoord;
in vec3 vLighting;

uniform sampler2D uSampler;

out vec4 fragColor;

void main() {
	vec4 texel = texture(uSampler, vTexCoord);
	fragColor = vec4(texel.rgb * vLighting, texel.a);
}
`,
}

// Gouraud computes Phong reflection per vertex and interpolates the color
var Gouraud = Source{
	Name: "gouraud",
	Vertex: `#version 410 core
layout(location = 0) in vec4 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec4 aColor;

uniform mat4 uProjection;
uniform mat4 uModelView;
uniform mat3 uNormalMatrix;
uniform vec3 uLightPosition;
uniform vec3 uAmbientLight;
uniform vec3 uDiffuseLight;
uniform vec3 uSpecularLight;

out vec4 vColor;

const float shininess = 32.0;

void main() {
	vec4 eyePosition = uModelView * aPosition;
	gl_Position = uProjection * eyePosition;

	vec3 position = eyePosition.xyz / eyePosition.w;
	vec3 normal = normalize(uNormalMatrix * aNormal);
	vec3 toLight = normalize(uLightPosition - position);
	vec3 reflected = reflect(-toLight, normal);
	vec3 toEye = normalize(-position);

	float diffuse = max(dot(normal, toLight), 0.0);
	float specular = 0.0;
	if (diffuse > 0.0) {
		specular = pow(max(dot(reflected, toEye), 0.0), shininess);
	}
	vec3 light = uAmbientLight + uDiffuseLight * diffuse;
	vColor = vec4(aColor.rgb * light + uSpecularLight * specular, aColor.a);
}
`,
	Fragment: `#version 410 core
in vec4 vColor;
out vec4 fragColor;

void main() {
	fragColor = vColor;
}
`,
}

// Phong interpolates normals and computes the reflection per fragment
var Phong = Source{
	Name: "phong",
	Vertex: `#version 410 core
layout(location = 0) in vec4 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec4 aColor;

uniform mat4 uProjection;
uniform mat4 uModelView;
uniform mat3 uNormalMatrix;

out vec3 vPosition;
out vec3 vNormal;
out vec4 vColor;

void main() {
	vec4 eyePosition = uModelView * aPosition;
	gl_Position = uProjection * eyePosition;
	vPosition = eyePosition.xyz / eyePosition.w;
	vNormal = uNormalMatrix * aNormal;
	vColor = aColor;
}
`,
	Fragment: `#version 410 core
in vec3 vPosition;
in vec3 vNormal;
in vec4 vColor;

uniform vec3 uLightPosition;
uniform vec3 uAmbientLight;
uniform vec3 uDiffuseLight;
uniform vec3 uSpecularLight;

out vec4 fragColor;

const float shininess = 32.0;

void main() {
	vec3 normal = normalize(vNormal);
	vec3 toLight = normalize(uLightPosition - vPosition);
	vec3 reflected = reflect(-toLight, normal);
	vec3 toEye = normalize(-vPosition);

	float diffuse = max(dot(normal, toLight), 0.0);
	float specular = 0.0;
	if (diffuse > 0.0) {
		specular = pow(max(dot(reflected, toEye), 0.0), shininess);
	}
	vec3 light = uAmbientLight + uDiffuseLight * diffuse;
	fragColor = vec4(vColor.rgb * light + uSpecularLight * specular, vColor.a);
}
`,
}
