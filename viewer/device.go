// Package viewer holds the rendering pipeline shared by the demos: the
// Device abstraction over the GPU context, the model-view matrix stack, the
// camera, input handling, scenes and frame timing.
package viewer

import (
	"errors"
	"image"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"

	"github.com/go-gl/mathgl/mgl32"
)

// ProgramID identifies a linked shader program on a Device
type ProgramID uint32

// MeshID identifies an uploaded mesh on a Device
type MeshID uint32

// TextureID identifies an uploaded texture on a Device
type TextureID uint32

var (
	// ErrUnknownMesh is returned when drawing a mesh that was not uploaded
	// or was released
	ErrUnknownMesh = errors.New("unknown mesh")
	// ErrUnknownPart is returned when drawing a part a mesh does not have
	ErrUnknownPart = errors.New("unknown mesh part")
)

// Device is a GPU context. All calls must happen on the thread owning the
// context. Uniform setters apply to the program in use.
type Device interface {
	// Program compiles and links the given shaders
	Program(src shaders.Source) (ProgramID, error)
	UseProgram(id ProgramID)

	// Upload copies the mesh attributes and indices into GPU buffers
	Upload(mesh *geometry.Mesh) (MeshID, error)

	Texture(img image.Image) (TextureID, error)
	BindTexture(id TextureID)

	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	// SetBlending switches between the opaque pass (depth writes, no
	// blending) and the transparent pass (no depth writes, alpha blending)
	SetBlending(enabled bool)

	SetProjection(m mgl32.Mat4)
	SetModelView(m mgl32.Mat4)
	SetNormalMatrix(m mgl32.Mat3)
	// SetColor sets the constant color used by meshes without colors
	SetColor(c mgl32.Vec4)
	SetLighting(l Lighting)

	// Draw draws all parts of the mesh
	Draw(id MeshID) error
	DrawPart(id MeshID, part int) error

	// Release deletes every GPU object created through this device
	Release()
}
