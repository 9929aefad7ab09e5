// Package viewertest provides an in-memory viewer.Device for tests.
package viewertest

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded Device call
type Call struct {
	Op   string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// DrawCall is a recorded Draw or DrawPart call with the state it used
type DrawCall struct {
	Mesh       *geometry.Mesh
	Part       int
	Program    shaders.Source
	Texture    image.Image
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
	Normal     mgl32.Mat3
	Color      mgl32.Vec4
	Lighting   viewer.Lighting
	Blending   bool
}

var _ viewer.Device = (*Recorder)(nil)

// Recorder is a viewer.Device keeping uploaded objects in memory and
// recording every call
type Recorder struct {
	lock sync.Mutex

	// FailProgram makes Program fail for sources with this name
	FailProgram string

	Calls []Call
	Draws []DrawCall

	programs map[viewer.ProgramID]shaders.Source
	meshes   map[viewer.MeshID]*geometry.Mesh
	textures map[viewer.TextureID]image.Image
	nextID   uint32

	current    viewer.ProgramID
	texture    viewer.TextureID
	width      int
	height     int
	clearColor mgl32.Vec4
	projection mgl32.Mat4
	modelView  mgl32.Mat4
	normal     mgl32.Mat3
	color      mgl32.Vec4
	lighting   viewer.Lighting
	blending   bool
	released   int
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.reset()
	return r
}

func (r *Recorder) reset() {
	r.programs = make(map[viewer.ProgramID]shaders.Source)
	r.meshes = make(map[viewer.MeshID]*geometry.Mesh)
	r.textures = make(map[viewer.TextureID]image.Image)
	r.current = 0
	r.texture = 0
	r.projection = mgl32.Ident4()
	r.modelView = mgl32.Ident4()
	r.normal = mgl32.Ident3()
	r.color = mgl32.Vec4{1, 1, 1, 1}
}

func (r *Recorder) record(op string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) Program(src shaders.Source) (viewer.ProgramID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Program", src.Name)
	if src.Name == r.FailProgram {
		return 0, fmt.Errorf("compiling %s: forced failure", src.Name)
	}
	id := viewer.ProgramID(r.id())
	r.programs[id] = src
	return id, nil
}

func (r *Recorder) UseProgram(id viewer.ProgramID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("UseProgram", r.programs[id].Name)
	r.current = id
}

func (r *Recorder) Upload(mesh *geometry.Mesh) (viewer.MeshID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Upload", mesh.Name)
	if err := mesh.Validate(); err != nil {
		return 0, err
	}
	id := viewer.MeshID(r.id())
	r.meshes[id] = mesh
	return id, nil
}

func (r *Recorder) Texture(img image.Image) (viewer.TextureID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Texture", img.Bounds().Dx(), img.Bounds().Dy())
	id := viewer.TextureID(r.id())
	r.textures[id] = img
	return id, nil
}

func (r *Recorder) BindTexture(id viewer.TextureID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("BindTexture", id)
	r.texture = id
}

func (r *Recorder) Viewport(width, height int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Viewport", width, height)
	r.width, r.height = width, height
}

func (r *Recorder) ClearColor(c mgl32.Vec4) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("ClearColor", c)
	r.clearColor = c
}

func (r *Recorder) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Clear")
}

func (r *Recorder) SetBlending(enabled bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetBlending", enabled)
	r.blending = enabled
}

func (r *Recorder) SetProjection(m mgl32.Mat4) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetProjection")
	r.projection = m
}

func (r *Recorder) SetModelView(m mgl32.Mat4) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetModelView")
	r.modelView = m
}

func (r *Recorder) SetNormalMatrix(m mgl32.Mat3) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetNormalMatrix")
	r.normal = m
}

func (r *Recorder) SetColor(c mgl32.Vec4) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetColor", c)
	r.color = c
}

func (r *Recorder) SetLighting(l viewer.Lighting) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("SetLighting")
	r.lighting = l
}

func (r *Recorder) Draw(id viewer.MeshID) error {
	return r.draw("Draw", id, -1)
}

func (r *Recorder) DrawPart(id viewer.MeshID, part int) error {
	return r.draw("DrawPart", id, part)
}

func (r *Recorder) draw(op string, id viewer.MeshID, part int) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	mesh, found := r.meshes[id]
	if !found {
		r.record(op, id, part)
		return fmt.Errorf("%w: %d", viewer.ErrUnknownMesh, id)
	}
	r.record(op, mesh.Name, part)
	if part >= len(mesh.Parts) {
		return fmt.Errorf("%w: %s has no part %d", viewer.ErrUnknownPart, mesh.Name, part)
	}
	r.Draws = append(r.Draws, DrawCall{
		Mesh:       mesh,
		Part:       part,
		Program:    r.programs[r.current],
		Texture:    r.textures[r.texture],
		Projection: r.projection,
		ModelView:  r.modelView,
		Normal:     r.normal,
		Color:      r.color,
		Lighting:   r.lighting,
		Blending:   r.blending,
	})
	return nil
}

func (r *Recorder) Release() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("Release")
	r.released++
	r.reset()
}

// Released returns how many times Release was called
func (r *Recorder) Released() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.released
}

// Meshes returns the number of live meshes
func (r *Recorder) Meshes() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.meshes)
}

// ClearedWith returns the last clear color
func (r *Recorder) ClearedWith() mgl32.Vec4 {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.clearColor
}

// ViewportSize returns the last viewport size
func (r *Recorder) ViewportSize() (int, int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.width, r.height
}

// DrawsOf returns the recorded draws of the named mesh
func (r *Recorder) DrawsOf(mesh string) []DrawCall {
	r.lock.Lock()
	defer r.lock.Unlock()
	var out []DrawCall
	for _, d := range r.Draws {
		if d.Mesh.Name == mesh {
			out = append(out, d)
		}
	}
	return out
}

// Ops returns the names of the recorded calls, separated by spaces
func (r *Recorder) Ops() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return strings.Join(ops, " ")
}

// ResetCalls forgets the recorded calls and draws, keeping uploaded objects
func (r *Recorder) ResetCalls() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Calls = nil
	r.Draws = nil
}
