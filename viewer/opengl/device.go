// Package opengl implements viewer.Device on top of an OpenGL 4.1 core
// context.
package opengl

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kleinnic74/fflags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/reusee/mmh3"
	"go.uber.org/zap"
)

var (
	drawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glplayground_draw_calls_total",
		Help: "Number of draw calls issued to OpenGL",
	})
	glErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glplayground_gl_errors_total",
		Help: "Number of errors reported by glGetError",
	})
	programBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glplayground_program_builds_total",
		Help: "Number of shader programs compiled and linked",
	})
)

// GLError is an error code reported by glGetError
type GLError struct {
	Op   string
	Code uint32
}

func (e GLError) Error() string {
	return fmt.Sprintf("%s: GL error 0x%04x", e.Op, e.Code)
}

// Device draws into the OpenGL context current on the calling thread
type Device struct {
	logger      *zap.Logger
	checkErrors bool

	nextID   uint32
	programs map[viewer.ProgramID]*program
	cache    map[uint32]viewer.ProgramID
	meshes   map[viewer.MeshID]*vao
	textures map[viewer.TextureID]uint32

	current    *program
	projection mgl32.Mat4
	modelView  mgl32.Mat4
	normal     mgl32.Mat3
	color      mgl32.Vec4
	lighting   viewer.Lighting
}

var _ viewer.Device = (*Device)(nil)

// NewDevice loads the OpenGL functions of the current context
func NewDevice(ctx context.Context) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger, _ := logging.SubFrom(ctx, "opengl")
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))))
	d := &Device{
		logger:     logger,
		projection: mgl32.Ident4(),
		modelView:  mgl32.Ident4(),
		normal:     mgl32.Ident3(),
		color:      mgl32.Vec4{1, 1, 1, 1},
	}
	d.reset()
	fflags.IfEnabled(fflags.Define("gl.checkerrors"), func() error {
		d.checkErrors = true
		logger.Info("Checking GL errors after every draw")
		return nil
	})
	d.setup()
	return d, nil
}

func (d *Device) reset() {
	d.programs = make(map[viewer.ProgramID]*program)
	d.cache = make(map[uint32]viewer.ProgramID)
	d.meshes = make(map[viewer.MeshID]*vao)
	d.textures = make(map[viewer.TextureID]uint32)
	d.current = nil
}

func (d *Device) setup() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func sourceKey(src shaders.Source) uint32 {
	h := mmh3.New32()
	h.Write([]byte(src.Name))
	h.Write([]byte{0})
	h.Write([]byte(src.Vertex))
	h.Write([]byte{0})
	h.Write([]byte(src.Fragment))
	return binary.BigEndian.Uint32(h.Sum(nil))
}

// Program builds the program, or returns the one already built from the
// same sources
func (d *Device) Program(src shaders.Source) (viewer.ProgramID, error) {
	key := sourceKey(src)
	if id, found := d.cache[key]; found {
		return id, nil
	}
	p, err := linkProgram(src)
	if err != nil {
		return 0, err
	}
	programBuilds.Inc()
	id := viewer.ProgramID(d.id())
	d.programs[id] = p
	d.cache[key] = id
	d.logger.Debug("Linked program", zap.String("program", src.Name), zap.Uint32("id", uint32(id)))
	return id, nil
}

// UseProgram switches programs and uploads the current uniform values
func (d *Device) UseProgram(id viewer.ProgramID) {
	p, found := d.programs[id]
	if !found {
		d.logger.Warn("Using unknown program", zap.Uint32("id", uint32(id)))
		return
	}
	gl.UseProgram(p.prog)
	d.current = p
	gl.Uniform1i(p.location(shaders.SamplerUniform), 0)
	d.SetProjection(d.projection)
	d.SetModelView(d.modelView)
	d.SetNormalMatrix(d.normal)
	d.SetLighting(d.lighting)
}

func (d *Device) Upload(mesh *geometry.Mesh) (viewer.MeshID, error) {
	if err := mesh.Validate(); err != nil {
		return 0, err
	}
	v := uploadMesh(mesh)
	id := viewer.MeshID(d.id())
	d.meshes[id] = v
	return id, d.check("upload " + mesh.Name)
}

func (d *Device) Texture(img image.Image) (viewer.TextureID, error) {
	if img.Bounds().Empty() {
		return 0, fmt.Errorf("empty texture")
	}
	tex := uploadTexture(img)
	id := viewer.TextureID(d.id())
	d.textures[id] = tex
	return id, d.check("upload texture")
}

func (d *Device) BindTexture(id viewer.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.textures[id])
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) SetBlending(enabled bool) {
	if enabled {
		gl.DepthMask(false)
		gl.Enable(gl.BLEND)
	} else {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (d *Device) SetProjection(m mgl32.Mat4) {
	d.projection = m
	if d.current != nil {
		gl.UniformMatrix4fv(d.current.location(shaders.ProjectionUniform), 1, false, &m[0])
	}
}

func (d *Device) SetModelView(m mgl32.Mat4) {
	d.modelView = m
	if d.current != nil {
		gl.UniformMatrix4fv(d.current.location(shaders.ModelViewUniform), 1, false, &m[0])
	}
}

func (d *Device) SetNormalMatrix(m mgl32.Mat3) {
	d.normal = m
	if d.current != nil {
		gl.UniformMatrix3fv(d.current.location(shaders.NormalMatrixUniform), 1, false, &m[0])
	}
}

func (d *Device) SetColor(c mgl32.Vec4) {
	d.color = c
}

func (d *Device) SetLighting(l viewer.Lighting) {
	d.lighting = l
	if d.current == nil {
		return
	}
	for name, v := range map[string]mgl32.Vec3{
		shaders.LightPositionUniform: l.Position,
		shaders.AmbientLightUniform:  l.Ambient,
		shaders.DiffuseLightUniform:  l.Diffuse,
		shaders.SpecularLightUniform: l.Specular,
	} {
		gl.Uniform3fv(d.current.location(name), 1, &v[0])
	}
}

func (d *Device) mesh(id viewer.MeshID) (*vao, error) {
	v, found := d.meshes[id]
	if !found {
		return nil, fmt.Errorf("%w: %d", viewer.ErrUnknownMesh, id)
	}
	v.bind()
	if !v.hasColors {
		gl.VertexAttrib4f(shaders.ColorAttrib, d.color[0], d.color[1], d.color[2], d.color[3])
	}
	return v, nil
}

func (d *Device) Draw(id viewer.MeshID) error {
	v, err := d.mesh(id)
	if err != nil {
		return err
	}
	for i := range v.parts {
		v.drawPart(i)
		drawCalls.Inc()
	}
	return d.check("draw " + v.name)
}

func (d *Device) DrawPart(id viewer.MeshID, part int) error {
	v, err := d.mesh(id)
	if err != nil {
		return err
	}
	if part < 0 || part >= len(v.parts) {
		return fmt.Errorf("%w: %s has no part %d", viewer.ErrUnknownPart, v.name, part)
	}
	v.drawPart(part)
	drawCalls.Inc()
	return d.check("draw " + v.name)
}

func (d *Device) check(op string) error {
	if !d.checkErrors {
		return nil
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		glErrors.Inc()
		return GLError{Op: op, Code: code}
	}
	return nil
}

// Release deletes all programs, meshes and textures. The device can be used
// again afterwards, for instance once a lost context is restored.
func (d *Device) Release() {
	gl.UseProgram(0)
	for _, p := range d.programs {
		p.delete()
	}
	for _, v := range d.meshes {
		v.delete()
	}
	for _, t := range d.textures {
		tex := t
		gl.DeleteTextures(1, &tex)
	}
	d.logger.Info("Released GPU objects",
		zap.Int("programs", len(d.programs)),
		zap.Int("meshes", len(d.meshes)),
		zap.Int("textures", len(d.textures)))
	d.reset()
	d.setup()
}
