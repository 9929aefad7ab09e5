package demos

import (
	"context"
	"image"
	"os"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"go.uber.org/zap"
)

// Lighting spins a textured cube under a directional light. A blue pixel
// stands in for the texture until the image file is decoded.
type Lighting struct {
	path    string
	camera  *viewer.Camera
	program viewer.ProgramID
	cube    viewer.MeshID
	texture viewer.TextureID
	spin    spin

	device viewer.Device
	loaded chan image.Image
	logger *zap.Logger
}

func NewLighting(texturePath string) *Lighting {
	return &Lighting{path: texturePath, camera: fixedCamera()}
}

func (l *Lighting) Name() string {
	return "lighting"
}

func (l *Lighting) Init(ctx context.Context, d viewer.Device) (err error) {
	l.logger, ctx = logging.SubFrom(ctx, "lighting")
	l.device = d
	if l.program, err = d.Program(shaders.TexturedLit); err != nil {
		return err
	}
	if l.cube, err = d.Upload(geometry.Cube()); err != nil {
		return err
	}
	if l.texture, err = d.Texture(viewer.Placeholder()); err != nil {
		return err
	}
	l.loaded = nil
	if l.path != "" {
		loaded := make(chan image.Image, 1)
		l.loaded = loaded
		go l.load(ctx, l.path, loaded)
	}
	return nil
}

// load decodes the texture file and hands it to the frame loop through out.
// A load still running from a previous Init owns its own channel.
func (l *Lighting) load(ctx context.Context, path string, out chan<- image.Image) {
	defer close(out)
	logger := logging.From(ctx).With(zap.String("path", path))
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Cannot open texture, keeping placeholder", zap.Error(err))
		return
	}
	defer f.Close()
	img, err := viewer.DecodeTexture(f)
	if err != nil {
		logger.Warn("Cannot decode texture, keeping placeholder", zap.Error(err))
		return
	}
	logger.Info("Decoded texture", zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	out <- img
}

func (l *Lighting) Resize(width, height int) {
	l.camera.Resize(width, height)
}

func (l *Lighting) Update(dt float32, in *viewer.Input) {
	l.spin.update(dt)
	if l.loaded == nil {
		return
	}
	select {
	case img, ok := <-l.loaded:
		l.loaded = nil
		if !ok {
			return
		}
		tex, err := l.device.Texture(img)
		if err != nil {
			l.logger.Warn("Cannot upload texture", zap.Error(err))
			return
		}
		l.texture = tex
	default:
	}
}

func (l *Lighting) Draw(p *viewer.Pipeline) error {
	begin(p, l.camera, l.program, black)
	p.Device().BindTexture(l.texture)
	l.spin.apply(p)
	return p.Draw(l.cube)
}
