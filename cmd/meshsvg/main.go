package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"bitbucket.org/kleinnic74/glplayground/export"
	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	outDir string
	width  int
	height int
	stroke string
)

type view func(*viewer.Camera) mgl32.Mat4

// room looks at the mesh the way the room demos show their objects
func room(c *viewer.Camera) mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// clip draws 2D meshes directly in clip space
func clip(*viewer.Camera) mgl32.Mat4 {
	return mgl32.Ident4()
}

func front(c *viewer.Camera) mgl32.Mat4 {
	projection := mgl32.Perspective(c.Fovy(), c.Aspect(), 0.1, 100)
	return projection.Mul4(mgl32.Translate3D(0, 0, -6))
}

type entry struct {
	mesh func() (*geometry.Mesh, error)
	view view
}

func ok(f func() *geometry.Mesh) func() (*geometry.Mesh, error) {
	return func() (*geometry.Mesh, error) { return f(), nil }
}

var meshes = map[string]entry{
	"cube":     {ok(geometry.Cube), room},
	"floor":    {ok(func() *geometry.Mesh { return geometry.Floor(5) }), room},
	"cylinder": {func() (*geometry.Mesh, error) { return geometry.Cylinder(20, 10, 1, 1) }, room},
	"square":   {ok(geometry.Square), front},
	"hexagon":  {ok(geometry.Hexagon), clip},
	"strip":    {ok(geometry.ZigZagStrip), clip},
}

func names() []string {
	out := make([]string, 0, len(meshes))
	for name := range meshes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [mesh...]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nMeshes: %v\n", names())
	}
	flag.StringVar(&outDir, "o", ".", "Output directory")
	flag.IntVar(&width, "w", 640, "Drawing width")
	flag.IntVar(&height, "h", 480, "Drawing height")
	flag.StringVar(&stroke, "stroke", export.DefaultStyle.Stroke, "Edge color")
}

func main() {
	flag.Parse()
	selected := flag.Args()
	if len(selected) == 0 {
		selected = names()
	}
	logger, _ := logging.SubFrom(context.Background(), "meshsvg")
	defer logging.Sync()

	camera := viewer.NewCamera(mgl32.Vec3{8, 5, -10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(60))
	camera.Resize(width, height)
	style := export.DefaultStyle
	style.Stroke = stroke

	failed := false
	for _, name := range selected {
		if err := write(name, camera, style); err != nil {
			logger.Error("Failed to export mesh", zap.String("mesh", name), zap.Error(err))
			failed = true
			continue
		}
		logger.Info("Exported mesh", zap.String("mesh", name))
	}
	if failed {
		logging.Sync()
		os.Exit(1)
	}
}

func write(name string, camera *viewer.Camera, style export.Style) error {
	e, found := meshes[name]
	if !found {
		return fmt.Errorf("unknown mesh '%s', expected one of %v", name, names())
	}
	mesh, err := e.mesh()
	if err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(outDir, name+".svg"))
	if err != nil {
		return err
	}
	if _, err = export.WriteSVG(out, mesh, e.view(camera), width, height, style); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
