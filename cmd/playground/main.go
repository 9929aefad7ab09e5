package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"bitbucket.org/kleinnic74/glplayground/app"
	"bitbucket.org/kleinnic74/glplayground/demos"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"
	"bitbucket.org/kleinnic74/glplayground/viewer/opengl"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var (
	configPath string
	demo       string
	texture    string
	shading    shaders.Shading
	debugAddr  string
	list       bool
)

var keys = map[glfw.Key]viewer.Key{
	glfw.KeyLeft:   viewer.KeyLeft,
	glfw.KeyRight:  viewer.KeyRight,
	glfw.KeyUp:     viewer.KeyUp,
	glfw.KeyDown:   viewer.KeyDown,
	glfw.KeyZ:      viewer.KeyZ,
	glfw.KeyX:      viewer.KeyX,
	glfw.KeyC:      viewer.KeyC,
	glfw.KeyV:      viewer.KeyV,
	glfw.KeyR:      viewer.KeyR,
	glfw.KeyL:      viewer.KeyL,
	glfw.Key1:      viewer.Key1,
	glfw.Key2:      viewer.Key2,
	glfw.Key3:      viewer.Key3,
	glfw.KeyEscape: viewer.KeyEscape,
}

func init() {
	// GL calls must come from the thread owning the context
	runtime.LockOSThread()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDemos: %s\n", strings.Join(demos.Names(), ", "))
	}
	flag.StringVar(&configPath, "c", "glplayground.yaml", "Path to the options file")
	flag.StringVar(&demo, "d", "", "Demo to run")
	flag.StringVar(&texture, "t", "", "Texture image of the lighting demo")
	flag.TextVar(&shading, "s", shaders.None, "Initial shading of the combined demo: none, gouraud or phong")
	flag.StringVar(&debugAddr, "debug", "", "Address of the debug HTTP server, disabled if empty")
	flag.BoolVar(&list, "l", false, "List the demos and exit")
}

func main() {
	flag.Parse()
	if list {
		for _, name := range demos.Names() {
			fmt.Println(name)
		}
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := run(ctx)
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func loadOptions() (app.Options, error) {
	o, err := app.LoadOptions(configPath)
	if err != nil {
		return o, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			o.Demo = demo
		case "t":
			o.Texture = texture
		case "s":
			o.Shading = shading
		case "debug":
			o.DebugAddr = debugAddr
		}
	})
	return o, o.Validate()
}

func run(ctx context.Context) error {
	logger, ctx := logging.SubFrom(ctx, "playground")
	o, err := loadOptions()
	if err != nil {
		logger.Error("Bad options", zap.String("config", configPath), zap.Error(err))
		return err
	}

	window, err := initGlfw(o)
	if err != nil {
		logger.Error("Cannot create window", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	device, err := opengl.NewDevice(ctx)
	if err != nil {
		logger.Error("GPU context unavailable", zap.Error(err))
		return err
	}
	a, err := app.NewApp(ctx, o, device)
	if err != nil {
		logger.Error("Cannot start demo", zap.String("demo", o.Demo), zap.Error(err))
		return err
	}
	defer a.Close(ctx)
	bindInput(window, a)
	a.Resize(window.GetFramebufferSize())

	for !window.ShouldClose() && ctx.Err() == nil {
		if err := a.Frame(ctx); errors.Is(err, app.ErrQuit) {
			break
		} else if err != nil {
			logger.Error("Frame failed", zap.Error(err))
			return err
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func initGlfw(o app.Options) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(o.Width, o.Height, fmt.Sprintf("%s - %s", o.Title, o.Demo), nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	window.MakeContextCurrent()
	if o.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

func bindInput(window *glfw.Window, a *app.App) {
	in := a.Input()
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, found := keys[key]
		if !found {
			return
		}
		switch action {
		case glfw.Press:
			in.Press(k)
		case glfw.Release:
			in.Release(k)
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		if action == glfw.Press {
			in.MouseDown(w.GetCursorPos())
		} else if action == glfw.Release {
			in.MouseUp()
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.MouseMove(x, y)
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.Resize(width, height)
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			in.Reset()
		}
	})
}
