// Package app runs one demo: it wires the demo to a device, paces frames,
// handles context loss and keeps the view state and debug server.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bitbucket.org/kleinnic74/glplayground/consts"
	"bitbucket.org/kleinnic74/glplayground/demos"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/prefs"
	"bitbucket.org/kleinnic74/glplayground/rest"
	"bitbucket.org/kleinnic74/glplayground/viewer"

	"github.com/google/uuid"
	"github.com/kleinnic74/fflags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrQuit is returned by Frame when the user asked to quit
var ErrQuit = errors.New("quit requested")

var simulateLossFlag = fflags.Define("context.simulateloss")

type App struct {
	run       string
	device    viewer.Device
	demo      demos.Demo
	pipeline  *viewer.Pipeline
	input     *viewer.Input
	fps       *viewer.Fps
	lifecycle *Lifecycle
	prefs     *prefs.Store

	mu     sync.Mutex
	width  int
	height int
	rate   int
	view   *demos.State

	logger           *zap.Logger
	shutdownHandlers shutdownHandlers
}

type shutdownHandler func(context.Context, *App)

type shutdownHandlers struct {
	h []shutdownHandler
}

func (hdls *shutdownHandlers) Add(h shutdownHandler) {
	hdls.h = append(hdls.h, h)
}

func (hdls shutdownHandlers) Execute(ctx context.Context, a *App) {
	for i := len(hdls.h) - 1; i >= 0; i-- {
		hdls.h[i](ctx, a)
	}
}

// Status is the state of the running app reported by the debug server
type Status struct {
	Run    string       `json:"run"`
	Demo   string       `json:"demo"`
	Fps    int          `json:"fps"`
	Active bool         `json:"active"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	View   *demos.State `json:"view,omitempty"`
}

// NewApp creates the demo named in o and its GPU objects on device
func NewApp(ctx context.Context, o Options, device viewer.Device) (a *App, err error) {
	if err = o.Validate(); err != nil {
		return nil, err
	}
	run := uuid.New().String()
	logger, ctx := logging.FromWithNameAndFields(ctx, "app", zap.String("run", run), zap.String("demo", o.Demo))

	a = &App{
		run:      run,
		device:   device,
		pipeline: viewer.NewPipeline(device),
		input:    viewer.NewInput(),
		logger:   logger,
	}
	defer func() {
		if err != nil {
			a.shutdownHandlers.Execute(ctx, a)
		}
	}()
	targetFps := o.TargetFps
	if o.VSync {
		targetFps = 0
	}
	a.fps = viewer.NewFps(targetFps, a.framesPerSecond)

	if a.demo, err = demos.New(o.Demo, o.demoOptions()); err != nil {
		return nil, err
	}
	a.lifecycle = NewLifecycle(device, a.demo)

	a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
		a.device.Release()
		logging.From(ctx).Info("Released GPU objects")
	})

	if o.Prefs != "" {
		if a.prefs, err = prefs.Open(o.Prefs); err != nil {
			return nil, err
		}
		a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
			a.prefs.Close()
			logging.From(ctx).Info("Closed preferences")
		})
		a.restoreView(ctx)
		a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
			a.saveView(ctx)
		})
	}

	if err = a.demo.Init(ctx, device); err != nil {
		return nil, fmt.Errorf("initializing demo %s: %w", o.Demo, err)
	}
	a.Resize(o.Width, o.Height)
	a.snapshotView()
	logger.Info("Demo ready", zap.Int("width", o.Width), zap.Int("height", o.Height))

	if o.DebugAddr != "" {
		debugCtx, cancel := context.WithCancel(ctx)
		var wg sync.WaitGroup
		server := rest.NewDebugServer(consts.AppName+"-"+run[:8], func() interface{} { return a.Status() }, prometheus.DefaultGatherer)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := server.ListenAndServe(debugCtx, o.DebugAddr); err != nil {
				logging.From(debugCtx).Error("Debug server failed", zap.Error(err))
			}
		}()
		a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
			cancel()
			wg.Wait()
		})
	}
	return a, nil
}

func (a *App) restoreView(ctx context.Context) {
	stateful, ok := a.demo.(demos.Stateful)
	if !ok {
		return
	}
	var state demos.State
	found, err := a.prefs.Load(a.demo.Name(), &state)
	if err != nil {
		logging.From(ctx).Warn("Ignoring saved view", zap.Error(err))
		return
	}
	if found {
		stateful.Restore(state)
		logging.From(ctx).Info("Restored view", zap.Stringer("shading", state.Shading))
	}
}

func (a *App) saveView(ctx context.Context) {
	stateful, ok := a.demo.(demos.Stateful)
	if !ok {
		return
	}
	if err := a.prefs.Save(a.demo.Name(), stateful.State()); err != nil {
		logging.From(ctx).Warn("Failed to save view", zap.Error(err))
		return
	}
	logging.From(ctx).Info("Saved view")
}

func (a *App) framesPerSecond(fps int) {
	a.mu.Lock()
	a.rate = fps
	a.mu.Unlock()
	fpsGauge.Set(float64(fps))
	a.logger.Debug("Frame rate", zap.Int("fps", fps))
}

// Input returns the input state fed by the window system
func (a *App) Input() *viewer.Input {
	return a.input
}

// Frame advances and draws the demo once. It returns ErrQuit after escape
// was pressed.
func (a *App) Frame(ctx context.Context) error {
	dt := a.fps.BeginFrame()
	defer a.fps.EndFrame()
	if a.input.Hit(viewer.KeyEscape) {
		return ErrQuit
	}
	if err := fflags.IfEnabled(simulateLossFlag, func() error {
		if a.input.Hit(viewer.KeyL) {
			return a.ToggleContext(ctx)
		}
		return nil
	}); err != nil {
		return err
	}
	frameSeconds.Observe(float64(dt))
	if !a.lifecycle.Active() {
		return nil
	}
	a.demo.Update(dt, a.input)
	if err := a.demo.Draw(a.pipeline); err != nil {
		return fmt.Errorf("drawing %s: %w", a.demo.Name(), err)
	}
	framesCounter.WithLabelValues(a.demo.Name()).Inc()
	a.snapshotView()
	return nil
}

// snapshotView keeps a copy of the view for readers outside the frame loop
func (a *App) snapshotView() {
	stateful, ok := a.demo.(demos.Stateful)
	if !ok {
		return
	}
	view := stateful.State()
	a.mu.Lock()
	a.view = &view
	a.mu.Unlock()
}

// ToggleContext loses an active context or restores a lost one
func (a *App) ToggleContext(ctx context.Context) error {
	ctx = logging.Context(ctx, a.logger)
	if a.lifecycle.Lose(ctx) {
		return nil
	}
	if err := a.lifecycle.Restore(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	w, h := a.width, a.height
	a.mu.Unlock()
	a.device.Viewport(w, h)
	return nil
}

// Resize adapts the viewport and the projection to the framebuffer size
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.mu.Lock()
	a.width, a.height = width, height
	a.mu.Unlock()
	a.device.Viewport(width, height)
	a.demo.Resize(width, height)
}

// Status returns a snapshot of the running app
func (a *App) Status() Status {
	a.mu.Lock()
	s := Status{
		Run:    a.run,
		Demo:   a.demo.Name(),
		Fps:    a.rate,
		Width:  a.width,
		Height: a.height,
		View:   a.view,
	}
	a.mu.Unlock()
	s.Active = a.lifecycle.Active()
	return s
}

// Close saves the view, stops the debug server and releases all resources
func (a *App) Close(ctx context.Context) {
	ctx = logging.Context(ctx, a.logger)
	a.shutdownHandlers.Execute(ctx, a)
	a.logger.Info("Terminated gracefully")
}
