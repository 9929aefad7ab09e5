package app

import (
	"context"
	"path/filepath"
	"testing"

	"bitbucket.org/kleinnic74/glplayground/shaders"
	"bitbucket.org/kleinnic74/glplayground/viewer"
	"bitbucket.org/kleinnic74/glplayground/viewer/viewertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T, demo string) Options {
	o := DefaultOptions()
	o.Demo = demo
	o.TargetFps = 0
	o.VSync = false
	o.Prefs = filepath.Join(t.TempDir(), "prefs.db")
	return o
}

func TestFrameDrawsDemo(t *testing.T) {
	rec := viewertest.NewRecorder()
	a, err := NewApp(context.Background(), testOptions(t, "square"), rec)
	require.NoError(t, err)
	w, h := rec.ViewportSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	require.NoError(t, a.Frame(context.Background()))
	assert.Len(t, rec.DrawsOf("square"), 1)

	status := a.Status()
	assert.Equal(t, "square", status.Demo)
	assert.True(t, status.Active)
	assert.NotEmpty(t, status.Run)
	assert.Nil(t, status.View)

	a.Close(context.Background())
	assert.Equal(t, 1, rec.Released())
}

func TestResize(t *testing.T) {
	rec := viewertest.NewRecorder()
	a, err := NewApp(context.Background(), testOptions(t, "square"), rec)
	require.NoError(t, err)
	defer a.Close(context.Background())

	a.Resize(1000, 500)
	a.Resize(0, 500)
	w, h := rec.ViewportSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, h)
	require.NoError(t, a.Frame(context.Background()))
	projection := rec.Draws[0].Projection
	assert.InDelta(t, projection.At(1, 1)/2, projection.At(0, 0), 1e-5, "aspect 2")
}

func TestQuit(t *testing.T) {
	rec := viewertest.NewRecorder()
	a, err := NewApp(context.Background(), testOptions(t, "cube"), rec)
	require.NoError(t, err)
	defer a.Close(context.Background())

	a.Input().Press(viewer.KeyEscape)
	assert.ErrorIs(t, a.Frame(context.Background()), ErrQuit)
	assert.Empty(t, rec.Draws)
}

func TestInitFailure(t *testing.T) {
	rec := viewertest.NewRecorder()
	rec.FailProgram = shaders.Colored.Name
	_, err := NewApp(context.Background(), testOptions(t, "square"), rec)
	assert.Error(t, err)
	assert.Equal(t, 1, rec.Released(), "resources released after failure")

	_, err = NewApp(context.Background(), Options{Demo: "teapot"}, rec)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestContextLoss(t *testing.T) {
	ctx := context.Background()
	rec := viewertest.NewRecorder()
	a, err := NewApp(ctx, testOptions(t, "combined"), rec)
	require.NoError(t, err)
	defer a.Close(ctx)

	require.NoError(t, a.ToggleContext(ctx))
	assert.False(t, a.Status().Active)
	assert.Equal(t, 1, rec.Released())
	assert.Equal(t, 0, rec.Meshes())

	rec.ResetCalls()
	require.NoError(t, a.Frame(ctx))
	assert.Empty(t, rec.Draws, "nothing drawn while the context is lost")

	require.NoError(t, a.ToggleContext(ctx))
	assert.True(t, a.Status().Active)
	assert.Equal(t, 3, rec.Meshes())
	w, h := rec.ViewportSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	require.NoError(t, a.Frame(ctx))
	assert.NotEmpty(t, rec.DrawsOf("cylinder"))
}

func TestRestoreFailureKeepsContextLost(t *testing.T) {
	ctx := context.Background()
	rec := viewertest.NewRecorder()
	a, err := NewApp(ctx, testOptions(t, "square"), rec)
	require.NoError(t, err)
	defer a.Close(ctx)

	require.NoError(t, a.ToggleContext(ctx))
	rec.FailProgram = shaders.Colored.Name
	assert.Error(t, a.ToggleContext(ctx))
	assert.False(t, a.Status().Active)

	rec.FailProgram = ""
	require.NoError(t, a.ToggleContext(ctx))
	assert.True(t, a.Status().Active)
}

func TestViewPersisted(t *testing.T) {
	ctx := context.Background()
	o := testOptions(t, "combined")

	first, err := NewApp(ctx, o, viewertest.NewRecorder())
	require.NoError(t, err)
	first.Input().Press(viewer.Key2)
	first.Input().Press(viewer.KeyLeft)
	require.NoError(t, first.Frame(ctx))
	saved := first.Status().View
	require.NotNil(t, saved)
	assert.Equal(t, shaders.GouraudShading, saved.Shading)
	first.Close(ctx)

	rec := viewertest.NewRecorder()
	second, err := NewApp(ctx, o, rec)
	require.NoError(t, err)
	defer second.Close(ctx)
	restored := second.Status().View
	require.NotNil(t, restored)
	assert.Equal(t, *saved, *restored)

	require.NoError(t, second.Frame(ctx))
	assert.Equal(t, shaders.Gouraud.Name, rec.Draws[0].Program.Name)
}

func TestShutdownOrder(t *testing.T) {
	var order []int
	var hdls shutdownHandlers
	for i := 0; i < 3; i++ {
		i := i
		hdls.Add(func(context.Context, *App) { order = append(order, i) })
	}
	hdls.Execute(context.Background(), nil)
	assert.Equal(t, []int{2, 1, 0}, order)
}
