package viewer_test

import (
	"testing"

	"bitbucket.org/kleinnic74/glplayground/geometry"
	"bitbucket.org/kleinnic74/glplayground/viewer"
	"bitbucket.org/kleinnic74/glplayground/viewer/viewertest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	p := viewer.NewPipeline(viewertest.NewRecorder())
	assert.Equal(t, 0, p.Depth())
	assert.ErrorIs(t, p.Pop(), viewer.ErrStackEmpty)

	p.Translate(mgl32.Vec3{1, 2, 3})
	before := p.ModelView()
	p.Push()
	assert.Equal(t, 1, p.Depth())
	p.Scale(mgl32.Vec3{2, 2, 2})
	p.Rotate(1, mgl32.Vec3{0, 1, 0})
	assert.NotEqual(t, before, p.ModelView())
	require.NoError(t, p.Pop())
	assert.Equal(t, before, p.ModelView())
	assert.ErrorIs(t, p.Pop(), viewer.ErrStackEmpty)
}

func TestTransformsMultiplyOnTheRight(t *testing.T) {
	p := viewer.NewPipeline(viewertest.NewRecorder())
	p.Translate(mgl32.Vec3{5, 0, 0})
	p.Scale(mgl32.Vec3{2, 2, 2})
	// scaling applies to the vertex first, then the translation
	v := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, p.ModelView())
	assertNearVec3(t, mgl32.Vec3{7, 0, 0}, v, 1e-5)
}

func TestRotateNormalizesAxis(t *testing.T) {
	p := viewer.NewPipeline(viewertest.NewRecorder())
	p.Rotate(mgl32.DegToRad(90), mgl32.Vec3{0, 3, 0})
	v := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, p.ModelView())
	assertNearVec3(t, mgl32.Vec3{0, 0, -1}, v, 1e-5)
}

func TestNormalMatrix(t *testing.T) {
	p := viewer.NewPipeline(viewertest.NewRecorder())
	p.Rotate(0.7, mgl32.Vec3{1, 1, 1})
	// pure rotations are their own normal matrix
	assertNearMat3(t, p.ModelView().Mat3(), p.NormalMatrix(), 1e-5)

	p.Reset(mgl32.Ident4())
	p.Scale(mgl32.Vec3{2, 1, 1})
	n := p.NormalMatrix()
	assert.InDelta(t, 0.5, n.At(0, 0), 1e-6)
	assert.InDelta(t, 1, n.At(1, 1), 1e-6)
}

func TestDrawUploadsMatrices(t *testing.T) {
	rec := viewertest.NewRecorder()
	p := viewer.NewPipeline(rec)
	id, err := rec.Upload(geometry.Cube())
	require.NoError(t, err)
	projection := mgl32.Perspective(1, 1, 0.1, 100)
	p.SetProjection(projection)
	p.Translate(mgl32.Vec3{0, 0, -6})
	require.NoError(t, p.Draw(id))
	require.NoError(t, p.DrawPart(id, 0))
	assert.ErrorIs(t, p.DrawPart(id, 3), viewer.ErrUnknownPart)
	assert.ErrorIs(t, p.Draw(viewer.MeshID(99)), viewer.ErrUnknownMesh)

	require.Len(t, rec.Draws, 2)
	assert.Equal(t, projection, rec.Draws[0].Projection)
	assert.Equal(t, mgl32.Translate3D(0, 0, -6), rec.Draws[0].ModelView)
	assert.Equal(t, mgl32.Ident3(), rec.Draws[0].Normal)
	assert.Equal(t, 0, rec.Draws[1].Part)
}

func assertNearVec3(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, 0, expected.Sub(actual).Len(), delta, "expected %v, got %v", expected, actual)
}

func assertNearMat3(t *testing.T, expected, actual mgl32.Mat3, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, expected[:], actual[:], delta)
}
