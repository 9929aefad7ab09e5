package viewer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestCamera() *Camera {
	return NewCamera(mgl32.Vec3{8, 5, -10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(60))
}

func TestZoomIsClamped(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 100; i++ {
		c.Zoom(1.1)
	}
	assert.InDelta(t, math.Pi-0.1, c.Fovy(), 1e-5)
	for i := 0; i < 100; i++ {
		c.Zoom(0.9)
	}
	assert.InDelta(t, 0.1, c.Fovy(), 1e-5)
}

func TestProjectionFollowsResize(t *testing.T) {
	c := newTestCamera()
	c.Resize(800, 600)
	assert.Equal(t, mgl32.Perspective(c.Fovy(), 800./600., 0.1, 100), c.Projection())
	c.Resize(0, 100)
	assert.InDelta(t, 800./600., c.Aspect(), 1e-6)
	c.Resize(100, 100)
	assert.Equal(t, mgl32.Perspective(c.Fovy(), 1, 0.1, 100), c.Projection())
}

func TestRightAxis(t *testing.T) {
	c := newTestCamera()
	r := c.Right()
	assert.InDelta(t, 0, r.Dot(c.Up()), 1e-6)
	assert.InDelta(t, 0, r.Dot(c.Eye()), 1e-5)
	assert.InDelta(t, 0, r.Y(), 1e-6)
}

func TestRotateAndReset(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, c.LookAt(), c.View())
	c.RotateHorizontal(mgl32.DegToRad(90))
	// the origin stays in place, points on the x axis move
	assertNearVec3(t, mgl32.TransformCoordinate(mgl32.Vec3{}, c.LookAt()), mgl32.TransformCoordinate(mgl32.Vec3{}, c.View()), 1e-5)
	assert.False(t, c.View().ApproxEqual(c.LookAt()))
	c.ResetView()
	assert.Equal(t, c.LookAt(), c.View())
}

func TestRotationsAccumulateOnTheLeft(t *testing.T) {
	c := newTestCamera()
	c.Rotate(0.3, mgl32.Vec3{0, 1, 0})
	c.Rotate(0.2, mgl32.Vec3{1, 0, 0})
	expected := mgl32.HomogRotate3DX(0.2).Mul4(mgl32.HomogRotate3DY(0.3))
	assertNearMat4(t, expected, c.Rotation(), 1e-6)
}

func assertNearVec3(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, 0, expected.Sub(actual).Len(), delta, "expected %v, got %v", expected, actual)
}

func assertNearMat4(t *testing.T, expected, actual mgl32.Mat4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, expected[:], actual[:], delta)
}
