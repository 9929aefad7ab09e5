package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type MockClock struct {
	time      time.Time
	sleptTime time.Duration
}

func (c *MockClock) Now() time.Time {
	return c.time
}

func (c *MockClock) Sleep(d time.Duration) {
	c.sleptTime = d
	c.time = c.time.Add(d)
}

func (c *MockClock) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}

func (c *MockClock) expectSlept(t *testing.T, expected time.Duration) {
	assert.Equal(t, expected, c.sleptTime, "slept time")
	c.sleptTime = 0
}

func TestFpsPacing(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	fps := NewFpsWithClock(10, clock, nil)
	fps.BeginFrame()
	clock.Advance(40 * time.Millisecond)
	fps.EndFrame()
	assert.Equal(t, 1, fps.frames)
	clock.expectSlept(t, 60*time.Millisecond)
}

func TestFpsNoPacingForSlowFrames(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	fps := NewFpsWithClock(10, clock, nil)
	fps.BeginFrame()
	clock.Advance(150 * time.Millisecond)
	fps.EndFrame()
	clock.expectSlept(t, 0)
}

func TestFpsWithoutTarget(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	fps := NewFpsWithClock(0, clock, nil)
	fps.BeginFrame()
	clock.Advance(time.Millisecond)
	fps.EndFrame()
	clock.expectSlept(t, 0)
}

func TestFpsDeltaTime(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	fps := NewFpsWithClock(0, clock, nil)
	assert.Equal(t, float32(0), fps.BeginFrame())
	clock.Advance(250 * time.Millisecond)
	fps.EndFrame()
	assert.InDelta(t, 0.25, fps.BeginFrame(), 1e-6)
	fps.Restart()
	clock.Advance(time.Second)
	assert.Equal(t, float32(0), fps.BeginFrame())
}

func TestFpsCountPerSecond(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	var reports []int
	fps := newFps(10, clock, func(frames int) {
		reports = append(reports, frames)
	})
	for i := 0; i < 25; i++ {
		fps.BeginFrame()
		clock.Advance(20 * time.Millisecond)
		fps.EndFrame()
	}
	assert.Equal(t, []int{10, 10}, reports)
	assert.Equal(t, 10, fps.Rate())
}

func TestFpsSlowSecond(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	var frames int
	fps := newFps(10, clock, func(n int) {
		frames = n
	})
	fps.BeginFrame()
	clock.Advance(2 * time.Second)
	fps.EndFrame()
	clock.expectSlept(t, 0)
	assert.Equal(t, 0, frames)
	fps.BeginFrame()
	assert.Equal(t, 1, frames)
}
