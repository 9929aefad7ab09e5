package viewer

import (
	"time"
)

// Callback receives the number of frames drawn during the last second
type Callback func(fps int)

// Clock abstracts time for frame pacing
type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

// Fps measures frame times and paces frames to a target rate
type Fps struct {
	clock      Clock
	frames     int
	rate       int
	period     time.Duration
	refTime    time.Time
	frameStart time.Time
	next       time.Time
	callback   Callback
}

type systemClock struct {
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func NewSystemClock() Clock {
	return systemClock{}
}

// NewFps creates a frame timer for the given target rate. A target of 0
// disables pacing, for instance when buffer swaps wait for vsync.
func NewFps(targetFps int, callback Callback) *Fps {
	return newFps(targetFps, systemClock{}, callback)
}

func NewFpsWithClock(targetFps int, clock Clock, callback Callback) *Fps {
	return newFps(targetFps, clock, callback)
}

func newFps(targetFps int, clock Clock, callback Callback) *Fps {
	var period time.Duration
	if targetFps > 0 {
		period = time.Second / time.Duration(targetFps)
	}
	if callback == nil {
		callback = func(int) {}
	}
	return &Fps{
		clock:    clock,
		refTime:  clock.Now(),
		callback: callback,
		period:   period,
	}
}

// BeginFrame starts a frame and returns the seconds elapsed since the
// previous frame started, 0 for the first frame. Once per second it reports
// the number of frames ended since the last report.
func (fps *Fps) BeginFrame() float32 {
	now := fps.clock.Now()
	var dt float32
	if !fps.frameStart.IsZero() {
		dt = float32(now.Sub(fps.frameStart).Seconds())
	}
	if now.Sub(fps.refTime) >= time.Second {
		fps.rate = fps.frames
		fps.callback(fps.frames)
		fps.refTime = now
		fps.frames = 0
	}
	fps.frameStart = now
	fps.next = now.Add(fps.period)
	return dt
}

// EndFrame counts the frame and sleeps until the next frame is due
func (fps *Fps) EndFrame() {
	now := fps.clock.Now()
	fps.frames = fps.frames + 1
	if fps.period > 0 && fps.next.After(now) {
		fps.clock.Sleep(fps.next.Sub(now))
	}
}

// Rate returns the last reported frame count
func (fps *Fps) Rate() int {
	return fps.rate
}

// Restart forgets the previous frame, so the next BeginFrame returns 0
func (fps *Fps) Restart() {
	fps.frameStart = time.Time{}
	fps.refTime = fps.clock.Now()
	fps.frames = 0
}
