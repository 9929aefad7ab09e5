package app

import (
	"context"
	"fmt"
	"sync"

	"bitbucket.org/kleinnic74/glplayground/demos"
	"bitbucket.org/kleinnic74/glplayground/logging"
	"bitbucket.org/kleinnic74/glplayground/viewer"
)

// Lifecycle tracks whether the GPU context is usable. While it is lost
// nothing is drawn; restoring it creates the GPU objects of the demo anew.
type Lifecycle struct {
	mu     sync.Mutex
	lost   bool
	device viewer.Device
	demo   demos.Demo
}

func NewLifecycle(device viewer.Device, demo demos.Demo) *Lifecycle {
	return &Lifecycle{device: device, demo: demo}
}

// Active returns true while the context can be drawn to
func (l *Lifecycle) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.lost
}

// Lose releases all GPU objects. It returns false if the context was
// already lost.
func (l *Lifecycle) Lose(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lost {
		return false
	}
	l.lost = true
	l.device.Release()
	contextLosses.Inc()
	logging.From(ctx).Warn("GPU context lost")
	return true
}

// Restore initializes the demo again on a restored context
func (l *Lifecycle) Restore(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.lost {
		return nil
	}
	if err := l.demo.Init(ctx, l.device); err != nil {
		l.device.Release()
		return fmt.Errorf("restoring context: %w", err)
	}
	l.lost = false
	logging.From(ctx).Info("GPU context restored")
	return nil
}
