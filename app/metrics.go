package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glplayground_frames_total",
		Help: "Frames drawn, by demo",
	}, []string{"demo"})
	frameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glplayground_frame_seconds",
		Help:    "Time between the start of two frames",
		Buckets: []float64{0.004, 0.008, 0.0167, 0.033, 0.05, 0.1, 0.25},
	})
	fpsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glplayground_fps",
		Help: "Frames drawn during the last second",
	})
	contextLosses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glplayground_context_losses_total",
		Help: "Number of times the GPU context was lost",
	})
)
