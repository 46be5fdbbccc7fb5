package renderer

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errTypeLabel = "error_type"
	statusLabel  = "status"

	statusRendered  = "rendered"
	statusCancelled = "cancelled"
)

var (
	samplesTaken = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raytracer_samples_total",
		Help: "The number of camera rays traced.",
	})

	passesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raytracer_passes_total",
		Help: "The number of progressive passes completed.",
	})

	tilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "raytracer_tiles_total",
		Help: "The number of tile tasks processed by workers.",
	}, []string{
		statusLabel,
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "raytracer_pass_duration_seconds",
		Help:    "The time to render a progressive pass.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})

	activeRenders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "raytracer_active_renders",
		Help: "The number of renders in progress.",
	})

	renderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "raytracer_render_errors",
		Help: "The errors that stopped a render.",
	}, []string{
		errTypeLabel,
	})
)

func instrumentSamples(n int) {
	samplesTaken.Add(float64(n))
}

func instrumentTile(status string) {
	tilesProcessed.With(prometheus.Labels{
		statusLabel: status,
	}).Inc()
}

func instrumentPass(start time.Time) {
	passesCompleted.Inc()
	passDuration.Observe(time.Since(start).Seconds())
}

func instrumentRenderError(err error) {
	renderErrors.
		With(prometheus.Labels{
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}
