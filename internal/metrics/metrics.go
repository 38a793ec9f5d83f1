// Package metrics provides Prometheus instruments for the engine's frame loop.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"simulacra/internal/event"
)

// Metrics groups the frame-loop instruments. A nil *Metrics is valid and records nothing,
// so the loop can call it unconditionally.
type Metrics struct {
	// FramesTotal counts completed frames.
	FramesTotal prometheus.Counter
	// EventsTotal counts events seen by the close check, by event type.
	EventsTotal *prometheus.CounterVec
	// FrameSeconds observes wall time per frame.
	FrameSeconds prometheus.Histogram
	// Layers tracks the current layer stack depth.
	Layers prometheus.Gauge
	// LayerPanicsTotal counts layer panics recovered by the dispatch failure boundary.
	LayerPanicsTotal prometheus.Counter
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FramesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "simulacra_frames_total",
			Help: "Total number of completed frames.",
		}),
		EventsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "simulacra_events_total",
			Help: "Total number of events in the frame queue at close-check time, by type.",
		}, []string{"type"}),
		FrameSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "simulacra_frame_seconds",
			Help:    "Wall time of one frame (present, dispatch, poll, close check).",
			Buckets: []float64{.001, .004, .008, .0167, .033, .05, .1, .25},
		}),
		Layers: f.NewGauge(prometheus.GaugeOpts{
			Name: "simulacra_layers",
			Help: "Current number of layers on the stack.",
		}),
		LayerPanicsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "simulacra_layer_panics_total",
			Help: "Total number of recovered layer panics; each detached its layer.",
		}),
	}
}

// ObserveFrame records one finished frame and the events it ended with.
func (m *Metrics) ObserveFrame(d time.Duration, q *event.Queue) {
	if m == nil {
		return
	}
	m.FramesTotal.Inc()
	m.FrameSeconds.Observe(d.Seconds())
	for _, e := range q.Events() {
		m.EventsTotal.WithLabelValues(e.Type().String()).Inc()
	}
}

// SetLayers records the stack depth.
func (m *Metrics) SetLayers(n int) {
	if m == nil {
		return
	}
	m.Layers.Set(float64(n))
}

// LayerPanic counts one recovered layer panic.
func (m *Metrics) LayerPanic() {
	if m == nil {
		return
	}
	m.LayerPanicsTotal.Inc()
}
