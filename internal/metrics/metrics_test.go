package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simulacra/internal/event"
)

func TestObserveFrame(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	var q event.Queue
	q.Push(event.MouseMoved{X: 1})
	q.Push(event.MouseMoved{X: 2})
	q.Push(event.WindowClose{})
	m.ObserveFrame(5*time.Millisecond, &q)
	m.ObserveFrame(time.Millisecond, &event.Queue{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("MouseMoved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("WindowClose")))

	n, err := testutil.GatherAndCount(reg, "simulacra_frame_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLayersAndPanics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SetLayers(3)
	m.LayerPanic()
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Layers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LayerPanicsTotal))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFrame(time.Second, &event.Queue{})
		m.SetLayers(1)
		m.LayerPanic()
	})
}
