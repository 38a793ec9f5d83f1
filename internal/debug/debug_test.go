package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simulacra/internal/event"
)

func TestHandleEvents_CountsWithoutConsuming(t *testing.T) {
	d := New(zerolog.Nop())

	var q event.Queue
	q.Push(event.KeyPressed{Key: event.KeyA})
	q.Push(event.MouseMoved{X: 1, Y: 2})
	q.Push(event.MouseMoved{X: 3, Y: 4})
	q.Push(event.AppTick{})
	q.Push(event.WindowClose{})
	q.Consume(4)

	d.HandleEvents(&q)

	assert.Equal(t, 1, d.Count(event.TypeKeyPressed))
	assert.Equal(t, 2, d.Count(event.TypeMouseMoved))
	assert.Equal(t, 1, d.Count(event.TypeAppTick))
	assert.Zero(t, d.Count(event.TypeWindowClose), "consumed events are skipped")

	assert.Equal(t, 3, d.CategoryCount(event.CategoryInput))
	assert.Equal(t, 2, d.CategoryCount(event.CategoryMouse))
	assert.Equal(t, 1, d.CategoryCount(event.CategoryKeyboard))
	assert.Equal(t, 1, d.CategoryCount(event.CategoryApplication))

	for i := 0; i < 4; i++ {
		assert.False(t, q.Consumed(i))
	}
	assert.Equal(t, 1, d.Dispatches())
}

func TestHandleEvents_LogsWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	d := New(zerolog.New(&buf).Level(zerolog.DebugLevel))

	var q event.Queue
	q.Push(event.WindowResize{Width: 640, Height: 480})
	d.HandleEvents(&q)
	assert.Empty(t, buf.String())

	d.SetLogEvents(true)
	d.HandleEvents(&q)
	out := buf.String()
	assert.Contains(t, out, `"type":"WindowResize"`)
	assert.Contains(t, out, `"category":"Application|Input"`)
	assert.Contains(t, out, `"Width":640`)
}

func TestHandleEvents_MemoryReportInterval(t *testing.T) {
	var buf bytes.Buffer
	d := New(zerolog.New(&buf).Level(zerolog.DebugLevel))
	d.SetReportMem(true)

	var q event.Queue
	for i := 0; i < updateInterval-1; i++ {
		d.HandleEvents(&q)
	}
	require.NotContains(t, buf.String(), `"message":"memory"`)

	d.HandleEvents(&q)
	assert.Equal(t, 1, strings.Count(buf.String(), `"message":"memory"`))
	assert.Contains(t, buf.String(), `"heap_mib"`)
}

func TestDetachSummary(t *testing.T) {
	var buf bytes.Buffer
	d := New(zerolog.New(&buf).Level(zerolog.DebugLevel))

	var q event.Queue
	q.Push(event.MouseScrolled{Y: -1})
	d.OnAttach()
	d.HandleEvents(&q)
	d.OnDetach()

	out := buf.String()
	assert.Contains(t, out, "debug layer attached")
	assert.Contains(t, out, `"MouseScrolled":1`)
	assert.NotContains(t, out, `"KeyPressed"`)
}
