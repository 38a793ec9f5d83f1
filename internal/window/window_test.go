package window

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simulacra/internal/event"
)

func TestKeyCodes_CoverEveryKeyOnce(t *testing.T) {
	seen := make(map[event.Key]int, len(keyCodes))
	for code, k := range keyCodes {
		if prev, dup := seen[k]; dup {
			t.Fatalf("%s mapped from both %d and %d", k, prev, code)
		}
		seen[k] = code
	}
	for _, k := range event.Keys() {
		_, ok := seen[k]
		assert.True(t, ok, "no native code for %s", k)
	}
	assert.Len(t, keyCodes, len(event.Keys()))
}

func TestTranslateKey(t *testing.T) {
	k, ok := TranslateKey(65)
	require.True(t, ok)
	assert.Equal(t, event.KeyA, k)

	k, ok = TranslateKey(348)
	require.True(t, ok)
	assert.Equal(t, event.KeyMenu, k)

	// Unmapped codes (GLFW_KEY_UNKNOWN, raylib KEY_NULL, Android back) are dropped.
	for _, code := range []int{-1, 0, 4, 1000} {
		_, ok := TranslateKey(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestTranslateButton(t *testing.T) {
	var got []event.MouseButton
	for _, code := range ButtonCodes() {
		b, ok := TranslateButton(code)
		require.True(t, ok)
		got = append(got, b)
	}
	assert.Equal(t, event.Buttons(), got)

	_, ok := TranslateButton(5)
	assert.False(t, ok, "raylib forward/back buttons have no normalized equivalent")
}

func TestHeadless_ScriptAndClose(t *testing.T) {
	h := NewHeadless(Props{Title: "T", Width: 800, Height: 600})
	h.Script = [][]event.Event{
		{event.MouseMoved{X: 1, Y: 2}},
		{},
		{event.KeyPressed{Key: event.KeyEscape}, event.KeyReleased{Key: event.KeyEscape}},
	}
	h.CloseAfter = 3
	require.NoError(t, h.Init())

	var q event.Queue
	var frames [][]event.Event
	for i := 0; i < 4; i++ {
		h.Present()
		h.OnUpdate(&q)
		frames = append(frames, append([]event.Event(nil), q.Events()...))
		q.Clear()
	}

	want := [][]event.Event{
		{event.MouseMoved{X: 1, Y: 2}},
		nil,
		{event.KeyPressed{Key: event.KeyEscape}, event.KeyReleased{Key: event.KeyEscape}, event.WindowClose{}},
		nil,
	}
	if diff := cmp.Diff(want, frames); diff != "" {
		t.Fatalf("frames (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, h.Presented())
	assert.Equal(t, 4, h.Updates())
	assert.Equal(t, "T", h.Title())
	assert.Equal(t, 800, h.Width())
	assert.Equal(t, 600, h.Height())
}

func TestHeadless_InitErrors(t *testing.T) {
	boom := errors.New("no display")
	h := NewHeadless(Props{})
	h.InitErr = boom

	err := h.Init()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInit)
	assert.ErrorIs(t, err, boom)
	assert.False(t, h.Initialized())

	h.InitErr = nil
	require.NoError(t, h.Init())
	assert.ErrorIs(t, h.Init(), ErrInit)

	require.NoError(t, h.Close())
	assert.True(t, h.Closed())
}
