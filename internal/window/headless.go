package window

import (
	"fmt"

	"simulacra/internal/event"
)

// Headless is a Surface without a window. Each OnUpdate appends the next scripted frame of
// events; after the script runs out it appends nothing, or WindowClose once CloseAfter
// updates have happened. Used by tests and by the binary's headless backend.
type Headless struct {
	props Props

	// Script holds the events delivered by the 1st, 2nd, ... OnUpdate call.
	Script [][]event.Event
	// CloseAfter appends WindowClose on that OnUpdate call (1-based). 0 never closes.
	CloseAfter int
	// InitErr, if set, is returned (wrapped in ErrInit) by Init.
	InitErr error

	initialized bool
	closed      bool
	presented   int
	updates     int
}

// NewHeadless returns a headless surface reporting props.
func NewHeadless(props Props) *Headless {
	return &Headless{props: props}
}

func (h *Headless) Init() error {
	if h.initialized {
		return fmt.Errorf("%w: headless surface already initialized", ErrInit)
	}
	if h.InitErr != nil {
		return fmt.Errorf("%w: %w", ErrInit, h.InitErr)
	}
	h.initialized = true
	return nil
}

// Present counts the frame; there is nothing to draw.
func (h *Headless) Present() {
	h.presented++
}

// OnUpdate appends this update's scripted events, then WindowClose if CloseAfter is reached.
func (h *Headless) OnUpdate(q *event.Queue) {
	if h.updates < len(h.Script) {
		for _, e := range h.Script[h.updates] {
			q.Push(e)
		}
	}
	h.updates++
	if h.CloseAfter > 0 && h.updates == h.CloseAfter {
		q.Push(event.WindowClose{})
	}
}

func (h *Headless) Close() error {
	h.closed = true
	return nil
}

func (h *Headless) Title() string { return h.props.Title }
func (h *Headless) Width() int    { return h.props.Width }
func (h *Headless) Height() int   { return h.props.Height }

// Presented returns the number of Present calls.
func (h *Headless) Presented() int { return h.presented }

// Updates returns the number of OnUpdate calls.
func (h *Headless) Updates() int { return h.updates }

// Initialized reports whether Init succeeded.
func (h *Headless) Initialized() bool { return h.initialized }

// Closed reports whether Close has been called.
func (h *Headless) Closed() bool { return h.closed }
