package window

import (
	"errors"

	"simulacra/internal/event"
)

// ErrInit wraps every failure to create a window or graphics context.
var ErrInit = errors.New("window: init failed")

// Props describes the window a surface opens.
type Props struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int // 0 = uncapped
}

// Surface owns the window, the graphics context and buffer presentation. The application
// calls it once per frame from a single thread: Present issues the frame's draw calls,
// OnUpdate presents the frame, polls platform input and appends normalized events to q.
// Platform input with no normalized equivalent is dropped.
//
// Close releases every graphics handle and the window. It is only called after a successful Init.
type Surface interface {
	Init() error
	Present()
	OnUpdate(q *event.Queue)
	Close() error

	Title() string
	Width() int
	Height() int
}
