// Package glfwsurface implements window.Surface directly on GLFW. It only owns the window
// and the OpenGL context; it issues no draw calls of its own.
package glfwsurface

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"simulacra/internal/event"
	"simulacra/internal/window"
)

// Surface is a GLFW window. Callbacks buffer translated events; OnUpdate flushes them into
// the frame queue after polling.
type Surface struct {
	props   window.Props
	log     zerolog.Logger
	win     *glfw.Window
	pending []event.Event
}

// New returns a surface that will open a window described by props on Init.
func New(props window.Props, log zerolog.Logger) *Surface {
	return &Surface{props: props, log: log}
}

// Init initializes GLFW, opens the window with a 3.3 core context and makes it current.
func (s *Surface) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %w", window.ErrInit, err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(s.props.Width, s.props.Height, s.props.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: glfw window: %w", window.ErrInit, err)
	}
	s.win = win
	win.MakeContextCurrent()
	if s.props.TargetFPS > 0 {
		glfw.SwapInterval(1)
	}
	s.installCallbacks()

	s.log.Info().Str("title", s.props.Title).Int("width", s.props.Width).Int("height", s.props.Height).
		Str("glfw", glfw.GetVersionString()).Msg("glfw surface ready")
	return nil
}

func (s *Surface) installCallbacks() {
	s.win.SetCloseCallback(func(_ *glfw.Window) {
		s.pending = append(s.pending, event.WindowClose{})
	})
	s.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		s.props.Width, s.props.Height = width, height
		s.pending = append(s.pending, event.WindowResize{Width: width, Height: height})
	})
	s.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		s.pending = append(s.pending, event.WindowMoved{X: x, Y: y})
	})
	s.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			s.pending = append(s.pending, event.WindowFocus{})
		} else {
			s.pending = append(s.pending, event.WindowLostFocus{})
		}
	})
	s.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.pending = append(s.pending, event.MouseMoved{X: x, Y: y})
	})
	s.win.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		s.pending = append(s.pending, event.MouseScrolled{X: x, Y: y})
	})
	s.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := translateKey(key, action); ok {
			s.pending = append(s.pending, e)
		}
	})
	s.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := translateButton(button, action); ok {
			s.pending = append(s.pending, e)
		}
	})
}

// translateKey drops repeats and keys outside the normalized set.
func translateKey(key glfw.Key, action glfw.Action) (event.Event, bool) {
	k, ok := window.TranslateKey(int(key))
	if !ok {
		return nil, false
	}
	switch action {
	case glfw.Press:
		return event.KeyPressed{Key: k}, true
	case glfw.Release:
		return event.KeyReleased{Key: k}, true
	}
	return nil, false
}

func translateButton(button glfw.MouseButton, action glfw.Action) (event.Event, bool) {
	b, ok := window.TranslateButton(int(button))
	if !ok {
		return nil, false
	}
	switch action {
	case glfw.Press:
		return event.MouseButtonPressed{Button: b}, true
	case glfw.Release:
		return event.MouseButtonReleased{Button: b}, true
	}
	return nil, false
}

// Present is a no-op: drawing belongs to whoever owns a GL function loader for this context.
func (s *Surface) Present() {}

// OnUpdate reports a pending close request alone; otherwise it swaps buffers, polls and
// appends every event buffered by the callbacks, in arrival order.
func (s *Surface) OnUpdate(q *event.Queue) {
	if s.win.ShouldClose() {
		q.Push(event.WindowClose{})
		return
	}
	s.win.SwapBuffers()
	glfw.PollEvents()
	for _, e := range s.pending {
		q.Push(e)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

// Close destroys the window and terminates GLFW.
func (s *Surface) Close() error {
	if s.win == nil {
		return nil
	}
	s.win.Destroy()
	s.win = nil
	glfw.Terminate()
	return nil
}

func (s *Surface) Title() string { return s.props.Title }
func (s *Surface) Width() int    { return s.props.Width }
func (s *Surface) Height() int   { return s.props.Height }
