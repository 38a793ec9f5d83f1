// Package rlsurface implements window.Surface on raylib.
package rlsurface

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"simulacra/internal/event"
	"simulacra/internal/renderer"
	"simulacra/internal/window"
)

// Surface is a raylib window. raylib polls input inside EndDrawing, so Present opens the
// frame and OnUpdate closes it, then reads the polled state and turns changes into events.
type Surface struct {
	props    window.Props
	log      zerolog.Logger
	triangle *renderer.Triangle
	open     bool

	focused bool
	pos     rl.Vector2
	down    map[int]struct{} // keys pressed and not yet released
}

// New returns a surface that will open a window described by props on Init.
func New(props window.Props, log zerolog.Logger) *Surface {
	return &Surface{props: props, log: log, down: make(map[int]struct{})}
}

// Init opens the window and compiles the triangle shader. A shader failure closes the window again.
func (s *Surface) Init() error {
	renderer.CaptureDriverLog(s.log)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(s.props.Width), int32(s.props.Height), s.props.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: raylib could not create a %dx%d window", window.ErrInit, s.props.Width, s.props.Height)
	}
	s.open = true

	rl.SetExitKey(rl.KeyNull) // ESC is an ordinary key; close via window button
	if s.props.TargetFPS > 0 {
		rl.SetTargetFPS(int32(s.props.TargetFPS))
	}

	tri, err := renderer.NewTriangle()
	if err != nil {
		rl.CloseWindow()
		s.open = false
		return err
	}
	s.triangle = tri

	s.focused = rl.IsWindowFocused()
	s.pos = rl.GetWindowPosition()
	s.log.Info().Str("title", s.props.Title).Int("width", s.props.Width).Int("height", s.props.Height).
		Msg("raylib surface ready")
	return nil
}

// Present starts the frame and issues its draw calls.
func (s *Surface) Present() {
	rl.BeginDrawing()
	rl.ClearBackground(renderer.ClearColor)
	s.triangle.Draw()
}

// OnUpdate swaps buffers and polls input, then appends this frame's events to q.
// A pending close request is reported alone.
func (s *Surface) OnUpdate(q *event.Queue) {
	rl.EndDrawing()
	if rl.WindowShouldClose() {
		q.Push(event.WindowClose{})
		return
	}
	s.pollWindow(q)
	s.pollKeys(q)
	s.pollMouse(q)
}

func (s *Surface) pollWindow(q *event.Queue) {
	if rl.IsWindowResized() {
		s.props.Width, s.props.Height = int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
		q.Push(event.WindowResize{Width: s.props.Width, Height: s.props.Height})
	}
	if focused := rl.IsWindowFocused(); focused != s.focused {
		s.focused = focused
		if focused {
			q.Push(event.WindowFocus{})
		} else {
			q.Push(event.WindowLostFocus{})
		}
	}
	pos := rl.GetWindowPosition()
	if math32.Abs(pos.X-s.pos.X) >= 1 || math32.Abs(pos.Y-s.pos.Y) >= 1 {
		s.pos = pos
		q.Push(event.WindowMoved{X: int(math32.Floor(pos.X)), Y: int(math32.Floor(pos.Y))})
	}
}

func (s *Surface) pollKeys(q *event.Queue) {
	for code := int(rl.GetKeyPressed()); code != 0; code = int(rl.GetKeyPressed()) {
		key, ok := window.TranslateKey(code)
		if !ok {
			continue
		}
		s.down[code] = struct{}{}
		q.Push(event.KeyPressed{Key: key})
	}
	for code := range s.down {
		if !rl.IsKeyReleased(int32(code)) {
			continue
		}
		delete(s.down, code)
		key, _ := window.TranslateKey(code)
		q.Push(event.KeyReleased{Key: key})
	}
}

func (s *Surface) pollMouse(q *event.Queue) {
	for _, code := range window.ButtonCodes() {
		btn, _ := window.TranslateButton(code)
		if rl.IsMouseButtonPressed(rl.MouseButton(code)) {
			q.Push(event.MouseButtonPressed{Button: btn})
		}
		if rl.IsMouseButtonReleased(rl.MouseButton(code)) {
			q.Push(event.MouseButtonReleased{Button: btn})
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		p := rl.GetMousePosition()
		q.Push(event.MouseMoved{X: float64(p.X), Y: float64(p.Y)})
	}
	if w := rl.GetMouseWheelMoveV(); w.X != 0 || w.Y != 0 {
		q.Push(event.MouseScrolled{X: float64(w.X), Y: float64(w.Y)})
	}
}

// Close releases the shader, then the window.
func (s *Surface) Close() error {
	if s.triangle != nil {
		s.triangle.Unload()
		s.triangle = nil
	}
	if s.open {
		rl.CloseWindow()
		s.open = false
	}
	return nil
}

func (s *Surface) Title() string { return s.props.Title }
func (s *Surface) Width() int    { return s.props.Width }
func (s *Surface) Height() int   { return s.props.Height }
