package event

import "fmt"

// Type identifies an event variant. The set is closed: every value below has exactly one
// struct implementing Event and exactly one entry in the category table.
type Type uint8

const (
	TypeWindowClose Type = iota
	TypeWindowResize
	TypeWindowFocus
	TypeWindowLostFocus
	TypeWindowMoved
	TypeAppTick
	TypeAppUpdate
	TypeAppRender
	TypeKeyPressed
	TypeKeyReleased
	TypeMouseButtonPressed
	TypeMouseButtonReleased
	TypeMouseMoved
	TypeMouseScrolled

	typeCount
)

var typeNames = [typeCount]string{
	TypeWindowClose:         "WindowClose",
	TypeWindowResize:        "WindowResize",
	TypeWindowFocus:         "WindowFocus",
	TypeWindowLostFocus:     "WindowLostFocus",
	TypeWindowMoved:         "WindowMoved",
	TypeAppTick:             "AppTick",
	TypeAppUpdate:           "AppUpdate",
	TypeAppRender:           "AppRender",
	TypeKeyPressed:          "KeyPressed",
	TypeKeyReleased:         "KeyReleased",
	TypeMouseButtonPressed:  "MouseButtonPressed",
	TypeMouseButtonReleased: "MouseButtonReleased",
	TypeMouseMoved:          "MouseMoved",
	TypeMouseScrolled:       "MouseScrolled",
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Types returns every event type in declaration order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Event is a single normalized occurrence carried through the frame queue.
// Only the structs in this package implement it.
type Event interface {
	Type() Type
	isEvent()
}

// Window lifecycle.

type WindowClose struct{}

// WindowResize carries the new framebuffer size in pixels.
type WindowResize struct {
	Width  int
	Height int
}

type WindowFocus struct{}

type WindowLostFocus struct{}

// WindowMoved carries the new window position in screen coordinates.
type WindowMoved struct {
	X int
	Y int
}

// Application ticks. Reserved for frame-phase signalling; no surface emits them yet.

type AppTick struct{}

type AppUpdate struct{}

type AppRender struct{}

// Input.

type KeyPressed struct {
	Key Key
}

type KeyReleased struct {
	Key Key
}

type MouseButtonPressed struct {
	Button MouseButton
}

type MouseButtonReleased struct {
	Button MouseButton
}

// MouseMoved carries the cursor position relative to the window's top-left corner.
type MouseMoved struct {
	X float64
	Y float64
}

// MouseScrolled carries the scroll offset of one platform scroll event (X horizontal, Y vertical).
type MouseScrolled struct {
	X float64
	Y float64
}

func (WindowClose) Type() Type         { return TypeWindowClose }
func (WindowResize) Type() Type        { return TypeWindowResize }
func (WindowFocus) Type() Type         { return TypeWindowFocus }
func (WindowLostFocus) Type() Type     { return TypeWindowLostFocus }
func (WindowMoved) Type() Type         { return TypeWindowMoved }
func (AppTick) Type() Type             { return TypeAppTick }
func (AppUpdate) Type() Type           { return TypeAppUpdate }
func (AppRender) Type() Type           { return TypeAppRender }
func (KeyPressed) Type() Type          { return TypeKeyPressed }
func (KeyReleased) Type() Type         { return TypeKeyReleased }
func (MouseButtonPressed) Type() Type  { return TypeMouseButtonPressed }
func (MouseButtonReleased) Type() Type { return TypeMouseButtonReleased }
func (MouseMoved) Type() Type          { return TypeMouseMoved }
func (MouseScrolled) Type() Type       { return TypeMouseScrolled }

func (WindowClose) isEvent()         {}
func (WindowResize) isEvent()        {}
func (WindowFocus) isEvent()         {}
func (WindowLostFocus) isEvent()     {}
func (WindowMoved) isEvent()         {}
func (AppTick) isEvent()             {}
func (AppUpdate) isEvent()           {}
func (AppRender) isEvent()           {}
func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (MouseMoved) isEvent()          {}
func (MouseScrolled) isEvent()       {}

// Sample returns one zero-payload instance of every variant, in Type order.
// Used where a caller needs to enumerate the closed set (tests, debug tooling).
func Sample() []Event {
	return []Event{
		WindowClose{},
		WindowResize{},
		WindowFocus{},
		WindowLostFocus{},
		WindowMoved{},
		AppTick{},
		AppUpdate{},
		AppRender{},
		KeyPressed{},
		KeyReleased{},
		MouseButtonPressed{},
		MouseButtonReleased{},
		MouseMoved{},
		MouseScrolled{},
	}
}
