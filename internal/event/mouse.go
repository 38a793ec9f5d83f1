package event

import "fmt"

// MouseButton is a platform-independent mouse button.
type MouseButton uint8

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonUnknown: "Unknown",
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonX1:      "X1",
	ButtonX2:      "X2",
}

func (b MouseButton) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// Buttons returns every known button, ButtonUnknown excluded.
func Buttons() []MouseButton {
	return []MouseButton{ButtonLeft, ButtonRight, ButtonMiddle, ButtonX1, ButtonX2}
}
