package event

import "strings"

// Category is a bit set classifying an event's broad kind, for filtering without a type switch.
type Category uint8

const (
	CategoryApplication Category = 1 << iota
	CategoryInput
	CategoryKeyboard
	CategoryMouse
)

// categories is fixed per Type and never derived from payload values.
var categories = [typeCount]Category{
	TypeWindowClose:         CategoryApplication | CategoryInput,
	TypeWindowResize:        CategoryApplication | CategoryInput,
	TypeWindowFocus:         CategoryApplication | CategoryInput,
	TypeWindowLostFocus:     CategoryApplication | CategoryInput,
	TypeWindowMoved:         CategoryApplication | CategoryInput,
	TypeAppTick:             CategoryApplication,
	TypeAppUpdate:           CategoryApplication,
	TypeAppRender:           CategoryApplication,
	TypeKeyPressed:          CategoryKeyboard | CategoryInput,
	TypeKeyReleased:         CategoryKeyboard | CategoryInput,
	TypeMouseButtonPressed:  CategoryMouse | CategoryInput,
	TypeMouseButtonReleased: CategoryMouse | CategoryInput,
	TypeMouseMoved:          CategoryMouse | CategoryInput,
	TypeMouseScrolled:       CategoryMouse | CategoryInput,
}

// Category returns the flags of the event type.
func (t Type) Category() Category {
	return categories[t]
}

// CategoryFlags returns the category flags of e. It depends only on e's variant.
func CategoryFlags(e Event) Category {
	return categories[e.Type()]
}

// IsInCategory reports whether e carries any of the flags in mask.
func IsInCategory(e Event, mask Category) bool {
	return CategoryFlags(e)&mask != 0
}

// Has reports whether c shares any flag with mask.
func (c Category) Has(mask Category) bool {
	return c&mask != 0
}

var categoryNames = []struct {
	flag Category
	name string
}{
	{CategoryApplication, "Application"},
	{CategoryInput, "Input"},
	{CategoryKeyboard, "Keyboard"},
	{CategoryMouse, "Mouse"},
}

// String joins the set flag names with "|", e.g. "Application|Input". The empty set is "None".
func (c Category) String() string {
	if c == 0 {
		return "None"
	}
	parts := make([]string, 0, len(categoryNames))
	for _, cn := range categoryNames {
		if c&cn.flag != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}
