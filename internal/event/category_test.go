package event

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFlags_Total(t *testing.T) {
	samples := Sample()
	require.Len(t, samples, int(typeCount), "Sample must cover every Type")

	for i, e := range samples {
		assert.Equal(t, Type(i), e.Type(), "Sample order")
		assert.NotZero(t, CategoryFlags(e), "%s has no category", e.Type())
	}
}

func TestCategoryFlags_IgnoresPayload(t *testing.T) {
	pairs := [][2]Event{
		{WindowResize{}, WindowResize{Width: 800, Height: 600}},
		{WindowMoved{}, WindowMoved{X: -20, Y: 4000}},
		{KeyPressed{}, KeyPressed{Key: KeyEscape}},
		{KeyReleased{Key: KeyA}, KeyReleased{Key: KeyMenu}},
		{MouseButtonPressed{Button: ButtonLeft}, MouseButtonPressed{Button: ButtonX2}},
		{MouseMoved{X: 1, Y: 2}, MouseMoved{X: 1e6, Y: -3}},
		{MouseScrolled{}, MouseScrolled{X: 0, Y: -1.5}},
	}
	for _, p := range pairs {
		assert.Equal(t, CategoryFlags(p[0]), CategoryFlags(p[1]), "%s", p[0].Type())
		// Repeated calls are stable.
		assert.Equal(t, CategoryFlags(p[1]), CategoryFlags(p[1]))
	}
}

func TestIsInCategory_Input(t *testing.T) {
	for _, e := range Sample() {
		want := true
		switch e.(type) {
		case AppTick, AppUpdate, AppRender:
			want = false
		}
		assert.Equal(t, want, IsInCategory(e, CategoryInput), "%s", e.Type())
	}
}

func TestIsInCategory_DeviceFlags(t *testing.T) {
	assert.True(t, IsInCategory(KeyPressed{Key: KeyW}, CategoryKeyboard))
	assert.False(t, IsInCategory(KeyPressed{Key: KeyW}, CategoryMouse))
	assert.True(t, IsInCategory(MouseScrolled{Y: 1}, CategoryMouse))
	assert.False(t, IsInCategory(MouseScrolled{Y: 1}, CategoryKeyboard|CategoryApplication))
	assert.True(t, IsInCategory(WindowClose{}, CategoryApplication))
	assert.False(t, IsInCategory(WindowClose{}, 0))
}

func TestCategoryTable_Golden(t *testing.T) {
	var b strings.Builder
	for _, e := range Sample() {
		fmt.Fprintf(&b, "%-20s %s\n", e.Type(), CategoryFlags(e))
	}
	g := goldie.New(t)
	g.Assert(t, "categories", []byte(b.String()))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "None", Category(0).String())
	assert.Equal(t, "Application|Input|Keyboard|Mouse",
		(CategoryApplication | CategoryInput | CategoryKeyboard | CategoryMouse).String())
	assert.True(t, (CategoryMouse | CategoryInput).Has(CategoryInput))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "MouseScrolled", TypeMouseScrolled.String())
	assert.Equal(t, "Type(200)", Type(200).String())
	assert.Equal(t, "KpEnter", KeyKpEnter.String())
	assert.Equal(t, "X2", ButtonX2.String())

	keys := Keys()
	assert.Len(t, keys, 120)
	assert.Equal(t, KeySpace, keys[0])
	assert.Equal(t, KeyMenu, keys[len(keys)-1])
	for _, k := range keys {
		assert.NotEmpty(t, k.String())
		assert.NotContains(t, k.String(), "Key(")
	}
	assert.Len(t, Types(), 14)
}
