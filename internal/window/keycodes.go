package window

import "simulacra/internal/event"

// Native key codes as defined by GLFW. raylib's desktop backend reports the same values,
// so both surfaces translate through this table.
var keyCodes = map[int]event.Key{
	32:  event.KeySpace,
	39:  event.KeyApostrophe,
	44:  event.KeyComma,
	45:  event.KeyMinus,
	46:  event.KeyPeriod,
	47:  event.KeySlash,
	48:  event.KeyNum0,
	49:  event.KeyNum1,
	50:  event.KeyNum2,
	51:  event.KeyNum3,
	52:  event.KeyNum4,
	53:  event.KeyNum5,
	54:  event.KeyNum6,
	55:  event.KeyNum7,
	56:  event.KeyNum8,
	57:  event.KeyNum9,
	59:  event.KeySemicolon,
	61:  event.KeyEqual,
	65:  event.KeyA,
	66:  event.KeyB,
	67:  event.KeyC,
	68:  event.KeyD,
	69:  event.KeyE,
	70:  event.KeyF,
	71:  event.KeyG,
	72:  event.KeyH,
	73:  event.KeyI,
	74:  event.KeyJ,
	75:  event.KeyK,
	76:  event.KeyL,
	77:  event.KeyM,
	78:  event.KeyN,
	79:  event.KeyO,
	80:  event.KeyP,
	81:  event.KeyQ,
	82:  event.KeyR,
	83:  event.KeyS,
	84:  event.KeyT,
	85:  event.KeyU,
	86:  event.KeyV,
	87:  event.KeyW,
	88:  event.KeyX,
	89:  event.KeyY,
	90:  event.KeyZ,
	91:  event.KeyLeftBracket,
	92:  event.KeyBackslash,
	93:  event.KeyRightBracket,
	96:  event.KeyGraveAccent,
	161: event.KeyWorld1,
	162: event.KeyWorld2,
	256: event.KeyEscape,
	257: event.KeyEnter,
	258: event.KeyTab,
	259: event.KeyBackspace,
	260: event.KeyInsert,
	261: event.KeyDelete,
	262: event.KeyRight,
	263: event.KeyLeft,
	264: event.KeyDown,
	265: event.KeyUp,
	266: event.KeyPageUp,
	267: event.KeyPageDown,
	268: event.KeyHome,
	269: event.KeyEnd,
	280: event.KeyCapsLock,
	281: event.KeyScrollLock,
	282: event.KeyNumLock,
	283: event.KeyPrintScreen,
	284: event.KeyPause,
	290: event.KeyF1,
	291: event.KeyF2,
	292: event.KeyF3,
	293: event.KeyF4,
	294: event.KeyF5,
	295: event.KeyF6,
	296: event.KeyF7,
	297: event.KeyF8,
	298: event.KeyF9,
	299: event.KeyF10,
	300: event.KeyF11,
	301: event.KeyF12,
	302: event.KeyF13,
	303: event.KeyF14,
	304: event.KeyF15,
	305: event.KeyF16,
	306: event.KeyF17,
	307: event.KeyF18,
	308: event.KeyF19,
	309: event.KeyF20,
	310: event.KeyF21,
	311: event.KeyF22,
	312: event.KeyF23,
	313: event.KeyF24,
	314: event.KeyF25,
	320: event.KeyKp0,
	321: event.KeyKp1,
	322: event.KeyKp2,
	323: event.KeyKp3,
	324: event.KeyKp4,
	325: event.KeyKp5,
	326: event.KeyKp6,
	327: event.KeyKp7,
	328: event.KeyKp8,
	329: event.KeyKp9,
	330: event.KeyKpDecimal,
	331: event.KeyKpDivide,
	332: event.KeyKpMultiply,
	333: event.KeyKpSubtract,
	334: event.KeyKpAdd,
	335: event.KeyKpEnter,
	336: event.KeyKpEqual,
	340: event.KeyLeftShift,
	341: event.KeyLeftControl,
	342: event.KeyLeftAlt,
	343: event.KeyLeftSuper,
	344: event.KeyRightShift,
	345: event.KeyRightControl,
	346: event.KeyRightAlt,
	347: event.KeyRightSuper,
	348: event.KeyMenu,
}

// Native mouse button indices (GLFW_MOUSE_BUTTON_1..5, raylib MOUSE_BUTTON_LEFT..EXTRA).
var buttonCodes = map[int]event.MouseButton{
	0: event.ButtonLeft,
	1: event.ButtonRight,
	2: event.ButtonMiddle,
	3: event.ButtonX1,
	4: event.ButtonX2,
}

// TranslateKey maps a native key code to a Key. ok is false for keys outside the normalized set.
func TranslateKey(code int) (k event.Key, ok bool) {
	k, ok = keyCodes[code]
	return k, ok
}

// TranslateButton maps a native mouse button index to a MouseButton.
func TranslateButton(code int) (b event.MouseButton, ok bool) {
	b, ok = buttonCodes[code]
	return b, ok
}

// ButtonCodes returns the native button indices that have a normalized equivalent, in ascending order.
func ButtonCodes() []int {
	return []int{0, 1, 2, 3, 4}
}
