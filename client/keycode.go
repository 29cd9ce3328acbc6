package client

import "strconv"

// keyCodes maps key names, as ebiten spells them, to the browser
// KeyboardEvent.keyCode values the server reads.
var keyCodes = buildKeyCodes()

func buildKeyCodes() map[string]int {
	codes := map[string]int{
		"Backspace":      8,
		"Tab":            9,
		"Enter":          13,
		"NumpadEnter":    13,
		"ShiftLeft":      16,
		"ShiftRight":     16,
		"ControlLeft":    17,
		"ControlRight":   17,
		"AltLeft":        18,
		"AltRight":       18,
		"Pause":          19,
		"CapsLock":       20,
		"Escape":         27,
		"Space":          32,
		"PageUp":         33,
		"PageDown":       34,
		"End":            35,
		"Home":           36,
		"ArrowLeft":      37,
		"ArrowUp":        38,
		"ArrowRight":     39,
		"ArrowDown":      40,
		"PrintScreen":    44,
		"Insert":         45,
		"Delete":         46,
		"MetaLeft":       91,
		"MetaRight":      92,
		"ContextMenu":    93,
		"NumpadMultiply": 106,
		"NumpadAdd":      107,
		"NumpadSubtract": 109,
		"NumpadDecimal":  110,
		"NumpadDivide":   111,
		"NumLock":        144,
		"ScrollLock":     145,
		"Semicolon":      186,
		"Equal":          187,
		"Comma":          188,
		"Minus":          189,
		"Period":         190,
		"Slash":          191,
		"Backquote":      192,
		"BracketLeft":    219,
		"Backslash":      220,
		"BracketRight":   221,
		"Quote":          222,
	}
	for r := 'A'; r <= 'Z'; r++ {
		codes[string(r)] = int(r)
	}
	for i := 0; i <= 9; i++ {
		codes["Digit"+strconv.Itoa(i)] = 48 + i
		codes["Numpad"+strconv.Itoa(i)] = 96 + i
	}
	for i := 1; i <= 12; i++ {
		codes["F"+strconv.Itoa(i)] = 111 + i
	}
	return codes
}

// KeyCode returns the browser keyCode for a key name. Keys browsers give no
// legacy code, such as IntlBackslash or F13 and up, report false.
func KeyCode(name string) (int, bool) {
	code, ok := keyCodes[name]
	return code, ok
}
