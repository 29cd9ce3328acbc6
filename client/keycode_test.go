package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	cases := map[string]int{
		"ArrowLeft": 37, "ArrowUp": 38, "ArrowRight": 39, "ArrowDown": 40,
		"A": 65, "W": 87, "Z": 90,
		"Digit0": 48, "Digit9": 57,
		"Numpad0": 96, "Numpad9": 105,
		"F1": 112, "F12": 123,
		"Delete": 46, "Insert": 45, "Home": 36, "End": 35,
		"PageUp": 33, "PageDown": 34, "CapsLock": 20,
		"Semicolon": 186, "Comma": 188, "Slash": 191, "Backquote": 192,
		"BracketLeft": 219, "Quote": 222,
		"Space": 32, "Enter": 13, "NumpadEnter": 13, "Escape": 27, "Backspace": 8,
	}
	for name, want := range cases {
		got, ok := KeyCode(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestKeyCodeUnknown(t *testing.T) {
	for _, name := range []string{"IntlBackslash", "F13", "", "a", "KeyA"} {
		_, ok := KeyCode(name)
		assert.False(t, ok, name)
	}
}
