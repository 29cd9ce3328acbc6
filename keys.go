package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/luka333z/snake/client"
)

// Held keys fire again after repeatDelay ticks, then every repeatInterval,
// like a desktop keyboard's auto-repeat.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

type keyCode struct {
	key  ebiten.Key
	code int
}

// keyCodes lists every ebiten key the server has a code for.
var keyCodes = buildKeyCodes()

func buildKeyCodes() []keyCode {
	var codes []keyCode
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if code, ok := client.KeyCode(k.String()); ok {
			codes = append(codes, keyCode{k, code})
		}
	}
	return codes
}

// repeating is true on the first tick of a press and on each auto-repeat.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// firedKeyCodes lists the codes of every mapped key firing this tick.
func firedKeyCodes(dst []int) []int {
	for _, kc := range keyCodes {
		if repeating(kc.key) {
			dst = append(dst, kc.code)
		}
	}
	return dst
}
