package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	fadeIn = 0.25
	blink  = 0.5
)

// Action is what runs while and after a tween plays.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t after the tween a belongs to and returns the chained action.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

func (g *Game) fadeNotice() {
	g.noticeAlpha = 0
	t := gween.New(0, 1, fadeIn, ease.OutQuad)
	g.Tweens[t] = Action{onChange: func(v float32) { g.noticeAlpha = float64(v) }}
}

// blinkCursor pulses the join field cursor forever.
func (g *Game) blinkCursor() {
	set := func(v float32) { g.cursorAlpha = float64(v) }
	out := Action{onChange: set}
	in := out.next(gween.New(0, 1, blink, ease.InOutQuad))
	in.onChange = set
	in.addOnFinish(g.blinkCursor)
	g.Tweens[gween.New(1, 0, blink, ease.InOutQuad)] = out
}
