package main

import "image"

// Button is a clickable lobby rectangle in screen coordinates.
type Button struct {
	Label   string
	Rect    image.Rectangle
	OnClick func()
}

func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// lobbyLayout places the join field and the two buttons for a surface of the
// given size. The field comes first, buttons follow top to bottom.
func lobbyLayout(size int) (field image.Rectangle, buttons [2]image.Rectangle) {
	const w, h, gap = 300, 48, 20
	x := (size - w) / 2
	y := header + size/3
	field = image.Rect(x, y, x+w, y+h)
	for i := range buttons {
		top := y + (i+1)*(h+gap)
		buttons[i] = image.Rect(x, top, x+w, top+h)
	}
	return
}
