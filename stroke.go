package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tapSlop is how far a press may travel and still count as a click.
const tapSlop = 12

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID ebiten.TouchID
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press from down to up.
type Stroke struct {
	source StrokeSource

	initX, initY       int
	currentX, currentY int

	released bool
	// dragged strokes never become clicks
	dragged bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
	dx, dy := s.PositionDiff()
	if abs(dx) > tapSlop || abs(dy) > tapSlop {
		s.dragged = true
	}
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) PositionDiff() (int, int) {
	return s.currentX - s.initX, s.currentY - s.initY
}

// Click reports where a finished, undragged stroke started.
func (s *Stroke) Click() (image.Point, bool) {
	if !s.released || s.dragged {
		return image.Point{}, false
	}
	return image.Pt(s.initX, s.initY), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
