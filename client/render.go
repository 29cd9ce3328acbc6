package client

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/luka333z/snake/config"
	"github.com/luka333z/snake/model"
)

// Canvas is the raster surface the painter draws on. *gg.Context satisfies it.
type Canvas interface {
	Width() int
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64)
	Fill()
	Clear()
	Image() image.Image
}

// Painter turns snapshots into pixels on a square surface.
type Painter struct {
	size    int
	colors  config.Colors
	surface Canvas
	acquire func(size int) Canvas
}

func NewPainter(size int, colors config.Colors) *Painter {
	return &Painter{
		size:   size,
		colors: colors,
		acquire: func(size int) Canvas {
			return gg.NewContext(size, size)
		},
	}
}

// Acquire takes a fresh surface and clears it to the background colour.
func (p *Painter) Acquire() {
	p.surface = p.acquire(p.size)
	p.surface.SetColor(p.colors.Background)
	p.surface.Clear()
}

// CellSize is the side of one grid cell in pixels; gridSize cells span the surface exactly.
func CellSize(surfaceWidth, gridSize int) float64 {
	return float64(surfaceWidth) / float64(gridSize)
}

// Paint redraws the whole frame. Player 1 is drawn after player 0 and wins overlaps.
func (p *Painter) Paint(s *model.GameSnapshot) {
	if p.surface == nil {
		p.Acquire()
	}
	c := p.surface
	c.SetColor(p.colors.Background)
	c.Clear()

	size := CellSize(c.Width(), s.GridSize)

	c.SetColor(p.colors.Food)
	fillCell(c, s.Food, size)

	p.paintPlayer(s.Players[0], size, p.colors.Snake)
	p.paintPlayer(s.Players[1], size, p.colors.Rival)
}

func (p *Painter) paintPlayer(ps model.PlayerState, size float64, clr color.Color) {
	p.surface.SetColor(clr)
	for _, cell := range ps.Snake {
		fillCell(p.surface, cell, size)
	}
}

func fillCell(c Canvas, cell model.Cell, size float64) {
	c.DrawRectangle(float64(cell.X)*size, float64(cell.Y)*size, size, size)
	c.Fill()
}

// Image is the current surface, nil before the first game.
func (p *Painter) Image() image.Image {
	if p.surface == nil {
		return nil
	}
	return p.surface.Image()
}

func (p *Painter) Size() int {
	return p.size
}
