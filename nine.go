package main

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Nine draws a nine-patch: corners keep their size, edges and centre stretch.
type Nine struct {
	images            *ebiten.Image
	alpha             float64
	R, G, B, Scale    float64
	positions         [4][2]int
	x, y              int
	width, height     int
	scaleCenterWidth  float64
	scaleCenterHeight float64
	targetPositions   [4][2]float64
}

// newPanel builds a rounded white frame that Nine tints per draw.
func newPanel() *Nine {
	const side, corner = 48, 16
	dc := gg.NewContext(side, side)
	dc.DrawRoundedRectangle(1, 1, side-2, side-2, corner-4)
	dc.SetRGB(1, 1, 1)
	dc.FillPreserve()
	dc.SetRGBA(0, 0, 0, 0.4)
	dc.SetLineWidth(2)
	dc.Stroke()

	return &Nine{
		images: ebiten.NewImageFromImage(dc.Image()),
		alpha:  1,
		R:      1, G: 1, B: 1, Scale: 1,
		positions: [4][2]int{{0, 0}, {corner, corner}, {side - corner, side - corner}, {side, side}},
	}
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHeight := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHeight / float64(n.positions[2][1]-n.positions[1][1])
}

// SetBounds moves the panel to r and stretches it to fit.
func (n *Nine) SetBounds(r image.Rectangle) {
	n.x, n.y = r.Min.X, r.Min.Y
	n.SetSize(r.Dx(), r.Dy())
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scales := [3]float64{n.Scale, n.scaleCenterWidth, n.Scale}
	vScales := [3]float64{n.Scale, n.scaleCenterHeight, n.Scale}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scales[col], vScales[row])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			// colour scale is premultiplied
			a := float32(n.alpha)
			op.ColorScale.Scale(float32(n.R)*a, float32(n.G)*a, float32(n.B)*a, a)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
