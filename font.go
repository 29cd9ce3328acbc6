package main

import (
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	TitleFont font.Face
	Font      font.Face
)

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}

	const dpi = 72
	TitleFont = truetype.NewFace(tt, &truetype.Options{
		Size:    36,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    20,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// centered returns the dot position that centres s inside r.
func centered(face font.Face, s string, r image.Rectangle) (int, int) {
	b := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2 - b.Min.X
	y := r.Min.Y + (r.Dy()-b.Dy())/2 - b.Min.Y
	return x, y
}
