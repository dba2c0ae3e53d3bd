package export

import (
	"image/color"

	"git.sr.ht/~rockorager/scrawl"
)

// Palette holds the RGB values rasterized for each color. Bright cells use
// the second row, the way terminals render bold text.
var Palette = [2][scrawl.NumColors]color.RGBA{
	{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0xCD, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0xCD, B: 0x00, A: 0xFF},
		{R: 0xCD, G: 0xCD, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0x00, B: 0xEE, A: 0xFF},
		{R: 0xCD, G: 0x00, B: 0xCD, A: 0xFF},
		{R: 0x00, G: 0xCD, B: 0xCD, A: 0xFF},
		{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF},
	},
	{
		{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0x5C, G: 0x5C, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	},
}

// RGB returns the raster color of c. Invalid colors are clamped
func RGB(c scrawl.Color, bright bool) color.RGBA {
	row := 0
	if bright {
		row = 1
	}
	return Palette[row][c.Clamp()]
}
