package octreequant

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalettedExact(t *testing.T) {
	colors := []color.RGBA{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
		{R: 0x10, G: 0x20, B: 0x30, A: 0xFF},
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x += 1 {
		img.SetRGBA(x, 0, colors[x])
		img.SetRGBA(x, 1, colors[3-x])
	}
	out := Paletted(img, 16)
	assert.Len(t, out.Palette, 4)
	for x := 0; x < 4; x += 1 {
		assert.Equal(t, color.Color(colors[x]), out.At(x, 0))
		assert.Equal(t, color.Color(colors[3-x]), out.At(x, 1))
	}
}

func TestPalettedBound(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y += 1 {
		for x := 0; x < 64; x += 1 {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: uint8(x ^ y), A: 0xFF})
		}
	}
	for _, n := range []int{1, 2, 16, 254, 1000} {
		out := Paletted(img, n)
		assert.LessOrEqual(t, len(out.Palette), min(n, MaxColors))
		assert.NotEmpty(t, out.Palette)
	}
}

func TestPalettedTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	out := Paletted(img, 8)
	assert.Len(t, out.Palette, 2)
	assert.Equal(t, uint8(0), out.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), out.ColorIndexAt(1, 0))
	_, _, _, a := out.At(1, 0).RGBA()
	assert.Zero(t, a)
}

func TestPalettedOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for y := 20; y < 22; y += 1 {
		for x := 10; x < 13; x += 1 {
			img.SetRGBA(x, y, white)
		}
	}
	out := Paletted(img, 4)
	assert.Equal(t, img.Bounds(), out.Bounds())
	assert.Equal(t, color.Color(white), out.At(12, 21))
}
