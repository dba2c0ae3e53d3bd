package export

import (
	"fmt"
	"io"

	"github.com/mattn/go-sixel"

	"git.sr.ht/~rockorager/scrawl"
	"git.sr.ht/~rockorager/scrawl/octreequant"
)

// sixelColors stays below the encoder's palette size so that the quantized
// image is passed through unchanged
const sixelColors = 254

// Sixel writes b rasterized as a sixel image, ready to be printed on a
// terminal which supports them
func Sixel(w io.Writer, b *scrawl.Board, opts Options) error {
	img, err := Image(b, opts)
	if err != nil {
		return err
	}
	paletted := octreequant.Paletted(img, sixelColors)
	if err := sixel.NewEncoder(w).Encode(paletted); err != nil {
		return fmt.Errorf("encode sixel: %w", err)
	}
	return nil
}
