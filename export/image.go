package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"git.sr.ht/~rockorager/scrawl"
)

const (
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// Options configure raster exports
type Options struct {
	// CellWidth and CellHeight are the size of a cell in pixels. They
	// default to 8x16
	CellWidth  int
	CellHeight int

	// FontSize is the size of the glyphs in points. It defaults to three
	// quarters of the cell height
	FontSize float64

	// MaxWidth and MaxHeight bound the size of the image in pixels. A larger
	// image is scaled down, keeping its aspect ratio. Zero means unbounded
	MaxWidth  int
	MaxHeight int
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = defaultCellHeight
	}
	if o.FontSize <= 0 {
		o.FontSize = float64(o.CellHeight) * 0.75
	}
	return o
}

func newFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// render draws every cell of b: its background, then its glyph centered in
// the cell. Boards with color disabled are drawn white on black
func render(b *scrawl.Board, opts Options) (*gg.Context, error) {
	if b.Width() == 0 {
		return nil, ErrEmptyBoard
	}
	face, err := newFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	cw := float64(opts.CellWidth)
	ch := float64(opts.CellHeight)
	dc := gg.NewContext(b.Width()*opts.CellWidth, b.Height()*opts.CellHeight)
	dc.SetFontFace(face)
	for x := 0; x < b.Width(); x += 1 {
		for y := 0; y < b.Height(); y += 1 {
			c := b.Get(x, y)
			fg, bg := c.Fg, c.Bg
			if !b.ColorEnabled() {
				fg, bg = scrawl.White, scrawl.Black
			}
			px := float64(x) * cw
			py := float64(y) * ch
			dc.SetColor(RGB(bg, false))
			dc.DrawRectangle(px, py, cw, ch)
			dc.Fill()

			glyph := scrawl.Glyph(c.Pattern)
			if glyph == " " {
				continue
			}
			dc.SetColor(RGB(fg, c.Bright))
			dc.DrawStringAnchored(glyph, px+cw/2, py+ch/2, 0.5, 0.5)
		}
	}
	return dc, nil
}

// Image rasterizes b, one CellWidth x CellHeight block per cell
func Image(b *scrawl.Board, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	dc, err := render(b, opts)
	if err != nil {
		return nil, err
	}
	return fit(dc.Image(), opts.MaxWidth, opts.MaxHeight), nil
}

// PNG writes b rasterized as a PNG image
func PNG(w io.Writer, b *scrawl.Board, opts Options) error {
	img, err := Image(b, opts)
	if err != nil {
		return err
	}
	return encodePNG(w, gg.NewContextForImage(img))
}

func encodePNG(w io.Writer, dc *gg.Context) error {
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// fit scales img down to fit in maxW x maxH pixels, keeping its aspect ratio.
// A bound of zero is ignored
func fit(img image.Image, maxW int, maxH int) image.Image {
	wPix := img.Bounds().Dx()
	hPix := img.Bounds().Dy()
	if maxW <= 0 {
		maxW = wPix
	}
	if maxH <= 0 {
		maxH = hPix
	}
	if wPix <= maxW && hPix <= maxH {
		return img
	}
	sfX := float64(maxW) / float64(wPix)
	sfY := float64(maxH) / float64(hPix)
	sf := min(sfX, sfY)
	newW := max(1, int(sf*float64(wPix)))
	newH := max(1, int(sf*float64(hPix)))
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)
	return dst
}
