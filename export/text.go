// Package export renders boards outside of the editor: as plain text, as text
// with ANSI escape sequences, and as raster images encoded to PNG or sixel.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/scrawl"
)

// ErrEmptyBoard is returned when rendering a board without cells
var ErrEmptyBoard = errors.New("export: empty board")

const (
	sgrReset = "\x1b[0m"
	sgrBold  = "1"
	sgrBlink = "5"
	sgrFg    = 30
	sgrBg    = 40
)

// Text writes the glyphs of each row of b, one row per line
func Text(w io.Writer, b *scrawl.Board) error {
	if b.Width() == 0 {
		return ErrEmptyBoard
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < b.Height(); y += 1 {
		for x := 0; x < b.Width(); x += 1 {
			bw.WriteString(scrawl.Glyph(b.Get(x, y).Pattern))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// sgr returns the select graphic rendition parameters for c. Every sequence
// starts with a reset so that attributes never leak between cells
func sgr(c scrawl.Cell, color bool) string {
	params := []string{"0"}
	if c.Bright {
		params = append(params, sgrBold)
	}
	if c.Blink {
		params = append(params, sgrBlink)
	}
	if color {
		params = append(params,
			strconv.Itoa(sgrFg+int(c.Fg.Clamp())),
			strconv.Itoa(sgrBg+int(c.Bg.Clamp())),
		)
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// ANSI writes b as text with SGR sequences for the attributes of each cell. A
// sequence is only emitted when the attributes change, and each line ends
// with a reset. Colors are omitted when the board has color disabled.
func ANSI(w io.Writer, b *scrawl.Board) error {
	if b.Width() == 0 {
		return ErrEmptyBoard
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < b.Height(); y += 1 {
		prev := ""
		for x := 0; x < b.Width(); x += 1 {
			c := b.Get(x, y)
			seq := sgr(c, b.ColorEnabled())
			if seq != prev {
				bw.WriteString(seq)
				prev = seq
			}
			bw.WriteString(scrawl.Glyph(c.Pattern))
		}
		bw.WriteString(sgrReset)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ansi: %w", err)
	}
	return nil
}
