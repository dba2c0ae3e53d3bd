package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rockorager/scrawl"
)

// Screen draws scrawl cells on a tcell.Screen
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps s. The screen must be initialized
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) SetCell(col int, row int, cell scrawl.Cell) {
	r, _ := utf8.DecodeRuneInString(scrawl.Glyph(cell.Pattern))
	s.screen.SetContent(col, row, r, nil, Style(cell))
}

func (s *Screen) Size() (cols int, rows int) {
	return s.screen.Size()
}

func (s *Screen) ShowCursor(col int, row int) {
	s.screen.ShowCursor(col, row)
}

func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// Style returns the tcell style of a cell. Colors map to the terminal palette,
// bright cells are bold.
func Style(cell scrawl.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(cell.Fg.Clamp()))).
		Background(tcell.PaletteColor(int(cell.Bg.Clamp()))).
		Bold(cell.Bright).
		Blink(cell.Blink)
}
