package editor

import "git.sr.ht/~rockorager/scrawl"

// Surface is an area cells can be drawn on
type Surface interface {
	// SetCell places a cell at the given location. Locations outside the
	// surface are discarded
	SetCell(col int, row int, cell scrawl.Cell)

	// Size returns the current size of the Surface
	Size() (cols int, rows int)

	// ShowCursor displays the cursor at a given location
	ShowCursor(col int, row int)

	// HideCursor hides the cursor
	HideCursor()
}

// Window is a view into a region of a parent Surface. Writes which land
// outside the region are dropped, so the board and the status lines can't
// draw over each other.
type Window struct {
	Column int
	Row    int
	Width  int // 0 extends to the right edge of Parent
	Height int // 0 extends to the bottom of Parent
	Parent Surface
}

// NewWindow returns the cols x rows region of parent starting at col, row
func NewWindow(parent Surface, col, row, cols, rows int) Window {
	return Window{
		Row:    row,
		Column: col,
		Width:  cols,
		Height: rows,
		Parent: parent,
	}
}

// Size returns the part of the Window which fits in its parent
func (win Window) Size() (width int, height int) {
	if win.Parent == nil {
		return 0, 0
	}
	pCols, pRows := win.Parent.Size()

	switch {
	case (win.Column + win.Width) > pCols:
		width = pCols - win.Column
	case win.Width <= 0:
		width = pCols - win.Column
	default:
		width = win.Width
	}
	switch {
	case (win.Row + win.Height) > pRows:
		height = pRows - win.Row
	case win.Height <= 0:
		height = pRows - win.Row
	default:
		height = win.Height
	}
	return max(width, 0), max(height, 0)
}

// SetCell draws on the parent, translated by the Window offset
func (win Window) SetCell(col int, row int, cell scrawl.Cell) {
	cols, rows := win.Size()
	if col < 0 || row < 0 {
		return
	}
	if col >= cols || row >= rows {
		return
	}
	win.Parent.SetCell(col+win.Column, row+win.Row, cell)
}

func (win Window) ShowCursor(col int, row int) {
	if win.Parent == nil {
		return
	}
	win.Parent.ShowCursor(col+win.Column, row+win.Row)
}

func (win Window) HideCursor() {
	if win.Parent == nil {
		return
	}
	win.Parent.HideCursor()
}

// Fill completely fills the Surface with the provided cell
func Fill(srf Surface, cell scrawl.Cell) {
	cols, rows := srf.Size()
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			srf.SetCell(col, row, cell)
		}
	}
}

// Clear fills the Surface with blank cells
func Clear(srf Surface) {
	Fill(srf, scrawl.Cell{Pattern: ' ', Fg: scrawl.White, Bg: scrawl.Black})
}

// Print prints a single line of text to a Surface using the colors of style.
// Text that doesn't fit is cut off. Print returns the column after the last
// glyph.
func Print(srf Surface, row int, text string, style scrawl.Cell) int {
	col := 0
	for _, p := range scrawl.Patterns(text) {
		srf.SetCell(col, row, style.WithPattern(p))
		col += 1
	}
	return col
}
