package editor

import (
	"strings"
	"sync"

	"git.sr.ht/~rockorager/scrawl"
)

// Buffer is an in memory Surface. It keeps everything drawn on it, which
// makes it useful for inspecting the output of a Model without a terminal.
type Buffer struct {
	buf  [][]scrawl.Cell
	mu   sync.Mutex
	rows int
	cols int

	cursorCol     int
	cursorRow     int
	cursorVisible bool
}

// NewBuffer returns a Buffer of the given size, filled with out of bounds
// cells
func NewBuffer(cols int, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

func (b *Buffer) Size() (cols int, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cols, b.rows
}

// Resize resizes the buffer, discarding its contents
func (b *Buffer) Resize(cols int, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cols = max(cols, 0)
	rows = max(rows, 0)
	b.buf = make([][]scrawl.Cell, rows)
	for row := range b.buf {
		b.buf[row] = make([]scrawl.Cell, cols)
	}
	b.rows = rows
	b.cols = cols
}

// Set a cell at col, row
func (b *Buffer) SetCell(col int, row int, cell scrawl.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if col < 0 || row < 0 {
		return
	}
	if col >= b.cols {
		return
	}
	if row >= b.rows {
		return
	}
	b.buf[row][col] = cell
}

// Cell returns the cell at col, row
func (b *Buffer) Cell(col int, row int) scrawl.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		return scrawl.OutOfBounds
	}
	return b.buf[row][col]
}

// Line returns the glyphs of a row, with trailing blanks removed
func (b *Buffer) Line(row int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= b.rows {
		return ""
	}
	sb := strings.Builder{}
	for _, cell := range b.buf[row] {
		sb.WriteString(scrawl.Glyph(cell.Pattern))
	}
	return strings.TrimRight(sb.String(), " ")
}

func (b *Buffer) ShowCursor(col int, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorCol = col
	b.cursorRow = row
	b.cursorVisible = true
}

func (b *Buffer) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

// Cursor returns the cursor position and whether it is shown
func (b *Buffer) Cursor() (col int, row int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorCol, b.cursorRow, b.cursorVisible
}
