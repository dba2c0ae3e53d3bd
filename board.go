// Package scrawl is the board engine of a character art editor: a dense grid
// of cells with bounds-checked access, flood fill, rectangular copy and paste,
// and a line oriented text format.
//
// The engine never logs and never touches a terminal. Failures are reported as
// errors for the caller to log.
package scrawl

import (
	"errors"
	"fmt"
)

// MaxCells is the largest number of cells a Board may hold
const MaxCells = 1 << 26

var (
	// ErrInvalidDimensions is returned when a Board is requested with a width
	// or height below 1
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrAllocation is returned when the storage for a Board can't be
	// obtained. Callers should treat it as fatal
	ErrAllocation = errors.New("allocation failed")
	// ErrFileOpen is returned when a board file can't be opened
	ErrFileOpen = errors.New("could not open file")
)

// Board is a width x height grid of cells. Cells are stored column-major
// (index = x*height + y), which is also the order of the file format.
//
// Reads outside the board return [OutOfBounds] and writes outside the board
// are discarded. A Board is not safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  []Cell
	color  bool
}

// New allocates a Board and wipes it to [Blank]
func New(width int, height int, color bool) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("board %dx%d: %w", width, height, ErrAllocation)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		color:  color,
	}
	b.Fill(Blank)
	return b, nil
}

// Free releases the storage of the board. A freed board has no cells: every
// access is out of bounds. Free is safe to call on a nil board.
func (b *Board) Free() {
	if b == nil {
		return
	}
	b.cells = nil
	b.width = 0
	b.height = 0
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Size returns the width and height of the board
func (b *Board) Size() (width int, height int) {
	return b.width, b.height
}

// ColorEnabled reports whether the board was drawn with colors
func (b *Board) ColorEnabled() bool {
	return b.color
}

func (b *Board) SetColorEnabled(color bool) {
	b.color = color
}

// InBounds reports whether x,y addresses a cell of the board
func (b *Board) InBounds(x int, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, or [OutOfBounds]
func (b *Board) Get(x int, y int) Cell {
	if !b.InBounds(x, y) {
		return OutOfBounds
	}
	return b.cells[x*b.height+y]
}

// Put sets the cell at x,y. Writes outside the board are discarded
func (b *Board) Put(cell Cell, x int, y int) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[x*b.height+y] = cell
}

// Wipe sets every cell to the given attributes
func (b *Board) Wipe(pattern int, fg Color, bg Color, bright bool, blink bool) {
	b.Fill(Cell{
		Pattern: pattern,
		Fg:      fg,
		Bg:      bg,
		Bright:  bright,
		Blink:   blink,
	})
}

// Fill sets every cell to cell
func (b *Board) Fill(cell Cell) {
	for x := 0; x < b.width; x += 1 {
		for y := 0; y < b.height; y += 1 {
			b.cells[x*b.height+y] = cell
		}
	}
}

// Equal reports whether both boards have the same size, color flag and cells
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height || b.color != other.color {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
