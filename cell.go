package scrawl

// PatternOutOfBounds is the pattern of the cell returned for reads outside of
// a Board. No glyph uses it.
const PatternOutOfBounds = 0

// Cell is a single position on a Board: a glyph code plus its colors and
// attributes. Cells are compared structurally with ==.
type Cell struct {
	// Pattern is the glyph code, usually a printable rune
	Pattern int
	// Fg is the foreground color
	Fg Color
	// Bg is the background color
	Bg Color
	// Bright renders the glyph in the bright (bold) variant of Fg
	Bright bool
	// Blink makes the glyph blink, if the terminal supports it
	Blink bool
}

var (
	// OutOfBounds is returned by Get for any position outside the Board
	OutOfBounds = Cell{Pattern: PatternOutOfBounds}

	// Blank is the default cell: a bright white space on black. New boards,
	// loaded boards and erased cells use it
	Blank = Cell{
		Pattern: ' ',
		Fg:      White,
		Bg:      Black,
		Bright:  true,
		Blink:   false,
	}
)

// IsOutOfBounds reports whether the cell is the out of bounds sentinel
func (c Cell) IsOutOfBounds() bool {
	return c == OutOfBounds
}

// WithPattern returns a copy of c with the pattern replaced
func (c Cell) WithPattern(pattern int) Cell {
	c.Pattern = pattern
	return c
}
