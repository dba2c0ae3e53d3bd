package scrawl

// Coord is a position on a Board. It is used for cursors, fill seeds and
// clipboard corners
type Coord struct {
	X int
	Y int
}

// Rect is a normalized rectangle: X,Y is the top left corner and W,H are
// always at least 1
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Span returns the rectangle spanned by two corners, given in any order. Both
// corners are included.
func Span(a Coord, b Coord) Rect {
	return Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: abs(a.X-b.X) + 1,
		H: abs(a.Y-b.Y) + 1,
	}
}

// Contains reports whether the coordinate lies inside the rectangle
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.X && c.X < r.X+r.W && c.Y >= r.Y && c.Y < r.Y+r.H
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
