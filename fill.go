package scrawl

// FloodFill replaces every cell 4-connected to x,y that equals first with
// second. Nothing happens when first == second, or when the cell at x,y is
// not first.
//
// Cells are replaced before they are pushed on the work-list, so each
// matching cell is visited once and the work-list never holds more than
// width*height entries.
func FloodFill(b *Board, first Cell, second Cell, x int, y int) {
	if first == second {
		return
	}
	// An out of bounds seed reads as the sentinel, which could equal first
	if !b.InBounds(x, y) || b.Get(x, y) != first {
		return
	}

	pending := newWorklist[Coord](b.width * b.height)
	b.Put(second, x, y)
	pending.push(Coord{X: x, Y: y})
	for {
		c, ok := pending.pop()
		if !ok {
			return
		}
		for _, n := range [4]Coord{
			{X: c.X - 1, Y: c.Y},
			{X: c.X + 1, Y: c.Y},
			{X: c.X, Y: c.Y - 1},
			{X: c.X, Y: c.Y + 1},
		} {
			if !b.InBounds(n.X, n.Y) {
				continue
			}
			if b.Get(n.X, n.Y) != first {
				continue
			}
			b.Put(second, n.X, n.Y)
			pending.push(n)
		}
	}
}
