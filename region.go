package scrawl

// Extract copies the rectangle spanned by corners a and b into a new Board.
// The corners may be given in any order. Parts of the rectangle outside of
// the source hold [OutOfBounds] cells. The returned board shares no storage
// with the source.
func Extract(src *Board, a Coord, b Coord) (*Board, error) {
	r := Span(a, b)
	clip, err := New(r.W, r.H, src.color)
	if err != nil {
		return nil, err
	}
	Compose(src, clip, r.X, r.Y, r.W, r.H, 0, 0)
	return clip, nil
}

// Compose copies the w x h rectangle at srcX,srcY of src into dst at
// dstX,dstY. Reads and writes are bounds checked, so the copy clips silently
// at the edges of both boards.
func Compose(src *Board, dst *Board, srcX, srcY, w, h, dstX, dstY int) {
	for i := 0; i < w; i += 1 {
		for j := 0; j < h; j += 1 {
			dst.Put(src.Get(srcX+i, srcY+j), dstX+i, dstY+j)
		}
	}
}

// Paste composes the whole of clip into dst with its top left corner at at
func Paste(clip *Board, dst *Board, at Coord) {
	w, h := clip.Size()
	Compose(clip, dst, 0, 0, w, h, at.X, at.Y)
}
