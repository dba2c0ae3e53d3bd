package scrawl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name     string
		a        Coord
		b        Coord
		expected Rect
	}{
		{name: "ordered", a: Coord{1, 1}, b: Coord{3, 3}, expected: Rect{1, 1, 3, 3}},
		{name: "reversed", a: Coord{3, 3}, b: Coord{1, 1}, expected: Rect{1, 1, 3, 3}},
		{name: "mixed", a: Coord{4, 0}, b: Coord{2, 5}, expected: Rect{2, 0, 3, 6}},
		{name: "single", a: Coord{2, 2}, b: Coord{2, 2}, expected: Rect{2, 2, 1, 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Span(test.a, test.b))
		})
	}
}

func TestExtractCornerOrder(t *testing.T) {
	src := boardFromRows(t,
		"abcde",
		"fghij",
		"klmno",
		"pqrst",
	)
	forward, err := Extract(src, Coord{1, 1}, Coord{3, 3})
	require.NoError(t, err)
	backward, err := Extract(src, Coord{3, 3}, Coord{1, 1})
	require.NoError(t, err)
	antidiagonal, err := Extract(src, Coord{3, 1}, Coord{1, 3})
	require.NoError(t, err)

	assert.True(t, forward.Equal(backward))
	assert.True(t, forward.Equal(antidiagonal))
	assert.Equal(t, []string{"ghi", "lmn", "qrs"}, boardRows(forward))
	assert.Equal(t, src.ColorEnabled(), forward.ColorEnabled())
}

func TestExtractOwnsStorage(t *testing.T) {
	src := boardFromRows(t, "ab", "cd")
	clip, err := Extract(src, Coord{0, 0}, Coord{1, 1})
	require.NoError(t, err)
	src.Put(Blank.WithPattern('z'), 0, 0)
	assert.Equal(t, 'a', rune(clip.Get(0, 0).Pattern))
}

func TestExtractPartialOverlap(t *testing.T) {
	src := boardFromRows(t, "ab", "cd")
	clip, err := Extract(src, Coord{-1, -1}, Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, clip.Width())
	assert.Equal(t, 2, clip.Height())
	assert.Equal(t, OutOfBounds, clip.Get(0, 0))
	assert.Equal(t, OutOfBounds, clip.Get(1, 0))
	assert.Equal(t, OutOfBounds, clip.Get(0, 1))
	assert.Equal(t, 'a', rune(clip.Get(1, 1).Pattern))
}

func TestExtractTooLarge(t *testing.T) {
	src := boardFromRows(t, "ab")
	_, err := Extract(src, Coord{0, 0}, Coord{MaxCells, 1})
	assert.True(t, errors.Is(err, ErrAllocation))
}

func TestComposeRoundTrip(t *testing.T) {
	src := boardFromRows(t,
		"abcde",
		"fghij",
		"klmno",
	)
	a, b := Coord{3, 2}, Coord{1, 0}
	clip, err := Extract(src, a, b)
	require.NoError(t, err)

	dst, err := New(5, 3, true)
	require.NoError(t, err)
	r := Span(a, b)
	Compose(clip, dst, 0, 0, clip.Width(), clip.Height(), r.X, r.Y)
	for x := 0; x < 5; x += 1 {
		for y := 0; y < 3; y += 1 {
			if r.Contains(Coord{x, y}) {
				assert.Equal(t, src.Get(x, y), dst.Get(x, y))
				continue
			}
			assert.Equal(t, Blank, dst.Get(x, y))
		}
	}
}

func TestComposeClips(t *testing.T) {
	src := boardFromRows(t,
		"123",
		"456",
	)
	dst := boardFromRows(t,
		"....",
		"....",
	)
	Compose(src, dst, 0, 0, 3, 2, 2, 1)
	assert.Equal(t, []string{"....", "..12"}, boardRows(dst))

	dst = boardFromRows(t, "....", "....")
	Compose(src, dst, 1, 0, 3, 3, -1, 0)
	// column -1 is discarded, the source column past the edge reads as
	// the sentinel
	assert.Equal(t, []string{"3\x00..", "6\x00.."}, boardRows(dst))
}

func TestPaste(t *testing.T) {
	clip := boardFromRows(t, "xy")
	dst := boardFromRows(t, "....", "....")
	Paste(clip, dst, Coord{1, 1})
	assert.Equal(t, []string{"....", ".xy."}, boardRows(dst))
}
