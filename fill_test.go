package scrawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardRows(b *Board) []string {
	rows := make([]string, 0, b.Height())
	for y := 0; y < b.Height(); y += 1 {
		row := make([]rune, 0, b.Width())
		for x := 0; x < b.Width(); x += 1 {
			row = append(row, rune(b.Get(x, y).Pattern))
		}
		rows = append(rows, string(row))
	}
	return rows
}

func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := New(len(rows[0]), len(rows), true)
	require.NoError(t, err)
	for y, row := range rows {
		for x, r := range row {
			b.Put(Blank.WithPattern(int(r)), x, y)
		}
	}
	return b
}

func TestFloodFillScenario(t *testing.T) {
	space := Cell{Pattern: ' ', Fg: White, Bg: Black, Bright: true, Blink: false}
	hash := Cell{Pattern: '#', Fg: White, Bg: Black, Bright: true, Blink: false}
	dot := Cell{Pattern: '.', Fg: White, Bg: Black, Bright: true, Blink: false}

	b, err := New(3, 2, true)
	require.NoError(t, err)
	b.Wipe(' ', White, Black, true, false)
	b.Put(hash, 1, 0)
	b.Put(hash, 1, 1)
	FloodFill(b, space, dot, 0, 0)

	assert.Equal(t, dot, b.Get(0, 0))
	assert.Equal(t, dot, b.Get(0, 1))
	assert.Equal(t, hash, b.Get(1, 0))
	assert.Equal(t, hash, b.Get(1, 1))
	assert.Equal(t, space, b.Get(2, 0), "the middle column blocks the fill")
	assert.Equal(t, space, b.Get(2, 1))
}

func TestFloodFillSameCell(t *testing.T) {
	b := boardFromRows(t,
		"  # ",
		" ## ",
		"#   ",
	)
	before := boardRows(b)
	for x := -1; x <= 4; x += 1 {
		for y := -1; y <= 3; y += 1 {
			FloodFill(b, Blank, Blank, x, y)
			FloodFill(b, b.Get(x, y), b.Get(x, y), x, y)
		}
	}
	assert.Equal(t, before, boardRows(b))
}

func TestFloodFillUniform(t *testing.T) {
	a := Cell{Pattern: 'a', Fg: Red, Bg: Green}
	z := Cell{Pattern: 'z', Fg: Blue, Bg: Cyan, Blink: true}
	seeds := []Coord{{0, 0}, {6, 4}, {3, 2}, {0, 4}}
	for _, seed := range seeds {
		b, err := New(7, 5, false)
		require.NoError(t, err)
		b.Fill(a)
		FloodFill(b, a, z, seed.X, seed.Y)
		for x := 0; x < 7; x += 1 {
			for y := 0; y < 5; y += 1 {
				assert.Equal(t, z, b.Get(x, y))
			}
		}
	}
}

func TestFloodFillLargeBoard(t *testing.T) {
	// Deep enough to exhaust a recursive implementation
	b, err := New(1500, 1500, false)
	require.NoError(t, err)
	filled := Blank.WithPattern('#')
	FloodFill(b, Blank, filled, 750, 750)
	for i, c := range b.cells {
		if c != filled {
			t.Fatalf("cell %d not filled: %+v", i, c)
		}
	}
}

func TestFloodFillRegions(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		seed     Coord
		expected []string
	}{
		{
			name: "enclosed",
			rows: []string{
				"#####",
				"#   #",
				"# # #",
				"#####",
			},
			seed: Coord{1, 1},
			expected: []string{
				"#####",
				"#...#",
				"#.#.#",
				"#####",
			},
		},
		{
			name: "diagonal gap is not connected",
			rows: []string{
				" #  ",
				"# # ",
				"  # ",
			},
			seed: Coord{0, 0},
			expected: []string{
				".#  ",
				"# # ",
				"  # ",
			},
		},
		{
			name: "spiral",
			rows: []string{
				"       ",
				"#####  ",
				"    #  ",
				" ## #  ",
				" #  #  ",
				" ####  ",
			},
			seed: Coord{2, 4},
			expected: []string{
				"       ",
				"#####  ",
				"....#  ",
				".##.#  ",
				".#..#  ",
				".####  ",
			},
		},
		{
			name: "seed on other pattern",
			rows: []string{
				"# ",
				"  ",
			},
			seed: Coord{0, 0},
			expected: []string{
				"# ",
				"  ",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := boardFromRows(t, test.rows...)
			FloodFill(b, Blank, Blank.WithPattern('.'), test.seed.X, test.seed.Y)
			assert.Equal(t, test.expected, boardRows(b))
		})
	}
}

func TestFloodFillOutOfBoundsSeed(t *testing.T) {
	b, err := New(3, 3, false)
	require.NoError(t, err)
	b.Fill(OutOfBounds)
	FloodFill(b, OutOfBounds, Blank, -1, 0)
	FloodFill(b, OutOfBounds, Blank, 3, 3)
	for _, c := range b.cells {
		assert.Equal(t, OutOfBounds, c)
	}
}
