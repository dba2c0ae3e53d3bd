package scrawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name     string
		pattern  int
		expected string
	}{
		{name: "ascii", pattern: 'A', expected: "A"},
		{name: "space", pattern: ' ', expected: " "},
		{name: "out of bounds", pattern: PatternOutOfBounds, expected: " "},
		{name: "control", pattern: '\n', expected: "?"},
		{name: "negative", pattern: -4, expected: "?"},
		{name: "beyond unicode", pattern: 0x110000, expected: "?"},
		{name: "surrogate", pattern: 0xD800, expected: "?"},
		{name: "box drawing", pattern: 0x2500, expected: "─"},
		{name: "full width", pattern: 0x65E5, expected: "?"},
		{name: "combining", pattern: 0x0301, expected: "?"},
		{name: "variation selector", pattern: 0xFE0F, expected: "?"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Glyph(test.pattern))
		})
	}
}

func TestGlyphWidth(t *testing.T) {
	assert.Equal(t, 1, GlyphWidth('x'))
	assert.Equal(t, 2, GlyphWidth(0x65E5))
	assert.Equal(t, 0, GlyphWidth(0x1B))
	assert.Equal(t, 0, GlyphWidth(-1))
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "ascii",
			input:    "hi!",
			expected: []int{'h', 'i', '!'},
		},
		{
			name:     "tab",
			input:    "a\tb",
			expected: []int{'a', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', 'b'},
		},
		{
			name:     "combining mark keeps base",
			input:    "e\u0301x",
			expected: []int{'e', 'x'},
		},
		{
			name:     "wide",
			input:    "a日",
			expected: []int{'a', '?'},
		},
		{
			name:     "emoji sequence",
			input:    "👩‍🚀.",
			expected: []int{'?', '.'},
		},
		{
			name:     "empty",
			input:    "",
			expected: []int{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Patterns(test.input))
		})
	}
}

func TestPatternCycle(t *testing.T) {
	assert.Equal(t, 'b', rune(NextPattern('a')))
	assert.Equal(t, PrintableMin, NextPattern(PrintableMax))
	assert.Equal(t, PrintableMax, PrevPattern(PrintableMin))
	assert.Equal(t, '`', rune(PrevPattern('a')))
	// Out of range glyphs are brought back into the range
	assert.Equal(t, PrintableMin, NextPattern(0x2500))
	assert.Equal(t, PrintableMax, PrevPattern(0))

	p := 'A'
	for i := 0; i < PrintableMax-PrintableMin+1; i += 1 {
		p = rune(NextPattern(int(p)))
	}
	assert.Equal(t, 'A', p)
}
