package scrawl

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	// PrintableMin and PrintableMax bound the glyphs an editor cycles
	// through
	PrintableMin = 32
	PrintableMax = 126

	// replacement is drawn for patterns that can't occupy a single column
	replacement = '?'
	tabWidth    = 8
)

// Glyph returns the string to draw for a pattern. Every glyph is exactly one
// column wide: patterns that aren't printable, or that a terminal would draw
// wider or narrower than one column, are replaced by "?". The out of bounds
// pattern is drawn as a space.
func Glyph(pattern int) string {
	if pattern == PatternOutOfBounds {
		return " "
	}
	if GlyphWidth(pattern) != 1 {
		return string(replacement)
	}
	return string(rune(pattern))
}

// GlyphWidth returns the number of terminal columns a pattern occupies. It is
// 0 for patterns which aren't valid, printable runes.
func GlyphWidth(pattern int) int {
	if pattern < 0 || pattern > unicode.MaxRune {
		return 0
	}
	r := rune(pattern)
	if !utf8.ValidRune(r) || !unicode.IsPrint(r) {
		return 0
	}
	// Variation selectors never stand on their own
	if r >= 0xFE00 && r <= 0xFE0F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Patterns converts text into glyph patterns, one per grapheme cluster.
// Clusters of several runes keep their first rune, clusters which aren't a
// single column wide become "?" and tabs expand to spaces.
func Patterns(s string) []int {
	patterns := make([]int, 0, len(s))
	state := -1
	cluster := ""
	w := 0
	for s != "" {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			for i := 0; i < tabWidth; i += 1 {
				patterns = append(patterns, ' ')
			}
			continue
		}
		r, _ := utf8.DecodeRuneInString(cluster)
		if w != 1 || GlyphWidth(int(r)) != 1 {
			patterns = append(patterns, replacement)
			continue
		}
		patterns = append(patterns, int(r))
	}
	return patterns
}

// NextPattern returns the glyph after p within the printable range, wrapping
// from PrintableMax to PrintableMin
func NextPattern(p int) int {
	p += 1
	if p > PrintableMax || p < PrintableMin {
		return PrintableMin
	}
	return p
}

// PrevPattern returns the glyph before p within the printable range, wrapping
// from PrintableMin to PrintableMax
func PrevPattern(p int) int {
	p -= 1
	if p < PrintableMin || p > PrintableMax {
		return PrintableMax
	}
	return p
}
