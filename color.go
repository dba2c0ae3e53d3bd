package scrawl

import (
	"fmt"
	"strings"
)

// Color is an entry of the fixed 8 color palette. The values follow the
// curses color numbers so that files written by other editors load unchanged.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	// NumColors is the size of the palette
	NumColors = 8
)

var colorNames = [NumColors]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
}

// Valid reports whether c is a palette entry. Boards may hold invalid colors
// after loading a hand edited file; renderers clamp them with [Color.Clamp]
func (c Color) Valid() bool {
	return c >= 0 && c < NumColors
}

// Clamp returns c if it is valid, otherwise the nearest palette entry
func (c Color) Clamp() Color {
	switch {
	case c < 0:
		return Black
	case c >= NumColors:
		return White
	}
	return c
}

// Next returns the following palette entry, wrapping after White
func (c Color) Next() Color {
	c += 1
	if c > NumColors-1 || c < 0 {
		return Black
	}
	return c
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor parses a palette entry by name
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if name == s {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", s)
}
