package editor

import (
	"fmt"

	"git.sr.ht/~rockorager/scrawl"
)

var (
	textStyle   = scrawl.Cell{Fg: scrawl.White, Bg: scrawl.Black}
	borderStyle = scrawl.Cell{Fg: scrawl.Black, Bg: scrawl.Black, Bright: true}
)

const filePrompt = "file: "

// Draw draws the board inside a border, followed by the mode line, the status
// lines and the message line:
//
//	+----+
//	|    |
//	+----+
//	Doodle Mode Engaged
//	X 0 Y 0 W 4 H 1 XStep 1 YStep 1 fg white bg black bright 1 blink 0
//	pattern 35 / # #
//	saved scratch.brd
func (e *Editor) Draw(s Surface) {
	Clear(s)
	w, h := e.board.Size()

	area := NewWindow(s, 1, 1, w, h)
	for x := 0; x < w; x += 1 {
		for y := 0; y < h; y += 1 {
			area.SetCell(x, y, e.board.Get(x, y))
		}
	}
	drawBorder(s, w, h)

	row := h + 2
	Print(NewWindow(s, 0, row, 0, 1), 0, e.modeLine(), textStyle)
	Print(NewWindow(s, 0, row+1, 0, 1), 0, fmt.Sprintf(
		"X %d Y %d W %d H %d XStep %d YStep %d fg %s bg %s bright %d blink %d",
		e.cursor.X, e.cursor.Y, w, h, e.stepX, e.stepY,
		e.primary.Fg, e.primary.Bg, btoi(e.primary.Bright), btoi(e.primary.Blink),
	), textStyle)
	patternLine := NewWindow(s, 0, row+2, 0, 1)
	col := Print(patternLine, 0, fmt.Sprintf("pattern %d / %s ", e.primary.Pattern, scrawl.Glyph(e.primary.Pattern)), textStyle)
	patternLine.SetCell(col, 0, e.primary)

	last := NewWindow(s, 0, row+3, 0, 1)
	if e.mode == modeFilename {
		col := Print(last, 0, filePrompt+string(e.entry), textStyle)
		last.ShowCursor(col, 0)
		return
	}
	Print(last, 0, e.message, textStyle)
	area.ShowCursor(e.cursor.X, e.cursor.Y)
}

func (e *Editor) modeLine() string {
	switch {
	case e.mode == modeTypewriter && e.doodle:
		return "Typewriter, Doodle Mode Engaged"
	case e.mode == modeTypewriter:
		return "Typewriter"
	case e.mode == modeFilename:
		return "Enter file name"
	case e.doodle:
		return "Doodle Mode Engaged"
	}
	return ""
}

// drawBorder draws a border around a board of size w x h placed at 1,1
func drawBorder(s Surface, w int, h int) {
	for x := 1; x <= w; x += 1 {
		s.SetCell(x, 0, borderStyle.WithPattern('-'))
		s.SetCell(x, h+1, borderStyle.WithPattern('-'))
	}
	for y := 1; y <= h; y += 1 {
		s.SetCell(0, y, borderStyle.WithPattern('|'))
		s.SetCell(w+1, y, borderStyle.WithPattern('|'))
	}
	s.SetCell(0, 0, borderStyle.WithPattern('+'))
	s.SetCell(w+1, 0, borderStyle.WithPattern('+'))
	s.SetCell(0, h+1, borderStyle.WithPattern('+'))
	s.SetCell(w+1, h+1, borderStyle.WithPattern('+'))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
