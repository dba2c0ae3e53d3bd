// Package editor implements the interactive board editor as a Model: a cursor
// moving over a board, a primary cell which is drawn with, a clipboard and the
// commands bound to keys. It draws onto any Surface and never touches the
// terminal itself.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.sr.ht/~rockorager/scrawl"
	"git.sr.ht/~rockorager/scrawl/log"
)

const (
	// DefaultFilename is used when no file name was given
	DefaultFilename = "scratch.brd"

	// FilenameMax is the longest file name that can be entered
	FilenameMax = 63

	storeTimeout = 5 * time.Second
)

// Sketchbook stores named boards
type Sketchbook interface {
	Put(ctx context.Context, name string, b *scrawl.Board) error
}

// Options configure an Editor
type Options struct {
	// Logger receives editor logs. A nil Logger discards them
	Logger *slog.Logger
	// Filename is the file used by save and load
	Filename string
	// Sketchbook, if set, is where boards are stored with the store command
	Sketchbook Sketchbook
}

type mode int

const (
	modeNormal mode = iota
	modeTypewriter
	modeFilename
)

// Editor is the state of an editing session. It owns the board it was created
// with: loading a file replaces and frees it.
type Editor struct {
	board   *scrawl.Board
	clip    *scrawl.Board
	cursor  scrawl.Coord
	anchor  scrawl.Coord
	stepX   int
	stepY   int
	primary scrawl.Cell
	doodle  bool
	mode    mode
	margin  int

	filename string
	entry    []rune
	message  string

	book Sketchbook
	log  *slog.Logger
	done bool
}

// New creates an Editor for board
func New(board *scrawl.Board, opts Options) *Editor {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}
	e := &Editor{
		board:  board,
		cursor: scrawl.Coord{X: 5, Y: 5},
		stepX:  1,
		stepY:  1,
		primary: scrawl.Cell{
			Pattern: '#',
			Fg:      scrawl.White,
			Bg:      scrawl.Black,
			Bright:  true,
			Blink:   false,
		},
		filename: opts.Filename,
		book:     opts.Sketchbook,
		log:      opts.Logger,
	}
	e.clampCursor()
	return e
}

// Board returns the board being edited
func (e *Editor) Board() *scrawl.Board {
	return e.board
}

// Cursor returns the cursor position on the board
func (e *Editor) Cursor() scrawl.Coord {
	return e.cursor
}

// Primary returns the cell the editor draws with
func (e *Editor) Primary() scrawl.Cell {
	return e.primary
}

// Steps returns how far the cursor moves horizontally and vertically
func (e *Editor) Steps() (x int, y int) {
	return e.stepX, e.stepY
}

// Clipboard returns the last copied region, or nil
func (e *Editor) Clipboard() *scrawl.Board {
	return e.clip
}

// Filename returns the file used by save and load
func (e *Editor) Filename() string {
	return e.filename
}

// Message returns the last status message
func (e *Editor) Message() string {
	return e.message
}

// Doodling reports whether doodle mode is engaged
func (e *Editor) Doodling() bool {
	return e.doodle
}

// Done reports whether the user asked to quit
func (e *Editor) Done() bool {
	return e.done
}

// Close frees the board and the clipboard
func (e *Editor) Close() {
	e.board.Free()
	e.clip.Free()
	e.clip = nil
}

func (e *Editor) Update(msg Msg) {
	switch msg := msg.(type) {
	case InitMsg:
		e.log.Debug("editor started", "width", e.board.Width(), "height", e.board.Height(), "file", e.filename)
	case QuitMsg:
		e.done = true
	case Key:
		e.log.Debug("key", "key", msg.String())
		switch e.mode {
		case modeFilename:
			e.editFilename(msg)
		case modeTypewriter:
			e.typewrite(msg)
		default:
			e.command(msg)
			if e.doodle && !e.done {
				e.board.Put(e.primary, e.cursor.X, e.cursor.Y)
			}
		}
	case PasteMsg:
		for _, p := range scrawl.Patterns(string(msg)) {
			switch e.mode {
			case modeFilename:
				e.editFilename(Key{Codepoint: rune(p)})
			case modeTypewriter:
				e.typewrite(Key{Codepoint: rune(p)})
			}
		}
	}
}

func (e *Editor) command(k Key) {
	switch k.String() {
	case "q", "<c-c>":
		e.done = true
	case "r":
		e.board.Fill(scrawl.Blank)
	case "<tab>":
		e.doodle = !e.doodle
	case "f":
		target := e.board.Get(e.cursor.X, e.cursor.Y)
		scrawl.FloodFill(e.board, target, e.primary, e.cursor.X, e.cursor.Y)
	case "<enter>":
		e.primary = e.board.Get(e.cursor.X, e.cursor.Y)
		e.message = "picked " + scrawl.Glyph(e.primary.Pattern)
	case "c":
		e.primary.Fg = e.primary.Fg.Next()
	case "v":
		e.primary.Bg = e.primary.Bg.Next()
	case "D":
		e.primary.Bright = !e.primary.Bright
	case "F":
		e.primary.Blink = !e.primary.Blink
	case "-":
		if e.stepX > 1 {
			e.stepX -= 1
		}
	case "=":
		if e.stepX < e.board.Width()-1 {
			e.stepX += 1
		}
	case "_":
		if e.stepY > 1 {
			e.stepY -= 1
		}
	case "+":
		if e.stepY < e.board.Height()-1 {
			e.stepY += 1
		}
	case "<space>":
		e.board.Put(e.primary, e.cursor.X, e.cursor.Y)
	case "<delete>":
		e.board.Put(scrawl.Blank, e.cursor.X, e.cursor.Y)
	case "[":
		e.primary.Pattern = scrawl.PrevPattern(e.primary.Pattern)
	case "]":
		e.primary.Pattern = scrawl.NextPattern(e.primary.Pattern)
	case "<left>", "<right>", "<up>", "<down>":
		e.move(k.Codepoint, e.stepX, e.stepY)
	case "m":
		e.anchor = e.cursor
		e.message = fmt.Sprintf("anchor at %d,%d", e.anchor.X, e.anchor.Y)
	case "y":
		e.copy()
	case "p":
		e.paste()
	case "t":
		e.mode = modeTypewriter
		e.margin = e.cursor.X
	case "@":
		e.mode = modeFilename
		e.entry = []rune(e.filename)
	case "S":
		e.save()
	case "L":
		e.load()
	case "K":
		e.store()
	}
}

// move moves the cursor in the direction of the arrow key, stopping at the
// edges of the board
func (e *Editor) move(arrow rune, stepX int, stepY int) {
	switch arrow {
	case KeyLeft:
		e.cursor.X -= stepX
	case KeyRight:
		e.cursor.X += stepX
	case KeyUp:
		e.cursor.Y -= stepY
	case KeyDown:
		e.cursor.Y += stepY
	}
	e.clampCursor()
}

func isArrow(r rune) bool {
	return r == KeyLeft || r == KeyRight || r == KeyUp || r == KeyDown
}

func (e *Editor) clampCursor() {
	w, h := e.board.Size()
	e.cursor.X = max(0, min(e.cursor.X, w-1))
	e.cursor.Y = max(0, min(e.cursor.Y, h-1))
	e.anchor.X = max(0, min(e.anchor.X, w-1))
	e.anchor.Y = max(0, min(e.anchor.Y, h-1))
	e.stepX = max(1, min(e.stepX, w-1))
	e.stepY = max(1, min(e.stepY, h-1))
}

func (e *Editor) copy() {
	clip, err := scrawl.Extract(e.board, e.anchor, e.cursor)
	if err != nil {
		e.log.Error("copy", "anchor", e.anchor, "cursor", e.cursor, "err", err)
		e.message = "copy failed: " + err.Error()
		return
	}
	e.clip.Free()
	e.clip = clip
	e.message = fmt.Sprintf("copied %dx%d", clip.Width(), clip.Height())
}

func (e *Editor) paste() {
	if e.clip == nil {
		e.message = "clipboard is empty"
		return
	}
	scrawl.Paste(e.clip, e.board, e.cursor)
}

func (e *Editor) save() {
	if err := scrawl.Save(e.board, e.filename); err != nil {
		e.log.Error("save board", "file", e.filename, "err", err)
		e.message = "save failed: " + err.Error()
		return
	}
	e.log.Info("saved board", "file", e.filename)
	e.message = "saved " + e.filename
}

func (e *Editor) load() {
	b, err := scrawl.Load(e.filename)
	if err != nil {
		e.log.Error("load board", "file", e.filename, "err", err)
		e.message = "load failed: " + err.Error()
		return
	}
	old := e.board
	e.board = b
	old.Free()
	e.clampCursor()
	e.log.Info("loaded board", "file", e.filename, "width", b.Width(), "height", b.Height())
	e.message = "loaded " + e.filename
}

func (e *Editor) store() {
	if e.book == nil {
		e.message = "no sketchbook"
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := e.book.Put(ctx, e.filename, e.board); err != nil {
		e.log.Error("store board", "name", e.filename, "err", err)
		e.message = "store failed: " + err.Error()
		return
	}
	e.log.Info("stored board", "name", e.filename)
	e.message = "stored " + e.filename
}

func (e *Editor) typewrite(k Key) {
	switch {
	case k.Codepoint == KeyEsc, k.Codepoint == KeyTab:
		e.mode = modeNormal
	case k.Codepoint == KeyBackspace:
		e.move(KeyLeft, 1, 1)
		e.board.Put(scrawl.Blank, e.cursor.X, e.cursor.Y)
	case k.Codepoint == KeyEnter:
		e.cursor.X = e.margin
		e.move(KeyDown, 1, 1)
	case isArrow(k.Codepoint):
		e.move(k.Codepoint, 1, 1)
	case k.Printable():
		e.board.Put(e.primary.WithPattern(int(k.Codepoint)), e.cursor.X, e.cursor.Y)
		e.move(KeyRight, 1, 1)
	}
}

func (e *Editor) editFilename(k Key) {
	switch {
	case k.Codepoint == KeyEsc:
		e.mode = modeNormal
		e.entry = nil
	case k.Codepoint == KeyEnter:
		e.mode = modeNormal
		if len(e.entry) > 0 {
			e.filename = string(e.entry)
		}
		e.entry = nil
		e.message = "file " + e.filename
	case k.Codepoint == KeyBackspace:
		if len(e.entry) > 0 {
			e.entry = e.entry[:len(e.entry)-1]
		}
	case k.Printable():
		if len(e.entry) < FilenameMax {
			e.entry = append(e.entry, k.Codepoint)
		}
	}
}
