// Package term runs an editor.Model on a terminal using tcell
package term

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rockorager/scrawl/editor"
	"git.sr.ht/~rockorager/scrawl/log"
)

// Options provide setup options to Run
type Options struct {
	// Logger receives terminal logs. A nil Logger discards them. The
	// terminal is owned by tcell while running, so the logger should not
	// write to it
	Logger *slog.Logger

	// Screen is the screen to draw on. When nil a screen for the current
	// terminal is created. Run initializes and finalizes the screen
	Screen tcell.Screen
}

// Run delivers terminal events to m and draws it after each one, until m is
// done or ctx is cancelled. A cancelled context delivers a QuitMsg and is not
// an error.
func Run(ctx context.Context, m editor.Model, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	s := opts.Screen
	if s == nil {
		var err error
		s, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("new screen: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.EnablePaste()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	srf := NewScreen(s)
	cols, rows := s.Size()
	logger.Debug("terminal started", "cols", cols, "rows", rows)
	m.Update(editor.InitMsg{})
	m.Update(editor.Resize{Cols: cols, Rows: rows})
	draw(s, srf, m)

	var (
		inPaste  bool
		pasteBuf = &strings.Builder{}
	)
	for !m.Done() {
		select {
		case <-ctx.Done():
			logger.Info("terminal interrupted", "err", ctx.Err())
			m.Update(editor.QuitMsg{})
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if inPaste {
					pasteText(pasteBuf, ev)
					continue
				}
				key, ok := KeyFromEvent(ev)
				if !ok {
					logger.Debug("unknown key", "name", ev.Name())
					continue
				}
				m.Update(key)
			case *tcell.EventResize:
				s.Sync()
				cols, rows := ev.Size()
				logger.Debug("resize", "cols", cols, "rows", rows)
				m.Update(editor.Resize{Cols: cols, Rows: rows})
			case *tcell.EventPaste:
				switch {
				case ev.Start():
					inPaste = true
					pasteBuf.Reset()
				case ev.End():
					inPaste = false
					m.Update(editor.PasteMsg(pasteBuf.String()))
				}
			default:
				continue
			}
			draw(s, srf, m)
		}
	}
	return nil
}

func draw(s tcell.Screen, srf *Screen, m editor.Model) {
	s.Clear()
	m.Draw(srf)
	s.Show()
}

// pasteText collects the text of a bracketed paste, which tcell delivers as
// key events
func pasteText(buf *strings.Builder, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		buf.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		buf.WriteRune('\n')
	case tcell.KeyTab:
		buf.WriteRune('\t')
	}
}
