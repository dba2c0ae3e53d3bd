// Package log builds the structured loggers used by scrawl. Records are
// written by a tint handler, colored when the output is a terminal.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const (
	// LevelTrace is below debug, for per event logging
	LevelTrace = slog.Level(-8)

	// TimeFormat is the timestamp layout of every record
	TimeFormat = "15:04:05.000"
)

// Options configure a logger
type Options struct {
	// Level is the minimum level logged. The zero value is info
	Level slog.Leveler

	// AddSource adds the file and line of the call
	AddSource bool

	// NoColor disables colors. Colors are also disabled when the output
	// isn't a terminal
	NoColor bool
}

// New returns a logger writing to w
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   opts.AddSource,
		Level:       opts.Level,
		ReplaceAttr: replaceLevel,
		TimeFormat:  TimeFormat,
		NoColor:     opts.NoColor || !isTerminal(w),
	}))
}

// Discard returns a logger which drops every record
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError + 1}))
}

// replaceLevel names the trace level, which slog would print as DEBUG-4
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
		return slog.String(slog.LevelKey, "TRC")
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ParseLevel parses one of trace, debug, info, warn or error, ignoring case
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// OpenFile opens path for appending log records. Logging to a file keeps the
// records away from a terminal owned by the editor
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	fmt.Fprintf(f, "--- %s\n", time.Now().Format(time.RFC3339))
	return f, nil
}
