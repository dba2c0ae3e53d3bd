package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{in: "trace", expected: LevelTrace},
		{in: "DEBUG", expected: slog.LevelDebug},
		{in: "info", expected: slog.LevelInfo},
		{in: "", expected: slog.LevelInfo},
		{in: " warn ", expected: slog.LevelWarn},
		{in: "warning", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			lvl, err := ParseLevel(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.expected, lvl)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, Options{Level: slog.LevelWarn})
	logger.Info("hidden")
	logger.Warn("saved board", "file", "a.brd")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN saved board file=a.brd")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestNewTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, Options{Level: LevelTrace})
	logger.Log(context.Background(), LevelTrace, "key", "key", "q")
	assert.Contains(t, buf.String(), "TRC key key=q")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrawl.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	New(f, Options{}).Info("hello")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INF hello")

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing", "scrawl.log"))
	assert.Error(t, err)
}
