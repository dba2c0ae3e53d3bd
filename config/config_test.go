package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/scrawl"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 74, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.True(t, cfg.Color)
	assert.Equal(t, "scratch.brd", cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"width": 10, "color": false, "log_level": "debug", "sketchbook": "/tmp/book.db"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	expected := Default()
	expected.Width = 10
	expected.Color = false
	expected.LogLevel = "debug"
	expected.Sketchbook = "/tmp/book.db"
	assert.Equal(t, expected, cfg)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `{"width": `)
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("HOME", "/home/someone")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("scrawl", "config.json")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		target error
	}{
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }, target: scrawl.ErrInvalidDimensions},
		{name: "negative height", modify: func(c *Config) { c.Height = -3 }, target: scrawl.ErrInvalidDimensions},
		{name: "too large", modify: func(c *Config) { c.Width, c.Height = 1<<14, 1<<14 }, target: scrawl.ErrAllocation},
		{name: "empty file", modify: func(c *Config) { c.File = "" }},
		{name: "long file", modify: func(c *Config) { c.File = strings.Repeat("a", 64) }},
		{name: "bad level", modify: func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if test.target != nil {
				assert.ErrorIs(t, err, test.target)
			}
		})
	}
}
