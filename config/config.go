// Package config loads the scrawl configuration file
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.sr.ht/~rockorager/scrawl"
	"git.sr.ht/~rockorager/scrawl/editor"
	"git.sr.ht/~rockorager/scrawl/log"
)

// Config holds the settings of the editor and the CLI
type Config struct {
	// Width and Height are the size of new boards
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Color  bool `json:"color"`

	// File is the board edited when none is given
	File string `json:"file"`

	LogLevel string `json:"log_level"`
	// LogFile receives the logs of the editor. Empty disables them
	LogFile string `json:"log_file"`

	// Sketchbook is the path of the sketchbook database. Empty disables
	// storing boards from the editor
	Sketchbook string `json:"sketchbook"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Width:    74,
		Height:   20,
		Color:    true,
		File:     editor.DefaultFilename,
		LogLevel: "info",
	}
}

// DefaultPath returns the path of the configuration file in the user
// configuration directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "scrawl", "config.json"), nil
}

// Load reads the configuration at path. Fields missing from the file keep
// their defaults, and a missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("config size %dx%d: %w", c.Width, c.Height, scrawl.ErrInvalidDimensions)
	}
	if c.Width > scrawl.MaxCells/c.Height {
		return fmt.Errorf("config size %dx%d: %w", c.Width, c.Height, scrawl.ErrAllocation)
	}
	if c.File == "" {
		return errors.New("config file name is empty")
	}
	if len(c.File) > editor.FilenameMax {
		return fmt.Errorf("config file name is longer than %d", editor.FilenameMax)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
