// Package config loads the YAML settings shared by the golet hosts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name looked up when no -config flag is given.
const DefaultFile = ".golet.yaml"

type Config struct {
	REPL    REPL    `yaml:"repl"`
	Desktop Desktop `yaml:"desktop"`
	Run     Run     `yaml:"run"`
}

// REPL configures the terminal and desktop consoles.
type REPL struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"` // relative paths are taken from the home directory
	PrintNull          bool   `yaml:"print_null"`
}

// Desktop configures the windowed console. The window is Columns × Rows
// character cells.
type Desktop struct {
	Title   string  `yaml:"title"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Scale   float64 `yaml:"scale"`
}

// Run configures the file runner.
type Run struct {
	Jobs int `yaml:"jobs"` // files evaluated at once; 0 means one per CPU
}

func Default() Config {
	return Config{
		REPL: REPL{
			Prompt:             "==> ",
			ContinuationPrompt: "... ",
			HistoryFile:        ".golet_history",
		},
		Desktop: Desktop{
			Title:   "golet",
			Columns: 64,
			Rows:    24,
			Scale:   1.5,
		},
	}
}

// Load parses the YAML file at path over the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file
// does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects settings no host can work with.
func (c Config) Validate() error {
	if c.Desktop.Columns <= 0 || c.Desktop.Rows <= 0 {
		return fmt.Errorf("desktop grid must be positive, got %dx%d", c.Desktop.Columns, c.Desktop.Rows)
	}
	if c.Desktop.Scale <= 0 {
		return fmt.Errorf("desktop scale must be positive, got %v", c.Desktop.Scale)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("run jobs must not be negative, got %d", c.Run.Jobs)
	}
	return nil
}

// Write serialises cfg to path.
func Write(cfg Config, path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: marshal %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encoder close: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// HistoryPath resolves the REPL history file against home.
func (r REPL) HistoryPath(home string) string {
	if r.HistoryFile == "" || filepath.IsAbs(r.HistoryFile) {
		return r.HistoryFile
	}
	return filepath.Join(home, r.HistoryFile)
}
