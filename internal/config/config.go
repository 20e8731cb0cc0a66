// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads dfplot's optional YAML configuration file.
//
// A configuration file looks like:
//
//	log:
//	  level: debug
//	  format: json
//	chart:
//	  width: 1200
//	  height: 600
//	  theme: dark
//	  bins: 20
//	input:
//	  infer_schema_length: 1000
//	open:
//	  command: firefox --new-window
//
// Every key is optional. References to environment variables, such as
// $HOME or ${HOME}, are expanded before parsing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-dfplot/internal/logging"
)

// ErrNotFound is returned when an explicitly requested configuration
// file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// Environment variables consulted by Loader.
const (
	EnvConfig    = "DFPLOT_CONFIG"
	EnvLogLevel  = "DFPLOT_LOG_LEVEL"
	EnvLogFormat = "DFPLOT_LOG_FORMAT"
	EnvOpen      = "DFPLOT_OPEN"
)

// Config is the complete dfplot configuration.
type Config struct {
	Log   Log   `yaml:"log"`
	Chart Chart `yaml:"chart"`
	Input Input `yaml:"input"`
	Open  Open  `yaml:"open"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Chart configures rendered charts.
type Chart struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
	Bins   int    `yaml:"bins"`
}

// Input configures table loading.
type Input struct {
	// InferSchemaLength is the number of cells column types are
	// inferred from. 0 means all of them.
	InferSchemaLength int `yaml:"infer_schema_length"`
}

// Open configures how interactive charts are shown.
type Open struct {
	// Command is a shell-quoted command line to which the path of the
	// HTML file is appended. If empty, the system browser is used.
	Command string `yaml:"command"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Log:   Log{Level: "warn", Format: "console"},
		Chart: Chart{Width: 900, Height: 500, Theme: "white", Bins: 10},
	}
}

// Validate checks that every field of c holds a usable value.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if err := logging.CheckFormat(c.Log.Format); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size %dx%d must be positive", c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.Bins <= 0 {
		return fmt.Errorf("chart bins %d must be positive", c.Chart.Bins)
	}
	if c.Input.InferSchemaLength < 0 {
		return fmt.Errorf("infer_schema_length %d must not be negative", c.Input.InferSchemaLength)
	}
	return nil
}

// Loader finds, reads and validates configuration.
type Loader struct {
	getenv    func(string) string
	configDir func() (string, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithGetenv makes the Loader read environment variables with getenv.
func WithGetenv(getenv func(string) string) LoaderOption {
	return func(l *Loader) {
		l.getenv = getenv
	}
}

// WithConfigDir makes the Loader look for its default file under the
// directory returned by dir rather than os.UserConfigDir.
func WithConfigDir(dir func() (string, error)) LoaderOption {
	return func(l *Loader) {
		l.configDir = dir
	}
}

// NewLoader returns a Loader that uses the process environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{getenv: os.Getenv, configDir: os.UserConfigDir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the configuration. The file is path if set, otherwise
// $DFPLOT_CONFIG if set, otherwise dfplot/config.yaml in the user
// configuration directory. Only the last may be missing. Environment
// overrides are applied on top of the file, and the result is
// validated.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = l.getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		dir, err := l.configDir()
		if err == nil {
			path = filepath.Join(dir, "dfplot", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := l.decode(bytes.NewReader(data), &cfg); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No default file.
		case errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		default:
			return Config{}, err
		}
	}

	if v := l.getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := l.getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := l.getenv(EnvOpen); v != "" {
		cfg.Open.Command = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	data = []byte(os.Expand(string(data), l.getenv))

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}
