// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides structured diagnostic logging using bolt.
//
// dfplot is quiet by default: only warnings and errors are logged, to
// stderr, so chart output on stdout is never interleaved with logs.
package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	once          sync.Once
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the output destination. It defaults to os.Stderr.
	Output *os.File
}

// DefaultConfig returns the configuration used if Init is never
// called.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// Levels lists the accepted level names, from most to least verbose.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// Formats lists the accepted output formats.
var Formats = []string{"console", "json"}

// ParseLevel converts a level name to a bolt.Level.
func ParseLevel(s string) (bolt.Level, error) {
	switch s {
	case "trace":
		return bolt.TRACE, nil
	case "debug":
		return bolt.DEBUG, nil
	case "info":
		return bolt.INFO, nil
	case "warn":
		return bolt.WARN, nil
	case "error":
		return bolt.ERROR, nil
	}
	return bolt.WARN, fmt.Errorf("unknown log level %q (want one of %v)", s, Levels)
}

// CheckFormat returns an error if s is not one of Formats.
func CheckFormat(s string) error {
	for _, f := range Formats {
		if s == f {
			return nil
		}
	}
	return fmt.Errorf("unknown log format %q (want one of %v)", s, Formats)
}

// Init initializes the default logger. Only the first call has any
// effect; use SetLevel to adjust the level afterwards. An invalid level
// falls back to warn.
func Init(config Config) {
	once.Do(func() {
		output := config.Output
		if output == nil {
			output = os.Stderr
		}

		var handler bolt.Handler
		if config.Format == "json" {
			handler = bolt.NewJSONHandler(output)
		} else {
			handler = bolt.NewConsoleHandler(output)
		}

		level, _ := ParseLevel(config.Level)
		defaultLogger = bolt.New(handler).SetLevel(level)
	})
}

// Get returns the default logger, initializing it with DefaultConfig
// if necessary.
func Get() *bolt.Logger {
	Init(DefaultConfig())
	return defaultLogger
}

// SetLevel changes the level of the default logger.
func SetLevel(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Get().SetLevel(l)
	return nil
}

// LogEvent wraps a bolt.Event so Fields can be applied to it.
type LogEvent struct {
	event *bolt.Event
}

// Add applies f to the event.
func (l *LogEvent) Add(f Field) *LogEvent {
	l.event = f(l.event)
	return l
}

// Msg sends the event with a message.
func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

// Debug returns a debug level event.
func Debug() *LogEvent {
	return &LogEvent{event: Get().Debug()}
}

// Info returns an info level event.
func Info() *LogEvent {
	return &LogEvent{event: Get().Info()}
}

// Warn returns a warn level event.
func Warn() *LogEvent {
	return &LogEvent{event: Get().Warn()}
}

// Error returns an error level event.
func Error() *LogEvent {
	return &LogEvent{event: Get().Error()}
}
