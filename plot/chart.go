// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot assembles charts from table columns.
//
// A chart is built from a Request naming the x, y and group columns.
// Each y column contributes one trace, or one trace per combination
// of group categories when the request is grouped. Rendering is left to
// other packages; a Chart only holds the derived series.
package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when a request names no y columns.
	ErrNoColumns = errors.New("no y columns")

	// ErrUnknownBarMode is returned by ParseBarMode.
	ErrUnknownBarMode = errors.New("unknown bar mode")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown draw mode")

	// ErrMixedHistogram is returned when a histogram mixes
	// categorical and numeric columns.
	ErrMixedHistogram = errors.New("histogram mixes categorical and numeric columns")
)

// Kind is the type of a chart.
type Kind int

const (
	ScatterChart Kind = iota
	BarChart
	BoxChart
	HistogramChart
)

func (k Kind) String() string {
	switch k {
	case ScatterChart:
		return "scatter"
	case BarChart:
		return "bar"
	case BoxChart:
		return "box"
	case HistogramChart:
		return "histogram"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// BarMode controls how the traces of a bar chart share an x category.
type BarMode int

const (
	// Group places bars side by side.
	Group BarMode = iota
	// Overlay draws bars on top of each other.
	Overlay
	// Relative stacks bars, negative values below zero.
	Relative
	// Stack stacks bars.
	Stack
	// Proportion stacks bars after scaling every value to its
	// fraction of the total of its x category, so each stack
	// reaches 1.
	Proportion
)

var barModes = []string{"group", "overlay", "relative", "stack", "proportion"}

func (m BarMode) String() string {
	if m < 0 || int(m) >= len(barModes) {
		return fmt.Sprintf("BarMode(%d)", int(m))
	}
	return barModes[m]
}

// ParseBarMode parses the name of a BarMode.
func ParseBarMode(s string) (BarMode, error) {
	for i, name := range barModes {
		if s == name {
			return BarMode(i), nil
		}
	}
	return Group, fmt.Errorf("%w %q (want one of %v)", ErrUnknownBarMode, s, barModes)
}

// Mode controls how scatter traces are drawn.
type Mode int

const (
	Markers Mode = iota
	Lines
	LinesMarkers
)

var modes = []string{"markers", "lines", "lines+markers"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modes) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m]
}

// ParseMode parses the name of a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modes {
		if s == name {
			return Mode(i), nil
		}
	}
	return Markers, fmt.Errorf("%w %q (want one of %v)", ErrUnknownMode, s, modes)
}

// A Chart is an assembled chart ready to render.
type Chart struct {
	Kind   Kind
	Title  string
	XTitle string
	YTitle string

	// BarMode applies to bar charts only.
	BarMode BarMode
	// Mode applies to scatter charts only.
	Mode Mode

	// Traces are in emission order: group combination order, then
	// y column order.
	Traces []Trace
}

// Stacked reports whether c is a bar chart whose traces stack.
func (c *Chart) Stacked() bool {
	if c.Kind != BarChart {
		return false
	}
	switch c.BarMode {
	case Relative, Stack, Proportion:
		return true
	}
	return false
}
