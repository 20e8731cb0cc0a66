// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes assembled charts as interactive HTML, static
// SVG, or a plain text table.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aclements/go-dfplot/plot"
)

var (
	// ErrUnsupported is returned when a format cannot draw a kind
	// of chart.
	ErrUnsupported = errors.New("unsupported chart")

	// ErrNoData is returned when a chart has nothing to draw.
	ErrNoData = errors.New("chart has no data")
)

// Options control the size and look of rendered charts.
type Options struct {
	Width, Height int
	// Theme is a go-echarts theme name, such as "white" or "dark".
	Theme string
	// Bins is the number of bins of numeric histograms.
	Bins int
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{Width: 900, Height: 500, Theme: "white", Bins: 10}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Theme == "" {
		o.Theme = def.Theme
	}
	if o.Bins <= 0 {
		o.Bins = def.Bins
	}
	return o
}

// A Format is an output format.
type Format int

const (
	FormatHTML Format = iota
	FormatSVG
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatSVG:
		return "svg"
	case FormatText:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format to write to path: SVG for a ".svg" file
// and HTML for anything else.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatHTML
}

// Write renders c to w in format f.
func Write(w io.Writer, f Format, c *plot.Chart, o Options) error {
	switch f {
	case FormatHTML:
		return HTML(w, c, o)
	case FormatSVG:
		return SVG(w, c, o)
	case FormatText:
		return Table(w, c, o)
	}
	return fmt.Errorf("unknown format %v", f)
}
