// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// A Trace is one named series of a chart. The set of trace types is
// closed: it is one of *ScatterTrace, *BarTrace, *BoxTrace or
// *HistogramTrace.
type Trace interface {
	// TraceName returns the legend name of the trace.
	TraceName() string
	// Len returns the number of data points in the trace.
	Len() int

	isTrace()
}

// ScatterTrace is a series of (x, y) points.
type ScatterTrace struct {
	Name string
	X, Y []float64
}

// BarTrace is a series of bars. X[i] is the category of bar i.
type BarTrace struct {
	Name string
	X    []string
	Y    []float64
}

// BoxTrace is a sample summarized by a box plot.
type BoxTrace struct {
	Name string
	Y    []float64
}

// HistogramTrace is a sample to be counted. Exactly one of Values
// and Categories is set.
type HistogramTrace struct {
	Name       string
	Values     []float64
	Categories []string
}

func (t *ScatterTrace) TraceName() string   { return t.Name }
func (t *BarTrace) TraceName() string       { return t.Name }
func (t *BoxTrace) TraceName() string       { return t.Name }
func (t *HistogramTrace) TraceName() string { return t.Name }

func (t *ScatterTrace) Len() int { return len(t.X) }
func (t *BarTrace) Len() int     { return len(t.X) }
func (t *BoxTrace) Len() int     { return len(t.Y) }

func (t *HistogramTrace) Len() int {
	if t.Categories != nil {
		return len(t.Categories)
	}
	return len(t.Values)
}

// Categorical reports whether t counts categories rather than values.
func (t *HistogramTrace) Categorical() bool {
	return t.Categories != nil
}

func (*ScatterTrace) isTrace()   {}
func (*BarTrace) isTrace()       {}
func (*BoxTrace) isTrace()       {}
func (*HistogramTrace) isTrace() {}
