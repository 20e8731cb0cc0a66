// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/plot"
)

const traceCol = "trace"

// axisCols returns distinct column names for the x and y values of c.
func axisCols(c *plot.Chart) (x, y string) {
	x, y = c.XTitle, c.YTitle
	if x == "" {
		x = "x"
	}
	if y == "" {
		y = "y"
	}
	if x == y || x == traceCol || y == traceCol {
		x, y = "x", "y"
	}
	return
}

// Table writes the series derived from c as a text table with one row
// per data point.
func Table(w io.Writer, c *plot.Chart, o Options) error {
	tab, err := longTable(c, o.withDefaults(), false)
	if err != nil {
		return err
	}
	table.Fprint(w, tab)
	return nil
}

// longTable flattens c into one row per data point, labeled by trace.
// If stack is set, the values of stacked bar charts are cumulative.
func longTable(c *plot.Chart, o Options, stack bool) (*table.Table, error) {
	xcol, ycol := axisCols(c)
	// go-gg's Builder drops columns given as nil slices.
	names := []string{}
	switch c.Kind {
	case plot.ScatterChart:
		xs, ys := []float64{}, []float64{}
		for _, tr := range c.Traces {
			st := tr.(*plot.ScatterTrace)
			for i := range st.X {
				names = append(names, st.Name)
				xs = append(xs, st.X[i])
				ys = append(ys, st.Y[i])
			}
		}
		return new(table.Builder).Add(traceCol, names).Add(xcol, xs).Add(ycol, ys).Done(), nil

	case plot.BarChart, plot.HistogramChart:
		var s Series
		if c.Kind == plot.BarChart {
			s = BarSeries(c)
		} else {
			var err error
			if s, err = HistogramSeries(c, o.Bins); err != nil {
				return nil, err
			}
		}
		xs, ys := []string{}, []float64{}
		var tops map[string]float64
		if stack && c.Stacked() {
			tops = make(map[string]float64)
		}
		for i, name := range s.Names {
			for j, v := range s.Values[i] {
				if !finite(v) {
					continue
				}
				cat := s.Categories[j]
				if tops != nil {
					tops[cat] += v
					v = tops[cat]
				}
				names = append(names, name)
				xs = append(xs, cat)
				ys = append(ys, v)
			}
		}
		return new(table.Builder).Add(traceCol, names).Add(xcol, xs).Add(ycol, ys).Done(), nil

	case plot.BoxChart:
		cols := [5][]float64{{}, {}, {}, {}, {}}
		for _, tr := range c.Traces {
			bt := tr.(*plot.BoxTrace)
			sum, ok := BoxSummary(bt.Y)
			if !ok {
				continue
			}
			names = append(names, bt.Name)
			for i, v := range sum.Values() {
				cols[i] = append(cols[i], v)
			}
		}
		b := new(table.Builder).Add(traceCol, names)
		for i, name := range []string{"min", "q1", "median", "q3", "max"} {
			b.Add(name, cols[i])
		}
		return b.Done(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupported, c.Kind)
}
