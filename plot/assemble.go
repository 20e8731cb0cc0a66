// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/frame"
	"github.com/aclements/go-dfplot/group"
	"github.com/aclements/go-dfplot/internal/logging"
	"github.com/aclements/go-dfplot/scale"
)

// A Request selects the columns of a chart.
type Request struct {
	// X is the x column of scatter and bar charts. If X is "",
	// points are placed at their 1-based row number in the table.
	X string
	// XTitle titles the x axis of scatter and bar charts. If it is
	// "", X is used.
	XTitle string
	// Y lists the value columns. Each contributes its own traces.
	Y []string
	// Groups lists the columns to split rows by, outermost first.
	Groups []string

	BarMode BarMode
	Mode    Mode
	Title   string
}

// rowColumn holds row numbers when a request has no x column. The NUL
// keeps it from colliding with the column names of a loaded table.
const rowColumn = "\x00row"

// Assemble builds a chart of kind k.
func Assemble(k Kind, t *table.Table, r Request) (*Chart, error) {
	switch k {
	case ScatterChart:
		return Scatter(t, r)
	case BarChart:
		return Bar(t, r)
	case BoxChart:
		return Box(t, r)
	case HistogramChart:
		return Histogram(t, r)
	}
	return nil, fmt.Errorf("unknown chart kind %v", k)
}

// Scatter builds a scatter chart of each y column against the x
// column.
func Scatter(t *table.Table, r Request) (*Chart, error) {
	if len(r.Y) == 0 {
		return nil, ErrNoColumns
	}
	t, x := withRows(t, r.X, false)
	if err := checkFloats(t, x); err != nil {
		return nil, err
	}
	if err := checkFloats(t, r.Y...); err != nil {
		return nil, err
	}

	traces, err := assemble(t, r, func(part *table.Table, name, y string) (Trace, error) {
		xs, err := frame.Floats(part, x)
		if err != nil {
			return nil, err
		}
		ys, err := frame.Floats(part, y)
		if err != nil {
			return nil, err
		}
		return &ScatterTrace{Name: name, X: xs, Y: ys}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{
		Kind:   ScatterChart,
		Title:  r.Title,
		XTitle: r.xTitle(),
		YTitle: r.singleY(),
		Mode:   r.Mode,
		Traces: traces,
	}, nil
}

// Bar builds a bar chart of each y column over the categories of the
// x column.
//
// In Proportion mode, the y columns are first summed per x category
// over the whole table. Each y value is then scaled to its fraction of
// its category's total, so the stacked bars of a category sum to 1.
func Bar(t *table.Table, r Request) (*Chart, error) {
	if len(r.Y) == 0 {
		return nil, ErrNoColumns
	}
	t, x := withRows(t, r.X, true)
	if _, err := frame.Strings(t, x); err != nil {
		return nil, err
	}
	if err := checkFloats(t, r.Y...); err != nil {
		return nil, err
	}

	var props scale.Proportions
	if r.BarMode == Proportion {
		labels, sums, err := frame.SumBy(t, x, r.Y)
		if err != nil {
			return nil, err
		}
		props, err = scale.FitCategories(labels, sums)
		if err != nil {
			return nil, fmt.Errorf("proportion: %w", err)
		}
	}

	traces, err := assemble(t, r, func(part *table.Table, name, y string) (Trace, error) {
		xs, err := frame.Strings(part, x)
		if err != nil {
			return nil, err
		}
		ys, err := frame.Floats(part, y)
		if err != nil {
			return nil, err
		}
		if props != nil {
			scaled := make([]float64, len(ys))
			for i, v := range ys {
				scaled[i], err = props.Transform(xs[i], v)
				if err != nil {
					return nil, fmt.Errorf("proportion of %s: %w", name, err)
				}
			}
			ys = scaled
		}
		return &BarTrace{Name: name, X: xs, Y: ys}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{
		Kind:    BarChart,
		Title:   r.Title,
		XTitle:  r.xTitle(),
		YTitle:  r.singleY(),
		BarMode: r.BarMode,
		Traces:  traces,
	}, nil
}

// Box builds a box plot of each y column. Missing cells are left out
// of the sample. The x column is not used.
func Box(t *table.Table, r Request) (*Chart, error) {
	if len(r.Y) == 0 {
		return nil, ErrNoColumns
	}
	for _, y := range r.Y {
		if _, err := frame.FloatsSkipMissing(t, y); err != nil {
			return nil, err
		}
	}

	traces, err := assemble(t, r, func(part *table.Table, name, y string) (Trace, error) {
		ys, err := frame.FloatsSkipMissing(part, y)
		if err != nil {
			return nil, err
		}
		return &BoxTrace{Name: name, Y: ys}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{
		Kind:   BoxChart,
		Title:  r.Title,
		YTitle: r.singleY(),
		Traces: traces,
	}, nil
}

// Histogram builds a histogram of each y column. The columns must be
// either all strings, whose categories are counted, or all numbers,
// which are counted in bins when rendered.
func Histogram(t *table.Table, r Request) (*Chart, error) {
	if len(r.Y) == 0 {
		return nil, ErrNoColumns
	}
	categorical := false
	for i, y := range r.Y {
		kind, err := frame.KindOf(t, y)
		if err != nil {
			return nil, err
		}
		switch kind {
		case frame.String:
			_, err = frame.Strings(t, y)
		case frame.Numeric:
			_, err = frame.Floats(t, y)
		default:
			err = fmt.Errorf("%w: cannot count %s column %q", frame.ErrColumnType, kind, y)
		}
		if err != nil {
			return nil, err
		}
		if i == 0 {
			categorical = kind == frame.String
		} else if categorical != (kind == frame.String) {
			return nil, fmt.Errorf("%w: %q and %q", ErrMixedHistogram, r.Y[0], y)
		}
	}

	traces, err := assemble(t, r, func(part *table.Table, name, y string) (Trace, error) {
		if categorical {
			cats, err := frame.Strings(part, y)
			if err != nil {
				return nil, err
			}
			if cats == nil {
				cats = []string{}
			}
			return &HistogramTrace{Name: name, Categories: cats}, nil
		}
		vals, err := frame.Floats(part, y)
		if err != nil {
			return nil, err
		}
		return &HistogramTrace{Name: name, Values: vals}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{
		Kind:   HistogramChart,
		Title:  r.Title,
		XTitle: r.singleY(),
		YTitle: "count",
		Traces: traces,
	}, nil
}

func (r Request) xTitle() string {
	if r.XTitle != "" {
		return r.XTitle
	}
	return r.X
}

// singleY returns the y column if there is exactly one.
func (r Request) singleY() string {
	if len(r.Y) == 1 {
		return r.Y[0]
	}
	return ""
}

func checkFloats(t *table.Table, cols ...string) error {
	for _, col := range cols {
		if _, err := frame.Floats(t, col); err != nil {
			return err
		}
	}
	return nil
}

// withRows returns t and the name of its x column. If x is "", it adds
// a column of 1-based row numbers, as text if asText is set. The row
// numbers are added before any grouping, so rows keep their numbers in
// every partition.
func withRows(t *table.Table, x string, asText bool) (*table.Table, string) {
	if x != "" {
		return t, x
	}
	n := t.Len()
	var col table.Slice
	if asText {
		rows := make([]string, n)
		for i := range rows {
			rows[i] = strconv.Itoa(i + 1)
		}
		col = rows
	} else {
		rows := make([]float64, n)
		for i := range rows {
			rows[i] = float64(i + 1)
		}
		col = rows
	}
	return table.NewBuilder(t).Add(rowColumn, col).Done(), rowColumn
}

type traceFunc func(part *table.Table, name, y string) (Trace, error)

// assemble calls f for each y column of each group combination of t
// and collects the resulting traces. Combinations without rows produce
// no traces.
func assemble(t *table.Table, r Request, f traceFunc) ([]Trace, error) {
	var gs group.Groups
	if len(r.Groups) > 0 {
		var err error
		gs, err = group.Build(t, r.Groups)
		if err != nil {
			return nil, err
		}
	}

	var traces []Trace
	err := gs.ForEach(frame.NewQuery(t), func(q frame.Query, pairs []group.Pair) error {
		part, err := q.Collect()
		if err != nil {
			return err
		}
		if part.Len() == 0 {
			logging.Debug().
				Add(logging.Str("filter", q.String())).
				Msg("skipping empty combination")
			return nil
		}
		for _, y := range r.Y {
			tr, err := f(part, group.TraceName(pairs, y), y)
			if err != nil {
				return err
			}
			traces = append(traces, tr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logging.Debug().
		Add(logging.Count("combinations", gs.Len())).
		Add(logging.Count("traces", len(traces))).
		Msg("assembled traces")
	return traces, nil
}
