// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aclements/go-dfplot/frame"
	"github.com/aclements/go-dfplot/internal/logging"
	"github.com/aclements/go-dfplot/plot"
)

type chartCmd struct {
	kind  plot.Kind
	short string
	long  string
	// hasX is set for charts that plot against an x column.
	hasX bool
}

var (
	scatterCmd = chartCmd{
		kind:  plot.ScatterChart,
		short: "Plot y columns against an x column as points or lines",
		long: `Plot each y column against the x column, with one trace per y column and
combination of group values. If -x is not given and the table has no "x"
column, points are placed at their row number.`,
		hasX: true,
	}
	barCmd = chartCmd{
		kind:  plot.BarChart,
		short: "Plot y columns as bars at each x category",
		long: `Plot each y column as bars at the categories of the x column.

Bar modes are group (side by side), overlay, relative and stack (stacked)
and proportion, which stacks the traces at each category and scales them
so that each stack sums to 1.`,
		hasX: true,
	}
	boxCmd = chartCmd{
		kind:  plot.BoxChart,
		short: "Summarize the distribution of y columns as box plots",
		long:  `Draw one box per y column and combination of group values. Missing cells are skipped.`,
	}
	histogramCmd = chartCmd{
		kind:  plot.HistogramChart,
		short: "Count the values of y columns",
		long: `Count the values of each y column. Numeric columns are counted in equal-width
bins shared by all traces and text columns are counted per distinct value.`,
	}
)

type chartOptions struct {
	x, output, title  string
	ys, groups        []string
	table             bool
	inferSchemaLength int
	barMode, mode     string
	bins              int
}

func (a *App) newChartCmd(cc chartCmd) *cobra.Command {
	opts := &chartOptions{}
	cmd := &cobra.Command{
		Use:   cc.kind.String() + " INPUT",
		Short: cc.short,
		Long:  cc.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChart(cmd, cc, opts, args[0])
		},
	}

	f := cmd.Flags()
	if cc.hasX {
		f.StringVarP(&opts.x, "x", "x", "x", "plot against `column`")
	}
	f.StringSliceVarP(&opts.ys, "y", "y", []string{"y"}, "plot `columns`")
	f.StringSliceVarP(&opts.groups, "group", "g", nil, "split traces by `columns`")
	f.StringVarP(&opts.output, "output", "o", "", "write chart to `file` (.svg or .html; default: open in a browser)")
	f.StringVar(&opts.title, "title", "", "chart `title`")
	f.BoolVar(&opts.table, "table", false, "print a table of the plotted values instead of a chart")
	f.IntVar(&opts.inferSchemaLength, "infer-schema-length", 0, "infer column types from the first `n` cells, 0 for all (default from configuration)")
	switch cc.kind {
	case plot.BarChart:
		f.StringVarP(&opts.barMode, "barmode", "b", plot.Group.String(), "bar `mode`: group, overlay, relative, stack or proportion")
	case plot.ScatterChart:
		f.StringVarP(&opts.mode, "mode", "m", plot.Markers.String(), "draw `mode`: markers, lines or lines+markers")
	case plot.HistogramChart:
		f.IntVar(&opts.bins, "bins", 0, "number of `bins` for numeric columns (default from configuration)")
	}
	return cmd
}

func (a *App) runChart(cmd *cobra.Command, cc chartCmd, opts *chartOptions, path string) error {
	req := plot.Request{
		Y:      opts.ys,
		Groups: opts.groups,
		Title:  opts.title,
	}

	// Check every flag before reading the input.
	var err error
	if cc.kind == plot.BarChart {
		if req.BarMode, err = plot.ParseBarMode(opts.barMode); err != nil {
			return err
		}
	}
	if cc.kind == plot.ScatterChart {
		if req.Mode, err = plot.ParseMode(opts.mode); err != nil {
			return err
		}
	}
	infer := a.cfg.Input.InferSchemaLength
	if cmd.Flags().Changed("infer-schema-length") {
		if opts.inferSchemaLength < 0 {
			return fmt.Errorf("--infer-schema-length %d must not be negative", opts.inferSchemaLength)
		}
		infer = opts.inferSchemaLength
	}
	ro := a.renderOptions()
	if cmd.Flags().Changed("bins") {
		if opts.bins <= 0 {
			return fmt.Errorf("--bins %d must be positive", opts.bins)
		}
		ro.Bins = opts.bins
	}

	t, err := frame.Load(path, frame.WithInferSchemaLength(infer))
	if err != nil {
		return err
	}

	if cc.hasX {
		req.X, req.XTitle = opts.x, opts.x
		if !cmd.Flags().Changed("x") && !frame.HasColumn(t, opts.x) {
			// Number the rows instead.
			req.X = ""
		}
	}

	c, err := plot.Assemble(cc.kind, t, req)
	if err != nil {
		return err
	}
	logging.Info().Add(logging.Chart(c.Kind.String())).Add(logging.Count("traces", len(c.Traces))).Msg("assembled chart")

	return a.output(c, ro, opts)
}
