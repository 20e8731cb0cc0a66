// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aclements/go-dfplot/plot"
)

// missing is how echarts spells an empty data point.
const missing = "-"

type renderer interface {
	Render(w io.Writer) error
}

// HTML writes c as a self-contained interactive HTML page.
func HTML(w io.Writer, c *plot.Chart, o Options) error {
	o = o.withDefaults()

	var r renderer
	switch c.Kind {
	case plot.ScatterChart:
		r = htmlScatter(c, o)
	case plot.BarChart:
		r = htmlBars(c, BarSeries(c), o)
	case plot.HistogramChart:
		s, err := HistogramSeries(c, o.Bins)
		if err != nil {
			return err
		}
		r = htmlBars(c, s, o)
	case plot.BoxChart:
		r = htmlBox(c, o)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupported, c.Kind)
	}
	return r.Render(w)
}

func globalOpts(c *plot.Chart, o Options, trigger string) []charts.GlobalOpts {
	page := c.Title
	if page == "" {
		page = "dfplot"
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: page,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
			Theme:     o.Theme,
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}),
	}
}

func htmlScatter(c *plot.Chart, o Options) renderer {
	global := append(globalOpts(c, o, "item"),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XTitle, Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YTitle, Type: "value", Scale: opts.Bool(true)}),
	)

	if c.Mode == plot.Markers {
		chart := charts.NewScatter()
		chart.SetGlobalOptions(global...)
		for _, tr := range c.Traces {
			st := tr.(*plot.ScatterTrace)
			data := make([]opts.ScatterData, 0, len(st.X))
			for i := range st.X {
				if finite(st.X[i]) && finite(st.Y[i]) {
					data = append(data, opts.ScatterData{Value: []interface{}{st.X[i], st.Y[i]}})
				}
			}
			chart.AddSeries(st.Name, data)
		}
		return chart
	}

	chart := charts.NewLine()
	chart.SetGlobalOptions(global...)
	showSymbol := c.Mode == plot.LinesMarkers
	for _, tr := range c.Traces {
		st := tr.(*plot.ScatterTrace)
		data := make([]opts.LineData, 0, len(st.X))
		for i := range st.X {
			if !finite(st.X[i]) {
				continue
			}
			var y interface{} = st.Y[i]
			if !finite(st.Y[i]) {
				// Break the line rather than dropping the point.
				y = missing
			}
			data = append(data, opts.LineData{Value: []interface{}{st.X[i], y}})
		}
		chart.AddSeries(st.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(showSymbol)}))
	}
	return chart
}

func htmlBars(c *plot.Chart, s Series, o Options) renderer {
	yaxis := opts.YAxis{Name: c.YTitle, Type: "value"}
	if c.Kind == plot.BarChart && c.BarMode == plot.Proportion {
		yaxis.Max = 1
	}
	chart := charts.NewBar()
	chart.SetGlobalOptions(append(globalOpts(c, o, "axis"),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XTitle, Type: "category"}),
		charts.WithYAxisOpts(yaxis),
	)...)
	chart.SetXAxis(s.Categories)

	var bar opts.BarChart
	switch {
	case c.Stacked():
		bar.Stack = "total"
	case c.Kind == plot.BarChart && c.BarMode == plot.Overlay:
		bar.BarGap = "-100%"
	}
	for i, name := range s.Names {
		data := make([]opts.BarData, len(s.Values[i]))
		for j, v := range s.Values[i] {
			if finite(v) {
				data[j].Value = v
			} else {
				data[j].Value = missing
			}
		}
		chart.AddSeries(name, data, charts.WithBarChartOpts(bar))
	}
	return chart
}

func htmlBox(c *plot.Chart, o Options) renderer {
	chart := charts.NewBoxPlot()
	chart.SetGlobalOptions(append(globalOpts(c, o, "item"),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YTitle, Type: "value", Scale: opts.Bool(true)}),
	)...)

	var names []string
	var data []opts.BoxPlotData
	for _, tr := range c.Traces {
		bt := tr.(*plot.BoxTrace)
		sum, ok := BoxSummary(bt.Y)
		if !ok || !finiteAll(sum.Values()) {
			continue
		}
		names = append(names, bt.Name)
		data = append(data, opts.BoxPlotData{Name: bt.Name, Value: sum.Values()})
	}
	chart.SetXAxis(names)
	name := c.YTitle
	if name == "" {
		name = "summary"
	}
	chart.AddSeries(name, data)
	return chart
}

func finiteAll(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
