// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/plot"
)

// SVG writes c as a static SVG image. Bars and histogram counts are
// drawn as points joined per trace; stacked bars are drawn at their
// cumulative height. Box plots are not supported.
func SVG(w io.Writer, c *plot.Chart, o Options) error {
	o = o.withDefaults()
	if c.Kind == plot.BoxChart {
		return fmt.Errorf("%w: %v as SVG", ErrUnsupported, c.Kind)
	}
	tab, err := longTable(c, o, true)
	if err != nil {
		return err
	}
	if c.Kind == plot.ScatterChart {
		tab = finiteRows(tab)
	}
	if tab.Len() == 0 {
		return ErrNoData
	}

	xcol, ycol := axisCols(c)
	p := gg.NewPlot(tab)
	switch {
	case c.Kind != plot.ScatterChart:
		p.Add(gg.LayerPaths{X: xcol, Y: ycol, Color: traceCol})
		p.Add(gg.LayerPoints{X: xcol, Y: ycol, Color: traceCol})
	case c.Mode == plot.Markers:
		p.Add(gg.LayerPoints{X: xcol, Y: ycol, Color: traceCol})
	case c.Mode == plot.Lines:
		p.Add(gg.LayerLines{X: xcol, Y: ycol, Color: traceCol})
	case c.Mode == plot.LinesMarkers:
		p.Add(gg.LayerLines{X: xcol, Y: ycol, Color: traceCol})
		p.Add(gg.LayerPoints{X: xcol, Y: ycol, Color: traceCol})
	}
	if c.Title != "" {
		p.Add(gg.Title(c.Title))
	}
	return p.WriteSVG(w, o.Width, o.Height)
}

// finiteRows drops the rows of a scatter table with a NaN or infinite
// coordinate.
func finiteRows(t *table.Table) *table.Table {
	cols := t.Columns()
	names := t.MustColumn(cols[0]).([]string)
	xs := t.MustColumn(cols[1]).([]float64)
	ys := t.MustColumn(cols[2]).([]float64)
	nn, nx, ny := []string{}, []float64{}, []float64{}
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			nn = append(nn, names[i])
			nx = append(nx, xs[i])
			ny = append(ny, ys[i])
		}
	}
	return new(table.Builder).Add(cols[0], nn).Add(cols[1], nx).Add(cols[2], ny).Done()
}
