// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-dfplot/plot"
)

// Series is a set of traces over shared categories, as drawn by bar
// charts and histograms. Values[i][j] is the value of trace Names[i]
// at Categories[j], or NaN if the trace has no value there.
type Series struct {
	Categories []string
	Names      []string
	Values     [][]float64
}

// BarSeries aligns the traces of bar chart c on the union of their x
// categories, in order of first appearance. The values of a category
// that repeats within a trace are summed.
func BarSeries(c *plot.Chart) Series {
	var bts []*plot.BarTrace
	var labels []slice.T
	for _, tr := range c.Traces {
		if bt, ok := tr.(*plot.BarTrace); ok {
			bts = append(bts, bt)
			labels = append(labels, bt.X)
		}
	}
	s := Series{Categories: union(labels)}
	index := indexOf(s.Categories)
	for _, bt := range bts {
		vals := nans(len(s.Categories))
		for i, x := range bt.X {
			j := index[x]
			if math.IsNaN(vals[j]) {
				vals[j] = 0
			}
			vals[j] += bt.Y[i]
		}
		s.Names = append(s.Names, bt.Name)
		s.Values = append(s.Values, vals)
	}
	return s
}

// HistogramSeries counts the traces of histogram c. Categorical traces
// are counted per category, in order of first appearance across all
// traces. Numeric traces share nbins equal-width bins spanning all of
// their finite values; the largest value falls in the last bin.
func HistogramSeries(c *plot.Chart, nbins int) (Series, error) {
	if nbins < 1 {
		return Series{}, fmt.Errorf("bin count %d must be at least 1", nbins)
	}
	var hs []*plot.HistogramTrace
	categorical := false
	for _, tr := range c.Traces {
		if h, ok := tr.(*plot.HistogramTrace); ok {
			hs = append(hs, h)
			categorical = h.Categorical()
		}
	}
	if categorical {
		return categoryCounts(hs), nil
	}
	return binCounts(hs, nbins), nil
}

func categoryCounts(hs []*plot.HistogramTrace) Series {
	labels := make([]slice.T, len(hs))
	for i, h := range hs {
		labels[i] = h.Categories
	}
	s := Series{Categories: union(labels)}
	index := indexOf(s.Categories)
	for _, h := range hs {
		counts := make([]float64, len(s.Categories))
		for _, cat := range h.Categories {
			counts[index[cat]]++
		}
		s.Names = append(s.Names, h.Name)
		s.Values = append(s.Values, counts)
	}
	return s
}

// union returns the distinct strings of the []string slices in
// labels, in order of first appearance.
func union(labels []slice.T) []string {
	if len(labels) == 0 {
		return []string{}
	}
	return slice.NubAppend(labels...).([]string)
}

func indexOf(xs []string) map[string]int {
	index := make(map[string]int, len(xs))
	for i, x := range xs {
		index[x] = i
	}
	return index
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func binCounts(hs []*plot.HistogramTrace, nbins int) Series {
	var all []float64
	for _, h := range hs {
		for _, x := range h.Values {
			if finite(x) {
				all = append(all, x)
			}
		}
	}
	var s Series
	if len(all) == 0 {
		for _, h := range hs {
			s.Names = append(s.Names, h.Name)
			s.Values = append(s.Values, []float64{})
		}
		return s
	}

	lo, hi := stats.Bounds(all)
	if lo == hi {
		// Every value is the same. Use one bin around it.
		nbins = 1
		hi = lo + 1
	}
	width := (hi - lo) / float64(nbins)
	for i := 0; i < nbins; i++ {
		bl, bh := lo+float64(i)*width, lo+float64(i+1)*width
		if i == nbins-1 {
			s.Categories = append(s.Categories, fmt.Sprintf("[%.4g, %.4g]", bl, bh))
		} else {
			s.Categories = append(s.Categories, fmt.Sprintf("[%.4g, %.4g)", bl, bh))
		}
	}

	for _, h := range hs {
		hist := stats.NewLinearHist(lo, hi, nbins)
		for _, x := range h.Values {
			if finite(x) {
				hist.Add(x)
			}
		}
		_, bins, high := hist.Counts()
		counts := make([]float64, nbins)
		for i, n := range bins {
			counts[i] = float64(n)
		}
		// Only hi itself lands above the last bin.
		counts[nbins-1] += float64(high)
		s.Names = append(s.Names, h.Name)
		s.Values = append(s.Values, counts)
	}
	return s
}

// Summary is the five-number summary of a sample.
type Summary struct {
	Min, Q1, Median, Q3, Max float64
}

// Values returns s in the order box plots expect.
func (s Summary) Values() []float64 {
	return []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max}
}

// BoxSummary summarizes the non-NaN values of ys. It returns false if
// there are none.
func BoxSummary(ys []float64) (Summary, bool) {
	xs := make([]float64, 0, len(ys))
	for _, y := range ys {
		if !math.IsNaN(y) {
			xs = append(xs, y)
		}
	}
	if len(xs) == 0 {
		return Summary{}, false
	}
	sample := stats.Sample{Xs: xs}
	sample.Sort()
	min, max := sample.Bounds()
	return Summary{
		Min:    min,
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Max:    max,
	}, true
}

func nans(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.NaN()
	}
	return xs
}
