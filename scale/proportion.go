// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale expresses values as fractions of a per-category total.
//
// A Proportion is fit once from the observations of one category and is
// immutable afterwards. Proportions maps category labels to their
// independently fit Proportion.
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-dfplot/internal/logging"
)

var (
	// ErrZeroTotal is returned when fitting observations whose sum is
	// zero, including no observations at all.
	ErrZeroTotal = errors.New("observations sum to zero")

	// ErrNegative is returned for a negative observation or value.
	ErrNegative = errors.New("negative value")

	// ErrNonFinite is returned for a NaN or infinite observation or
	// value.
	ErrNonFinite = errors.New("non-finite value")

	// ErrUnknownCategory is returned by Proportions.Lookup for a
	// category that was not fit.
	ErrUnknownCategory = errors.New("unknown category")
)

func check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w %v", ErrNonFinite, v)
	}
	if v < 0 {
		return fmt.Errorf("%w %v", ErrNegative, v)
	}
	return nil
}

// ProportionEstimator fits a Proportion from observations.
type ProportionEstimator struct{}

// Fit returns a Proportion that maps a value to its fraction of the sum
// of obs. Every observation must be non-negative and finite, and their
// sum must be positive.
func (ProportionEstimator) Fit(obs []float64) (Proportion, error) {
	for _, v := range obs {
		if err := check(v); err != nil {
			return Proportion{}, fmt.Errorf("fit: %w", err)
		}
	}
	total := stats.Sample{Xs: obs}.Sum()
	if total == 0 {
		return Proportion{}, fmt.Errorf("fit: %w", ErrZeroTotal)
	}
	if math.IsInf(total, 0) {
		return Proportion{}, fmt.Errorf("fit: %w: sum overflows", ErrNonFinite)
	}
	return Proportion{total: total, factor: 1 / total}, nil
}

// A Proportion maps a value to its fraction of a fitted total.
// The zero Proportion is not valid; use ProportionEstimator.Fit.
type Proportion struct {
	total, factor float64
}

// Total returns the sum of the observations p was fit from.
func (p Proportion) Total() float64 {
	return p.total
}

// Transform returns v as a fraction of p's total. v must be
// non-negative and finite. Values larger than the total yield
// fractions larger than 1.
func (p Proportion) Transform(v float64) (float64, error) {
	if err := check(v); err != nil {
		return 0, fmt.Errorf("transform: %w", err)
	}
	return v * p.factor, nil
}

// Proportions maps category labels to Proportions.
type Proportions map[string]Proportion

// FitCategories fits one Proportion per category. labels[i] names the
// category whose observations are rows[i].
func FitCategories(labels []string, rows [][]float64) (Proportions, error) {
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("%d category labels for %d rows of observations", len(labels), len(rows))
	}
	var est ProportionEstimator
	ps := make(Proportions, len(labels))
	for i, label := range labels {
		if _, ok := ps[label]; ok {
			return nil, fmt.Errorf("duplicate category %q", label)
		}
		p, err := est.Fit(rows[i])
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", label, err)
		}
		logging.Debug().
			Add(logging.Category(label)).
			Add(logging.Str("total", fmt.Sprint(p.Total()))).
			Msg("fit proportion")
		ps[label] = p
	}
	return ps, nil
}

// Lookup returns the Proportion of category label.
func (ps Proportions) Lookup(label string) (Proportion, error) {
	p, ok := ps[label]
	if !ok {
		return Proportion{}, fmt.Errorf("%w %q", ErrUnknownCategory, label)
	}
	return p, nil
}

// Transform returns v as a fraction of category label's total.
func (ps Proportions) Transform(label string, v float64) (float64, error) {
	p, err := ps.Lookup(label)
	if err != nil {
		return 0, err
	}
	y, err := p.Transform(v)
	if err != nil {
		return 0, fmt.Errorf("category %q: %w", label, err)
	}
	return y, nil
}
