// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group partitions a table by every combination of the
// categories of one or more string columns.
package group

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/frame"
	"github.com/aclements/go-dfplot/internal/logging"
)

var (
	// ErrNoGroups is returned by Build when no group column is
	// given.
	ErrNoGroups = errors.New("no group columns")

	// ErrDuplicateGroup is returned by Build when a group column is
	// named more than once.
	ErrDuplicateGroup = errors.New("duplicate group column")
)

// A Group is a column and its distinct categories in order of first
// appearance.
type Group struct {
	Column     string
	Categories []string
}

// A Pair selects one category of one group column.
type Pair struct {
	Column   string
	Category string
}

// Groups is an ordered list of groups. The order determines the
// nesting of ForEach: the first group is the outermost.
type Groups []Group

// Build discovers the categories of each of the named columns of t.
// Every cell of a group column must be a non-missing string.
func Build(t *table.Table, names []string) (Groups, error) {
	if len(names) == 0 {
		return nil, ErrNoGroups
	}
	gs := make(Groups, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateGroup, name)
		}
		seen[name] = true

		vals, err := frame.Strings(t, name)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		g := Group{Column: name, Categories: Unique(vals)}
		logging.Debug().
			Add(logging.Column(name)).
			Add(logging.Count("categories", len(g.Categories))).
			Msg("built group")
		gs = append(gs, g)
	}
	return gs, nil
}

// Unique returns the distinct values of xs in order of first
// appearance.
func Unique(xs []string) []string {
	return slice.Nub(xs).([]string)
}

// Columns returns the names of the group columns.
func (gs Groups) Columns() []string {
	cols := make([]string, len(gs))
	for i, g := range gs {
		cols[i] = g.Column
	}
	return cols
}

// Len returns the number of combinations ForEach visits.
func (gs Groups) Len() int {
	n := 1
	for _, g := range gs {
		n *= len(g.Categories)
	}
	return n
}

// ForEach calls visit once for each combination of categories, in
// odometer order: the last group varies fastest. visit receives q
// restricted to the rows in that combination, and the combination
// itself as one Pair per group. visit is called even if no rows match.
// If visit returns an error, ForEach stops and returns that error.
//
// Empty Groups have exactly one combination, which selects all of q.
func (gs Groups) ForEach(q frame.Query, visit func(frame.Query, []Pair) error) error {
	for _, g := range gs {
		if len(g.Categories) == 0 {
			return nil
		}
	}

	idx := make([]int, len(gs))
	for {
		pairs := make([]Pair, len(gs))
		sub := q
		for i, g := range gs {
			pairs[i] = Pair{g.Column, g.Categories[idx[i]]}
			sub = sub.Filter(g.Column, pairs[i].Category)
		}
		if err := visit(sub, pairs); err != nil {
			return err
		}

		// Advance the odometer.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(gs[i].Categories) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

// Label formats the categories of a combination, such as "[EU, gold]".
func Label(pairs []Pair) string {
	cats := make([]string, len(pairs))
	for i, p := range pairs {
		cats[i] = p.Category
	}
	return "[" + strings.Join(cats, ", ") + "]"
}

// TraceName names the series of column col within a combination, such
// as "[EU, gold]:sales". Without a combination, it is just col.
func TraceName(pairs []Pair, col string) string {
	if len(pairs) == 0 {
		return col
	}
	return Label(pairs) + ":" + col
}
