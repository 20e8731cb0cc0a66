// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Query is a table together with a conjunction of equality
// filters that have not been applied yet. Queries are values:
// Filter returns a new Query and never modifies its receiver.
type Query struct {
	base  *table.Table
	preds []eqPred
}

type eqPred struct {
	col string
	val interface{}
}

// NewQuery returns a Query over all rows of t.
func NewQuery(t *table.Table) Query {
	return Query{base: t}
}

// Filter returns q further restricted to rows whose column col
// equals val.
func (q Query) Filter(col string, val interface{}) Query {
	preds := make([]eqPred, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	return Query{q.base, append(preds, eqPred{col, val})}
}

// Collect applies q's filters and returns the matching rows. The
// result has all of the base table's columns, even if no row matches.
func (q Query) Collect() (*table.Table, error) {
	var g table.Grouping = q.base
	for _, p := range q.preds {
		if q.base.Column(p.col) == nil {
			return nil, fmt.Errorf("filter: %w %q", ErrMissingColumn, p.col)
		}
		g = table.FilterEq(g, p.col, p.val)
	}
	if t := g.Table(table.RootGroupID); t != nil {
		return t, nil
	}

	// Everything was filtered out. Keep the column types.
	var b table.Builder
	for _, col := range q.base.Columns() {
		typ := reflect.TypeOf(q.base.Column(col))
		b.Add(col, reflect.MakeSlice(typ, 0, 0).Interface())
	}
	return b.Done(), nil
}

func (q Query) String() string {
	if len(q.preds) == 0 {
		return "all rows"
	}
	conds := make([]string, len(q.preds))
	for i, p := range q.preds {
		conds[i] = fmt.Sprintf("%s == %v", p.col, p.val)
	}
	return strings.Join(conds, " && ")
}
