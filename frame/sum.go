// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// SumBy groups t by the string column by and sums each of cols within
// each group. It returns the group labels in order of first
// appearance, and for each label the sums of cols in order.
func SumBy(t *table.Table, by string, cols []string) (labels []string, sums [][]float64, err error) {
	if _, err := Strings(t, by); err != nil {
		return nil, nil, err
	}
	for _, col := range cols {
		if _, err := Floats(t, col); err != nil {
			return nil, nil, err
		}
	}

	g := table.GroupBy(t, by)
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		row := make([]float64, len(cols))
		for j, col := range cols {
			xs, err := Floats(sub, col)
			if err != nil {
				return nil, nil, err
			}
			for _, x := range xs {
				row[j] += x
			}
		}
		label, ok := gid.Label().(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: group label %v in column %q", ErrColumnType, gid.Label(), by)
		}
		labels = append(labels, label)
		sums = append(sums, row)
	}
	return labels, sums, nil
}
