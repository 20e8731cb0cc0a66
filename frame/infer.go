// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

type cellKind int

const (
	kindNone cellKind = iota // no non-missing cell seen
	kindInt
	kindFloat
	kindBool
	kindString
	kindMixed
)

var kindNames = [...]string{"none", "integer", "float", "boolean", "string", "mixed"}

func (k cellKind) String() string {
	return kindNames[k]
}

func kindOfValue(v interface{}) cellKind {
	switch v.(type) {
	case int:
		return kindInt
	case float64:
		return kindFloat
	case bool:
		return kindBool
	case string:
		return kindString
	}
	return kindNone
}

// merge returns the narrowest kind that holds both a and b. Text input
// falls back to strings; typed (JSON) input falls back to mixed.
func merge(a, b cellKind, textual bool) cellKind {
	switch {
	case a == kindNone:
		return b
	case b == kindNone, a == b:
		return a
	case (a == kindInt && b == kindFloat) || (a == kindFloat && b == kindInt):
		return kindFloat
	case textual:
		return kindString
	}
	return kindMixed
}

// buildColumn converts cells to a column slice. The column kind is
// inferred from the first inferLen non-missing cells (all cells if
// inferLen is 0).
func buildColumn(cells []cell, inferLen int, textual bool) (table.Slice, error) {
	kind, seen, missing := kindNone, 0, false
	for _, c := range cells {
		if c.v == nil {
			missing = true
			continue
		}
		if inferLen == 0 || seen < inferLen {
			kind = merge(kind, kindOfValue(c.v), textual)
			seen++
		}
	}

	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		if c.v == nil {
			continue
		}
		v, ok := convert(c, kind, textual)
		if !ok {
			return nil, fmt.Errorf("%w: row %d: cannot use %s as %s", ErrColumnType, i+1, describe(c), kind)
		}
		vals[i] = v
	}
	if missing || kind == kindNone || kind == kindMixed {
		return vals, nil
	}

	switch kind {
	case kindInt:
		col := make([]int, len(vals))
		for i, v := range vals {
			col[i] = v.(int)
		}
		return col, nil
	case kindFloat:
		col := make([]float64, len(vals))
		for i, v := range vals {
			col[i] = v.(float64)
		}
		return col, nil
	case kindBool:
		col := make([]bool, len(vals))
		for i, v := range vals {
			col[i] = v.(bool)
		}
		return col, nil
	}
	col := make([]string, len(vals))
	for i, v := range vals {
		col[i] = v.(string)
	}
	return col, nil
}

// convert converts a non-missing cell to a value of kind k.
func convert(c cell, k cellKind, textual bool) (interface{}, bool) {
	switch k {
	case kindMixed:
		return c.v, true
	case kindString:
		if textual {
			return c.text, true
		}
		s, ok := c.v.(string)
		return s, ok
	case kindFloat:
		switch v := c.v.(type) {
		case int:
			return float64(v), true
		case float64:
			return v, true
		}
		return nil, false
	}
	if kindOfValue(c.v) != k {
		return nil, false
	}
	return c.v, true
}

func describe(c cell) string {
	if c.text != "" {
		return fmt.Sprintf("%q", c.text)
	}
	return fmt.Sprintf("%s value %v", kindOfValue(c.v), c.v)
}
