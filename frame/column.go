// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Kind classifies a column for plotting.
type Kind int

const (
	// String columns hold only strings.
	String Kind = iota
	// Numeric columns hold only integers and floats.
	Numeric
	// Bool columns hold only booleans.
	Bool
	// Mixed columns hold values of more than one of the above, or
	// no values at all.
	Mixed
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Numeric:
		return "numeric"
	case Bool:
		return "bool"
	}
	return "mixed"
}

// HasColumn reports whether t has a column called name.
func HasColumn(t *table.Table, name string) bool {
	return t.Column(name) != nil
}

func column(t *table.Table, name string) (table.Slice, error) {
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	return col, nil
}

// KindOf returns the kind of the non-missing cells of column name.
func KindOf(t *table.Table, name string) (Kind, error) {
	col, err := column(t, name)
	if err != nil {
		return Mixed, err
	}
	switch col := col.(type) {
	case []string:
		return String, nil
	case []bool:
		return Bool, nil
	case []interface{}:
		kind := kindNone
		for _, v := range col {
			if v != nil {
				kind = merge(kind, kindOfValue(v), false)
			}
		}
		switch kind {
		case kindString:
			return String, nil
		case kindInt, kindFloat:
			return Numeric, nil
		case kindBool:
			return Bool, nil
		}
		return Mixed, nil
	}
	if isNumeric(col) {
		return Numeric, nil
	}
	return Mixed, nil
}

// Strings returns column name of t as strings. Every cell must be a
// non-missing string. The result may share storage with t and must
// not be modified.
func Strings(t *table.Table, name string) ([]string, error) {
	col, err := column(t, name)
	if err != nil {
		return nil, err
	}
	switch col := col.(type) {
	case []string:
		return col, nil
	case []interface{}:
		out := make([]string, len(col))
		for i, v := range col {
			switch v := v.(type) {
			case nil:
				return nil, fmt.Errorf("%w: one string in column %q row %d does not exist", ErrMissingValue, name, i+1)
			case string:
				out[i] = v
			default:
				return nil, fmt.Errorf("%w: column %q row %d holds %T, not a string", ErrColumnType, name, i+1, v)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: column %q holds %s, not strings", ErrColumnType, name, reflect.TypeOf(col).Elem())
}

// Floats returns column name of t as float64s. Every cell must be a
// non-missing number. Like Strings, the result may share storage
// with t.
func Floats(t *table.Table, name string) ([]float64, error) {
	return floats(t, name, false)
}

// FloatsSkipMissing is like Floats, but leaves out missing cells.
func FloatsSkipMissing(t *table.Table, name string) ([]float64, error) {
	return floats(t, name, true)
}

func floats(t *table.Table, name string, skip bool) ([]float64, error) {
	col, err := column(t, name)
	if err != nil {
		return nil, err
	}
	switch col := col.(type) {
	case []float64:
		return col, nil
	case []interface{}:
		out := make([]float64, 0, len(col))
		for i, v := range col {
			switch v := v.(type) {
			case nil:
				if skip {
					continue
				}
				return nil, fmt.Errorf("%w: one number in column %q row %d does not exist", ErrMissingValue, name, i+1)
			case int:
				out = append(out, float64(v))
			case float64:
				out = append(out, v)
			default:
				return nil, fmt.Errorf("%w: column %q row %d holds %T, not a number", ErrColumnType, name, i+1, v)
			}
		}
		return out, nil
	}
	if !isNumeric(col) {
		return nil, fmt.Errorf("%w: column %q holds %s, not numbers", ErrColumnType, name, reflect.TypeOf(col).Elem())
	}
	var out []float64
	slice.Convert(&out, col)
	return out, nil
}

func isNumeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
