// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame loads tabular files into go-gg tables and provides
// typed access to their columns.
//
// A loaded table stores each column as a Go slice. Columns without
// missing cells are []string, []int, []float64 or []bool. A column
// that has at least one missing cell, or that mixes JSON types, is
// stored as []interface{} with nil marking the missing cells.
package frame

import "errors"

var (
	// ErrNoExtension is returned by Load for a path without a file
	// extension.
	ErrNoExtension = errors.New("no file extension")

	// ErrUnknownExtension is returned by Load for a file extension
	// that does not name a supported format.
	ErrUnknownExtension = errors.New("unknown file extension")

	// ErrMissingColumn is returned when a named column does not
	// exist.
	ErrMissingColumn = errors.New("no such column")

	// ErrColumnType is returned when a cell has the wrong type for
	// the requested operation.
	ErrColumnType = errors.New("wrong column type")

	// ErrMissingValue is returned when a cell that must hold a value
	// is missing.
	ErrMissingValue = errors.New("missing value")
)
