// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/internal/logging"
)

type loadConfig struct {
	inferLen int
}

// A LoadOption configures how a file is read.
type LoadOption func(*loadConfig)

// WithInferSchemaLength infers each column's type from its first n
// non-missing cells. If n is 0, every cell is considered. A cell past
// the first n that does not fit the inferred type is an error.
func WithInferSchemaLength(n int) LoadOption {
	return func(c *loadConfig) {
		if n < 0 {
			n = 0
		}
		c.inferLen = n
	}
}

// Load reads the table in the file at path. The format is selected by
// the file extension: ".csv" (with a header row), ".json" (an array of
// objects), or ".ndjson" and ".jsonl" (one object per line).
func Load(path string, opts ...LoadOption) (*table.Table, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w at the name of the file %q", ErrNoExtension, path)
	}

	var read func(io.Reader, ...LoadOption) (*table.Table, error)
	// Extensions match regardless of case.
	switch strings.ToLower(ext[1:]) {
	case "csv":
		read = ReadCSV
	case "json":
		read = ReadJSON
	case "ndjson", "jsonl":
		read = ReadNDJSON
	default:
		return nil, fmt.Errorf("%w %q at the name of the file %q", ErrUnknownExtension, ext[1:], path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug().
		Add(logging.Path(path)).
		Add(logging.Count("rows", t.Len())).
		Add(logging.Count("columns", len(t.Columns()))).
		Msg("loaded table")
	return t, nil
}

// ReadCSV reads a CSV table. The first record is the header.
func ReadCSV(r io.Reader, opts ...LoadOption) (*table.Table, error) {
	cfg := newLoadConfig(opts)

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing CSV header")
	}
	header, rows := records[0], records[1:]

	var cols columnSet
	for _, name := range header {
		if !cols.add(name) {
			return nil, fmt.Errorf("duplicate column %q in CSV header", name)
		}
	}
	for _, row := range rows {
		for j, text := range row {
			cols.cells[j] = append(cols.cells[j], cell{parseText(text), text})
		}
	}
	return cols.build(cfg, true)
}

// ReadJSON reads a JSON array of objects. Each object is a row and
// each key is a column. A key that is absent from an object is a
// missing cell, as is a null value.
func ReadJSON(r io.Reader, opts ...LoadOption) (*table.Table, error) {
	cfg := newLoadConfig(opts)

	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var cols columnSet
	for nrows := 0; dec.More(); nrows++ {
		if err := cols.decodeRow(dec, nrows); err != nil {
			return nil, fmt.Errorf("row %d: %w", nrows+1, err)
		}
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return cols.build(cfg, false)
}

// ReadNDJSON reads newline-delimited JSON objects, one row per
// object. Blank lines are ignored.
func ReadNDJSON(r io.Reader, opts ...LoadOption) (*table.Table, error) {
	cfg := newLoadConfig(opts)

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var cols columnSet
	for nrows := 0; dec.More(); nrows++ {
		if err := cols.decodeRow(dec, nrows); err != nil {
			return nil, fmt.Errorf("line %d: %w", nrows+1, err)
		}
	}
	return cols.build(cfg, false)
}

func newLoadConfig(opts []LoadOption) *loadConfig {
	cfg := new(loadConfig)
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, found %v", want, tok)
	}
	return nil
}

// A cell is one parsed input value. v is nil, int, float64, bool or
// string. For CSV input, text is the cell's original text.
type cell struct {
	v    interface{}
	text string
}

// parseText converts CSV cell text to a typed value. Empty text is a
// missing cell.
func parseText(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// columnSet accumulates the cells of named columns in first
// appearance order.
type columnSet struct {
	names []string
	index map[string]int
	cells [][]cell
	nrows int
}

func (cs *columnSet) add(name string) bool {
	if cs.index == nil {
		cs.index = make(map[string]int)
	}
	if _, ok := cs.index[name]; ok {
		return false
	}
	cs.index[name] = len(cs.names)
	cs.names = append(cs.names, name)
	// Back-fill rows that did not have this column.
	cs.cells = append(cs.cells, make([]cell, cs.nrows))
	return true
}

// decodeRow decodes one JSON object from dec as row number row.
func (cs *columnSet) decodeRow(dec *json.Decoder, row int) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		if seen[key] {
			return fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		v, err := jsonValue(raw)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		cs.add(key)
		j := cs.index[key]
		cs.cells[j] = append(cs.cells[j], cell{v: v})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	cs.nrows = row + 1
	// Pad columns this object did not mention.
	for j := range cs.cells {
		if len(cs.cells[j]) < cs.nrows {
			cs.cells[j] = append(cs.cells[j], cell{})
		}
	}
	return nil
}

func jsonValue(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil, string, bool:
		return v, nil
	case json.Number:
		if i, err := strconv.Atoi(v.String()); err == nil {
			return i, nil
		}
		return v.Float64()
	}
	return nil, fmt.Errorf("%w: nested value %T", ErrColumnType, raw)
}

func (cs *columnSet) build(cfg *loadConfig, textual bool) (*table.Table, error) {
	var b table.Builder
	for j, name := range cs.names {
		col, err := buildColumn(cs.cells[j], cfg.inferLen, textual)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		b.Add(name, col)
	}
	return b.Done(), nil
}
