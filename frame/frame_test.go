// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestReadCSV(t *testing.T) {
	const data = `name,n,f,b,sparse
a,1,1.5,true,x
b,2,2,false,
c,3,-1e3,true,z
`
	tab, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"name", "n", "f", "b", "sparse"}; !de(want, tab.Columns()) {
		t.Fatalf("want columns %v; got %v", want, tab.Columns())
	}
	for _, test := range []struct {
		col  string
		want table.Slice
	}{
		{"name", []string{"a", "b", "c"}},
		{"n", []int{1, 2, 3}},
		{"f", []float64{1.5, 2, -1000}},
		{"b", []bool{true, false, true}},
		{"sparse", []interface{}{"x", nil, "z"}},
	} {
		if got := tab.Column(test.col); !de(test.want, got) {
			t.Errorf("column %q: want %#v; got %#v", test.col, test.want, got)
		}
	}
}

func TestReadCSVMixedIsString(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("v\n1\n2.5\nabc\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1", "2.5", "abc"}; !de(want, tab.Column("v")) {
		t.Fatalf("want %v; got %#v", want, tab.Column("v"))
	}
}

func TestReadCSVInferSchemaLength(t *testing.T) {
	const data = "v\n1\n2\nabc\n"
	if _, err := ReadCSV(strings.NewReader(data), WithInferSchemaLength(2)); !errors.Is(err, ErrColumnType) {
		t.Fatalf("want ErrColumnType; got %v", err)
	}
	tab, err := ReadCSV(strings.NewReader(data), WithInferSchemaLength(0))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1", "2", "abc"}; !de(want, tab.Column("v")) {
		t.Fatalf("want %v; got %#v", want, tab.Column("v"))
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, data := range []string{
		"",
		"a,a\n1,2\n",
		"a,b\n1\n",
	} {
		if _, err := ReadCSV(strings.NewReader(data)); err == nil {
			t.Errorf("ReadCSV(%q) succeeded; want error", data)
		}
	}
}

func TestReadJSON(t *testing.T) {
	const data = `[
  {"x": "A", "y": 1, "z": 0.5},
  {"x": "B", "y": 2, "w": true},
  {"x": "C", "y": 3.5, "z": null}
]`
	tab, err := ReadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"x", "y", "z", "w"}; !de(want, tab.Columns()) {
		t.Fatalf("want columns %v; got %v", want, tab.Columns())
	}
	for _, test := range []struct {
		col  string
		want table.Slice
	}{
		{"x", []string{"A", "B", "C"}},
		{"y", []float64{1, 2, 3.5}},
		{"z", []interface{}{0.5, nil, nil}},
		{"w", []interface{}{nil, true, nil}},
	} {
		if got := tab.Column(test.col); !de(test.want, got) {
			t.Errorf("column %q: want %#v; got %#v", test.col, test.want, got)
		}
	}
}

func TestReadJSONMixed(t *testing.T) {
	tab, err := ReadJSON(strings.NewReader(`[{"v": "1"}, {"v": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []interface{}{"1", 2}; !de(want, tab.Column("v")) {
		t.Fatalf("want %#v; got %#v", want, tab.Column("v"))
	}
	if _, err := Strings(tab, "v"); !errors.Is(err, ErrColumnType) {
		t.Errorf("Strings: want ErrColumnType; got %v", err)
	}
	if _, err := Floats(tab, "v"); !errors.Is(err, ErrColumnType) {
		t.Errorf("Floats: want ErrColumnType; got %v", err)
	}
}

func TestReadJSONErrors(t *testing.T) {
	for _, data := range []string{
		`{"x": 1}`,
		`[{"x": [1, 2]}]`,
		`[{"x": 1, "x": 2}]`,
		`[{"x": 1}`,
	} {
		if _, err := ReadJSON(strings.NewReader(data)); err == nil {
			t.Errorf("ReadJSON(%q) succeeded; want error", data)
		}
	}
}

func TestReadNDJSON(t *testing.T) {
	const data = `{"g": "EU", "v": 1}

{"g": "US", "v": 2}
{"g": "EU"}
`
	tab, err := ReadNDJSON(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 3 {
		t.Fatalf("want 3 rows; got %d", tab.Len())
	}
	if want := []interface{}{1, 2, nil}; !de(want, tab.Column("v")) {
		t.Fatalf("want %#v; got %#v", want, tab.Column("v"))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
			t.Fatal(err)
		}
		return path
	}

	for _, name := range []string{"t.csv", "t.CSV"} {
		tab, err := Load(write(name, "x,y\nA,1\n"))
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if tab.Len() != 1 {
			t.Fatalf("Load(%s): want 1 row; got %d", name, tab.Len())
		}
	}
	for _, name := range []string{"t.ndjson", "t.jsonl"} {
		if _, err := Load(write(name, `{"x": "A"}`+"\n")); err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
	}
	if _, err := Load(write("t.json", `[{"x": "A"}]`)); err != nil {
		t.Fatalf("Load(t.json): %v", err)
	}

	_, err := Load(write("t.txt", "x\n"))
	if !errors.Is(err, ErrUnknownExtension) {
		t.Fatalf("want ErrUnknownExtension; got %v", err)
	}
	if !strings.Contains(err.Error(), `"txt"`) {
		t.Errorf("error %q does not name the extension", err)
	}
	if _, err := Load(write("noext", "x\n")); !errors.Is(err, ErrNoExtension) {
		t.Fatalf("want ErrNoExtension; got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error; got %v", err)
	}
}
