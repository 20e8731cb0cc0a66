// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-dfplot/frame"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func salesTable() *table.Table {
	return new(table.Builder).
		Add("region", []string{"US", "EU", "US", "EU", "US"}).
		Add("tier", []string{"gold", "gold", "silver", "gold", "gold"}).
		Add("channel", []string{"web", "web", "store", "store", "web"}).
		Add("n", []int{1, 2, 3, 4, 5}).
		Done()
}

func TestUnique(t *testing.T) {
	for _, test := range []struct {
		in, want []string
	}{
		{nil, []string{}},
		{[]string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{[]string{"x", "x"}, []string{"x"}},
	} {
		if got := Unique(test.in); !de(test.want, got) {
			t.Errorf("Unique(%v): want %v; got %v", test.in, test.want, got)
		}
	}
}

func TestBuild(t *testing.T) {
	gs, err := Build(salesTable(), []string{"region", "tier"})
	if err != nil {
		t.Fatal(err)
	}
	want := Groups{
		{"region", []string{"US", "EU"}},
		{"tier", []string{"gold", "silver"}},
	}
	if !de(want, gs) {
		t.Fatalf("want %v; got %v", want, gs)
	}
	if want := []string{"region", "tier"}; !de(want, gs.Columns()) {
		t.Errorf("want columns %v; got %v", want, gs.Columns())
	}
	if gs.Len() != 4 {
		t.Errorf("want 4 combinations; got %d", gs.Len())
	}
}

func TestBuildErrors(t *testing.T) {
	tab := new(table.Builder).
		Add("s", []string{"a", "b"}).
		Add("n", []int{1, 2}).
		Add("sparse", []interface{}{"a", nil}).
		Done()
	for _, test := range []struct {
		names []string
		want  error
	}{
		{nil, ErrNoGroups},
		{[]string{"s", "s"}, ErrDuplicateGroup},
		{[]string{"nope"}, frame.ErrMissingColumn},
		{[]string{"n"}, frame.ErrColumnType},
		{[]string{"sparse"}, frame.ErrMissingValue},
	} {
		if _, err := Build(tab, test.names); !errors.Is(err, test.want) {
			t.Errorf("Build(%v): want %v; got %v", test.names, test.want, err)
		}
	}
}

func TestForEachOrder(t *testing.T) {
	tab := new(table.Builder).
		Add("region", []string{"EU", "US", "EU"}).
		Add("tier", []string{"gold", "silver", "silver"}).
		Done()
	gs, err := Build(tab, []string{"region", "tier"})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	err = gs.ForEach(frame.NewQuery(tab), func(_ frame.Query, pairs []Pair) error {
		got = append(got, Label(pairs))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"[EU, gold]", "[EU, silver]", "[US, gold]", "[US, silver]"}
	if !de(want, got) {
		t.Fatalf("want %v; got %v", want, got)
	}
}

func TestForEachCount(t *testing.T) {
	tab := salesTable()
	for _, names := range [][]string{
		{"region"},
		{"tier", "region"},
		{"region", "tier", "channel"},
	} {
		gs, err := Build(tab, names)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[string]bool)
		rows := 0
		err = gs.ForEach(frame.NewQuery(tab), func(q frame.Query, pairs []Pair) error {
			if len(pairs) != len(names) {
				t.Fatalf("want %d pairs; got %v", len(names), pairs)
			}
			for i, p := range pairs {
				if p.Column != names[i] {
					t.Fatalf("pair %d: want column %s; got %s", i, names[i], p.Column)
				}
			}
			key := fmt.Sprint(pairs)
			if seen[key] {
				t.Fatalf("combination %s visited twice", key)
			}
			seen[key] = true

			part, err := q.Collect()
			if err != nil {
				return err
			}
			rows += part.Len()
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(seen) != gs.Len() {
			t.Errorf("%v: want %d combinations; got %d", names, gs.Len(), len(seen))
		}
		if rows != tab.Len() {
			t.Errorf("%v: partitions hold %d rows; want %d", names, rows, tab.Len())
		}
	}
}

func TestForEachPartitions(t *testing.T) {
	tab := salesTable()
	gs, err := Build(tab, []string{"region", "tier"})
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string][]int)
	var empty []string
	err = gs.ForEach(frame.NewQuery(tab), func(q frame.Query, pairs []Pair) error {
		part, err := q.Collect()
		if err != nil {
			return err
		}
		if part.Len() == 0 {
			empty = append(empty, Label(pairs))
		}
		got[Label(pairs)] = part.MustColumn("n").([]int)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 5}; !de(want, got["[US, gold]"]) {
		t.Errorf("[US, gold]: want %v; got %v", want, got["[US, gold]"])
	}
	if want := []int{2, 4}; !de(want, got["[EU, gold]"]) {
		t.Errorf("[EU, gold]: want %v; got %v", want, got["[EU, gold]"])
	}
	// EU has no silver rows, but the combination is still visited.
	if want := []string{"[EU, silver]"}; !de(want, empty) {
		t.Errorf("want empty partitions %v; got %v", want, empty)
	}
}

func TestForEachStopsOnError(t *testing.T) {
	tab := salesTable()
	gs, err := Build(tab, []string{"region", "tier"})
	if err != nil {
		t.Fatal(err)
	}
	stop := errors.New("stop")
	calls := 0
	err = gs.ForEach(frame.NewQuery(tab), func(frame.Query, []Pair) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Fatalf("want %v; got %v", stop, err)
	}
	if calls != 2 {
		t.Fatalf("want 2 calls; got %d", calls)
	}
}

func TestForEachNoGroups(t *testing.T) {
	tab := salesTable()
	calls := 0
	err := Groups(nil).ForEach(frame.NewQuery(tab), func(q frame.Query, pairs []Pair) error {
		calls++
		if len(pairs) != 0 {
			t.Errorf("want no pairs; got %v", pairs)
		}
		part, err := q.Collect()
		if err != nil {
			return err
		}
		if part.Len() != tab.Len() {
			t.Errorf("want %d rows; got %d", tab.Len(), part.Len())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("want 1 call; got %d", calls)
	}
}

func TestTraceName(t *testing.T) {
	pairs := []Pair{{"region", "EU"}, {"tier", "gold"}}
	if got, want := TraceName(pairs, "sales"), "[EU, gold]:sales"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
	if got, want := TraceName(nil, "sales"), "sales"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
}
