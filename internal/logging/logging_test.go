// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/felixgeelhaar/bolt/v3"
)

func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return bolt.New(bolt.NewJSONHandler(buf)).SetLevel(bolt.TRACE), buf
}

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
	} {
		got, err := ParseLevel(test.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", test.in, err)
		} else if got != test.want {
			t.Errorf("ParseLevel(%q): want %v; got %v", test.in, test.want, got)
		}
	}
	for _, in := range []string{"", "verbose", "WARN"} {
		if _, err := ParseLevel(in); err == nil {
			t.Errorf("ParseLevel(%q) succeeded; want error", in)
		}
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range Formats {
		if err := CheckFormat(f); err != nil {
			t.Errorf("CheckFormat(%q): %v", f, err)
		}
	}
	if err := CheckFormat("xml"); err == nil {
		t.Error("CheckFormat(xml) succeeded; want error")
	}
}

func TestFields(t *testing.T) {
	for _, test := range []struct {
		field Field
		want  string
	}{
		{Path("data.csv"), `"path":"data.csv"`},
		{Column("sales"), `"column":"sales"`},
		{Chart("bar"), `"chart":"bar"`},
		{Category("EU"), `"category":"EU"`},
		{Count("rows", 12), `"rows":12`},
		{Str("mode", "stack"), `"mode":"stack"`},
		{ErrorField(errors.New("boom")), `"error":"boom"`},
	} {
		logger, buf := testLogger()
		test.field(logger.Info()).Msg("test")
		if !bytes.Contains(buf.Bytes(), []byte(test.want)) {
			t.Errorf("want %s in output; got %s", test.want, buf.String())
		}
	}
}

func TestErrorFieldNil(t *testing.T) {
	logger, buf := testLogger()
	ErrorField(nil)(logger.Info()).Msg("test")
	if bytes.Contains(buf.Bytes(), []byte(`"error"`)) {
		t.Errorf("unexpected error field in output: %s", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatal("SetLevel(loud) succeeded; want error")
	}
	// Restore the default so other tests stay quiet.
	if err := SetLevel(DefaultConfig().Level); err != nil {
		t.Fatal(err)
	}
}
