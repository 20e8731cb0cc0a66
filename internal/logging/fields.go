// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import "github.com/felixgeelhaar/bolt/v3"

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Path adds a file path field.
func Path(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", path)
	}
}

// Column adds a column name field.
func Column(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("column", name)
	}
}

// Chart adds a chart kind field.
func Chart(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart", kind)
	}
}

// Category adds a category label field.
func Category(label string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("category", label)
	}
}

// Count adds an integer field with the given key.
func Count(key string, n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, n)
	}
}

// ErrorField adds an error field. A nil error adds nothing.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with a custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
