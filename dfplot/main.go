// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dfplot draws charts of tabular data.
//
// dfplot reads a CSV, JSON or newline-delimited JSON file and plots
// one of its columns against another:
//
//	dfplot scatter data.csv -x time -y latency -g host
//	dfplot bar sales.csv -x region -y q1,q2 -b proportion -o sales.svg
//	dfplot box data.csv -y latency -g host
//	dfplot histogram data.csv -y latency --bins 20
//
// Each combination of the values of the -g columns becomes its own
// trace. Without -o, the chart is written to a temporary HTML file and
// opened in a browser. An output file ending in .svg gets a static SVG
// image and any other output file gets a self-contained HTML page.
// With -table, dfplot prints the plotted values instead.
//
// dfplot reads optional settings from dfplot/config.yaml in the user
// configuration directory, or from the file named by -config or
// $DFPLOT_CONFIG.
package main

import (
	"context"
	"log"
)

func main() {
	log.SetPrefix("dfplot: ")
	log.SetFlags(0)

	if err := New().Execute(context.Background()); err != nil {
		log.Fatal(err)
	}
}
