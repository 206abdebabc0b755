// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results reads benchmark results in the Go benchmark format
// and arranges them into a table of configurations by benchmarks for
// charting.
//
// The format is documented at
// https://golang.org/design/14313-benchmark-format. In short, a
// "key: value" line sets a configuration key for all following
// results in the file, and a line of the form
//
//	BenchmarkCRC 1 1823456 cycles 412 misses
//
// is one result with one or more value/unit pairs. A results file
// for a system configuration might start with "config: nacho".
package results

import "strings"

// A Result is a single benchmark result and its measurements.
type Result struct {
	// Config holds the configuration keys in effect for this
	// result. Keys set by tooling rather than the file start with
	// ".", such as ".file".
	Config map[string]string

	// Name is the full benchmark name, without the "Benchmark"
	// prefix.
	Name string

	// Iters is the iteration count.
	Iters int

	// Values are the measurements, in the order they appear.
	Values []Value

	fileName string
	line     int
}

// A Value is one measurement and its unit.
type Value struct {
	Value float64
	Unit  string
}

// Pos returns the file name and line a Result was read from.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Value returns the measurement for the given unit.
func (r *Result) Value(unit string) (float64, bool) {
	for _, v := range r.Values {
		if v.Unit == unit {
			return v.Value, true
		}
	}
	return 0, false
}

// Base returns the benchmark name without sub-benchmark parts or a
// trailing GOMAXPROCS suffix: "CRC/size=4-8" becomes "CRC".
func (r *Result) Base() string {
	name := r.Name
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i]
	}
	return trimProcs(name)
}

// Bench returns the benchmark name with only the GOMAXPROCS suffix
// removed.
func (r *Result) Bench() string {
	return trimProcs(r.Name)
}

func trimProcs(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		c := name[i]
		if c == '-' && i < len(name)-1 {
			return name[:i]
		}
		if c < '0' || c > '9' {
			break
		}
	}
	return name
}
