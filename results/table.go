// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Table arranges the measurements of one unit by series (system
// configuration) and benchmark. Series and benchmarks are kept in
// the order they first appear.
type Table struct {
	// SeriesKey is the configuration key that names the series,
	// for example "config" or ".file".
	SeriesKey string

	// Unit is the unit charted. If empty when the first result is
	// added, it becomes that result's first unit.
	Unit string

	Series     []string
	Benchmarks []string

	cells map[cell][]float64
}

type cell struct {
	series, bench string
}

// NewTable returns an empty table.
func NewTable(seriesKey, unit string) *Table {
	return &Table{SeriesKey: seriesKey, Unit: unit, cells: make(map[cell][]float64)}
}

// Add adds the table's unit of res. It reports false if res has no
// series key or no value in the unit.
func (t *Table) Add(res *Result) bool {
	series, ok := res.Config[t.SeriesKey]
	if !ok || series == "" {
		return false
	}
	if t.Unit == "" && len(res.Values) > 0 {
		t.Unit = res.Values[0].Unit
	}
	v, ok := res.Value(t.Unit)
	if !ok {
		return false
	}
	c := cell{series, res.Bench()}
	if _, ok := t.cells[c]; !ok {
		if !contains(t.Series, c.series) {
			t.Series = append(t.Series, c.series)
		}
		if !contains(t.Benchmarks, c.bench) {
			t.Benchmarks = append(t.Benchmarks, c.bench)
		}
	}
	t.cells[c] = append(t.cells[c], v)
	return true
}

// Sample returns the raw measurements of one cell.
func (t *Table) Sample(series, bench string) []float64 {
	return t.cells[cell{series, bench}]
}

// Center returns the median measurement of one cell.
func (t *Table) Center(series, bench string) (float64, bool) {
	xs := t.cells[cell{series, bench}]
	if len(xs) == 0 {
		return math.NaN(), false
	}
	return stats.Sample{Xs: xs}.Quantile(0.5), true
}

// Row returns the centers of series, one per benchmark in
// t.Benchmarks order, with NaN for missing cells.
func (t *Table) Row(series string) []float64 {
	row := make([]float64, len(t.Benchmarks))
	for i, b := range t.Benchmarks {
		row[i], _ = t.Center(series, b)
	}
	return row
}

// Order restricts and reorders the series and benchmarks. A nil list
// keeps the current order. Names that are not in the table are an
// error.
func (t *Table) Order(series, benchmarks []string) error {
	if series != nil {
		if err := checkSubset("series", series, t.Series); err != nil {
			return err
		}
		t.Series = append([]string(nil), series...)
	}
	if benchmarks != nil {
		if err := checkSubset("benchmark", benchmarks, t.Benchmarks); err != nil {
			return err
		}
		t.Benchmarks = append([]string(nil), benchmarks...)
	}
	return nil
}

// Normalize returns a new table in which each cell is divided by the
// center of the baseline series for the same benchmark. Benchmarks
// the baseline lacks are dropped.
func (t *Table) Normalize(baseline string) (*Table, error) {
	if !contains(t.Series, baseline) {
		return nil, fmt.Errorf("baseline series %q not in table", baseline)
	}
	n := NewTable(t.SeriesKey, t.Unit+"/"+baseline)
	n.Series = append([]string(nil), t.Series...)
	for _, b := range t.Benchmarks {
		base, ok := t.Center(baseline, b)
		if !ok || base == 0 {
			continue
		}
		n.Benchmarks = append(n.Benchmarks, b)
		for _, s := range t.Series {
			xs := t.cells[cell{s, b}]
			if len(xs) == 0 {
				continue
			}
			ys := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = x / base
			}
			n.cells[cell{s, b}] = ys
		}
	}
	return n, nil
}

// Range returns the smallest and largest center in the table.
func (t *Table) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range t.Series {
		for _, v := range t.Row(s) {
			if math.IsNaN(v) {
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	return min, max
}

func contains(xs []string, x string) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

func checkSubset(what string, xs, of []string) error {
	for _, x := range xs {
		if !contains(of, x) {
			return fmt.Errorf("unknown %s %q", what, x)
		}
	}
	return nil
}
