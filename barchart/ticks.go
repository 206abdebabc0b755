// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"gonum.org/v1/plot"

	"github.com/nacho-eval/benchkit/results"
)

// scaledTicks places ticks like plot.DefaultTicks but labels large
// values with an SI prefix, so 120000 reads "120k".
type scaledTicks struct{}

var _ plot.Ticker = scaledTicks{}

// scaleFrom is the smallest axis maximum labeled with a prefix.
const scaleFrom = 1e4

func (scaledTicks) Ticks(min, max float64) []plot.Tick {
	if !(max > min) {
		return nil
	}
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	if max < scaleFrom {
		return ticks
	}
	var major []float64
	for _, t := range ticks {
		if t.Label != "" && t.Value != 0 {
			major = append(major, t.Value)
		}
	}
	sc := results.CommonScale(major)
	// Whole multiples of the prefix need no decimals.
	sc.Prec = 0
	for _, v := range major {
		if q := v / sc.Factor; q != float64(int64(q)) {
			sc.Prec = 1
			break
		}
	}
	for i, t := range ticks {
		switch {
		case t.Label == "":
		case t.Value == 0:
			ticks[i].Label = "0"
		default:
			ticks[i].Label = sc.Format(t.Value)
		}
	}
	return ticks
}
