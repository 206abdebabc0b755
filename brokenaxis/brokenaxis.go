// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brokenaxis

import "image/color"

const (
	// MarkSize is the horizontal half-length of a break mark in
	// axis-relative units.
	MarkSize = 0.01

	// MarkAspect stretches the break marks vertically so they read
	// as diagonals on the usual wide, short axes.
	MarkAspect = 2.2
)

// MarkStyle is the style of the break marks. They are black
// regardless of the series colors and cross the spine, so they are
// never clipped.
var MarkStyle = LineStyle{Color: color.Black, Clip: false}

// A Segment is a straight line between two axis-relative points.
type Segment [2]Point

// BreakMarks returns the diagonal marks drawn on the upper and lower
// surface of a broken axis. The upper marks sit on its bottom edge
// and the lower marks on its top edge, one at each horizontal end.
func BreakMarks() (upper, lower [2]Segment) {
	const d = MarkSize
	upper = [2]Segment{
		{{-d, -MarkAspect * d}, {+d, +MarkAspect * d}},
		{{1 - d, -MarkAspect * d}, {1 + d, +MarkAspect * d}},
	}
	lower = [2]Segment{
		{{-d, 1 - d}, {+d, 1 + d}},
		{{1 - d, 1 - d}, {1 + d, 1 + d}},
	}
	return upper, lower
}

// ConfigureBrokenAxis joins lower and upper into one chart with a
// broken y axis. lower holds the smaller values and is drawn directly
// below upper; the two share the x domain.
//
// The spines along the seam are hidden, the x axis ticks move to the
// bottom of lower, and diagonal break marks are drawn across the
// seam on both surfaces. Each call draws another set of marks, so
// call it once per chart.
func ConfigureBrokenAxis(lower, upper Surface) {
	lower.SetSpineVisible(Top, false)
	upper.SetSpineVisible(Bottom, false)

	upper.SetTickPosition(Bottom, TickNone)
	lower.SetTickPosition(Bottom, TickBottom)

	up, low := BreakMarks()
	for _, seg := range up {
		upper.DrawLine(seg[:], MarkStyle)
	}
	for _, seg := range low {
		lower.DrawLine(seg[:], MarkStyle)
	}
}
