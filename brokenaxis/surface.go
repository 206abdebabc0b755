// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brokenaxis stitches two chart surfaces into a single chart
// with a broken y axis and assigns hatch patterns to grouped bars.
//
// The package does not draw anything itself. It drives a Surface,
// which a charting backend implements (see package barchart for the
// gonum/plot one), so the logic here can be exercised against a fake.
package brokenaxis

import "image/color"

// An Edge names one side of a surface's data area.
type Edge int

const (
	Bottom Edge = iota
	Top
	Left
	Right
)

func (e Edge) String() string {
	switch e {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "Edge(?)"
}

// A TickPosition says whether an edge carries the x axis ticks and
// their labels.
type TickPosition int

const (
	TickNone TickPosition = iota
	TickBottom
)

// A Point is a location in axis-relative coordinates: (0, 0) is the
// bottom left corner of the data area and (1, 1) the top right.
// Coordinates outside [0, 1] are legal and fall outside the data
// area.
type Point struct {
	X, Y float64
}

// LineStyle describes how DrawLine strokes a line.
type LineStyle struct {
	Color color.Color

	// Width is the stroke width in points. Zero means the
	// backend's default.
	Width float64

	// Clip restricts the line to the data area.
	Clip bool
}

// A Hatch is a fill pattern symbol. The symbols follow the usual
// plotting conventions: "/", "\\", "|", "-", "+", "x", ".", "o".
// Repeating a symbol ("//") makes the pattern denser.
type Hatch string

// A Patch is one drawn bar.
type Patch interface {
	SetHatch(h Hatch)
}

// A Surface is one drawing area of a chart.
type Surface interface {
	// SetSpineVisible shows or hides the frame line along edge.
	SetSpineVisible(edge Edge, visible bool)

	// SetTickPosition controls whether the x axis ticks and labels
	// are drawn along edge.
	SetTickPosition(edge Edge, pos TickPosition)

	// DrawLine draws a polyline through pts, given in
	// axis-relative coordinates.
	DrawLine(pts []Point, style LineStyle)

	// Patches returns the bars of the surface in the order they
	// were drawn.
	Patches() []Patch
}
