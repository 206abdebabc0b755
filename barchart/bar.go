// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nacho-eval/benchkit/brokenaxis"
)

// A Bar is a single vertical bar from zero to Value. It spans
// [XMin, XMax] in data coordinates.
type Bar struct {
	Value      float64
	XMin, XMax float64

	Color   color.Color
	Outline draw.LineStyle

	// Hatch is drawn over the fill in the outline color.
	Hatch brokenaxis.Hatch
}

var _ brokenaxis.Patch = (*Bar)(nil)

// SetHatch implements brokenaxis.Patch.
func (b *Bar) SetHatch(h brokenaxis.Hatch) {
	b.Hatch = h
}

func (b *Bar) hatchStyle() draw.LineStyle {
	return draw.LineStyle{Color: b.Outline.Color, Width: vg.Points(0.5)}
}

func (b *Bar) plot(c draw.Canvas, plt *plot.Plot) {
	if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
		return
	}
	trX, trY := plt.Transforms(&c)
	x0, x1 := trX(b.XMin), trX(b.XMax)
	y0, y1 := trY(0), trY(b.Value)
	pts := []vg.Point{
		{X: x0, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: x1, Y: y0},
	}
	poly := c.ClipPolygonY(pts)
	if len(poly) == 0 {
		return
	}
	c.FillPolygon(b.Color, poly)
	if b.Hatch != "" {
		drawHatch(c, b.Hatch, bounds(poly), b.hatchStyle())
	}
	pts = append(pts, pts[0])
	c.StrokeLines(b.Outline, c.ClipLinesY(pts)...)
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (b *Bar) Thumbnail(c *draw.Canvas) {
	r := c.Rectangle
	c.FillPolygon(b.Color, []vg.Point{
		r.Min, {X: r.Min.X, Y: r.Max.Y}, r.Max, {X: r.Max.X, Y: r.Min.Y},
	})
	if b.Hatch != "" {
		drawHatch(*c, b.Hatch, r, b.hatchStyle())
	}
	c.StrokeLines(b.Outline, []vg.Point{
		r.Min, {X: r.Min.X, Y: r.Max.Y}, r.Max, {X: r.Max.X, Y: r.Min.Y}, r.Min,
	})
}

func bounds(pts []vg.Point) vg.Rectangle {
	r := vg.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
