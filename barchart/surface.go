// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barchart draws grouped bar charts of benchmark results
// with gonum/plot, optionally with a broken y axis.
//
// A Surface adapts a *plot.Plot to brokenaxis.Surface: it draws its
// own frame so individual spines can be hidden, maps axis-relative
// lines onto the data area, and keeps its bars in draw order so
// hatches can be assigned to them.
package barchart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nacho-eval/benchkit/brokenaxis"
)

// A Surface is one plot of a chart.
type Surface struct {
	Plot *plot.Plot

	// SpineStyle is the style of the frame around the data area.
	SpineStyle draw.LineStyle

	// Grid is drawn behind the bars. Its vertical lines are off.
	Grid *plotter.Grid

	spines [4]bool // indexed by brokenaxis.Edge
	xTicks []plot.Tick
	xPos   brokenaxis.TickPosition
	lines  []relLine
	bars   []*Bar
}

type relLine struct {
	pts   []brokenaxis.Point
	style brokenaxis.LineStyle
}

var _ brokenaxis.Surface = (*Surface)(nil)

// NewSurface returns a surface with all four spines visible and x
// ticks along the bottom.
func NewSurface() *Surface {
	p := plot.New()
	// The surface draws the frame itself, so the axis lines and
	// the padding between them and the data go.
	p.X.Width = 0
	p.Y.Width = 0
	p.X.Padding = 0
	p.Y.Padding = 0
	s := &Surface{
		Plot:       p,
		SpineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)},
		Grid:       plotter.NewGrid(),
		spines:     [4]bool{true, true, true, true},
		xPos:       brokenaxis.TickBottom,
	}
	s.Grid.Vertical.Color = nil
	p.Add(s.Grid, surfacePlotter{s})
	s.setXMarker()
	return s
}

// SetXNames sets the category names along the x axis. Category i is
// centred at x = i.
func (s *Surface) SetXNames(names []string) {
	s.xTicks = make([]plot.Tick, len(names))
	for i, n := range names {
		s.xTicks[i] = plot.Tick{Value: float64(i), Label: n}
	}
	s.Plot.X.Min = -0.5
	s.Plot.X.Max = float64(len(names)) - 0.5
	s.setXMarker()
}

// SetSpineVisible implements brokenaxis.Surface.
func (s *Surface) SetSpineVisible(edge brokenaxis.Edge, visible bool) {
	if edge >= 0 && int(edge) < len(s.spines) {
		s.spines[edge] = visible
	}
}

// SpineVisible reports whether the spine along edge is drawn.
func (s *Surface) SpineVisible(edge brokenaxis.Edge) bool {
	if edge < 0 || int(edge) >= len(s.spines) {
		return false
	}
	return s.spines[edge]
}

// SetTickPosition implements brokenaxis.Surface. gonum plots draw
// the x axis along the bottom only, so only the bottom edge has an
// effect.
func (s *Surface) SetTickPosition(edge brokenaxis.Edge, pos brokenaxis.TickPosition) {
	if edge != brokenaxis.Bottom {
		return
	}
	s.xPos = pos
	s.setXMarker()
}

// XTickPosition returns where the x tick labels are drawn.
func (s *Surface) XTickPosition() brokenaxis.TickPosition {
	return s.xPos
}

func (s *Surface) setXMarker() {
	x := &s.Plot.X
	x.Tick.Width = 0
	x.Tick.Length = 0
	if s.xPos == brokenaxis.TickBottom {
		x.Tick.Marker = plot.ConstantTicks(s.xTicks)
	} else {
		x.Tick.Marker = plot.ConstantTicks([]plot.Tick{})
	}
}

// DrawLine implements brokenaxis.Surface.
func (s *Surface) DrawLine(pts []brokenaxis.Point, style brokenaxis.LineStyle) {
	s.lines = append(s.lines, relLine{append([]brokenaxis.Point(nil), pts...), style})
}

// Patches implements brokenaxis.Surface.
func (s *Surface) Patches() []brokenaxis.Patch {
	ps := make([]brokenaxis.Patch, len(s.bars))
	for i, b := range s.bars {
		ps[i] = b
	}
	return ps
}

// Bars returns the bars in draw order.
func (s *Surface) Bars() []*Bar {
	return s.bars
}

// AddBar adds a bar, drawn after all bars added before it.
func (s *Surface) AddBar(b *Bar) {
	s.bars = append(s.bars, b)
}

// surfacePlotter draws the bars, frame and lines of a surface.
type surfacePlotter struct{ s *Surface }

// Plot draws the bars first so the frame and break marks are drawn
// over them.
func (p surfacePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	p.s.draw(c, plt)
}

func (s *Surface) draw(c draw.Canvas, plt *plot.Plot) {
	for _, b := range s.bars {
		b.plot(c, plt)
	}

	frame := [4][2]vg.Point{
		brokenaxis.Bottom: {{X: c.Min.X, Y: c.Min.Y}, {X: c.Max.X, Y: c.Min.Y}},
		brokenaxis.Top:    {{X: c.Min.X, Y: c.Max.Y}, {X: c.Max.X, Y: c.Max.Y}},
		brokenaxis.Left:   {{X: c.Min.X, Y: c.Min.Y}, {X: c.Min.X, Y: c.Max.Y}},
		brokenaxis.Right:  {{X: c.Max.X, Y: c.Min.Y}, {X: c.Max.X, Y: c.Max.Y}},
	}
	for e, seg := range frame {
		if s.spines[e] {
			c.StrokeLines(s.SpineStyle, seg[:])
		}
	}

	for _, l := range s.lines {
		pts := make([]vg.Point, len(l.pts))
		for i, p := range l.pts {
			pts[i] = vg.Point{X: c.X(p.X), Y: c.Y(p.Y)}
		}
		sty := draw.LineStyle{Color: l.style.Color, Width: vg.Points(l.style.Width)}
		if sty.Width == 0 {
			sty.Width = s.SpineStyle.Width
		}
		if sty.Color == nil {
			sty.Color = color.Black
		}
		if l.style.Clip {
			c.StrokeLines(sty, c.ClipLinesXY(pts)...)
		} else {
			c.StrokeLines(sty, pts)
		}
	}
}
