// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nacho-eval/benchkit/brokenaxis"
)

// hatchSpacing is the distance between pattern lines of a hatch
// given once. Repeating a symbol n times divides it by n.
var hatchSpacing = vg.Points(6)

// A pattern counts the occurrences of each hatch symbol.
type pattern struct {
	fwd, back, vert, horiz, dots, rings int
}

func parseHatch(h brokenaxis.Hatch) (pattern, error) {
	var p pattern
	for _, c := range h {
		switch c {
		case '/':
			p.fwd++
		case '\\':
			p.back++
		case 'x', 'X':
			p.fwd++
			p.back++
		case '|':
			p.vert++
		case '-':
			p.horiz++
		case '+':
			p.vert++
			p.horiz++
		case '.':
			p.dots++
		case 'o', 'O':
			p.rings++
		default:
			return pattern{}, fmt.Errorf("unknown hatch symbol %q in %q", c, h)
		}
	}
	return p, nil
}

func checkHatch(h brokenaxis.Hatch) error {
	_, err := parseHatch(h)
	return err
}

func spacing(n int) vg.Length {
	return hatchSpacing / vg.Length(n)
}

// drawHatch strokes the pattern of h inside r. Pattern lines are
// anchored to the canvas origin, so neighbouring bars with the same
// hatch line up.
func drawHatch(c draw.Canvas, h brokenaxis.Hatch, r vg.Rectangle, sty draw.LineStyle) {
	p, err := parseHatch(h)
	if err != nil || r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y {
		return
	}
	var lines [][]vg.Point
	add := func(a, b vg.Point) {
		if a, b, ok := clipSegment(r, a, b); ok {
			lines = append(lines, []vg.Point{a, b})
		}
	}
	if p.fwd > 0 {
		// Lines x - y = k*s.
		s := spacing(p.fwd)
		for k := ceilDiv(r.Min.X-r.Max.Y, s); float64(k)*float64(s) <= float64(r.Max.X-r.Min.Y); k++ {
			off := vg.Length(k) * s
			add(vg.Point{X: r.Min.Y + off, Y: r.Min.Y}, vg.Point{X: r.Max.Y + off, Y: r.Max.Y})
		}
	}
	if p.back > 0 {
		// Lines x + y = k*s.
		s := spacing(p.back)
		for k := ceilDiv(r.Min.X+r.Min.Y, s); float64(k)*float64(s) <= float64(r.Max.X+r.Max.Y); k++ {
			off := vg.Length(k) * s
			add(vg.Point{X: off - r.Min.Y, Y: r.Min.Y}, vg.Point{X: off - r.Max.Y, Y: r.Max.Y})
		}
	}
	if p.vert > 0 {
		s := spacing(p.vert)
		for k := ceilDiv(r.Min.X, s); float64(k)*float64(s) <= float64(r.Max.X); k++ {
			x := vg.Length(k) * s
			add(vg.Point{X: x, Y: r.Min.Y}, vg.Point{X: x, Y: r.Max.Y})
		}
	}
	if p.horiz > 0 {
		s := spacing(p.horiz)
		for k := ceilDiv(r.Min.Y, s); float64(k)*float64(s) <= float64(r.Max.Y); k++ {
			y := vg.Length(k) * s
			add(vg.Point{X: r.Min.X, Y: y}, vg.Point{X: r.Max.X, Y: y})
		}
	}
	c.StrokeLines(sty, lines...)

	if p.dots > 0 {
		s := spacing(p.dots)
		grid(r, s, func(pt vg.Point) {
			c.DrawGlyphNoClip(draw.GlyphStyle{Color: sty.Color, Radius: sty.Width, Shape: draw.CircleGlyph{}}, pt)
		})
	}
	if p.rings > 0 {
		s := spacing(p.rings)
		grid(r, s, func(pt vg.Point) {
			c.DrawGlyphNoClip(draw.GlyphStyle{Color: sty.Color, Radius: s / 4, Shape: draw.RingGlyph{}}, pt)
		})
	}
}

// grid calls f for each point of the s-spaced grid that lies inside r
// far enough from the edges for a glyph of radius s/4.
func grid(r vg.Rectangle, s vg.Length, f func(vg.Point)) {
	for i := ceilDiv(r.Min.X+s/4, s); float64(i)*float64(s)+float64(s/4) <= float64(r.Max.X); i++ {
		for j := ceilDiv(r.Min.Y+s/4, s); float64(j)*float64(s)+float64(s/4) <= float64(r.Max.Y); j++ {
			f(vg.Point{X: vg.Length(i) * s, Y: vg.Length(j) * s})
		}
	}
}

func ceilDiv(x, s vg.Length) int {
	return int(math.Ceil(float64(x / s)))
}

// clipSegment clips the segment ab to r using the Liang-Barsky
// algorithm. It reports false if no part of the segment is inside.
func clipSegment(r vg.Rectangle, a, b vg.Point) (vg.Point, vg.Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	for _, e := range [4][2]float64{
		{-dx, float64(a.X - r.Min.X)},
		{dx, float64(r.Max.X - a.X)},
		{-dy, float64(a.Y - r.Min.Y)},
		{dy, float64(r.Max.Y - a.Y)},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	if t1-t0 <= 0 {
		return a, b, false
	}
	at := func(t float64) vg.Point {
		return vg.Point{X: a.X + vg.Length(t*dx), Y: a.Y + vg.Length(t*dy)}
	}
	return at(t0), at(t1), true
}
