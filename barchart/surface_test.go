// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/nacho-eval/benchkit/brokenaxis"
)

func strokes(rec *recorder.Canvas) []vg.Path {
	var ps []vg.Path
	for _, a := range rec.Actions {
		if s, ok := a.(*recorder.Stroke); ok {
			ps = append(ps, s.Path)
		}
	}
	return ps
}

func fills(rec *recorder.Canvas) []vg.Path {
	var ps []vg.Path
	for _, a := range rec.Actions {
		if f, ok := a.(*recorder.Fill); ok {
			ps = append(ps, f.Path)
		}
	}
	return ps
}

// pathBounds returns the bounding box of the points of p.
func pathBounds(p vg.Path) vg.Rectangle {
	var pts []vg.Point
	for _, c := range p {
		if c.Type == vg.MoveComp || c.Type == vg.LineComp {
			pts = append(pts, c.Pos)
		}
	}
	return bounds(pts)
}

// testSurface returns a surface with y in [0, 10] and two
// categories, so x in [-0.5, 1.5].
func testSurface() *Surface {
	s := NewSurface()
	s.Plot.Y.Min, s.Plot.Y.Max = 0, 10
	s.SetXNames([]string{"a", "b"})
	return s
}

func hideSpines(s *Surface) {
	for e := brokenaxis.Bottom; e <= brokenaxis.Right; e++ {
		s.SetSpineVisible(e, false)
	}
}

// drawSurface draws s on a 100x50 canvas.
func drawSurface(s *Surface) *recorder.Canvas {
	rec := new(recorder.Canvas)
	s.draw(draw.NewCanvas(rec, 100, 50), s.Plot)
	return rec
}

func TestSurfaceSpines(t *testing.T) {
	s := testSurface()
	s.SetSpineVisible(brokenaxis.Top, false)
	if s.SpineVisible(brokenaxis.Top) {
		t.Fatal("top spine still visible")
	}
	// Edges outside the frame are ignored.
	s.SetSpineVisible(brokenaxis.Edge(7), true)
	if s.SpineVisible(brokenaxis.Edge(7)) || s.SpineVisible(brokenaxis.Edge(-1)) {
		t.Error("out of range edge reported visible")
	}
	ps := strokes(drawSurface(s))
	if len(ps) != 3 {
		t.Fatalf("got %d strokes, want 3", len(ps))
	}
	for _, p := range ps {
		if b := pathBounds(p); b.Min.Y == 50 && b.Max.Y == 50 {
			t.Errorf("hidden top spine drawn: %v", p)
		}
	}
}

func TestSurfaceTicks(t *testing.T) {
	s := testSurface()
	if got := s.Plot.X.Tick.Marker.Ticks(-0.5, 1.5); len(got) != 2 || got[1].Label != "b" {
		t.Errorf("x ticks = %v, want a and b", got)
	}
	s.SetTickPosition(brokenaxis.Bottom, brokenaxis.TickNone)
	if got := s.Plot.X.Tick.Marker.Ticks(-0.5, 1.5); len(got) != 0 {
		t.Errorf("x ticks after TickNone = %v, want none", got)
	}
	// Setting names keeps the tick position.
	s.SetXNames([]string{"x"})
	if got := s.Plot.X.Tick.Marker.Ticks(-0.5, 0.5); len(got) != 0 {
		t.Errorf("x ticks after SetXNames = %v, want none", got)
	}
	s.SetTickPosition(brokenaxis.Bottom, brokenaxis.TickBottom)
	if got := s.Plot.X.Tick.Marker.Ticks(-0.5, 0.5); len(got) != 1 {
		t.Errorf("x ticks after TickBottom = %v, want [x]", got)
	}
	// Other edges have no x axis to move.
	s.SetTickPosition(brokenaxis.Top, brokenaxis.TickNone)
	if s.XTickPosition() != brokenaxis.TickBottom {
		t.Errorf("top edge changed the tick position")
	}
}

func TestSurfaceDrawLine(t *testing.T) {
	for _, clip := range []bool{false, true} {
		s := testSurface()
		hideSpines(s)
		s.DrawLine([]brokenaxis.Point{{X: -0.1, Y: 0.5}, {X: 0.1, Y: 0.5}}, brokenaxis.LineStyle{Clip: clip})
		ps := strokes(drawSurface(s))
		if len(ps) != 1 {
			t.Fatalf("clip=%v: got %d strokes, want 1", clip, len(ps))
		}
		b := pathBounds(ps[0])
		want := vg.Rectangle{Min: vg.Point{X: -10, Y: 25}, Max: vg.Point{X: 10, Y: 25}}
		if clip {
			want.Min.X = 0
		}
		if b != want {
			t.Errorf("clip=%v: line spans %v, want %v", clip, b, want)
		}
	}
}

func TestSurfaceDrawLineCopies(t *testing.T) {
	s := testSurface()
	pts := []brokenaxis.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	s.DrawLine(pts, brokenaxis.LineStyle{})
	pts[0].X = 5
	if s.lines[0].pts[0].X != 0 {
		t.Error("DrawLine kept a reference to the caller's points")
	}
}

func TestBar(t *testing.T) {
	outline := draw.LineStyle{Color: color.Black, Width: 1}
	for _, test := range []struct {
		name  string
		value float64
		want  vg.Rectangle
		fills int
	}{
		{"inside", 5, vg.Rectangle{Min: vg.Point{X: 12.5}, Max: vg.Point{X: 37.5, Y: 25}}, 1},
		{"clipped", 20, vg.Rectangle{Min: vg.Point{X: 12.5}, Max: vg.Point{X: 37.5, Y: 50}}, 1},
		{"missing", math.NaN(), vg.Rectangle{}, 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			s := testSurface()
			hideSpines(s)
			s.AddBar(&Bar{Value: test.value, XMin: -0.25, XMax: 0.25, Color: color.White, Outline: outline})
			fs := fills(drawSurface(s))
			if len(fs) != test.fills {
				t.Fatalf("got %d fills, want %d", len(fs), test.fills)
			}
			if len(fs) == 0 {
				return
			}
			if got := pathBounds(fs[0]); got != test.want {
				t.Errorf("bar covers %v, want %v", got, test.want)
			}
		})
	}
}

func TestBarHatch(t *testing.T) {
	count := func(h brokenaxis.Hatch) int {
		s := testSurface()
		hideSpines(s)
		s.AddBar(&Bar{Value: 5, XMin: -0.25, XMax: 0.25, Color: color.White,
			Outline: draw.LineStyle{Color: color.Black, Width: 1}})
		if err := brokenaxis.ApplyHatches(1, []brokenaxis.Hatch{h}, s.Patches()); err != nil {
			t.Fatal(err)
		}
		if s.Bars()[0].Hatch != h {
			t.Fatalf("hatch = %q, want %q", s.Bars()[0].Hatch, h)
		}
		return len(strokes(drawSurface(s)))
	}
	plain, hatched := count(""), count("/")
	if plain != 1 {
		t.Errorf("unhatched bar: got %d strokes, want 1 outline", plain)
	}
	if hatched <= plain {
		t.Errorf("hatched bar: got %d strokes, want more than %d", hatched, plain)
	}
}

func TestSurfacePatchesOrder(t *testing.T) {
	s := testSurface()
	var bars []*Bar
	for i := 0; i < 4; i++ {
		b := &Bar{Value: float64(i)}
		bars = append(bars, b)
		s.AddBar(b)
	}
	ps := s.Patches()
	if len(ps) != len(bars) {
		t.Fatalf("got %d patches, want %d", len(ps), len(bars))
	}
	for i, p := range ps {
		if p.(*Bar) != bars[i] {
			t.Errorf("patch %d is not bar %d", i, i)
		}
	}
}
