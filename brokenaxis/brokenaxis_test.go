// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brokenaxis

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakePatch struct {
	hatch Hatch
}

func (p *fakePatch) SetHatch(h Hatch) { p.hatch = h }

type line struct {
	pts   []Point
	style LineStyle
}

type fakeSurface struct {
	spines  map[Edge]bool
	ticks   map[Edge]TickPosition
	lines   []line
	patches []*fakePatch
}

func newFakeSurface(nPatches int) *fakeSurface {
	s := &fakeSurface{
		spines: map[Edge]bool{Bottom: true, Top: true, Left: true, Right: true},
		ticks:  map[Edge]TickPosition{Bottom: TickBottom},
	}
	for i := 0; i < nPatches; i++ {
		s.patches = append(s.patches, &fakePatch{})
	}
	return s
}

func (s *fakeSurface) SetSpineVisible(e Edge, v bool)           { s.spines[e] = v }
func (s *fakeSurface) SetTickPosition(e Edge, pos TickPosition) { s.ticks[e] = pos }
func (s *fakeSurface) DrawLine(pts []Point, style LineStyle) {
	s.lines = append(s.lines, line{append([]Point(nil), pts...), style})
}
func (s *fakeSurface) Patches() []Patch {
	ps := make([]Patch, len(s.patches))
	for i, p := range s.patches {
		ps[i] = p
	}
	return ps
}

func (s *fakeSurface) hatches() []Hatch {
	var hs []Hatch
	for _, p := range s.patches {
		hs = append(hs, p.hatch)
	}
	return hs
}

func TestConfigureBrokenAxis(t *testing.T) {
	lower, upper := newFakeSurface(0), newFakeSurface(0)
	ConfigureBrokenAxis(lower, upper)

	if lower.spines[Top] {
		t.Errorf("lower top spine visible")
	}
	if upper.spines[Bottom] {
		t.Errorf("upper bottom spine visible")
	}
	for _, e := range []Edge{Bottom, Left, Right} {
		if !lower.spines[e] {
			t.Errorf("lower %v spine hidden", e)
		}
	}
	for _, e := range []Edge{Top, Left, Right} {
		if !upper.spines[e] {
			t.Errorf("upper %v spine hidden", e)
		}
	}
	if got := upper.ticks[Bottom]; got != TickNone {
		t.Errorf("upper bottom ticks = %v, want TickNone", got)
	}
	if got := lower.ticks[Bottom]; got != TickBottom {
		t.Errorf("lower bottom ticks = %v, want TickBottom", got)
	}

	approx := cmpopts.EquateApprox(0, 1e-12)
	wantUpper := []line{
		{[]Point{{-0.01, -0.022}, {0.01, 0.022}}, MarkStyle},
		{[]Point{{0.99, -0.022}, {1.01, 0.022}}, MarkStyle},
	}
	wantLower := []line{
		{[]Point{{-0.01, 0.99}, {0.01, 1.01}}, MarkStyle},
		{[]Point{{0.99, 0.99}, {1.01, 1.01}}, MarkStyle},
	}
	opts := cmp.Options{approx, cmp.AllowUnexported(line{})}
	if diff := cmp.Diff(wantUpper, upper.lines, opts); diff != "" {
		t.Errorf("upper marks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantLower, lower.lines, opts); diff != "" {
		t.Errorf("lower marks (-want +got):\n%s", diff)
	}
	for _, l := range append(upper.lines, lower.lines...) {
		if l.style.Clip {
			t.Errorf("break mark %v is clipped", l.pts)
		}
		if l.style.Color != color.Black {
			t.Errorf("break mark color %v, want black", l.style.Color)
		}
	}
}

func TestConfigureBrokenAxisTwice(t *testing.T) {
	lower, upper := newFakeSurface(0), newFakeSurface(0)
	ConfigureBrokenAxis(lower, upper)
	ConfigureBrokenAxis(lower, upper)
	if len(lower.lines) != 4 || len(upper.lines) != 4 {
		t.Errorf("got %d lower and %d upper marks after two calls, want 4 and 4", len(lower.lines), len(upper.lines))
	}
	if lower.spines[Top] || upper.spines[Bottom] {
		t.Errorf("seam spines visible after second call")
	}
}

func TestBreakMarksSymmetry(t *testing.T) {
	upper, lower := BreakMarks()
	for name, segs := range map[string][2]Segment{"upper": upper, "lower": lower} {
		left, right := segs[0], segs[1]
		for i := range left {
			// Reflecting about x=0.5 maps the left mark's
			// endpoints onto the right mark's, in reverse.
			mirrored := 1 - left[1-i].X
			if math.Abs(mirrored-right[i].X) > 1e-12 {
				t.Errorf("%s: x %v does not mirror %v", name, right[i].X, left[1-i].X)
			}
			if math.Abs(left[i].Y-right[i].Y) > 1e-12 {
				t.Errorf("%s: marks at different heights", name)
			}
		}
		for _, seg := range segs {
			if dx := seg[1].X - seg[0].X; math.Abs(dx-2*MarkSize) > 1e-12 {
				t.Errorf("%s: horizontal extent %v, want %v", name, dx, 2*MarkSize)
			}
		}
	}

	// Stacked with no gap, upper's y=0 is lower's y=1. Both pairs of
	// marks must be centred on that seam.
	center := func(s Segment) float64 { return (s[0].Y + s[1].Y) / 2 }
	for i := 0; i < 2; i++ {
		if math.Abs(center(upper[i])-0) > 1e-12 {
			t.Errorf("upper mark %d centred at %v, want 0", i, center(upper[i]))
		}
		if math.Abs(center(lower[i])-1) > 1e-12 {
			t.Errorf("lower mark %d centred at %v, want 1", i, center(lower[i]))
		}
	}

	// The upper marks are stretched by the aspect factor.
	if dy := upper[0][1].Y - upper[0][0].Y; math.Abs(dy-2*MarkAspect*MarkSize) > 1e-12 {
		t.Errorf("upper vertical extent %v, want %v", dy, 2*MarkAspect*MarkSize)
	}
}

func TestApplyHatches(t *testing.T) {
	for _, test := range []struct {
		name    string
		count   int
		hatches []Hatch
		patches int
		want    []Hatch
	}{
		{"cycle", 3, []Hatch{"/", "\\", "x"}, 9, []Hatch{"/", "/", "/", "\\", "\\", "\\", "x", "x", "x"}},
		{"wrap", 2, []Hatch{"/", "\\"}, 5, []Hatch{"/", "/", "\\", "\\", "/"}},
		{"one per group", 1, []Hatch{"/", "."}, 3, []Hatch{"/", ".", "/"}},
		{"fewer than a group", 4, []Hatch{"+"}, 2, []Hatch{"+", "+"}},
		{"no patches", 2, []Hatch{"/"}, 0, nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			s := newFakeSurface(test.patches)
			if err := ApplyHatches(test.count, test.hatches, s.Patches()); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, s.hatches()); diff != "" {
				t.Errorf("hatches (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyHatchesInvalid(t *testing.T) {
	s := newFakeSurface(3)
	for _, count := range []int{0, -1} {
		if err := ApplyHatches(count, []Hatch{"/"}, s.Patches()); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("count %d: got %v, want ErrInvalidArgument", count, err)
		}
	}
	if err := ApplyHatches(2, nil, s.Patches()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("no hatches: got %v, want ErrInvalidArgument", err)
	}
	for i, h := range s.hatches() {
		if h != "" {
			t.Errorf("patch %d hatched %q after failed call", i, h)
		}
	}
}

func TestHatchIndex(t *testing.T) {
	for i := 0; i < 40; i++ {
		for count := 1; count < 5; count++ {
			for n := 1; n < 4; n++ {
				got := HatchIndex(i, count, n)
				if got < 0 || got >= n {
					t.Fatalf("HatchIndex(%d, %d, %d) = %d out of range", i, count, n, got)
				}
				if i%count != 0 && got != HatchIndex(i-1, count, n) {
					t.Errorf("HatchIndex(%d, %d, %d) changed inside a group", i, count, n)
				}
			}
		}
	}
}
