// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/nacho-eval/benchkit/brokenaxis"
	"github.com/nacho-eval/benchkit/internal/atomicfile"
	"github.com/nacho-eval/benchkit/results"
)

// ErrNoData is returned when a table has nothing to chart.
var ErrNoData = errors.New("no data to chart")

// headroom is the space left above the tallest bar, as a fraction of
// its height.
const headroom = 0.05

// A Figure is a rendered chart. Upper is nil unless the y axis is
// broken, in which case Lower shows the values up to the break and
// Upper the values above it.
type Figure struct {
	Style *Style
	Lower *Surface
	Upper *Surface
}

// Render charts the centers of t as grouped bars: one group per
// benchmark, one bar per series. A nil style means DefaultStyle.
func Render(t *results.Table, st *Style) (*Figure, error) {
	if st == nil {
		st = DefaultStyle()
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if len(t.Series) == 0 || len(t.Benchmarks) == 0 {
		return nil, ErrNoData
	}
	lo, hi := t.Range()
	if math.IsInf(hi, -1) {
		return nil, ErrNoData
	}
	if lo < 0 {
		return nil, fmt.Errorf("cannot chart negative value %v", lo)
	}
	top := hi * (1 + headroom)
	if top == 0 {
		top = 1
	}

	f := &Figure{Style: st}
	var err error
	if b := st.Break; b == nil {
		if f.Lower, err = newBars(t, st, 0, top); err != nil {
			return nil, err
		}
	} else {
		if hi <= b.High {
			return nil, fmt.Errorf("break at %v is above the largest value %v", b.High, hi)
		}
		if f.Lower, err = newBars(t, st, 0, b.Low); err != nil {
			return nil, err
		}
		if f.Upper, err = newBars(t, st, b.High, top); err != nil {
			return nil, err
		}
		brokenaxis.ConfigureBrokenAxis(f.Lower, f.Upper)
	}

	head := f.Lower
	if f.Upper != nil {
		head = f.Upper
	}
	head.Plot.Title.Text = st.Title
	f.Lower.Plot.Y.Label.Text = st.YLabel
	if st.YLabel == "" {
		f.Lower.Plot.Y.Label.Text = t.Unit
	}
	if st.Legend {
		nb := len(t.Benchmarks)
		bars := head.Bars()
		for i, s := range t.Series {
			head.Plot.Legend.Add(lookupName(st.Names, ConfigurationNames, s), bars[i*nb])
		}
		head.Plot.Legend.Top = true
		head.Plot.Legend.Left = true
		head.Plot.Legend.XOffs = vg.Points(6)
	}
	return f, nil
}

// newBars returns a surface showing [ymin, ymax] of t.
func newBars(t *results.Table, st *Style, ymin, ymax float64) (*Surface, error) {
	s := NewSurface()
	p := s.Plot
	p.Y.Min, p.Y.Max = ymin, ymax
	p.Y.Tick.Marker = scaledTicks{}
	if !st.Grid {
		s.Grid.Horizontal.Color = nil
	}

	names := make([]string, len(t.Benchmarks))
	for i, b := range t.Benchmarks {
		names[i] = lookupName(st.Names, BenchmarkNames, b)
	}
	s.SetXNames(names)

	n := float64(len(t.Series))
	w := st.GroupWidth / n
	outline := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	for i, series := range t.Series {
		fill := st.seriesColor(series, i)
		off := (float64(i) - (n-1)/2) * w
		// Missing cells are NaN bars so every series has one bar
		// per benchmark.
		for j, v := range t.Row(series) {
			x := float64(j) + off
			s.AddBar(&Bar{
				Value:   v,
				XMin:    x - w/2,
				XMax:    x + w/2,
				Color:   fill,
				Outline: outline,
			})
		}
	}
	if err := brokenaxis.ApplyHatches(len(t.Benchmarks), st.hatches(), s.Patches()); err != nil {
		return nil, err
	}
	return s, nil
}

// Draw draws the figure on c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Upper == nil {
		f.Lower.Plot.Draw(c)
		return
	}
	// Align lines up the data areas horizontally. The vertical
	// split is set by the break.
	cs := plot.Align([][]*plot.Plot{{f.Upper.Plot}, {f.Lower.Plot}}, draw.Tiles{Rows: 2, Cols: 1}, c)
	up, low := cs[0][0], cs[1][0]
	gap := vg.Points(f.Style.Break.Gap)
	h := c.Max.Y - c.Min.Y - gap
	if h < 0 {
		h, gap = 0, 0
	}
	uh := h * vg.Length(f.Style.Break.Ratio)
	up.Max.Y = c.Max.Y
	up.Min.Y = c.Max.Y - uh
	low.Min.Y = c.Min.Y
	low.Max.Y = c.Min.Y + h - uh
	f.Upper.Plot.Draw(up)
	f.Lower.Plot.Draw(low)
}

// Formats lists the file formats WriteTo accepts.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf"}

// canvas returns a canvas of the figure's size for format.
func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	w := vg.Length(f.Style.Width) * vg.Centimeter
	h := vg.Length(f.Style.Height) * vg.Centimeter
	img := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.Style.DPI), vgimg.UseBackgroundColor(color.White))
	}
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img()}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// WriteTo draws the figure in format ("png", "svg", "pdf", ...) and
// writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	can, err := f.canvas(format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(can))
	return can.WriteTo(w)
}

// Save writes the figure to path in the format named by its
// extension. The file is replaced atomically.
func (f *Figure) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%s: no file extension to pick a format", path)
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, format); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return atomicfile.WriteFile(path, buf.Bytes(), 0644)
}
