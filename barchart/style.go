// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nacho-eval/benchkit/brokenaxis"
)

// A Style controls how a table is charted. The zero value is not
// usable; start from DefaultStyle or LoadStyle.
type Style struct {
	Title  string `yaml:"title,omitempty"`
	YLabel string `yaml:"ylabel,omitempty"`

	// Width and Height are the figure size in centimeters.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// DPI applies to raster output.
	DPI int `yaml:"dpi"`

	// GroupWidth is the fraction of the space between benchmark
	// groups covered by a group's bars.
	GroupWidth float64 `yaml:"group_width"`

	// Names maps series and benchmark keys to display names.
	Names map[string]string `yaml:"names,omitempty"`

	// Colors maps series keys to "#rrggbb" colors.
	Colors map[string]string `yaml:"colors,omitempty"`

	// Hatches are assigned to the series in turn.
	Hatches []string `yaml:"hatches"`

	// Break, if set, splits the y axis.
	Break *Break `yaml:"break,omitempty"`

	// Legend places a legend of the series on the chart.
	Legend bool `yaml:"legend"`

	// Grid draws horizontal grid lines behind the bars.
	Grid bool `yaml:"grid"`

	// Scheme picks the default series colors: "color" (the
	// default) or "grey". Colors overrides it per series.
	Scheme string `yaml:"scheme,omitempty"`
}

// A Break describes a broken y axis. The lower part of the chart
// shows [0, Low] and the upper part shows [High, max].
type Break struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`

	// Ratio is the fraction of the figure height given to the
	// upper part.
	Ratio float64 `yaml:"ratio"`

	// Gap is the space between the two parts in points.
	Gap float64 `yaml:"gap"`
}

// DefaultStyle returns the style used when no style file is given.
func DefaultStyle() *Style {
	return &Style{
		Width:      16,
		Height:     6,
		DPI:        300,
		GroupWidth: 0.8,
		Hatches:    []string{"/", "\\", "x", ".", "-", "+"},
		Legend:     true,
		Grid:       true,
	}
}

// DefaultBreak returns a break between low and high with the default
// proportions.
func DefaultBreak(low, high float64) *Break {
	return &Break{Low: low, High: high, Ratio: 0.3, Gap: 4}
}

// LoadStyle reads a YAML style file. Fields missing from the file
// keep their DefaultStyle values.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	st := DefaultStyle()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(st); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if st.Break != nil {
		b := DefaultBreak(st.Break.Low, st.Break.High)
		if st.Break.Ratio != 0 {
			b.Ratio = st.Break.Ratio
		}
		if st.Break.Gap != 0 {
			b.Gap = st.Break.Gap
		}
		st.Break = b
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return st, nil
}

// Marshal returns the style as YAML.
func (st *Style) Marshal() ([]byte, error) {
	return yaml.Marshal(st)
}

// Validate checks the style for values that cannot be drawn.
func (st *Style) Validate() error {
	if st.Width <= 0 || st.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if st.DPI <= 0 {
		return fmt.Errorf("dpi must be positive")
	}
	if st.GroupWidth <= 0 || st.GroupWidth > 1 {
		return fmt.Errorf("group_width %v not in (0, 1]", st.GroupWidth)
	}
	if len(st.Hatches) == 0 {
		return fmt.Errorf("hatches: need at least one (use \"\" for none)")
	}
	for _, h := range st.Hatches {
		if err := checkHatch(brokenaxis.Hatch(h)); err != nil {
			return fmt.Errorf("hatches: %v", err)
		}
	}
	for k, c := range st.Colors {
		if _, err := ParseHex(c); err != nil {
			return fmt.Errorf("colors.%s: %v", k, err)
		}
	}
	if _, ok := Schemes[st.Scheme]; !ok {
		return fmt.Errorf("scheme %q: want color or grey", st.Scheme)
	}
	if b := st.Break; b != nil {
		if b.Low <= 0 || b.High <= b.Low {
			return fmt.Errorf("break: need 0 < low < high, have low=%v high=%v", b.Low, b.High)
		}
		if b.Ratio <= 0 || b.Ratio >= 1 {
			return fmt.Errorf("break.ratio %v not in (0, 1)", b.Ratio)
		}
		if b.Gap < 0 {
			return fmt.Errorf("break.gap must not be negative")
		}
	}
	return nil
}

func (st *Style) hatches() []brokenaxis.Hatch {
	hs := make([]brokenaxis.Hatch, len(st.Hatches))
	for i, h := range st.Hatches {
		hs[i] = brokenaxis.Hatch(h)
	}
	return hs
}

// seriesColor returns the fill color of the i'th series.
func (st *Style) seriesColor(key string, i int) color.NRGBA {
	hex, ok := st.Colors[key]
	if !ok {
		hex, ok = Schemes[st.Scheme][key]
	}
	if !ok {
		hex = fallbackColors[i%len(fallbackColors)]
	}
	// Colors were checked by Validate and the tables are constant.
	c, _ := ParseHex(hex)
	return c
}
