// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// TolBright is Paul Tol's color-blind safe qualitative palette
// (https://personal.sron.nl/~pault/).
var TolBright = map[string]string{
	"blue":     "#0077bb",
	"cyan":     "#33bbee",
	"teal":     "#009988",
	"green":    "#BBCC33",
	"orange":   "#ee7733",
	"red":      "#cc3311",
	"magenta":  "#ee3377",
	"grey":     "#BBBBBB",
	"darkgrey": "#666666",
}

// Pastel is the softer palette used for configuration schemes.
var Pastel = map[string]string{
	"lightblue":  "#00A6D6",
	"lightgreen": "#77DD77",
	"yellow":     "#F1C40F",
	"darkblue":   "#464B75",
	"orange":     "#ee7733",
	"purple":     "#9666E4",
	"teal":       "#81b29a",
	"blue":       "#0077BB",
}

// ConfigurationColors are the default series colors, keyed by
// configuration.
var ConfigurationColors = map[string]string{
	"clank":           Pastel["darkblue"],
	"prowl":           Pastel["orange"],
	"nacho":           TolBright["teal"],
	"nacho_pw":        Pastel["teal"],
	"nacho_pw_stcont": Pastel["teal"],
	"nacho_naive":     Pastel["teal"],
	"nacho_clank":     Pastel["yellow"],
}

// GreyConfigurationColors are the series colors of the "grey"
// scheme: the baselines in greys so only nacho stands out.
var GreyConfigurationColors = map[string]string{
	"clank": TolBright["darkgrey"],
	"prowl": TolBright["grey"],
	"nacho": TolBright["teal"],
}

// Schemes maps a style's scheme name to its configuration colors.
var Schemes = map[string]map[string]string{
	"":      ConfigurationColors,
	"color": ConfigurationColors,
	"grey":  GreyConfigurationColors,
}

// ConfigurationNames are the display names of configurations.
var ConfigurationNames = map[string]string{
	"clank": "Clank",
	"prowl": "Prowl",
	"nacho": "Nacho",
}

// BenchmarkNames are the display names of benchmarks, keyed in lower
// case.
var BenchmarkNames = map[string]string{
	"coremark": "CoreMark",
	"sha":      "SHA",
	"crc":      "CRC",
	"aes":      "Tiny AES",
	"dijkstra": "Dijkstra",
	"picojpeg": "picojpeg",
	"adpcm":    "ADPCM",
}

// fallbackColors color series that have no configured color, in
// order.
var fallbackColors = []string{
	TolBright["blue"], TolBright["orange"], TolBright["teal"], TolBright["magenta"],
	TolBright["cyan"], TolBright["red"], TolBright["green"], TolBright["darkgrey"],
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %v", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func lookupName(names map[string]string, defaults map[string]string, key string) string {
	if n, ok := names[key]; ok {
		return n
	}
	if n, ok := defaults[key]; ok {
		return n
	}
	if n, ok := defaults[strings.ToLower(key)]; ok {
		return n
	}
	return key
}
