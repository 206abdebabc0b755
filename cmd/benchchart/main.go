// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// benchchart draws a grouped bar chart of Go-format benchmark results,
// one group per benchmark and one bar per system configuration.
//
// Usage:
//
//	benchchart [flags] files...
//
// Each file holds results in the Go benchmark format. The bar of a
// configuration is the median of its results. Configurations are
// told apart by the "config" key of the results; results without
// one are grouped by file name. Lines that fail to parse are reported
// and skipped.
//
// A wide range of values can be shown on a broken y axis with
// -break low,high: the lower part of the chart shows [0, low] and the
// upper part [high, max]. Each configuration's bars are hatched with
// the next pattern of -hatches.
//
// The look of the chart can be set with a YAML style file (-style);
// flags given on the command line override it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nacho-eval/benchkit/barchart"
	"github.com/nacho-eval/benchkit/results"
)

const usageText = `Usage: benchchart [flags] files...

benchchart reads Go benchmark results and draws a bar chart of them.
The output format follows the extension of -o: png, jpg, tiff, svg or pdf.
`

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)
	err := benchchart(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) || errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage")

// autoSeries selects the "config" key, falling back to the file.
const autoSeries = ""

func benchchart(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchchart", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usageText)
		flags.PrintDefaults()
	}
	var (
		flagStyle      = flags.String("style", "", "read chart style from YAML `file`")
		flagOut        = flags.String("o", "chart.png", "write chart to `file`")
		flagSeries     = flags.String("series", autoSeries, "configuration `key` naming the bars of a group (default config, else the file)")
		flagUnit       = flags.String("unit", "", "chart `unit` (default: first unit in the input)")
		flagBaseline   = flags.String("baseline", "", "normalize to the `series` given")
		flagBreak      = flags.String("break", "", "break the y axis between `low,high`")
		flagHatches    = flags.String("hatches", "", "comma-separated hatch `patterns` for the series")
		flagTitle      = flags.String("title", "", "chart `title`")
		flagYLabel     = flags.String("ylabel", "", "y axis `label` (default: the unit)")
		flagConfigs    = flags.String("configs", "", "comma-separated `list` of series to chart, in order")
		flagBenchmarks = flags.String("benchmarks", "", "comma-separated `list` of benchmarks to chart, in order")
		flagPrintStyle = flags.Bool("print-style", false, "print the effective style as YAML and exit")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	st := barchart.DefaultStyle()
	if *flagStyle != "" {
		var err error
		if st, err = barchart.LoadStyle(*flagStyle); err != nil {
			return err
		}
	}
	if err := applyFlags(st, *flagTitle, *flagYLabel, *flagHatches, *flagBreak); err != nil {
		return err
	}
	if err := st.Validate(); err != nil {
		return err
	}
	if *flagPrintStyle {
		data, err := st.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}

	table := results.NewTable(*flagSeries, *flagUnit)
	if *flagSeries == autoSeries {
		table.SeriesKey = "config"
	}
	files := results.Files{Paths: flags.Args(), AllowLabels: true}
	for files.Scan() {
		switch rec := files.Record().(type) {
		case *results.SyntaxError:
			// Non-fatal result parse error. Warn but keep going.
			fmt.Fprintln(stderr, rec)
		case *results.Result:
			if *flagSeries == autoSeries {
				if _, ok := rec.Config["config"]; !ok {
					rec.Config["config"] = rec.Config[".file"]
				}
			}
			table.Add(rec)
		}
	}
	if err := files.Err(); err != nil {
		return err
	}

	if err := table.Order(splitList(*flagConfigs), splitList(*flagBenchmarks)); err != nil {
		return err
	}
	if *flagBaseline != "" {
		var err error
		if table, err = table.Normalize(*flagBaseline); err != nil {
			return err
		}
	}

	fig, err := barchart.Render(table, st)
	if err != nil {
		return err
	}
	if err := fig.Save(*flagOut); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d series, %d benchmarks, %s\n", *flagOut, len(table.Series), len(table.Benchmarks), table.Unit)
	return nil
}

// applyFlags overrides st with the non-empty flag values.
func applyFlags(st *barchart.Style, title, ylabel, hatches, brk string) error {
	if title != "" {
		st.Title = title
	}
	if ylabel != "" {
		st.YLabel = ylabel
	}
	if hatches != "" {
		st.Hatches = strings.Split(hatches, ",")
	}
	if brk != "" {
		low, high, err := parseBreak(brk)
		if err != nil {
			return err
		}
		if st.Break == nil {
			st.Break = barchart.DefaultBreak(low, high)
		} else {
			st.Break.Low, st.Break.High = low, high
		}
	}
	return nil
}

func parseBreak(s string) (low, high float64, err error) {
	lo, hi, ok := strings.Cut(s, ",")
	if ok {
		low, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	}
	if ok && err == nil {
		high, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("bad -break %q: want low,high", s)
	}
	return low, high, nil
}

// splitList splits a comma-separated flag value. An empty value is a
// nil list.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
