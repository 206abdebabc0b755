// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// binembed converts a binary file into a C header that declares the
// file's bytes as a constant array, for linking sample inputs into
// firmware images.
//
// Usage:
//
//	binembed [-prefix p] [-o out.h] [-verify] input.bin
//
// For input pcm.raw, the header is written to data_pcm.h and reads
//
//	#define PCM_DATA_LENGTH 4
//	static const unsigned char pcm_data[] = {1,2,3,4,};
//
// The -o flag names a different output file; "-o -" writes the
// header to standard output. With -verify, the written header is
// parsed back and compared against the input.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nacho-eval/benchkit/cembed"
)

const usageText = `Usage: binembed [flags] input.bin

binembed writes the bytes of input.bin as a C array to a header file.
`

func main() {
	log.SetPrefix("binembed: ")
	log.SetFlags(0)
	err := binembed(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) || errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage")

func binembed(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("binembed", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usageText)
		flags.PrintDefaults()
	}
	prefix := flags.String("prefix", "", "identifier `prefix` (default: input base name)")
	out := flags.String("o", "", "write header to `file` (default: data_<prefix>.h)")
	verify := flags.Bool("verify", false, "parse the written header back and check it")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	input := flags.Arg(0)

	derived := *prefix == ""
	if derived {
		base := filepath.Base(input)
		*prefix = strings.TrimSuffix(base, filepath.Ext(base))
	}
	art, err := cembed.Embed(input, *prefix)
	if derived && errors.Is(err, cembed.ErrInvalidPrefix) {
		return fmt.Errorf("%w (derived from %s; set one with -prefix)", err, input)
	}
	if err != nil {
		return err
	}

	if *out == "-" {
		if *verify {
			if err := check("<stdout>", art.Bytes(), art); err != nil {
				return err
			}
		}
		_, err := art.WriteTo(stdout)
		return err
	}
	if *out == "" {
		*out = "data_" + art.Prefix + ".h"
	}
	if err := art.WriteFile(*out); err != nil {
		return err
	}
	if *verify {
		src, err := os.ReadFile(*out)
		if err != nil {
			return err
		}
		if err := check(*out, src, art); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "%s: %d bytes as %s\n", *out, art.Length(), art.ArrayName())
	return nil
}

// check parses the header src, read from path, and compares it with
// want.
func check(path string, src []byte, want *cembed.Artifact) error {
	got, err := cembed.Parse(src)
	if err != nil {
		return fmt.Errorf("verify %s: %v", path, err)
	}
	if got.Prefix != want.Prefix || !bytes.Equal(got.Data, want.Data) {
		return fmt.Errorf("verify %s: header does not match input", path)
	}
	return nil
}
