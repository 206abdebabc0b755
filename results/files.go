// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// An Input is one results file and the ".file" label given to its
// results.
type Input struct {
	Path  string
	Label string
}

// ParseInputs turns a list of paths into inputs. With allowLabels, an
// argument "label=path" reads path and labels it label. Otherwise
// the label is the path, suffixed with "#0", "#1", ... when the same
// path appears more than once so the reads stay apart.
func ParseInputs(args []string, allowLabels bool) []Input {
	ins := make([]Input, len(args))
	seen := make(map[string]int)
	for i, arg := range args {
		if label, path, ok := strings.Cut(arg, "="); ok && allowLabels {
			ins[i] = Input{Path: path, Label: label}
			continue
		}
		ins[i] = Input{Path: arg}
		seen[arg]++
	}
	next := make(map[string]int)
	for i := range ins {
		in := &ins[i]
		if in.Label != "" {
			continue
		}
		in.Label = in.Path
		if seen[in.Path] > 1 {
			in.Label = fmt.Sprintf("%s#%d", in.Path, next[in.Path])
			next[in.Path]++
		}
	}
	return ins
}

// Files reads the records of several files in turn, as one stream.
// Every result carries a ".file" configuration key with the label of
// its input. Files cannot set ".file" themselves, since keys in a
// file must start with a lower case letter.
type Files struct {
	Paths []string

	// AllowStdin reads standard input for the path "-" and when
	// Paths is empty.
	AllowStdin bool

	// AllowLabels accepts "label=path" in Paths.
	AllowLabels bool

	queue   []Input
	started bool
	cur     *Reader
	closer  io.Closer
	err     error
}

// Scan advances to the next record. It returns false once every file
// is read or when a file cannot be read; Err tells the two apart.
func (f *Files) Scan() bool {
	if !f.started {
		f.started = true
		f.queue = ParseInputs(f.Paths, f.AllowLabels)
		if f.AllowStdin && len(f.queue) == 0 {
			f.queue = []Input{{Path: "-", Label: "-"}}
		}
	}
	for f.err == nil {
		if f.cur == nil {
			if len(f.queue) == 0 {
				return false
			}
			f.open(f.queue[0])
			f.queue = f.queue[1:]
			continue
		}
		if f.cur.Scan() {
			return true
		}
		f.err = f.cur.Err()
		if f.closer != nil {
			f.closer.Close()
		}
		f.cur, f.closer = nil, nil
	}
	return false
}

func (f *Files) open(in Input) {
	var r io.Reader = os.Stdin
	if !(f.AllowStdin && in.Path == "-") {
		file, err := os.Open(in.Path)
		if err != nil {
			f.err = err
			return
		}
		r, f.closer = file, file
	}
	f.cur = NewReader(r, in.Path, ".file", in.Label)
}

// Record returns the record read by the last Scan.
func (f *Files) Record() Record {
	return f.cur.Record()
}

// Err returns the error that stopped Scan, or nil if every file was
// read.
func (f *Files) Err() error {
	return f.err
}
