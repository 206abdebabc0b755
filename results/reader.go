// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Reader reads results in the Go benchmark format. Its API is
// modeled on bufio.Scanner.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	config   map[string]string
	rec      Record
	err      error
}

// A Record is a *Result or a *SyntaxError.
type Record interface {
	Pos() (fileName string, line int)
}

// A SyntaxError is a malformed line of a results file. Syntax errors
// are not fatal; Scan continues with the next line.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader for r. fileName is used in errors.
// initConfig is an alternating list of keys and values installed
// before the first line is read.
func NewReader(r io.Reader, fileName string, initConfig ...string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	if len(initConfig)%2 != 0 {
		panic("len(initConfig) must be a multiple of 2")
	}
	rd := &Reader{
		s:        bufio.NewScanner(r),
		fileName: fileName,
		config:   make(map[string]string),
	}
	for i := 0; i < len(initConfig); i += 2 {
		rd.config[initConfig[i]] = initConfig[i+1]
	}
	return rd
}

// Scan advances to the next record and reports whether there is one.
// At EOF or on an I/O error it returns false; check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		if strings.HasPrefix(line, "Benchmark") {
			res, err := r.parseBenchmarkLine(line)
			if err != nil {
				r.rec = err
				return true
			}
			if res != nil {
				r.rec = res
				return true
			}
			continue
		}
		if key, val, ok := parseKeyValueLine(line); ok {
			if val == "" {
				delete(r.config, key)
			} else {
				r.config[key] = val
			}
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Record returns the record read by the last call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first I/O error encountered.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) syntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// parseKeyValueLine parses a configuration line "key: value". Keys
// start with a lower case letter and contain no spaces or upper case
// letters.
func parseKeyValueLine(line string) (key, val string, ok bool) {
	for i, c := range line {
		if i == 0 && !unicode.IsLower(c) {
			return "", "", false
		}
		if unicode.IsSpace(c) || unicode.IsUpper(c) {
			return "", "", false
		}
		if i > 0 && c == ':' {
			key, val = line[:i], line[i+1:]
			break
		}
	}
	if key == "" {
		return "", "", false
	}
	if val == "" {
		return key, "", true
	}
	if val[0] != ' ' && val[0] != '\t' {
		return "", "", false
	}
	return key, strings.TrimSpace(val), true
}

// parseBenchmarkLine parses a result line. It returns nil, nil for a
// bare benchmark name, which "go test -v" prints when a benchmark
// starts.
func (r *Reader) parseBenchmarkLine(line string) (*Result, *SyntaxError) {
	fields := strings.Fields(line[len("Benchmark"):])
	if len(fields) == 1 {
		return nil, nil
	}
	if len(fields) == 0 {
		return nil, r.syntaxError("missing benchmark name")
	}
	name := fields[0]
	if c, _ := utf8.DecodeRuneInString(name); unicode.IsLower(c) {
		// "Benchmarking ..." is prose, not a result.
		return nil, nil
	}
	iters, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, r.syntaxError("parsing iteration count: %v", unwrapNum(err))
	}
	fields = fields[2:]
	if len(fields) == 0 {
		return nil, r.syntaxError("missing measurements")
	}
	res := &Result{
		Config:   make(map[string]string, len(r.config)+1),
		Name:     name,
		Iters:    iters,
		fileName: r.fileName,
		line:     r.line,
	}
	for ; len(fields) > 0; fields = fields[2:] {
		val, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, r.syntaxError("parsing measurement: %v", unwrapNum(err))
		}
		if len(fields) < 2 {
			return nil, r.syntaxError("missing units")
		}
		res.Values = append(res.Values, Value{val, fields[1]})
	}
	for k, v := range r.config {
		res.Config[k] = v
	}
	return res, nil
}

func unwrapNum(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
