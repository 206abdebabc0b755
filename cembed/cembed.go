// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cembed turns a binary file into a C header that declares the
// file's contents as a static constant byte array.
//
// The generated header contains exactly two statements:
//
//	#define PCM_DATA_LENGTH 4
//	static const unsigned char pcm_data[] = {1,2,3,4,};
//
// Every element, including the last, is followed by a comma. C array
// initializers allow the trailing comma and Parse accepts it, so the
// bytes round-trip exactly.
package cembed

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/nacho-eval/benchkit/internal/atomicfile"
)

var (
	// ErrFileNotFound is returned when the source file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrIO is returned when reading the source or writing the
	// header fails.
	ErrIO = errors.New("i/o error")

	// ErrInvalidPrefix is returned when the identifier prefix is
	// not a valid C identifier.
	ErrInvalidPrefix = errors.New("invalid identifier prefix")
)

// An Artifact is an embedded byte array ready to be rendered as C
// source.
type Artifact struct {
	// Prefix names the generated identifiers: the array is
	// <Prefix>_data and the length macro is <PREFIX>_DATA_LENGTH.
	Prefix string

	// Data is the payload, in file order.
	Data []byte
}

// Embed reads the file at path and returns an Artifact for it.
func Embed(path, prefix string) (*Artifact, error) {
	if !validIdent(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return &Artifact{Prefix: prefix, Data: data}, nil
}

// Length returns the number of array elements.
func (a *Artifact) Length() int {
	return len(a.Data)
}

// LengthMacro returns the name of the length #define.
func (a *Artifact) LengthMacro() string {
	return strings.ToUpper(a.Prefix) + "_DATA_LENGTH"
}

// ArrayName returns the name of the array.
func (a *Artifact) ArrayName() string {
	return a.Prefix + "_data"
}

// Bytes returns the rendered header text.
func (a *Artifact) Bytes() []byte {
	// Each element is at most "255,".
	buf := make([]byte, 0, 96+4*len(a.Data))
	buf = append(buf, "#define "...)
	buf = append(buf, a.LengthMacro()...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(a.Data)), 10)
	buf = append(buf, '\n')
	buf = append(buf, "static const unsigned char "...)
	buf = append(buf, a.ArrayName()...)
	buf = append(buf, "[] = {"...)
	for _, b := range a.Data {
		buf = strconv.AppendUint(buf, uint64(b), 10)
		buf = append(buf, ',')
	}
	buf = append(buf, "};"...)
	return buf
}

// WriteTo writes the rendered header to w.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrIO, err)
	}
	return int64(n), nil
}

// WriteFile writes the rendered header to path. The header is written
// to a temporary file in the same directory and renamed into place,
// so a failed write never leaves a truncated header behind.
func (a *Artifact) WriteFile(path string) error {
	if err := atomicfile.WriteFile(path, a.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
