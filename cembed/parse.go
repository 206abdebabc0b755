// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cembed

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// A ParseError describes a malformed header.
type ParseError struct {
	Offset int // byte offset into the header
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses a header produced by Artifact.Bytes and returns the
// artifact it describes. Whitespace between tokens is ignored, so
// headers that were reformatted by hand still parse.
func Parse(src []byte) (*Artifact, error) {
	p := &parser{src: src}

	if !p.literal("#define") {
		return nil, p.errorf("expected #define")
	}
	macro := p.ident()
	if !strings.HasSuffix(macro, "_DATA_LENGTH") {
		return nil, p.errorf("expected <PREFIX>_DATA_LENGTH, found %q", macro)
	}
	n, ok := p.number()
	if !ok {
		return nil, p.errorf("expected length")
	}

	p.literal("static")
	if !p.literal("const") || !p.literal("unsigned") || !p.literal("char") {
		return nil, p.errorf("expected const unsigned char")
	}
	name := p.ident()
	prefix := strings.TrimSuffix(name, "_data")
	if prefix == name || prefix == "" {
		return nil, p.errorf("expected <prefix>_data, found %q", name)
	}
	if strings.ToUpper(prefix)+"_DATA_LENGTH" != macro {
		return nil, p.errorf("array %s does not match %s", name, macro)
	}
	if !p.literal("[") || !p.literal("]") || !p.literal("=") || !p.literal("{") {
		return nil, p.errorf("expected [] = {")
	}

	// n is untrusted; each element takes at least two bytes of source.
	data := make([]byte, 0, min(n, len(p.src)/2))
	for !p.literal("}") {
		v, ok := p.number()
		if !ok {
			return nil, p.errorf("expected element or }")
		}
		if v > 255 {
			return nil, p.errorf("element %d out of byte range", v)
		}
		data = append(data, byte(v))
		if !p.literal(",") {
			// The trailing comma is optional after the last element.
			if !p.literal("}") {
				return nil, p.errorf("expected , or }")
			}
			break
		}
	}
	if !p.literal(";") {
		return nil, p.errorf("expected ;")
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing text")
	}
	if len(data) != n {
		return nil, &ParseError{p.pos, fmt.Sprintf("%s is %d but array has %d elements", macro, n, len(data))}
	}
	return &Artifact{Prefix: prefix, Data: data}, nil
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{p.pos, fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

// literal consumes s if it is next in the input.
func (p *parser) literal(s string) bool {
	p.skipSpace()
	if bytes.HasPrefix(p.src[p.pos:], []byte(s)) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' && p.pos > start {
			p.pos++
			continue
		}
		break
	}
	return string(p.src[start:p.pos])
}

func (p *parser) number() (int, bool) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && '0' <= p.src[p.pos] && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, false
	}
	n, err := strconv.Atoi(string(p.src[start:p.pos]))
	if err != nil {
		p.pos = start
		return 0, false
	}
	return n, true
}
