// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cards

import (
	"errors"
	"io"
	"strings"
)

// errUnterminatedQuote is the cause of a RecordError for a quoted field
// that runs to the end of the input.
var errUnterminatedQuote = errors.New("unterminated quoted field")

// rawRecord is one logical record before trimming.
type rawRecord struct {
	fields []string

	// line is the 1-based physical line the record starts on.
	line int
}

// recordReader splits comma-separated text into records.
//
// # Description
//
// A double quote opens a quoted field only when it is the first non-blank
// character of the field. Inside a quoted field, commas and line breaks
// are literal and "" is one quote. Text after the closing quote is
// appended to the field up to the next comma or line break. A quote
// anywhere else is an ordinary character. Empty lines between records are
// skipped. The only structural error is a quote that is never closed.
//
// Parsers ONLY parse: fields are returned untrimmed.
type recordReader struct {
	src       string
	pos       int
	line      int
	lineStart int
}

func newRecordReader(src string) *recordReader {
	return &recordReader{src: strings.ReplaceAll(src, "\r\n", "\n"), line: 1}
}

// next returns the next record, or io.EOF after the last one.
func (r *recordReader) next() (rawRecord, error) {
	for !r.eof() && isLineBreak(r.src[r.pos]) {
		r.pos++
		r.newLine()
	}
	if r.eof() {
		return rawRecord{}, io.EOF
	}

	rec := rawRecord{line: r.line}
	for {
		field, err := r.field()
		if err != nil {
			return rec, err
		}
		rec.fields = append(rec.fields, field)

		if r.eof() {
			return rec, nil
		}
		c := r.src[r.pos]
		r.pos++
		if c != ',' {
			r.newLine()
			return rec, nil
		}
	}
}

// field reads one field and leaves pos on the comma, line break or end
// that follows it.
func (r *recordReader) field() (string, error) {
	start := r.pos
	for !r.eof() && (r.src[r.pos] == ' ' || r.src[r.pos] == '\t') {
		r.pos++
	}

	var b strings.Builder
	if r.eof() || r.src[r.pos] != '"' {
		r.pos = start
		r.unquoted(&b)
		return b.String(), nil
	}

	quoteLine, quoteCol := r.line, r.pos-r.lineStart+1
	r.pos++
	for {
		if r.eof() {
			return "", &RecordError{Line: quoteLine, Column: quoteCol, Err: errUnterminatedQuote}
		}
		c := r.src[r.pos]
		r.pos++
		switch {
		case c == '"' && !r.eof() && r.src[r.pos] == '"':
			b.WriteByte('"')
			r.pos++
		case c == '"':
			r.unquoted(&b)
			return b.String(), nil
		default:
			b.WriteByte(c)
			if isLineBreak(c) {
				r.newLine()
			}
		}
	}
}

// unquoted copies bytes up to the next comma, line break or end.
func (r *recordReader) unquoted(b *strings.Builder) {
	for !r.eof() {
		c := r.src[r.pos]
		if c == ',' || isLineBreak(c) {
			return
		}
		b.WriteByte(c)
		r.pos++
	}
}

func (r *recordReader) newLine() {
	r.line++
	r.lineStart = r.pos
}

func (r *recordReader) eof() bool {
	return r.pos >= len(r.src)
}

func isLineBreak(c byte) bool {
	return c == '\n' || c == '\r'
}
