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
	"fmt"
)

// Load errors. All of them are fatal at startup.
var (
	// ErrSourceNotFound is returned when no source matches the requested set name.
	ErrSourceNotFound = errors.New("flashcard set not found")

	// ErrSourceUnreadable is returned when the sets directory or the matched
	// source cannot be read.
	ErrSourceUnreadable = errors.New("flashcard set unreadable")

	// ErrMalformedRecord is returned when a record has fewer than two fields
	// or a quoted field is not terminated.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptySet is returned when a source contains no records.
	ErrEmptySet = errors.New("flashcard set is empty")
)

// RecordError reports the record that stopped a parse.
//
// errors.Is(err, ErrMalformedRecord) holds for every RecordError.
type RecordError struct {
	// Record is the 1-based index of the offending record.
	Record int

	// Line is the 1-based physical line the record starts on, or the line
	// of the opening quote for an unterminated field.
	Line int

	// Column is the 1-based column, when known.
	Column int

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *RecordError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("%v: record %d (line %d): %v", ErrMalformedRecord, e.Record, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: line %d, column %d: %v", ErrMalformedRecord, e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedRecord.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// SourceError wraps a failure to find or load a named set.
type SourceError struct {
	// Name is the requested set name.
	Name string

	// Dir is the directory that was searched.
	Dir string

	// Path is the matched source path, empty if nothing matched.
	Path string

	// Err is the sentinel or cause. It is always one of the package
	// sentinels or wraps one.
	Err error
}

// Error implements error.
func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("set %q (%s): %v", e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("set %q in %s: %v", e.Name, e.Dir, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}
