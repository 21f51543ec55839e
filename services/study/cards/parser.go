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
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseOptions controls how records become cards.
type ParseOptions struct {
	// Capitalize uppercases both sides of every card.
	Capitalize bool

	// ReverseInitialSide starts every card on its back.
	ReverseInitialSide bool
}

// Parse turns two-column comma-separated text into flashcards.
//
// # Description
//
// The input is trimmed as a whole and read without a header row. Fields
// may be double-quoted to hold commas and newlines, with "" standing for
// a literal quote. A quote that does not open a field is kept as text.
// Every field is trimmed after unquoting. Columns past the second are
// ignored.
//
// # Inputs
//
//   - source: The raw text of a set.
//   - opts: Capitalization and initial side.
//
// # Outputs
//
//   - []Flashcard: One card per record, in source order.
//   - error: A *RecordError for the first bad record. Nothing is skipped.
func Parse(source string, opts ParseOptions) ([]Flashcard, error) {
	reader := newRecordReader(strings.TrimSpace(source))

	initial := SideFront
	if opts.ReverseInitialSide {
		initial = SideBack
	}
	upper := cases.Upper(language.Und)

	var out []Flashcard
	for record := 1; ; record++ {
		rec, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Record = record
				return nil, recErr
			}
			return nil, &RecordError{Record: record, Line: rec.line, Err: err}
		}
		if len(rec.fields) < 2 {
			return nil, &RecordError{
				Record: record,
				Line:   rec.line,
				Column: 1,
				Err:    fmt.Errorf("expected 2 fields, got %d", len(rec.fields)),
			}
		}

		front := strings.TrimSpace(rec.fields[0])
		back := strings.TrimSpace(rec.fields[1])
		if opts.Capitalize {
			front = upper.String(front)
			back = upper.String(back)
		}
		out = append(out, NewFlashcard(front, back, initial))
	}
	return out, nil
}
