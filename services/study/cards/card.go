// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cards provides the flashcard data model and the loaders that
// turn delimited text sources into flashcard sets.
//
// # Description
//
// A Flashcard is a front/back text pair with a per-card displayed side.
// A Set owns an ordered sequence of flashcards by value together with a
// cursor. Sets are built by Parse (text to cards) and Load (directory
// lookup, read, parse, optional shuffle).
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. A Set is owned
// by a single study session running on one goroutine.
package cards

import (
	"strings"
	"unicode/utf8"
)

// =============================================================================
// Side
// =============================================================================

// Side identifies which face of a flashcard is displayed.
type Side int

const (
	// SideFront shows the prompt face.
	SideFront Side = iota

	// SideBack shows the answer face.
	SideBack
)

// String returns the display name of the side.
func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// =============================================================================
// Flashcard
// =============================================================================

// MinDisplayHeight is the smallest layout height a card ever asks for.
const MinDisplayHeight = 11

// displayHeightBase is the fixed chrome (border, padding, title) added
// to the line count of a card's longer side.
const displayHeightBase = 10

// Flashcard is a single front/back pair.
//
// Side only changes through Flip. Navigating away from a card and back
// keeps whatever side it was left on.
type Flashcard struct {
	Front string
	Back  string
	Side  Side
}

// NewFlashcard creates a card showing the given initial side.
func NewFlashcard(front, back string, initial Side) Flashcard {
	return Flashcard{Front: front, Back: back, Side: initial}
}

// CurrentSideText returns the text of the displayed side.
func (c Flashcard) CurrentSideText() string {
	if c.Side == SideBack {
		return c.Back
	}
	return c.Front
}

// Flip toggles the displayed side.
func (c *Flashcard) Flip() {
	c.Side = c.Side.Opposite()
}

// PreferredDisplayHeight returns a layout hint for the renderer.
//
// # Description
//
// Measures the side with more characters (front wins ties), counts its
// lines, adds the fixed chrome height and clamps to MinDisplayHeight.
// State logic never consults this value.
func (c Flashcard) PreferredDisplayHeight() int {
	text := c.Back
	if utf8.RuneCountInString(c.Front) >= utf8.RuneCountInString(c.Back) {
		text = c.Front
	}
	return max(MinDisplayHeight, displayHeightBase+countLines(text))
}

// countLines counts lines the way a line iterator would: a trailing
// newline does not start a new line and empty text has no lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n") + 1
	if strings.HasSuffix(s, "\n") {
		n--
	}
	return n
}
