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

import "math/rand/v2"

// Set is a named, ordered collection of flashcards with a cursor.
//
// # Description
//
// A Set owns its cards by value. Navigation returns copies; Flip
// mutates the stored card at the cursor. The cursor always satisfies
// 0 <= index < Len().
type Set struct {
	name  string
	cards []Flashcard
	index int
}

// NewSet creates a set positioned on its first card.
//
// # Outputs
//
//   - *Set: The set, with its own copy of cards.
//   - error: ErrEmptySet if cards is empty.
func NewSet(name string, cards []Flashcard) (*Set, error) {
	if len(cards) == 0 {
		return nil, ErrEmptySet
	}
	owned := make([]Flashcard, len(cards))
	copy(owned, cards)
	return &Set{name: name, cards: owned}, nil
}

// Name returns the set's display name.
func (s *Set) Name() string {
	return s.name
}

// Len returns the number of cards.
func (s *Set) Len() int {
	return len(s.cards)
}

// Index returns the cursor position.
func (s *Set) Index() int {
	return s.index
}

// Current returns a copy of the card under the cursor.
func (s *Set) Current() Flashcard {
	return s.cards[s.index]
}

// Cards returns a copy of the card sequence.
func (s *Set) Cards() []Flashcard {
	out := make([]Flashcard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Advance moves the cursor forward.
//
// Returns the new current card, or false at the last card. There is no
// wraparound.
func (s *Set) Advance() (Flashcard, bool) {
	if s.index >= len(s.cards)-1 {
		return Flashcard{}, false
	}
	s.index++
	return s.cards[s.index], true
}

// Retreat moves the cursor back and returns the new current card.
//
// At the first card the cursor stays put and the first card is returned.
func (s *Set) Retreat() Flashcard {
	if s.index > 0 {
		s.index--
	}
	return s.cards[s.index]
}

// FlipCurrent flips the stored card under the cursor.
func (s *Set) FlipCurrent() {
	s.cards[s.index].Flip()
}

// Shuffle permutes cards in place using rng.
//
// Shuffling is applied once at load time, before a Set is built.
func Shuffle(cards []Flashcard, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
