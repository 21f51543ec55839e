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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSide_String(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{SideFront, "front"},
		{SideBack, "back"},
		{Side(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.side.String())
		})
	}
}

func TestFlashcard_CurrentSideText(t *testing.T) {
	card := NewFlashcard("foo", "bar", SideFront)
	assert.Equal(t, "foo", card.CurrentSideText())

	card = NewFlashcard("foo", "bar", SideBack)
	assert.Equal(t, "bar", card.CurrentSideText())
}

func TestFlashcard_Flip(t *testing.T) {
	card := NewFlashcard("foo", "bar", SideFront)

	card.Flip()
	assert.Equal(t, SideBack, card.Side)
	assert.Equal(t, "bar", card.CurrentSideText())

	card.Flip()
	assert.Equal(t, SideFront, card.Side)
	assert.Equal(t, "foo", card.CurrentSideText())
}

func TestFlashcard_FlipEvenTimesRestoresText(t *testing.T) {
	for _, initial := range []Side{SideFront, SideBack} {
		t.Run(initial.String(), func(t *testing.T) {
			card := NewFlashcard("question", "answer", initial)
			before := card.CurrentSideText()
			for i := 0; i < 6; i++ {
				card.Flip()
			}
			assert.Equal(t, initial, card.Side)
			assert.Equal(t, before, card.CurrentSideText())
		})
	}
}

func TestFlashcard_PreferredDisplayHeight(t *testing.T) {
	tests := []struct {
		name  string
		front string
		back  string
		want  int
	}{
		{"both empty", "", "", MinDisplayHeight},
		{"single lines", "a", "b", MinDisplayHeight},
		{"multiline front", "1\n2\n3", "x", 13},
		{"multiline back", "x", "1\n2\n3\n4", 14},
		{"trailing newline ignored", "1\n2\n3\n", "x", 13},
		{"tie measures front", "a\nb", "abc", 12},
		{"longer back measured", "ab", "a\nb", 12},
		{"counts characters not bytes", "ééé", "a\nbcd", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewFlashcard(tt.front, tt.back, SideFront)
			assert.Equal(t, tt.want, card.PreferredDisplayHeight())
		})
	}
}
