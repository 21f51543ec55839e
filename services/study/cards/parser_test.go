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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleSet(t *testing.T) {
	source := `
    foo,bar
    baz,thenextone
    `

	got, err := Parse(source, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []Flashcard{
		{Front: "foo", Back: "bar", Side: SideFront},
		{Front: "baz", Back: "thenextone", Side: SideFront},
	}, got)
}

func TestParse_Fields(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantFront string
		wantBack  string
	}{
		{"embedded newline", "\"line1\nline2\",baz", "line1\nline2", "baz"},
		{"quoted comma", `"a, b",c`, "a, b", "c"},
		{"escaped quotes", `"say ""hi""",x`, `say "hi"`, "x"},
		{"surrounding whitespace", "  front  ,   back  ", "front", "back"},
		{"extra columns ignored", "a,b,c,d", "a", "b"},
		{"unicode", "日本,にほん", "日本", "にほん"},
		{"space after closing quote", `"a" ,b`, "a", "b"},
		{"aligned quoted field", `"hello, world"  ,  bonjour`, "hello, world", "bonjour"},
		{"space before opening quote", `front, "a, b"`, "front", "a, b"},
		{"quoted field trimmed", `"  padded  ",x`, "padded", "x"},
		{"text after closing quote", `"ab"cd,x`, "abcd", "x"},
		{"bare quote in unquoted field", `5" screw,inch`, `5" screw`, "inch"},
		{"quote at end of unquoted field", `say "hi",x`, `say "hi"`, "x"},
		{"crlf inside quoted field", "\"x\r\ny\",b", "x\ny", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.source, ParseOptions{})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantFront, got[0].Front)
			assert.Equal(t, tt.wantBack, got[0].Back)
		})
	}
}

func TestParse_MultiLineQuotedFieldWithPadding(t *testing.T) {
	got, err := Parse("foo,bar\n\"line1\nline2\" , baz\nlast,one", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "line1\nline2", got[1].Front)
	assert.Equal(t, "baz", got[1].Back)
	assert.Equal(t, "last", got[2].Front)
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	got, err := Parse("a,b\n\n\nc,d", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[1].Front)
}

func TestParse_PreservesOrderAndCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "front %d,back %d\n", i, i)
	}

	got, err := Parse(b.String(), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, got, 25)
	for i, card := range got {
		assert.Equal(t, fmt.Sprintf("front %d", i), card.Front)
		assert.Equal(t, fmt.Sprintf("back %d", i), card.Back)
		assert.Equal(t, SideFront, card.Side)
	}
}

func TestParse_Capitalize(t *testing.T) {
	got, err := Parse("foo,bar\nstraße,über", ParseOptions{Capitalize: true})
	require.NoError(t, err)

	assert.Equal(t, "FOO", got[0].Front)
	assert.Equal(t, "BAR", got[0].Back)
	assert.Equal(t, "STRASSE", got[1].Front)
	assert.Equal(t, "ÜBER", got[1].Back)
}

func TestParse_ReverseInitialSide(t *testing.T) {
	got, err := Parse("foo,bar\nbaz,qux", ParseOptions{ReverseInitialSide: true})
	require.NoError(t, err)

	for _, card := range got {
		assert.Equal(t, SideBack, card.Side)
	}
	assert.Equal(t, "bar", got[0].CurrentSideText())
}

func TestParse_Empty(t *testing.T) {
	for _, source := range []string{"", "   ", "\n\n  \n"} {
		got, err := Parse(source, ParseOptions{})
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestParse_TooFewFields(t *testing.T) {
	_, err := Parse("onlyonefield", ParseOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 1, recErr.Record)
	assert.Equal(t, 1, recErr.Line)
}

func TestParse_TooFewFieldsMidway(t *testing.T) {
	_, err := Parse("a,b\nc\nd,e", ParseOptions{})

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 2, recErr.Record)
	assert.Equal(t, 2, recErr.Line)
	assert.Contains(t, err.Error(), "record 2")
}

func TestParse_UnterminatedQuote(t *testing.T) {
	_, err := Parse("foo,bar\n\"open,baz", ParseOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.ErrorIs(t, err, errUnterminatedQuote)

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 2, recErr.Record)
	assert.Equal(t, 2, recErr.Line)
	assert.Equal(t, 1, recErr.Column)
}

func TestParse_UnterminatedQuoteAfterMultiLineField(t *testing.T) {
	_, err := Parse("\"one\ntwo\",x\nok,fine\nlast, \"open", ParseOptions{})

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.ErrorIs(t, err, errUnterminatedQuote)
	assert.Equal(t, 3, recErr.Record)
	assert.Equal(t, 4, recErr.Line)
	assert.Equal(t, 7, recErr.Column)
}
