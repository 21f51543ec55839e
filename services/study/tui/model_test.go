// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/AleutianAI/flashcards/services/study/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestState(t *testing.T) *session.State {
	t.Helper()
	parsed, err := cards.Parse("foo,bar\nbaz,qux", cards.ParseOptions{})
	require.NoError(t, err)
	set, err := cards.NewSet("vocab", parsed)
	require.NoError(t, err)
	state, err := session.New(set)
	require.NoError(t, err)
	return state
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return tui.Model")
	return model, cmd
}

func TestKeyMap_Decode(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want session.Command
	}{
		{"n", runeKey('n'), session.CommandNext},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, session.CommandNext},
		{"l", runeKey('l'), session.CommandNext},
		{"p", runeKey('p'), session.CommandPrevious},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, session.CommandPrevious},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, session.CommandFlip},
		{"f", runeKey('f'), session.CommandFlip},
		{"q", runeKey('q'), session.CommandQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, session.CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, session.CommandQuit},
		{"unbound", runeKey('z'), session.CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, session.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Decode(tt.msg))
		})
	}
}

func TestNewModel_Defaults(t *testing.T) {
	model := NewModel(createTestState(t), Config{})

	assert.Equal(t, DefaultPollInterval, model.interval)
	assert.NotNil(t, model.logger)
	assert.NotNil(t, model.Init())
}

func TestModel_NextFlipPrevious(t *testing.T) {
	model := NewModel(createTestState(t), Config{})

	model, _ = press(t, model, runeKey('n'))
	assert.Equal(t, "baz", model.State().View().Text)

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "qux", model.State().View().Text)
	assert.Equal(t, cards.SideBack, model.State().View().Side)

	model, _ = press(t, model, runeKey('p'))
	assert.Equal(t, "foo", model.State().View().Text)
	assert.Equal(t, cards.SideFront, model.State().View().Side)
}

func TestModel_UnboundKeyIsIgnored(t *testing.T) {
	model := NewModel(createTestState(t), Config{})

	model, cmd := press(t, model, runeKey('x'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, model.State().Index())
	assert.False(t, model.State().Exit())
}

func TestModel_Quit(t *testing.T) {
	model := NewModel(createTestState(t), Config{})

	model, cmd := press(t, model, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.State().Exit())
	assert.Empty(t, model.View())
}

func TestModel_TickReschedulesUntilExit(t *testing.T) {
	model := NewModel(createTestState(t), Config{PollInterval: time.Millisecond})

	model, cmd := press(t, model, tickMsg(time.Now()))
	assert.NotNil(t, cmd)

	model, _ = press(t, model, runeKey('q'))
	_, cmd = press(t, model, tickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_HelpToggle(t *testing.T) {
	model := NewModel(createTestState(t), Config{})
	assert.False(t, model.help.ShowAll)

	model, _ = press(t, model, runeKey('?'))
	assert.True(t, model.help.ShowAll)

	model, _ = press(t, model, runeKey('?'))
	assert.False(t, model.help.ShowAll)
}

func TestModel_View(t *testing.T) {
	model := NewModel(createTestState(t), Config{})
	model, _ = press(t, model, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := model.View()
	assert.Contains(t, view, "VOCAB")
	assert.Contains(t, view, "foo")
	assert.Contains(t, view, "quit")
	assert.NotContains(t, view, "bar")

	model, _ = press(t, model, runeKey('f'))
	view = model.View()
	assert.Contains(t, view, "bar")
	assert.NotContains(t, view, "foo")
}

func TestModel_ViewWithoutSize(t *testing.T) {
	model := NewModel(createTestState(t), Config{})
	assert.Contains(t, model.View(), "foo")
}

func TestRenderCard_HeightFollowsCard(t *testing.T) {
	view := session.View{Text: "one", Side: cards.SideFront, SetName: "s"}

	short := renderCard(view, cards.MinDisplayHeight)
	tall := renderCard(view, 15)

	assert.Equal(t, cards.MinDisplayHeight, strings.Count(short, "\n")+1)
	assert.Equal(t, 15, strings.Count(tall, "\n")+1)
}

func TestRun_QuitsOnKey(t *testing.T) {
	state := createTestState(t)

	var out bytes.Buffer
	err := Run(context.Background(), state, Config{},
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	require.NoError(t, err)
	assert.True(t, state.Exit())
}
