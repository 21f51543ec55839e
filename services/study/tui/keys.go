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
	"github.com/AleutianAI/flashcards/services/study/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds keys to study commands.
//
// Key bindings:
//
//	n, right, l      Next card
//	p, left, h       Previous card
//	space, f         Flip
//	q, esc, ctrl+c   Quit
//	?                Toggle full help
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Flip     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p/←", "previous"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" ", "space", "f"),
			key.WithHelp("space", "flip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Decode maps a key press to a command. Unbound keys yield CommandNone.
func (k KeyMap) Decode(msg tea.KeyMsg) session.Command {
	switch {
	case key.Matches(msg, k.Next):
		return session.CommandNext
	case key.Matches(msg, k.Previous):
		return session.CommandPrevious
	case key.Matches(msg, k.Flip):
		return session.CommandFlip
	case key.Matches(msg, k.Quit):
		return session.CommandQuit
	default:
		return session.CommandNone
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Next, k.Previous, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous},
		{k.Flip},
		{k.Quit, k.Help},
	}
}
