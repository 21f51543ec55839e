// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session implements the study state machine.
//
// # Description
//
// A State owns one flashcard set and a snapshot of the card being shown.
// It consumes abstract commands (Next, Previous, Flip, Quit) that a shell
// has already decoded from input, and exposes a View for rendering.
// Transitions never fail on a well-formed set.
//
// # Thread Safety
//
// State is not safe for concurrent use. It is driven from a single event
// loop.
package session

import (
	"fmt"

	"github.com/AleutianAI/flashcards/services/study/cards"
)

// =============================================================================
// Commands
// =============================================================================

// Command is an abstract input already decoded by the shell.
type Command int

const (
	// CommandNone is the zero value and is ignored.
	CommandNone Command = iota

	// CommandNext moves to the next card.
	CommandNext

	// CommandPrevious moves to the previous card.
	CommandPrevious

	// CommandFlip flips the current card.
	CommandFlip

	// CommandQuit ends the session.
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandFlip:
		return "flip"
	case CommandQuit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// maxChain bounds how many follow-up commands one dispatch may run.
const maxChain = 1

// =============================================================================
// View
// =============================================================================

// View is everything a renderer may read from the state.
type View struct {
	// Text is the displayed side's text.
	Text string

	// Side is the displayed side, used to pick an accent.
	Side cards.Side

	// SetName is the set's display name.
	SetName string
}

// =============================================================================
// State
// =============================================================================

// State is the single composite study state.
type State struct {
	set     *cards.Set
	current cards.Flashcard
	exit    bool
}

// New creates a state positioned on the set's current card.
func New(set *cards.Set) (*State, error) {
	if set == nil || set.Len() == 0 {
		return nil, cards.ErrEmptySet
	}
	return &State{set: set, current: set.Current()}, nil
}

// Update applies one command.
//
// # Description
//
// Next and Previous replace the current snapshot with the card the set
// navigated to. Flip flips the stored card in the set so it stays flipped
// when revisited, then refreshes the snapshot. Quit sets the exit flag.
// Commands after Quit are ignored.
//
// # Outputs
//
//   - Command: A follow-up command to run, or CommandNone.
func (s *State) Update(cmd Command) Command {
	if s.exit {
		return CommandNone
	}

	switch cmd {
	case CommandNext:
		if card, ok := s.set.Advance(); ok {
			s.current = card
		}
	case CommandPrevious:
		s.current = s.set.Retreat()
	case CommandFlip:
		s.set.FlipCurrent()
		s.current = s.set.Current()
	case CommandQuit:
		s.exit = true
	}
	return CommandNone
}

// Dispatch applies cmd and then any follow-up it produces, up to maxChain
// follow-ups. It returns every command that was applied, in order.
func (s *State) Dispatch(cmd Command) []Command {
	applied := make([]Command, 0, 1+maxChain)
	for i := 0; cmd != CommandNone && i <= maxChain; i++ {
		applied = append(applied, cmd)
		cmd = s.Update(cmd)
	}
	return applied
}

// Exit reports whether the session has been asked to stop.
func (s *State) Exit() bool {
	return s.exit
}

// Current returns a copy of the card being shown.
func (s *State) Current() cards.Flashcard {
	return s.current
}

// Index returns the cursor position in the set.
func (s *State) Index() int {
	return s.set.Index()
}

// Len returns the size of the set.
func (s *State) Len() int {
	return s.set.Len()
}

// View returns the render view of the current state.
func (s *State) View() View {
	return View{
		Text:    s.current.CurrentSideText(),
		Side:    s.current.Side,
		SetName: s.set.Name(),
	}
}
