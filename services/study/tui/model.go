// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tui provides the terminal shell around a study session.
//
// # Description
//
// The shell decodes key presses into session commands, applies them to
// the session state and renders the state's view as a bordered card.
// A periodic tick re-renders the screen even without input.
//
// # Thread Safety
//
// TUI components are designed for single-threaded use within the bubbletea
// event loop. Do not access the model or its session from other goroutines.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/AleutianAI/flashcards/pkg/logging"
	"github.com/AleutianAI/flashcards/services/study/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPollInterval is how often the screen refreshes without input.
const DefaultPollInterval = 250 * time.Millisecond

// =============================================================================
// Config
// =============================================================================

// Config configures the study TUI.
type Config struct {
	// PollInterval is the refresh period (0 = DefaultPollInterval).
	PollInterval time.Duration

	// Keys overrides the bindings (zero value = DefaultKeyMap).
	Keys *KeyMap

	// Logger receives command and lifecycle events (nil = discard).
	Logger *logging.Logger
}

// =============================================================================
// Messages
// =============================================================================

// tickMsg drives the periodic refresh.
type tickMsg time.Time

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for a study session.
type Model struct {
	state    *session.State
	keys     KeyMap
	help     help.Model
	logger   *logging.Logger
	interval time.Duration

	width  int
	height int
}

// NewModel wraps a session state.
func NewModel(state *session.State, config Config) Model {
	keys := DefaultKeyMap()
	if config.Keys != nil {
		keys = *config.Keys
	}
	interval := config.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	return Model{
		state:    state,
		keys:     keys,
		help:     help.New(),
		logger:   logger,
		interval: interval,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if m.state.Exit() {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		cmd := m.keys.Decode(msg)
		if cmd == session.CommandNone {
			return m, nil
		}
		for _, applied := range m.state.Dispatch(cmd) {
			m.logger.Debug("command applied",
				"command", applied.String(),
				"index", m.state.Index(),
				"side", m.state.Current().Side.String(),
			)
		}
		if m.state.Exit() {
			m.logger.Info("study session ended", "index", m.state.Index(), "cards", m.state.Len())
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state.Exit() {
		return ""
	}
	panel := renderCard(m.state.View(), m.state.Current().PreferredDisplayHeight())
	return renderScreen(panel, m.help.View(m.keys), m.width, m.height)
}

// State returns the wrapped session state.
func (m Model) State() *session.State {
	return m.state
}

// =============================================================================
// Program
// =============================================================================

// Run owns the terminal for the duration of a study session.
//
// # Description
//
// Starts a full-screen bubbletea program and blocks until the session
// quits, ctx is cancelled or the program fails. The terminal is restored
// on every path, including panics inside the event loop. A cancelled ctx
// is a clean exit.
//
// # Inputs
//
//   - ctx: Cancels the session (e.g. on SIGTERM).
//   - state: The loaded session.
//   - config: Refresh, keys, logger.
//   - opts: Extra program options, such as input/output overrides.
func Run(ctx context.Context, state *session.State, config Config, opts ...tea.ProgramOption) error {
	model := NewModel(state, config)

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	_, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			model.logger.Info("study session cancelled", "reason", ctx.Err().Error())
			return nil
		}
		return err
	}
	return nil
}
