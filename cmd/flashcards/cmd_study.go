// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/AleutianAI/flashcards/services/study/session"
	"github.com/AleutianAI/flashcards/services/study/tui"
	"github.com/spf13/cobra"
)

// errNoTerminal is returned when the study screen has nowhere to draw.
var errNoTerminal = errors.New("flashcards needs an interactive terminal")

// runStudy loads the requested set and hands it to the TUI.
//
// # Description
//
// Every failure before the TUI starts (missing or unreadable source,
// malformed record, empty set) is returned to main, which prints it and
// exits non-zero. The TUI is started under a context that SIGINT and
// SIGTERM cancel.
func runStudy(cmd *cobra.Command, a *app, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.With("session_id", a.newSessionID())

	set, err := cards.Load(cfg.SetsDir, opts.setName, cards.LoadOptions{
		Extension: cfg.Extension,
		Parse: cards.ParseOptions{
			Capitalize:         cfg.Capitalize,
			ReverseInitialSide: cfg.Reverse,
		},
		Shuffle: cfg.Shuffle,
	})
	if err != nil {
		logger.Error("failed to load set", "set", opts.setName, "dir", cfg.SetsDir, "error", err)
		return err
	}

	state, err := session.New(set)
	if err != nil {
		return fmt.Errorf("set %q: %w", set.Name(), err)
	}

	if !a.isTerminal() {
		return errNoTerminal
	}

	logger.Info("study session starting",
		"set", set.Name(),
		"cards", set.Len(),
		"capitalize", cfg.Capitalize,
		"shuffle", cfg.Shuffle,
		"reverse", cfg.Reverse,
	)

	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.runTUI(ctx, state, tui.Config{
		PollInterval: cfg.PollInterval,
		Logger:       logger,
	}); err != nil {
		logger.Error("study session failed", "error", err)
		if path := logger.FilePath(); path != "" {
			return fmt.Errorf("study session: %w (log: %s)", err, path)
		}
		return fmt.Errorf("study session: %w", err)
	}

	logger.Info("study session finished", "position", state.Index()+1, "of", state.Len())
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
