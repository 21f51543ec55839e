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
	"fmt"
	"io"
	"os"

	"github.com/AleutianAI/flashcards/cmd/flashcards/config"
	"github.com/AleutianAI/flashcards/pkg/logging"
	"github.com/AleutianAI/flashcards/services/study/session"
	"github.com/AleutianAI/flashcards/services/study/tui"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the process-level collaborators the commands use, so tests
// can replace the terminal and the TUI.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// isTerminal reports whether stdin and stdout are attached to a TTY.
	isTerminal func() bool

	// runTUI owns the terminal for one study session.
	runTUI func(ctx context.Context, state *session.State, cfg tui.Config) error

	newSessionID func() string
}

func defaultApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			in, out := os.Stdin.Fd(), os.Stdout.Fd()
			return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
				(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
		},
		runTUI: func(ctx context.Context, state *session.State, cfg tui.Config) error {
			return tui.Run(ctx, state, cfg)
		},
		newSessionID: uuid.NewString,
	}
}

// --- Global Flag Values ---
type rootOptions struct {
	configPath string
	setName    string
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "flashcards --set NAME",
		Short: "Simple TUI flashcards.",
		Long: `flashcards loads a set of front/back cards from a CSV file and
shows them one at a time. Step with n/p, flip with space, quit with q.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudy(cmd, a, opts)
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default ~/.flashcards/flashcards.yaml)")
	pf.StringP("sets-dir", "f", "", "Directory to find flashcard sets.")
	pf.String("extension", "", "File extension of set sources (default .csv).")
	pf.String("log-dir", "", "Directory for log files.")
	pf.String("log-level", "", "Log level: debug, info, warn, error.")

	f := rootCmd.Flags()
	f.StringVarP(&opts.setName, "set", "s", "", "Name of the set to run. Case insensitive, no file extension.")
	f.BoolP("capitalize", "c", false, "Show flashcard contents in all caps.")
	f.BoolP("shuffle", "r", false, "Shuffle set before starting.")
	f.Bool("reverse", false, "Show the back of every card first.")
	f.Duration("poll-interval", 0, "Screen refresh interval without input.")
	_ = rootCmd.MarkFlagRequired("set")

	rootCmd.AddCommand(newSetsCmd(a, opts))
	rootCmd.AddCommand(newConfigCmd(a, opts))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// loadConfig resolves the config for cmd. An explicit --config must exist;
// the default file is optional.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	path := opts.configPath
	required := path != ""
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.InheritedFlags())
	return config.Load(path, required, flags)
}

// newLogger builds the session logger. When quiet, nothing goes to
// stderr so the TUI owns the terminal.
func newLogger(cfg config.Config, quiet bool) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.LogDir,
		Service: "flashcards",
		JSON:    true,
		Quiet:   quiet,
	}), nil
}
