// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"time"

	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/AleutianAI/flashcards/services/study/tui"
)

// Config holds the CLI settings. Every field can come from the YAML file,
// a FLASHCARDS_* environment variable or a command-line flag.
type Config struct {
	// SetsDir is the directory scanned for set sources.
	SetsDir string `mapstructure:"sets_dir" yaml:"sets_dir" validate:"required"`

	// Extension selects set source files, e.g. ".csv".
	Extension string `mapstructure:"extension" yaml:"extension" validate:"required,startswith=."`

	// Study options
	Capitalize bool `mapstructure:"capitalize" yaml:"capitalize"`
	Shuffle    bool `mapstructure:"shuffle" yaml:"shuffle"`
	Reverse    bool `mapstructure:"reverse" yaml:"reverse"`

	// PollInterval is how often the study screen refreshes without input.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval" validate:"min=10ms,max=5s"`

	// LogDir enables file logging. Empty disables it.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		SetsDir:      "~/.flashcards/sets",
		Extension:    cards.DefaultExtension,
		PollInterval: tui.DefaultPollInterval,
		LogDir:       "~/.flashcards/logs",
		LogLevel:     "info",
	}
}
