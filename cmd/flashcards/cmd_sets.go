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
	"fmt"
	"os"

	"github.com/AleutianAI/flashcards/pkg/logging"
	"github.com/AleutianAI/flashcards/pkg/ux"
	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/spf13/cobra"
)

func newSetsCmd(a *app, opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the flashcard sets in the sets directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, true)
			if err != nil {
				return err
			}
			defer logger.Close()

			return listSets(ux.NewPrinter(a.stdout, plain), logger, cfg.SetsDir, cfg.Extension)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Tab-separated output without styling.")
	return cmd
}

// listSets prints every source in dir with its card count. Sources that
// fail to parse are listed with the reason instead of aborting the listing.
func listSets(p *ux.Printer, logger *logging.Logger, dir, ext string) error {
	sources, err := cards.FindSources(dir, ext)
	if err != nil {
		return err
	}

	p.Title(fmt.Sprintf("Sets in %s", dir))
	if len(sources) == 0 {
		p.Warning(fmt.Sprintf("no %s files found", ext))
		return nil
	}

	for _, src := range sources {
		count, err := countCards(src)
		if err != nil {
			logger.Warn("skipping unreadable set", "set", src.Name, "path", src.Path, "error", err)
			p.SetEntry(src.Name, -1, err.Error())
			continue
		}
		p.SetEntry(src.Name, count, "")
	}
	return nil
}

func countCards(src cards.Source) (int, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", cards.ErrSourceUnreadable, err)
	}
	parsed, err := cards.Parse(string(data), cards.ParseOptions{})
	if err != nil {
		return 0, err
	}
	if len(parsed) == 0 {
		return 0, cards.ErrEmptySet
	}
	return len(parsed), nil
}
