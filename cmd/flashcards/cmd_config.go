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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AleutianAI/flashcards/cmd/flashcards/config"
	"github.com/AleutianAI/flashcards/pkg/ux"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app, opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the flashcards config file.",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			return initConfig(ux.NewPrinter(a.stdout, false), path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func initConfig(p *ux.Printer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file %s: %w", path, err)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	p.Success(fmt.Sprintf("Wrote %s", path))
	p.Info("Point sets_dir at your .csv sets, or override it with --sets-dir or FLASHCARDS_SETS_DIR.")
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flashcards version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "flashcards %s\n", version)
		},
	}
}
