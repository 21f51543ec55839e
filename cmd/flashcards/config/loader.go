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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FLASHCARDS_SETS_DIR.
const EnvPrefix = "FLASHCARDS"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"sets-dir":      "sets_dir",
	"extension":     "extension",
	"capitalize":    "capitalize",
	"shuffle":       "shuffle",
	"reverse":       "reverse",
	"poll-interval": "poll_interval",
	"log-dir":       "log_dir",
	"log-level":     "log_level",
}

// DefaultPath returns ~/.flashcards/flashcards.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".flashcards", "flashcards.yaml"), nil
}

// Load resolves the configuration.
//
// # Description
//
// Precedence, highest first: flags that were set on the command line,
// FLASHCARDS_* environment variables, the YAML file at path, defaults.
// A missing file is only an error when required is true. The result is
// validated and "~" is expanded in directory settings.
//
// # Inputs
//
//   - path: YAML file to read. Empty skips the file.
//   - required: Whether a missing file is an error.
//   - flags: Flags to bind (may be nil).
func Load(path string, required bool, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return cfg, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	cfg.SetsDir = expandPath(cfg.SetsDir)
	cfg.LogDir = expandPath(cfg.LogDir)
	return cfg, nil
}

// Validate checks field constraints.
func Validate(cfg Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("sets_dir", cfg.SetsDir)
	v.SetDefault("extension", cfg.Extension)
	v.SetDefault("capitalize", cfg.Capitalize)
	v.SetDefault("shuffle", cfg.Shuffle)
	v.SetDefault("reverse", cfg.Reverse)
	v.SetDefault("poll_interval", cfg.PollInterval)
	v.SetDefault("log_dir", cfg.LogDir)
	v.SetDefault("log_level", cfg.LogLevel)
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
