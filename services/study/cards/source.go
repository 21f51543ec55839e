// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cards

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is the file extension of set sources.
const DefaultExtension = ".csv"

// Source is a discovered set file.
type Source struct {
	// Name is the file name without directory or extension.
	Name string

	// Path is the full path to the file.
	Path string
}

// FindSources lists the non-directory entries in dir ending in ext.
//
// # Outputs
//
//   - []Source: Matches sorted by file name.
//   - error: Wraps ErrSourceUnreadable if dir cannot be read.
func FindSources(dir, ext string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnreadable, dir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}
		sources = append(sources, Source{
			Name: strings.TrimSuffix(name, ext),
			Path: filepath.Join(dir, name),
		})
	}
	return sources, nil
}

// Lookup finds the source whose name matches name case-insensitively.
//
// os.ReadDir order is by file name, so when several files differ only in
// case the first one in that order wins.
func Lookup(sources []Source, name string) (Source, bool) {
	for _, src := range sources {
		if strings.EqualFold(src.Name, name) {
			return src, true
		}
	}
	return Source{}, false
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Extension selects source files. Empty means DefaultExtension.
	Extension string

	// Parse is passed through to Parse.
	Parse ParseOptions

	// Shuffle permutes the parsed cards once before the set is built.
	Shuffle bool

	// Rand is the shuffle source. Nil uses a randomly seeded generator.
	Rand *rand.Rand
}

// Load finds, reads and parses the set called name in dir.
//
// # Description
//
// The set name used for display is the file stem as found on disk, not
// the requested spelling.
//
// # Outputs
//
//   - *Set: The loaded set positioned on its first card.
//   - error: A *SourceError wrapping ErrSourceNotFound,
//     ErrSourceUnreadable, ErrMalformedRecord or ErrEmptySet.
func Load(dir, name string, opts LoadOptions) (*Set, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	sources, err := FindSources(dir, ext)
	if err != nil {
		return nil, &SourceError{Name: name, Dir: dir, Err: err}
	}
	src, ok := Lookup(sources, name)
	if !ok {
		return nil, &SourceError{Name: name, Dir: dir, Err: ErrSourceNotFound}
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, &SourceError{
			Name: name,
			Dir:  dir,
			Path: src.Path,
			Err:  fmt.Errorf("%w: %w", ErrSourceUnreadable, err),
		}
	}

	parsed, err := Parse(string(data), opts.Parse)
	if err != nil {
		return nil, &SourceError{Name: name, Dir: dir, Path: src.Path, Err: err}
	}

	if opts.Shuffle {
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		Shuffle(parsed, rng)
	}

	set, err := NewSet(src.Name, parsed)
	if err != nil {
		return nil, &SourceError{Name: name, Dir: dir, Path: src.Path, Err: err}
	}
	return set, nil
}
