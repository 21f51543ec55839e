// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command flashcards is a terminal flashcard study tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AleutianAI/flashcards/pkg/ux"
	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/mattn/go-isatty"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	a := defaultApp()
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		plain := !isatty.IsTerminal(os.Stderr.Fd())
		reportError(ux.NewPrinter(os.Stderr, plain), err)
		os.Exit(1)
	}
}

// reportError prints a fatal error. Set load failures get a panel titled
// with the requested set name.
func reportError(p *ux.Printer, err error) {
	var srcErr *cards.SourceError
	if !errors.As(err, &srcErr) {
		p.Error(err.Error())
		return
	}

	where := srcErr.Path
	if where == "" {
		where = srcErr.Dir
	}
	p.ErrorBox(fmt.Sprintf("Could not load set %q", srcErr.Name), fmt.Sprintf("%v\n%s", srcErr.Err, where))
}
