// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ux provides styled line output for the non-interactive commands.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Card palette - the study panel's blue and magenta plus neutrals
var (
	ColorBlue    = lipgloss.Color("#5FAFFF") // Front accent - titles, highlights
	ColorMagenta = lipgloss.Color("#FF87FF") // Back accent - secondary elements
	ColorSlate   = lipgloss.Color("#6C7A89") // Muted text, borders

	ColorSuccess = lipgloss.Color("#5FD787")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	ErrorBox lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconBullet  Icon = "•"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return Styles.Muted.Render(string(i))
	}
}

// Printer writes styled lines. In plain mode it writes tab-separated,
// prefix-tagged lines suitable for scripts.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

// Title prints a styled title. Plain mode prints nothing.
func (p *Printer) Title(text string) {
	if p.plain {
		return
	}
	fmt.Fprintln(p.out, Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func (p *Printer) Success(text string) {
	if p.plain {
		fmt.Fprintf(p.out, "OK: %s\n", text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
}

// Warning prints a warning message
func (p *Printer) Warning(text string) {
	if p.plain {
		fmt.Fprintf(p.out, "WARN: %s\n", text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
}

// Error prints an error message
func (p *Printer) Error(text string) {
	if p.plain {
		fmt.Fprintf(p.out, "ERROR: %s\n", text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
}

// Info prints an informational message
func (p *Printer) Info(text string) {
	if p.plain {
		fmt.Fprintln(p.out, text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", Styles.Muted.Render("│"), text)
}

// ErrorBox prints a titled error panel.
func (p *Printer) ErrorBox(title, content string) {
	if p.plain {
		fmt.Fprintf(p.out, "ERROR %s: %s\n", title, content)
		return
	}
	titleLine := Styles.Error.Bold(true).Render(title)
	fmt.Fprintln(p.out, Styles.ErrorBox.Width(60).Render(titleLine+"\n"+content))
}

// SetEntry prints one discovered set. A negative count marks a set
// that failed to load; reason explains why.
func (p *Printer) SetEntry(name string, count int, reason string) {
	if p.plain {
		fmt.Fprintf(p.out, "%s\t%d\t%s\n", name, count, reason)
		return
	}
	if count < 0 {
		fmt.Fprintf(p.out, "%s %s %s\n", IconError.Render(), name, Styles.Muted.Render("("+reason+")"))
		return
	}
	fmt.Fprintf(p.out, "%s %s %s\n", IconBullet.Render(), Styles.Highlight.Render(name),
		Styles.Muted.Render(pluralize(count, "card")))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, noun+"s")
}
