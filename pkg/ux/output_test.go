// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"strings"
	"testing"
)

// =============================================================================
// Icon.Render Tests
// =============================================================================

func TestIcon_Render(t *testing.T) {
	for _, icon := range []Icon{IconSuccess, IconWarning, IconError, IconBullet} {
		if got := icon.Render(); !strings.Contains(got, string(icon)) {
			t.Errorf("Render() = %q, want it to contain %q", got, icon)
		}
	}
}

// =============================================================================
// Printer Tests
// =============================================================================

func TestPrinter_Plain(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"success", func(p *Printer) { p.Success("saved") }, "OK: saved\n"},
		{"warning", func(p *Printer) { p.Warning("careful") }, "WARN: careful\n"},
		{"error", func(p *Printer) { p.Error("failed") }, "ERROR: failed\n"},
		{"info", func(p *Printer) { p.Info("note") }, "note\n"},
		{"title", func(p *Printer) { p.Title("Sets") }, ""},
		{"error box", func(p *Printer) { p.ErrorBox("load", "bad row") }, "ERROR load: bad row\n"},
		{"set entry", func(p *Printer) { p.SetEntry("spanish", 3, "") }, "spanish\t3\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf, true))
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_Styled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Title("Sets")
	p.SetEntry("spanish", 1, "")
	p.SetEntry("french", 2, "")
	p.SetEntry("broken", -1, "malformed record")
	p.ErrorBox("Could not start", "set \"x\" not found")

	out := buf.String()
	for _, want := range []string{"Sets", "spanish", "1 card", "french", "2 cards", "broken", "(malformed record)", "Could not start"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
