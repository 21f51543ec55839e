// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"strings"

	"github.com/AleutianAI/flashcards/services/study/cards"
	"github.com/AleutianAI/flashcards/services/study/session"
	"github.com/charmbracelet/lipgloss"
)

// PanelWidth is the outer width of the card panel.
const PanelWidth = 45

// =============================================================================
// Styles
// =============================================================================

var (
	frontColor = lipgloss.Color("12")
	backColor  = lipgloss.Color("13")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 4).
			Align(lipgloss.Center, lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Italic(true)
)

// accent picks the panel color for a side.
func accent(side cards.Side) lipgloss.Color {
	if side == cards.SideBack {
		return backColor
	}
	return frontColor
}

// renderCard draws the bordered card panel.
//
// height is the card's preferred display height, which includes the
// border rows.
func renderCard(v session.View, height int) string {
	color := accent(v.Side)
	title := titleStyle.Foreground(color).Render(strings.ToUpper(v.SetName))

	style := panelStyle.
		BorderForeground(color).
		Foreground(color).
		Width(PanelWidth - 2).
		Height(max(height-2, 1))

	return style.Render(lipgloss.JoinVertical(lipgloss.Center, title, "", v.Text))
}

// renderScreen centers the panel in the terminal and appends the footer.
// Without known dimensions the panel and footer are stacked as is.
func renderScreen(panel, footer string, width, height int) string {
	if width <= 0 || height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Center, panel, footer)
	}
	body := lipgloss.Place(width, max(height-lipgloss.Height(footer), 1),
		lipgloss.Center, lipgloss.Center, panel)
	return lipgloss.JoinVertical(lipgloss.Center, body, lipgloss.PlaceHorizontal(width, lipgloss.Center, footer))
}
