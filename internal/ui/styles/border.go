/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BuildTitledBorder returns a lipgloss.Border whose Top field contains the
// title embedded into the border line, e.g.:
//
//	╭─ Results (6) ───────────╮
func BuildTitledBorder(title string, totalWidth int, b lipgloss.Border) lipgloss.Border {
	innerWidth := totalWidth - lipgloss.Width(b.TopLeft) - lipgloss.Width(b.TopRight)
	if innerWidth <= 0 || title == "" {
		return b
	}

	label := "─ " + title + " "
	if lipgloss.Width(label) > innerWidth {
		label = truncateRunes(label, innerWidth)
	}

	topChar := b.Top
	if topChar == "" {
		topChar = "─"
	}
	remaining := innerWidth - lipgloss.Width(label)
	if remaining < 0 {
		remaining = 0
	}
	b.Top = label + strings.Repeat(topChar, remaining)
	return b
}

// TitledPanel wraps content in a rounded panel of the given outer width with
// title embedded in the top border.
func TitledPanel(title, content string, width int, focused bool) string {
	style := BasePanelStyle
	if focused {
		style = ActivePanelStyle
	}
	if width <= 2 {
		return style.Render(content)
	}

	border := BuildTitledBorder(title, width, lipgloss.RoundedBorder())
	return style.
		Border(border).
		Width(width - 2).
		Render(content)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
