/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Skeleton renders shaded placeholder lines standing in for content that is
// still loading.
type Skeleton struct {
	Width     int
	Lines     int
	LastRatio float64 // width of the final line relative to Width
	Color     lipgloss.Color
}

// NewSkeleton creates a two-line skeleton: a full image line and a shorter
// caption line.
func NewSkeleton(width int) Skeleton {
	return Skeleton{
		Width:     width,
		Lines:     2,
		LastRatio: 0.6,
		Color:     lipgloss.Color("240"),
	}
}

// Render produces the placeholder block.
func (s Skeleton) Render() string {
	if s.Width <= 0 || s.Lines <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(s.Color)

	ratio := s.LastRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	lastWidth := int(ratio * float64(s.Width))
	if lastWidth < 1 {
		lastWidth = 1
	}

	lines := make([]string, s.Lines)
	for i := range lines {
		w := s.Width
		if i == s.Lines-1 && s.Lines > 1 {
			w = lastWidth
		}
		lines[i] = style.Render(strings.Repeat("░", w)) + strings.Repeat(" ", s.Width-w)
	}

	return strings.Join(lines, "\n")
}
