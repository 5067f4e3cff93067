/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/imgsearch/internal/ui/styles"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	"github.com/ijuttt/imgsearch/internal/ui/widgets"
)

// -----------------------------------------------------------------------------
// Key Bindings (local to avoid import cycle)
// -----------------------------------------------------------------------------

var (
	keyUp = key.NewBinding(
		key.WithKeys("up"),
	)
	keyDown = key.NewBinding(
		key.WithKeys("down"),
	)
	keyPageUp = key.NewBinding(
		key.WithKeys("pgup"),
	)
	keyPageDown = key.NewBinding(
		key.WithKeys("pgdown"),
	)
)

// -----------------------------------------------------------------------------
// Grid Component
// -----------------------------------------------------------------------------

const (
	// CardWidth is the outer width of one card including its border.
	CardWidth = 30
	// CardHeight is the outer height of one card including its border.
	CardHeight = 4
	cardGap    = 1
)

// Grid lays out image items as cards in rows.
type Grid struct {
	items     []view.Item
	title     string
	emptyText string
	width     int
	height    int
	focused   bool
	scrollRow int
}

// NewGrid creates an empty grid.
func NewGrid() Grid {
	return Grid{
		title:     "Results",
		emptyText: "No images",
	}
}

// SetItems replaces the grid content, keeping the scroll position in range.
func (g *Grid) SetItems(items []view.Item) {
	g.items = items
	g.clampScroll()
}

// SetTitle sets the title embedded in the panel border.
func (g *Grid) SetTitle(title string) {
	g.title = title
}

// SetEmptyText sets the text shown when there are no items.
func (g *Grid) SetEmptyText(text string) {
	g.emptyText = text
}

// SetSize updates the component dimensions.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.clampScroll()
}

// SetFocused sets the focus state.
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// ResetScroll scrolls back to the first row.
func (g *Grid) ResetScroll() {
	g.scrollRow = 0
}

// ScrollRow returns the first visible row.
func (g Grid) ScrollRow() int {
	return g.scrollRow
}

// Columns returns how many cards fit side by side.
func (g Grid) Columns() int {
	inner := g.width - 4 // border + padding
	cols := (inner + cardGap) / (CardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Rows returns the number of card rows needed for all items.
func (g Grid) Rows() int {
	cols := g.Columns()
	return (len(g.items) + cols - 1) / cols
}

func (g Grid) visibleRows() int {
	rows := (g.height - 2) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *Grid) clampScroll() {
	maxScroll := g.Rows() - g.visibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.scrollRow > maxScroll {
		g.scrollRow = maxScroll
	}
	if g.scrollRow < 0 {
		g.scrollRow = 0
	}
}

// Update handles scrolling keys.
func (g *Grid) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			g.scrollRow--
		case key.Matches(msg, keyDown):
			g.scrollRow++
		case key.Matches(msg, keyPageUp):
			g.scrollRow -= g.visibleRows()
		case key.Matches(msg, keyPageDown):
			g.scrollRow += g.visibleRows()
		}
		g.clampScroll()
	}
	return nil
}

// View renders the grid.
func (g Grid) View() string {
	title := g.title
	if len(g.items) > 0 {
		title = fmt.Sprintf("%s (%d)", g.title, len(g.items))
	}

	if len(g.items) == 0 {
		return styles.TitledPanel(title, styles.DimItemStyle.Render(g.emptyText), g.width, g.focused)
	}

	cols := g.Columns()
	first := g.scrollRow
	last := first + g.visibleRows()
	if last > g.Rows() {
		last = g.Rows()
	}

	var rows []string
	for row := first; row < last; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(g.items) {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(g.items[idx]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if last < g.Rows() {
		more := len(g.items) - last*cols
		content += "\n" + styles.DimItemStyle.Render(fmt.Sprintf("... and %d more", more))
	}

	return styles.TitledPanel(title, content, g.width, g.focused)
}

// renderCard renders one item as a bordered card.
func renderCard(item view.Item) string {
	inner := CardWidth - 2

	if item.Skeleton {
		return styles.SkeletonCardStyle.
			Width(inner).
			Render(widgets.NewSkeleton(inner).Render())
	}

	ref := styles.ImageRefStyle.Render(truncateLeft(item.ImageURL, inner))
	caption := styles.CaptionStyle.Render(truncateToWidth(item.Caption, inner))
	return styles.CardStyle.
		Width(inner).
		Render(ref + "\n" + caption)
}

// truncateToWidth truncates a string to fit within maxWidth, accounting for ANSI codes.
func truncateToWidth(s string, maxWidth int) string {
	w := lipgloss.Width(s)
	if w <= maxWidth {
		return s
	}

	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(s)
}

// truncateLeft keeps the tail of s, where URLs carry the file name.
func truncateLeft(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return string(runes[len(runes)-maxWidth:])
	}
	return "…" + string(runes[len(runes)-maxWidth+1:])
}
