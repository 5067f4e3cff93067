/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/imgsearch/internal/ui/render"
	"github.com/ijuttt/imgsearch/internal/ui/styles"
)

// SearchBar is the query input plus the search button.
type SearchBar struct {
	input    textinput.Model
	width    int
	disabled bool
}

// NewSearchBar creates a focused, empty search bar.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = render.QueryPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	return SearchBar{input: ti}
}

// Value returns the current input text.
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text.
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetDisabled greys out the button.
func (s *SearchBar) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether the button is disabled.
func (s SearchBar) Disabled() bool {
	return s.disabled
}

// SetWidth updates the total width available to input and button.
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	buttonWidth := lipgloss.Width(s.button())
	inputWidth := width - buttonWidth - 1 - 4 - lipgloss.Width(s.input.Prompt)
	if inputWidth < 10 {
		inputWidth = 10
	}
	s.input.Width = inputWidth
}

// Update forwards editing keys to the input.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the search bar.
func (s SearchBar) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.InputStyle.Render(s.input.View()),
		" ",
		s.button(),
	)
}

func (s SearchBar) button() string {
	if s.disabled {
		return styles.ButtonDisabledStyle.Render(render.SearchButtonLabel)
	}
	return styles.ButtonStyle.Render(render.SearchButtonLabel)
}
