/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package styles provides Lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	ColorPrimary   = lipgloss.Color("39")  // Deep Sky Blue
	ColorSecondary = lipgloss.Color("238") // Dark Gray (Borders)
	ColorAccent    = lipgloss.Color("201") // Magenta
	ColorSuccess   = lipgloss.Color("46")  // Green
	ColorDanger    = lipgloss.Color("196") // Bright Red
	ColorMuted     = lipgloss.Color("60")  // Cool Gray
	ColorSkeleton  = lipgloss.Color("240") // Dark Gray (placeholders)

	// Text colors
	ColorText        = lipgloss.Color("255")
	ColorTextDim     = lipgloss.Color("246")
	ColorBlack       = lipgloss.Color("16")
	ColorStatusBarBg = lipgloss.Color("235")
	ColorBannerBg    = lipgloss.Color("52") // Dark red
)

// -----------------------------------------------------------------------------
// Panel Styles
// -----------------------------------------------------------------------------

var (
	// BasePanelStyle is the foundation style for the results panel.
	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// ActivePanelStyle is used while the panel owns scrolling keys.
	ActivePanelStyle = BasePanelStyle.
				BorderForeground(ColorPrimary)

	// PanelTitleStyle styles the application header.
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	// LinkStyle styles navigation hints next to the header.
	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Underline(true)

	// HeadingStyle styles the dataset count heading.
	HeadingStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Card Styles
// -----------------------------------------------------------------------------

var (
	// CardStyle frames a single image item.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSecondary)

	// SkeletonCardStyle frames a placeholder item.
	SkeletonCardStyle = CardStyle.
				BorderForeground(ColorSkeleton)

	// ImageRefStyle is for the image URL line.
	ImageRefStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CaptionStyle is for the caption under each image.
	CaptionStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// DimItemStyle is for less important text.
	DimItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Input Styles
// -----------------------------------------------------------------------------

var (
	// InputStyle frames the query input.
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// ButtonStyle is the enabled search button.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 2).
			MarginTop(1)

	// ButtonDisabledStyle is the search button while a search is in flight.
	ButtonDisabledStyle = ButtonStyle.
				Foreground(ColorTextDim).
				Background(ColorSecondary).
				Bold(false)
)

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// LoadingStyle is for loading indicators.
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// ErrorBannerStyle is the full-width error banner.
	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBannerBg).
				Bold(true).
				Padding(0, 1)
)
