/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import "github.com/ijuttt/imgsearch/internal/ui/styles"

// ErrorBanner renders msg as a full-width banner, or "" when msg is empty.
func ErrorBanner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	style := styles.ErrorBannerStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render("✗ " + msg)
}
