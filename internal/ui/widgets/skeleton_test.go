/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSkeletonRender(t *testing.T) {
	out := NewSkeleton(10).Render()
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
	if strings.Count(lines[0], "░") != 10 {
		t.Errorf("first line not fully shaded: %q", lines[0])
	}
	if strings.Count(lines[1], "░") != 6 {
		t.Errorf("caption line shade = %d, want 6", strings.Count(lines[1], "░"))
	}
}

func TestSkeletonEmpty(t *testing.T) {
	if out := (Skeleton{Width: 0, Lines: 2}).Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
