/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/ijuttt/imgsearch/internal/processor"
	"github.com/ijuttt/imgsearch/internal/ui/render"
	"golang.org/x/term"
)

var isTerminalWriter = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func runSearch(ctx context.Context, stdout io.Writer, backend processor.Backend, base, query string, asJSON, color bool) error {
	store := app.NewStore()
	store.SetQuery(query)
	if !processor.RunSearch(ctx, backend, store) {
		return errors.New("missing query")
	}

	state := store.State()
	if state.HasError() {
		return errors.New(state.ErrorMessage)
	}

	results := resolved(state.SearchResults, base)
	if asJSON {
		return writeJSON(stdout, results)
	}
	for _, r := range results {
		score := strconv.FormatFloat(r.Score, 'f', 3, 64)
		_, _ = fmt.Fprintln(stdout, render.ResultLine(score, r.ImageURL, color))
	}
	return nil
}

func runImages(ctx context.Context, stdout io.Writer, backend processor.Backend, base string, asJSON, color bool) error {
	store := app.NewStore()
	processor.RunDataset(ctx, backend, store)

	state := store.State()
	if state.HasError() {
		return errors.New(state.ErrorMessage)
	}

	images := resolved(state.DatasetImages, base)
	if asJSON {
		return writeJSON(stdout, images)
	}
	for _, r := range images {
		_, _ = fmt.Fprintln(stdout, render.ResultLine(render.DatasetCaption(r.ImageID), r.ImageURL, color))
	}
	return nil
}

// resolved returns a copy of results with absolute image URLs.
func resolved(results []model.ImageResult, base string) []model.ImageResult {
	out := make([]model.ImageResult, len(results))
	for i, r := range results {
		r.ImageURL = r.ResolveURL(base)
		out[i] = r
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shouldUseColor(mode string, w io.Writer) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termEnv := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termEnv == "dumb" || termEnv == "" {
		return false
	}
	return isTerminalWriter(w)
}
