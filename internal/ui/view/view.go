/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package view turns a ViewState into the visual tree every surface renders.
// Build is pure: it never mutates the state it is given.
package view

import (
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/config"
	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/ijuttt/imgsearch/internal/ui/render"
)

// Options controls layout constants and URL resolution.
type Options struct {
	BaseURL          string
	SearchSkeletons  int
	DatasetSkeletons int
}

// DefaultOptions returns the standard skeleton counts for baseURL.
func DefaultOptions(baseURL string) Options {
	return Options{
		BaseURL:          baseURL,
		SearchSkeletons:  config.SearchSkeletonCount,
		DatasetSkeletons: config.DatasetSkeletonCount,
	}
}

// Item is one grid cell: either a loaded image or a skeleton placeholder.
type Item struct {
	Key      int
	ImageURL string
	Alt      string
	Caption  string
	Skeleton bool
}

// Page is the complete visual tree for one frame.
type Page struct {
	Mode           app.Mode
	Title          string
	NavLabel       string
	Heading        string // dataset mode only
	Query          string
	Placeholder    string
	ButtonLabel    string
	ButtonDisabled bool
	Loading        bool
	ErrorMessage   string
	Items          []Item
}

// IsDataset reports whether the page renders the dataset view.
func (p Page) IsDataset() bool {
	return p.Mode == app.ModeDataset
}

// Build renders s into a Page.
func Build(s app.ViewState, opts Options) Page {
	if s.Mode == app.ModeDataset {
		return buildDataset(s, opts)
	}
	return buildSearch(s, opts)
}

func buildSearch(s app.ViewState, opts Options) Page {
	p := Page{
		Mode:           app.ModeSearch,
		Title:          render.SearchTitle,
		NavLabel:       render.DatasetLinkLabel,
		Query:          s.QueryText,
		Placeholder:    render.QueryPlaceholder,
		ButtonLabel:    render.SearchButtonLabel,
		ButtonDisabled: s.SearchLoading,
		Loading:        s.SearchLoading,
		ErrorMessage:   s.ErrorMessage,
	}

	if s.SearchLoading {
		p.Items = skeletons(opts.SearchSkeletons)
		return p
	}

	p.Items = make([]Item, 0, len(s.SearchResults))
	for _, r := range s.SearchResults {
		p.Items = append(p.Items, Item{
			Key:      r.ImageID,
			ImageURL: r.ResolveURL(opts.BaseURL),
			Alt:      render.SearchAlt(r),
			Caption:  render.Score(r.Score),
		})
	}
	return p
}

func buildDataset(s app.ViewState, opts Options) Page {
	p := Page{
		Mode:         app.ModeDataset,
		Title:        render.DatasetTitle,
		NavLabel:     render.BackLinkLabel,
		Heading:      render.DatasetHeading(len(s.DatasetImages)),
		Loading:      s.DatasetLoading,
		ErrorMessage: s.ErrorMessage,
	}

	if s.DatasetLoading {
		p.Items = skeletons(opts.DatasetSkeletons)
		return p
	}

	p.Items = make([]Item, 0, len(s.DatasetImages))
	for _, r := range s.DatasetImages {
		p.Items = append(p.Items, datasetItem(r, opts.BaseURL))
	}
	return p
}

func datasetItem(r model.ImageResult, baseURL string) Item {
	return Item{
		Key:      r.ImageID,
		ImageURL: r.ResolveURL(baseURL),
		Alt:      render.DatasetAlt(r),
		Caption:  render.DatasetCaption(r.ImageID),
	}
}

func skeletons(n int) []Item {
	if n < 0 {
		n = 0
	}
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Key: i, Skeleton: true}
	}
	return items
}
