/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package processor runs backend requests for the view state lifecycles.
package processor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/imgsearch/internal/api"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/rs/xid"
)

// Backend is the subset of the API client the lifecycles need.
type Backend interface {
	Search(ctx context.Context, query string) (*model.SearchResponse, error)
	ListAll(ctx context.Context) (*model.ImagesResponse, error)
}

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// SearchResultMsg is sent when a search request has finished.
type SearchResultMsg struct {
	RequestID xid.ID
	Query     string
	Response  *model.SearchResponse
	Err       error
}

// DatasetResultMsg is sent when the dataset listing has finished.
type DatasetResultMsg struct {
	RequestID xid.ID
	Response  *model.ImagesResponse
	Err       error
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// SearchCmd creates a command that runs req's search off the render path.
func SearchCmd(ctx context.Context, backend Backend, req app.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := backend.Search(api.WithRequestID(ctx, req.ID.String()), req.Query)
		return SearchResultMsg{
			RequestID: req.ID,
			Query:     req.Query,
			Response:  resp,
			Err:       err,
		}
	}
}

// ListImagesCmd creates a command that fetches the dataset listing.
func ListImagesCmd(ctx context.Context, backend Backend, req app.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := backend.ListAll(api.WithRequestID(ctx, req.ID.String()))
		return DatasetResultMsg{
			RequestID: req.ID,
			Response:  resp,
			Err:       err,
		}
	}
}

// -----------------------------------------------------------------------------
// Synchronous lifecycles
// -----------------------------------------------------------------------------

// RunSearch triggers a search on store and blocks until it completes.
// It returns false without any network call when the query is blank.
func RunSearch(ctx context.Context, backend Backend, store *app.Store) bool {
	req, ok := store.BeginSearch()
	if !ok {
		return false
	}
	msg := SearchCmd(ctx, backend, req)().(SearchResultMsg)
	store.CompleteSearch(msg.RequestID, msg.Response, msg.Err)
	return true
}

// RunDataset switches store to dataset mode and blocks until the listing completes.
func RunDataset(ctx context.Context, backend Backend, store *app.Store) {
	req := store.ShowDataset()
	msg := ListImagesCmd(ctx, backend, req)().(DatasetResultMsg)
	store.CompleteDataset(msg.RequestID, msg.Response, msg.Err)
}
