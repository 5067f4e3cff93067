/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package app provides the view state and its request lifecycle transitions.
package app

import (
	"strings"
	"sync"

	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Mode selects which view is active.
type Mode int

const (
	ModeSearch Mode = iota
	ModeDataset
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeDataset:
		return "dataset"
	default:
		return "unknown"
	}
}

const (
	fallbackSearchError  = "Search failed"
	fallbackDatasetError = "Failed to load dataset"
)

// ViewState is a snapshot of everything the presentation layer renders.
// Result slices are replaced wholesale and never modified in place.
type ViewState struct {
	Mode           Mode
	QueryText      string
	SearchResults  []model.ImageResult
	DatasetImages  []model.ImageResult
	SearchLoading  bool
	DatasetLoading bool
	ErrorMessage   string // empty when there is no error
}

// HasError reports whether an error banner should be shown.
func (v ViewState) HasError() bool {
	return v.ErrorMessage != ""
}

// Loading reports whether the active mode has a request in flight.
func (v ViewState) Loading() bool {
	if v.Mode == ModeDataset {
		return v.DatasetLoading
	}
	return v.SearchLoading
}

// Request identifies one started lifecycle. Completions carrying an ID other
// than the latest one for their lifecycle are discarded.
type Request struct {
	ID    xid.ID
	Query string
}

// Store owns a ViewState and applies lifecycle transitions to it.
type Store struct {
	mu         sync.RWMutex
	state      ViewState
	searchReq  xid.ID
	datasetReq xid.ID
	log        zerolog.Logger
}

// NewStore creates a store in search mode with empty defaults.
func NewStore() *Store {
	return &Store{
		state: ViewState{Mode: ModeSearch},
		log:   logger.New("store"),
	}
}

// State returns a copy of the current view state.
func (s *Store) State() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetQuery replaces the query text.
func (s *Store) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.QueryText = text
}

// BeginSearch starts a search lifecycle for the current query text. It
// returns false and leaves the state untouched when the trimmed query is empty.
func (s *Store) BeginSearch() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.state.QueryText) == "" {
		return Request{}, false
	}

	req := Request{ID: xid.New(), Query: s.state.QueryText}
	s.searchReq = req.ID
	s.state.SearchLoading = true
	s.state.ErrorMessage = ""
	return req, true
}

// CompleteSearch applies the outcome of the search identified by id.
// It returns false if the completion was stale and ignored.
func (s *Store) CompleteSearch(id xid.ID, resp *model.SearchResponse, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.searchReq {
		s.log.Debug().Str("request_id", id.String()).Msg("Discarding stale search response")
		return false
	}

	s.state.SearchLoading = false
	if err != nil {
		s.state.SearchResults = nil
		s.state.ErrorMessage = errorMessage(err, fallbackSearchError)
		return true
	}

	s.state.SearchResults = nil
	if resp != nil {
		s.state.SearchResults = resp.Results
	}
	return true
}

// ShowDataset switches to dataset mode and starts a listing lifecycle.
// The mode change is immediate and independent of the request outcome.
func (s *Store) ShowDataset() Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := Request{ID: xid.New()}
	s.datasetReq = req.ID
	s.state.Mode = ModeDataset
	s.state.DatasetLoading = true
	s.state.ErrorMessage = ""
	return req
}

// CompleteDataset applies the outcome of the listing identified by id.
// It returns false if the completion was stale and ignored.
func (s *Store) CompleteDataset(id xid.ID, resp *model.ImagesResponse, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.datasetReq {
		s.log.Debug().Str("request_id", id.String()).Msg("Discarding stale dataset response")
		return false
	}

	s.state.DatasetLoading = false
	if err != nil {
		s.state.DatasetImages = nil
		s.state.ErrorMessage = errorMessage(err, fallbackDatasetError)
		return true
	}

	s.state.DatasetImages = nil
	if resp != nil {
		s.state.DatasetImages = resp.Images
	}
	return true
}

// ShowSearch switches back to search mode. No request is issued.
func (s *Store) ShowSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Mode = ModeSearch
}

func errorMessage(err error, fallback string) string {
	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
