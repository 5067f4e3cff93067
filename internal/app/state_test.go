/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/rs/xid"
)

var sunset = []model.ImageResult{
	{ImageID: 1, ImageURL: "/i/1.jpg", Score: 0.987, Index: 0},
	{ImageID: 9, ImageURL: "/i/9.jpg", Score: 1.2, Index: 4},
}

func TestNewStoreDefaults(t *testing.T) {
	st := NewStore().State()

	if st.Mode != ModeSearch {
		t.Errorf("Mode = %v, want search", st.Mode)
	}
	if st.QueryText != "" || st.SearchLoading || st.DatasetLoading || st.HasError() {
		t.Errorf("unexpected non-empty defaults: %+v", st)
	}
	if len(st.SearchResults) != 0 || len(st.DatasetImages) != 0 {
		t.Errorf("expected empty result sequences")
	}
}

func TestBeginSearchIgnoresBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		s := NewStore()
		s.SetQuery(q)
		before := s.State()

		if _, ok := s.BeginSearch(); ok {
			t.Errorf("BeginSearch(%q) started a request", q)
		}
		if !reflect.DeepEqual(before, s.State()) {
			t.Errorf("BeginSearch(%q) changed state", q)
		}
	}
}

func TestSearchLifecycleSuccess(t *testing.T) {
	s := NewStore()
	s.SetQuery("sunset")

	req, ok := s.BeginSearch()
	if !ok {
		t.Fatal("expected search to start")
	}
	if req.Query != "sunset" {
		t.Errorf("Query = %q, want sunset", req.Query)
	}

	st := s.State()
	if !st.SearchLoading || !st.Loading() {
		t.Fatal("expected SearchLoading")
	}

	if !s.CompleteSearch(req.ID, &model.SearchResponse{Results: sunset, Query: "sunset"}, nil) {
		t.Fatal("completion was treated as stale")
	}

	st = s.State()
	if st.SearchLoading {
		t.Error("SearchLoading still set")
	}
	if !reflect.DeepEqual(st.SearchResults, sunset) {
		t.Errorf("SearchResults = %+v, want %+v", st.SearchResults, sunset)
	}
	if st.HasError() {
		t.Errorf("unexpected error %q", st.ErrorMessage)
	}
}

func TestSearchLifecycleFailure(t *testing.T) {
	s := NewStore()
	s.SetQuery("cat")
	req, _ := s.BeginSearch()
	s.CompleteSearch(req.ID, &model.SearchResponse{Results: sunset}, nil)

	req, _ = s.BeginSearch()
	s.CompleteSearch(req.ID, nil, errors.New("Search failed: Internal Server Error"))

	st := s.State()
	if st.ErrorMessage != "Search failed: Internal Server Error" {
		t.Errorf("ErrorMessage = %q", st.ErrorMessage)
	}
	if len(st.SearchResults) != 0 {
		t.Errorf("SearchResults not cleared: %+v", st.SearchResults)
	}
}

func TestErrorClearedOnNewRequest(t *testing.T) {
	s := NewStore()
	s.SetQuery("cat")
	req, _ := s.BeginSearch()
	s.CompleteSearch(req.ID, nil, errors.New("boom"))

	s.BeginSearch()
	if s.State().HasError() {
		t.Error("error not cleared at search start")
	}

	req, _ = s.BeginSearch()
	s.CompleteSearch(req.ID, nil, errors.New("boom"))
	s.ShowDataset()
	if s.State().HasError() {
		t.Error("error not cleared at dataset start")
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	s := NewStore()
	s.SetQuery("cat")
	req, _ := s.BeginSearch()
	s.CompleteSearch(req.ID, nil, errors.New(""))
	if got := s.State().ErrorMessage; got != fallbackSearchError {
		t.Errorf("ErrorMessage = %q, want %q", got, fallbackSearchError)
	}

	dreq := s.ShowDataset()
	s.CompleteDataset(dreq.ID, nil, errors.New(" "))
	if got := s.State().ErrorMessage; got != fallbackDatasetError {
		t.Errorf("ErrorMessage = %q, want %q", got, fallbackDatasetError)
	}
}

func TestShowDatasetIsSynchronous(t *testing.T) {
	s := NewStore()
	req := s.ShowDataset()

	st := s.State()
	if st.Mode != ModeDataset {
		t.Fatalf("Mode = %v, want dataset before completion", st.Mode)
	}
	if !st.DatasetLoading || !st.Loading() {
		t.Fatal("expected DatasetLoading")
	}

	images := []model.ImageResult{{ImageID: 3, ImageURL: "/static/images/3.jpg"}}
	s.CompleteDataset(req.ID, &model.ImagesResponse{Images: images, Total: 1}, nil)

	st = s.State()
	if st.DatasetLoading {
		t.Error("DatasetLoading still set")
	}
	if !reflect.DeepEqual(st.DatasetImages, images) {
		t.Errorf("DatasetImages = %+v", st.DatasetImages)
	}
}

func TestDatasetFailure(t *testing.T) {
	s := NewStore()
	req := s.ShowDataset()
	s.CompleteDataset(req.ID, nil, errors.New("Failed to fetch images: Internal Server Error"))

	st := s.State()
	if st.ErrorMessage != "Failed to fetch images: Internal Server Error" {
		t.Errorf("ErrorMessage = %q", st.ErrorMessage)
	}
	if len(st.DatasetImages) != 0 {
		t.Error("DatasetImages not cleared")
	}
	if st.Mode != ModeDataset {
		t.Error("failure must not leave dataset mode")
	}
}

func TestShowSearchIsPureTransition(t *testing.T) {
	s := NewStore()
	req := s.ShowDataset()
	s.CompleteDataset(req.ID, &model.ImagesResponse{Images: sunset}, nil)

	s.ShowSearch()
	st := s.State()
	if st.Mode != ModeSearch {
		t.Errorf("Mode = %v, want search", st.Mode)
	}
	if len(st.DatasetImages) != len(sunset) {
		t.Error("dataset images should survive a mode switch")
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	s := NewStore()
	s.SetQuery("first")
	first, _ := s.BeginSearch()
	s.SetQuery("second")
	second, _ := s.BeginSearch()

	latest := []model.ImageResult{{ImageID: 2}}
	if !s.CompleteSearch(second.ID, &model.SearchResponse{Results: latest}, nil) {
		t.Fatal("latest completion rejected")
	}
	if s.CompleteSearch(first.ID, &model.SearchResponse{Results: sunset}, nil) {
		t.Fatal("stale completion accepted")
	}

	st := s.State()
	if !reflect.DeepEqual(st.SearchResults, latest) {
		t.Errorf("SearchResults = %+v, want latest", st.SearchResults)
	}

	// A stale completion must not clear the loading flag of a newer request.
	third, _ := s.BeginSearch()
	s.CompleteSearch(second.ID, nil, errors.New("late"))
	if !s.State().SearchLoading || s.State().HasError() {
		t.Error("stale failure touched the in-flight request")
	}
	s.CompleteSearch(third.ID, nil, nil)

	if s.CompleteDataset(xid.New(), nil, nil) {
		t.Error("unknown dataset id accepted")
	}
}

func TestRepeatedSearchIsIdempotent(t *testing.T) {
	s := NewStore()
	s.SetQuery("sunset")

	for i := 0; i < 2; i++ {
		req, _ := s.BeginSearch()
		s.CompleteSearch(req.ID, &model.SearchResponse{Results: sunset}, nil)
	}

	if !reflect.DeepEqual(s.State().SearchResults, sunset) {
		t.Error("repeated search changed the outcome")
	}
}

func TestModeString(t *testing.T) {
	if ModeSearch.String() != "search" || ModeDataset.String() != "dataset" {
		t.Error("unexpected mode names")
	}
}
