/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package processor

import (
	"context"
	"testing"

	"github.com/ijuttt/imgsearch/internal/api"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/testutil"
)

func newBackend(t *testing.T) (*api.Client, *testutil.FakeBackend) {
	t.Helper()
	fake := testutil.NewFakeBackend()
	c, err := api.New(testutil.BaseURL, api.WithHTTPClient(fake.Client()))
	if err != nil {
		t.Fatalf("api.New failed: %v", err)
	}
	return c, fake
}

func TestSearchCmdCarriesRequest(t *testing.T) {
	client, fake := newBackend(t)
	store := app.NewStore()
	store.SetQuery("sunset")
	req, _ := store.BeginSearch()

	msg, ok := SearchCmd(context.Background(), client, req)().(SearchResultMsg)
	if !ok {
		t.Fatal("expected SearchResultMsg")
	}
	if msg.RequestID != req.ID || msg.Query != "sunset" {
		t.Errorf("msg = %+v, want request %s", msg, req.ID)
	}
	if msg.Err != nil || msg.Response == nil || len(msg.Response.Results) != 1 {
		t.Fatalf("unexpected result: %+v", msg)
	}
	if got := fake.Requests()[0].Header.Get(api.RequestIDHeader); got != req.ID.String() {
		t.Errorf("X-Request-ID = %q, want %q", got, req.ID.String())
	}
}

func TestRunSearchSkipsBlankQuery(t *testing.T) {
	client, fake := newBackend(t)
	store := app.NewStore()
	store.SetQuery("   ")

	if RunSearch(context.Background(), client, store) {
		t.Fatal("blank query should not run")
	}
	if n := len(fake.Requests()); n != 0 {
		t.Errorf("issued %d requests, want 0", n)
	}
}

func TestRunSearchOneRequestPerTrigger(t *testing.T) {
	client, fake := newBackend(t)
	store := app.NewStore()
	store.SetQuery("sunset")

	if !RunSearch(context.Background(), client, store) {
		t.Fatal("expected search to run")
	}
	if n := fake.Calls("/search"); n != 1 {
		t.Errorf("issued %d searches, want 1", n)
	}

	st := store.State()
	if st.SearchLoading || len(st.SearchResults) != 1 || st.SearchResults[0].Score != 0.987 {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestRunDatasetFailure(t *testing.T) {
	client, fake := newBackend(t)
	fake.Images = testutil.Reply{Status: 500}
	store := app.NewStore()

	RunDataset(context.Background(), client, store)

	st := store.State()
	if st.Mode != app.ModeDataset {
		t.Errorf("Mode = %v, want dataset", st.Mode)
	}
	if st.ErrorMessage != "Failed to fetch images: Internal Server Error" {
		t.Errorf("ErrorMessage = %q", st.ErrorMessage)
	}
	if len(st.DatasetImages) != 0 || st.DatasetLoading {
		t.Errorf("unexpected state: %+v", st)
	}
}
