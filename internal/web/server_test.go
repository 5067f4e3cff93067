/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ijuttt/imgsearch/internal/api"
	"github.com/ijuttt/imgsearch/internal/testutil"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, fb *testutil.FakeBackend) *Server {
	t.Helper()
	client, err := api.New(testutil.BaseURL, api.WithHTTPClient(fb.Client()))
	require.NoError(t, err)
	return New(client, view.DefaultOptions(testutil.BaseURL))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchPage(t *testing.T) {
	fb := testutil.NewFakeBackend()
	rec := get(t, newTestServer(t, fb), "/?q=sunset")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>FAISS Image Search</title>")
	assert.Contains(t, body, "Score: 0.987")
	assert.Contains(t, body, `src="http://imgsearch.test/i/1.jpg"`)
	assert.Contains(t, body, `value="sunset"`)
	assert.Equal(t, 1, fb.Calls("/search"))
}

func TestSearchPageBlankQuery(t *testing.T) {
	fb := testutil.NewFakeBackend()
	rec := get(t, newTestServer(t, fb), "/?q=+++")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `placeholder="query goes here"`)
	assert.NotContains(t, rec.Body.String(), "Score:")
	assert.Empty(t, fb.Requests())
}

func TestDatasetPage(t *testing.T) {
	fb := testutil.NewFakeBackend()
	rec := get(t, newTestServer(t, fb), "/dataset")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "FAISS Image Search - Dataset")
	assert.Contains(t, body, "All Dataset Images (3 images)")
	assert.Contains(t, body, "Image 10.jpg")
	assert.Contains(t, body, `href="/"`)
}

func TestDatasetPageError(t *testing.T) {
	fb := testutil.NewFakeBackend()
	fb.Images = testutil.Reply{Status: http.StatusInternalServerError, Body: "boom"}
	rec := get(t, newTestServer(t, fb), "/dataset")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to fetch images: Internal Server Error")
	assert.Contains(t, body, "All Dataset Images (0 images)")
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t, testutil.NewFakeBackend()), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","backend":"http://imgsearch.test"}`, rec.Body.String())
}
