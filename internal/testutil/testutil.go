/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package testutil provides a fake image search backend for tests.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// BaseURL is the origin served by FakeBackend.
const BaseURL = "http://imgsearch.test"

// SunsetBody is a one-result /search response.
const SunsetBody = `{"results":[{"image_id":1,"image_url":"/i/1.jpg","score":0.987,"index":0}],"query":"sunset"}`

// DatasetBody is a three-image /images response.
const DatasetBody = `{"images":[` +
	`{"image_url":"http://imgsearch.test/static/images/1.jpg","index":0,"image_id":1},` +
	`{"image_url":"http://imgsearch.test/static/images/2.jpg","index":1,"image_id":2},` +
	`{"image_url":"http://imgsearch.test/static/images/10.jpg","index":2,"image_id":10}` +
	`],"total":3}`

// Reply is a canned response for one endpoint.
type Reply struct {
	Status int
	Body   string
	Err    error // returned as a transport failure when set
}

// FakeBackend is an http.RoundTripper answering /search and /images on
// BaseURL's host. Every request is recorded.
type FakeBackend struct {
	mu       sync.Mutex
	Search   Reply
	Images   Reply
	requests []*http.Request
}

// NewFakeBackend returns a backend that answers both endpoints with 200.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Search: Reply{Status: http.StatusOK, Body: SunsetBody},
		Images: Reply{Status: http.StatusOK, Body: DatasetBody},
	}
}

// Client returns an *http.Client that routes through the fake.
func (f *FakeBackend) Client() *http.Client {
	return &http.Client{Transport: f}
}

// RoundTrip implements http.RoundTripper.
func (f *FakeBackend) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req.Clone(req.Context()))
	reply, ok := f.replyFor(req)
	f.mu.Unlock()

	if req.URL.Host != "imgsearch.test" {
		return nil, fmt.Errorf("unexpected host: %s", req.URL.Host)
	}
	if !ok {
		return response(http.StatusNotFound, "not found"), nil
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return response(reply.Status, reply.Body), nil
}

func (f *FakeBackend) replyFor(req *http.Request) (Reply, bool) {
	switch {
	case strings.HasSuffix(req.URL.Path, "/search"):
		return f.Search, true
	case strings.HasSuffix(req.URL.Path, "/images"):
		return f.Images, true
	default:
		return Reply{}, false
	}
}

// Requests returns the recorded requests in arrival order.
func (f *FakeBackend) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*http.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Calls counts recorded requests whose path ends with suffix.
func (f *FakeBackend) Calls(suffix string) int {
	n := 0
	for _, req := range f.Requests() {
		if strings.HasSuffix(req.URL.Path, suffix) {
			n++
		}
	}
	return n
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
