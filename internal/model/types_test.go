/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"strings"
	"testing"
)

func TestSearchResponseDeserialization(t *testing.T) {
	input := `{
		"results": [
			{"image_url": "http://localhost:8080/static/images/7.jpg", "score": 1.25, "index": 3, "image_id": 7},
			{"image_url": "/i/1.jpg", "score": 0.987, "index": 0, "image_id": 1}
		],
		"query": "sunset"
	}`

	resp, err := DecodeSearchResponse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if resp.Query != "sunset" {
		t.Errorf("Query = %q, want \"sunset\"", resp.Query)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(resp.Results))
	}

	// Server order is preserved.
	if resp.Results[0].ImageID != 7 || resp.Results[1].ImageID != 1 {
		t.Errorf("order = [%d %d], want [7 1]", resp.Results[0].ImageID, resp.Results[1].ImageID)
	}
	if resp.Results[1].Score != 0.987 {
		t.Errorf("Score = %f, want 0.987", resp.Results[1].Score)
	}
	if resp.Results[0].Index != 3 {
		t.Errorf("Index = %d, want 3", resp.Results[0].Index)
	}
}

func TestImagesResponseWithoutScore(t *testing.T) {
	input := `{"images": [{"image_url": "/static/images/4.jpg", "index": 0, "image_id": 4}], "total": 1}`

	resp, err := DecodeImagesResponse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if resp.Total != 1 || len(resp.Images) != 1 {
		t.Fatalf("got total=%d len=%d, want 1/1", resp.Total, len(resp.Images))
	}
	if resp.Images[0].Score != 0 {
		t.Errorf("Score = %f, want 0 for listing entries", resp.Images[0].Score)
	}
}

func TestDecodeRejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "not-json"},
		{name: "results wrong type", input: `{"results": "cat", "query": "cat"}`},
		{name: "truncated", input: `{"results": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSearchResponse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestDecodeRejectsOversizedBody(t *testing.T) {
	body := `{"query":"` + strings.Repeat("a", MaxBodySize) + `"}`
	if _, err := DecodeSearchResponse(strings.NewReader(body)); err == nil {
		t.Fatal("expected size error")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		base string
		want string
	}{
		{"relative", "/i/1.jpg", "http://localhost:8080", "http://localhost:8080/i/1.jpg"},
		{"absolute", "http://cdn.test/x.jpg", "http://localhost:8080", "http://cdn.test/x.jpg"},
		{"no base", "/i/1.jpg", "", "/i/1.jpg"},
		{"empty", "", "http://localhost:8080", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImageResult{ImageURL: tt.url}.ResolveURL(tt.base)
			if got != tt.want {
				t.Errorf("ResolveURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
