/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package model provides data types for the image search API payloads.
package model

// ImageResult is a single image as returned by the search and listing endpoints.
// Values are treated as immutable once received.
type ImageResult struct {
	ImageURL string  `json:"image_url"`
	Score    float64 `json:"score"` // absent on /images, decodes to 0
	Index    int     `json:"index"`
	ImageID  int     `json:"image_id"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Results []ImageResult `json:"results"` // server-defined rank order
	Query   string        `json:"query"`
}

// ImagesResponse is the body of GET /images.
type ImagesResponse struct {
	Images []ImageResult `json:"images"`
	Total  int           `json:"total"`
}
