/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodySize is the maximum accepted response body size (16 MiB).
const MaxBodySize = 16 * 1024 * 1024

// DecodeSearchResponse reads and parses a /search response body.
func DecodeSearchResponse(r io.Reader) (*SearchResponse, error) {
	var resp SearchResponse
	if err := decodeBody(r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecodeImagesResponse reads and parses an /images response body.
func DecodeImagesResponse(r io.Reader) (*ImagesResponse, error) {
	var resp ImagesResponse
	if err := decodeBody(r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func decodeBody(r io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return fmt.Errorf("cannot read body: %w", err)
	}

	if len(data) > MaxBodySize {
		return fmt.Errorf("body exceeds maximum size (%d bytes)", MaxBodySize)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse JSON: %w", err)
	}

	return nil
}
