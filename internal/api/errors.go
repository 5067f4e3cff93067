/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package api

import (
	"net/http"
	"strconv"
	"strings"
)

// Op identifies which endpoint a failure belongs to.
type Op string

const (
	OpSearch  Op = "search"
	OpListAll Op = "images"
)

// FailurePrefix is the user-facing prefix for failures of this operation.
func (o Op) FailurePrefix() string {
	if o == OpSearch {
		return "Search failed"
	}
	return "Failed to fetch images"
}

// TransportError means the request never produced a response.
type TransportError struct {
	Op  Op
	Err error
}

func (e *TransportError) Error() string {
	return e.Op.FailurePrefix() + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is a non-2xx response.
type HTTPStatusError struct {
	Op         Op
	StatusCode int
	StatusText string
}

func (e *HTTPStatusError) Error() string {
	return e.Op.FailurePrefix() + ": " + e.StatusText
}

// ParseError means the body did not match the expected shape.
type ParseError struct {
	Op  Op
	Err error
}

func (e *ParseError) Error() string {
	return e.Op.FailurePrefix() + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// statusText extracts the reason phrase from resp.Status ("500 Internal
// Server Error" -> "Internal Server Error").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
