/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration constants and base URL handling for imgsearch-view.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "imgsearch-view"

	// DefaultBaseURL is the origin of the image search API.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultListenAddr is where the browser UI listens.
	DefaultListenAddr = ":5173"

	// DefaultTimeout disables per-request timeouts.
	DefaultTimeout time.Duration = 0
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	// SearchSkeletonCount is the number of placeholders shown while a search is in flight.
	SearchSkeletonCount = 6

	// DatasetSkeletonCount is the number of placeholders shown while the dataset loads.
	DatasetSkeletonCount = 31
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvBaseURL overrides DefaultBaseURL.
	EnvBaseURL = "IMGSEARCH_BASE_URL"

	// EnvTimeout sets a per-request timeout (Go duration syntax).
	EnvTimeout = "IMGSEARCH_TIMEOUT"

	// EnvListenAddr overrides DefaultListenAddr.
	EnvListenAddr = "IMGSEARCH_LISTEN"

	// EnvLogFile names the log file used by the terminal UI.
	EnvLogFile = "IMGSEARCH_LOG_FILE"
)

// -----------------------------------------------------------------------------
// Base URL
// -----------------------------------------------------------------------------

// ParseBaseURL validates raw as an http(s) origin and returns it without a
// trailing slash. An empty value yields DefaultBaseURL.
func ParseBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing host", raw)
	}

	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
