/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import "net/url"

// ResolveURL returns the image URL as an absolute URL. Relative URLs are
// resolved against base; absolute URLs and unparsable input are returned as-is.
func (r ImageResult) ResolveURL(base string) string {
	if r.ImageURL == "" || base == "" {
		return r.ImageURL
	}

	ref, err := url.Parse(r.ImageURL)
	if err != nil || ref.IsAbs() {
		return r.ImageURL
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return r.ImageURL
	}

	return baseURL.ResolveReference(ref).String()
}
