/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package api is the HTTP client for the image search backend.
package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ijuttt/imgsearch/internal/config"
	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/model"
	"github.com/rs/zerolog"
)

// Client issues the two read-only backend calls. It is safe for concurrent use.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	normalized, err := config.ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(normalized)
	if err != nil {
		return nil, err
	}

	c := &Client{
		base:       base,
		httpClient: newHTTPClient(),
		log:        logger.New("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newHTTPClient bounds connection setup only; the overall request is
// unbounded unless WithTimeout is used.
func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 7 * time.Second
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 5 * time.Minute

	return &http.Client{Transport: transport}
}

// BaseURL returns the normalized API origin.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Search runs GET /search?q=<query>.
func (c *Client) Search(ctx context.Context, query string) (*model.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)

	var out *model.SearchResponse
	err := c.get(ctx, OpSearch, "/search", params, func(body io.Reader) error {
		resp, err := model.DecodeSearchResponse(body)
		out = resp
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll runs GET /images.
func (c *Client) ListAll(ctx context.Context) (*model.ImagesResponse, error) {
	var out *model.ImagesResponse
	err := c.get(ctx, OpListAll, "/images", nil, func(body io.Reader) error {
		resp, err := model.DecodeImagesResponse(body)
		out = resp
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = ""
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, op Op, path string, params url.Values, decode func(io.Reader) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL := c.endpoint(path, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.AppName)

	requestID := RequestID(ctx)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	c.log.Debug().
		Str("op", string(op)).
		Str("url", reqURL).
		Str("request_id", requestID).
		Send()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", string(op)).Str("request_id", requestID).Msg("Request failed")
		return &TransportError{Op: op, Err: unwrapURLError(err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().
			Str("op", string(op)).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Msg("Unexpected HTTP status")
		return &HTTPStatusError{Op: op, StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	if err := decode(resp.Body); err != nil {
		c.log.Warn().Err(err).Str("op", string(op)).Str("request_id", requestID).Msg("Malformed response")
		return &ParseError{Op: op, Err: err}
	}

	return nil
}

// unwrapURLError drops the "Get <url>:" wrapper so the user sees the cause.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
