/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package web serves the image search client as server-rendered HTML.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/processor"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageTemplate    = "page.html"
	shutdownTimeout = 5 * time.Second
)

// Server renders search and dataset pages. Every request gets its own Store,
// so concurrent visitors never share view state.
type Server struct {
	backend processor.Backend
	opts    view.Options
	engine  *gin.Engine
	log     zerolog.Logger
}

// New creates a server that queries backend.
func New(backend processor.Backend, opts view.Options) *Server {
	s := &Server{
		backend: backend,
		opts:    opts,
		log:     logger.New("web"),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	r.GET("/", s.searchHandler)
	r.GET("/dataset", s.datasetHandler)
	r.GET("/healthz", s.healthHandler)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("Starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) searchHandler(c *gin.Context) {
	store := app.NewStore()
	store.SetQuery(c.Query("q"))
	processor.RunSearch(c.Request.Context(), s.backend, store)

	s.render(c, store)
}

func (s *Server) datasetHandler(c *gin.Context) {
	store := app.NewStore()
	processor.RunDataset(c.Request.Context(), s.backend, store)

	s.render(c, store)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": s.opts.BaseURL,
	})
}

func (s *Server) render(c *gin.Context, store *app.Store) {
	page := view.Build(store.State(), s.opts)
	if page.ErrorMessage != "" {
		s.log.Warn().Str("path", c.Request.URL.Path).Msg(page.ErrorMessage)
	}
	c.HTML(http.StatusOK, pageTemplate, page)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("Request")
	}
}
