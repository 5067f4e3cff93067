/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package cli defines the imgsearch-view command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/ijuttt/imgsearch/internal/api"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/config"
	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/ui"
	"github.com/ijuttt/imgsearch/internal/ui/bubbletea"
	"github.com/ijuttt/imgsearch/internal/ui/gocui"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	"github.com/ijuttt/imgsearch/internal/web"
	"golang.org/x/term"
)

// Version is reported by --version.
var Version = "dev"

// ErrNotTerminal is returned by the tui command when stdin or stdout is not a TTY.
var ErrNotTerminal = errors.New("tui requires an interactive terminal")

var stdioIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// clientOptions are appended to every API client built from Globals.
var clientOptions []api.Option

type CLI struct {
	Globals Globals `embed:""`

	TUI    TUICmd    `cmd:"" default:"withargs" help:"Interactive search in the terminal."`
	Web    WebCmd    `cmd:"" help:"Serve the search UI over HTTP."`
	Search SearchCmd `cmd:"" help:"Search once and print scored image URLs."`
	Images ImagesCmd `cmd:"" help:"List every dataset image."`
}

type Globals struct {
	BaseURL string           `help:"Image search API origin." name:"base-url" env:"IMGSEARCH_BASE_URL" default:"${default_base_url}"`
	Timeout time.Duration    `help:"Per-request timeout (0 disables)." env:"IMGSEARCH_TIMEOUT" default:"0s"`
	LogFile string           `help:"Write tui logs to this file." name:"log-file" env:"IMGSEARCH_LOG_FILE" type:"path"`
	Color   string           `help:"Color output." enum:"auto,always,never" default:"auto"`
	Verbose int              `help:"Debug logging." short:"v" type:"counter"`
	Version kong.VersionFlag `help:"Show version."`
}

// Options returns the kong options shared by main and tests.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name(config.AppName),
		kong.Description("Thin client for a FAISS image search service."),
		kong.UsageOnError(),
		kong.Vars{
			"version":          Version,
			"default_base_url": config.DefaultBaseURL,
			"default_listen":   config.DefaultListenAddr,
		},
	}
}

func (g Globals) client() (*api.Client, string, error) {
	base, err := config.ParseBaseURL(g.BaseURL)
	if err != nil {
		return nil, "", err
	}
	opts := append([]api.Option{api.WithTimeout(g.Timeout)}, clientOptions...)
	client, err := api.New(base, opts...)
	if err != nil {
		return nil, "", err
	}
	return client, base, nil
}

// setupLogging points the global logger at out.
func (g Globals) setupLogging(out io.Writer) {
	logger.Configure(out, g.Verbose > 0)
}

// setupFileLogging sends logs to LogFile, or discards them when unset.
func (g Globals) setupFileLogging() (io.Closer, error) {
	if g.LogFile == "" {
		logger.Configure(io.Discard, g.Verbose > 0)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Configure(f, g.Verbose > 0)
	return f, nil
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

type TUICmd struct {
	UI string `help:"Terminal UI backend." enum:"bubbletea,gocui" default:"bubbletea"`

	Query []string `arg:"" optional:"" name:"query" help:"Initial query."`
}

func (c *TUICmd) Run(ctx context.Context, g *Globals) error {
	if !stdioIsTerminal() {
		return ErrNotTerminal
	}

	closer, err := g.setupFileLogging()
	if err != nil {
		return err
	}
	defer closer.Close()

	client, base, err := g.client()
	if err != nil {
		return err
	}

	store := app.NewStore()
	store.SetQuery(strings.TrimSpace(strings.Join(c.Query, " ")))

	u, err := c.newUI(ctx, store, client, view.DefaultOptions(base))
	if err != nil {
		return err
	}
	defer u.Close()

	if err := u.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func (c *TUICmd) newUI(ctx context.Context, store *app.Store, client *api.Client, opts view.Options) (ui.UI, error) {
	if c.UI == "gocui" {
		a, err := gocui.New(ctx, store, client, opts)
		if err != nil {
			return nil, fmt.Errorf("starting gocui: %w", err)
		}
		return a, nil
	}
	return bubbletea.NewProgram(ctx, store, client, opts), nil
}

type WebCmd struct {
	Listen string `help:"Listen address." env:"IMGSEARCH_LISTEN" default:"${default_listen}"`
}

func (c *WebCmd) Run(ctx context.Context, g *Globals, k *kong.Context) error {
	g.setupLogging(k.Stderr)

	client, base, err := g.client()
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	return web.New(client, view.DefaultOptions(base)).Run(ctx, c.Listen)
}

type SearchCmd struct {
	JSON bool `help:"Emit JSON array of results."`

	Query []string `arg:"" name:"query" help:"Search query."`
}

func (c *SearchCmd) Run(ctx context.Context, g *Globals, k *kong.Context) error {
	g.setupLogging(k.Stderr)

	query := strings.TrimSpace(strings.Join(c.Query, " "))
	if query == "" {
		return errors.New("missing query")
	}

	client, base, err := g.client()
	if err != nil {
		return err
	}
	return runSearch(ctx, k.Stdout, client, base, query, c.JSON, shouldUseColor(g.Color, k.Stdout))
}

type ImagesCmd struct {
	JSON bool `help:"Emit JSON array of images."`
}

func (c *ImagesCmd) Run(ctx context.Context, g *Globals, k *kong.Context) error {
	g.setupLogging(k.Stderr)

	client, base, err := g.client()
	if err != nil {
		return err
	}
	return runImages(ctx, k.Stdout, client, base, c.JSON, shouldUseColor(g.Color, k.Stdout))
}
