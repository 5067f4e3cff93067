/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gocui provides the gocui-based TUI implementation.
package gocui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/processor"
	"github.com/ijuttt/imgsearch/internal/ui/render"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	lib "github.com/jroimartin/gocui"
	"github.com/rs/zerolog"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewHeader = "header"
	ViewInput  = "input"
	ViewBanner = "banner"
	ViewItems  = "items"
	ViewFooter = "footer"
)

const skeletonBar = "░░░░░░░░░░░░░░░░░░░░░░░░"

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui.
type Adapter struct {
	gui     *lib.Gui
	ctx     context.Context
	store   *app.Store
	backend processor.Backend
	opts    view.Options
	layout  *Layout
	log     zerolog.Logger

	// post runs f on the UI goroutine.
	post     func(f func())
	lastMode app.Mode
	drawn    bool
}

// New creates a new gocui adapter.
func New(ctx context.Context, store *app.Store, backend processor.Backend, opts view.Options) (*Adapter, error) {
	g, err := lib.NewGui(lib.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = true
	g.InputEsc = true

	a := newAdapter(ctx, store, backend, opts)
	a.gui = g
	a.post = func(f func()) {
		g.Update(func(*lib.Gui) error {
			f()
			return nil
		})
	}
	return a, nil
}

func newAdapter(ctx context.Context, store *app.Store, backend processor.Backend, opts view.Options) *Adapter {
	return &Adapter{
		ctx:     ctx,
		store:   store,
		backend: backend,
		opts:    opts,
		log:     logger.New("gocui"),
		post:    func(f func()) { f() },
	}
}

// Run implements ui.UI.
func (a *Adapter) Run() error {
	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-a.ctx.Done():
			a.gui.Update(func(*lib.Gui) error { return lib.ErrQuit })
		case <-done:
		}
	}()

	a.search()

	err := a.gui.MainLoop()
	if err == lib.ErrQuit {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	a.gui.Close()
}

// -----------------------------------------------------------------------------
// Lifecycles
// -----------------------------------------------------------------------------

// search starts a search for the stored query; blank queries are ignored.
func (a *Adapter) search() {
	req, ok := a.store.BeginSearch()
	if !ok {
		return
	}
	a.log.Debug().Str("request_id", req.ID.String()).Str("query", req.Query).Msg("Search triggered")
	a.dispatch(processor.SearchCmd(a.ctx, a.backend, req))
}

// showDataset switches to the dataset view and starts the listing request.
func (a *Adapter) showDataset() {
	req := a.store.ShowDataset()
	a.log.Debug().Str("request_id", req.ID.String()).Msg("Dataset triggered")
	a.dispatch(processor.ListImagesCmd(a.ctx, a.backend, req))
}

// dispatch runs cmd off the UI goroutine and applies its result on it.
func (a *Adapter) dispatch(cmd tea.Cmd) {
	go func() {
		msg := cmd()
		a.post(func() { a.apply(msg) })
	}()
}

func (a *Adapter) apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case processor.SearchResultMsg:
		a.store.CompleteSearch(msg.RequestID, msg.Response, msg.Err)
	case processor.DatasetResultMsg:
		a.store.CompleteDataset(msg.RequestID, msg.Response, msg.Err)
	}
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

// layoutManager creates and updates all views.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	page := view.Build(a.store.State(), a.opts)

	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY, page.ErrorMessage != "")
	if a.layout.IsTerminalTooSmall() {
		a.log.Debug().Int("width", maxX).Int("height", maxY).Msg("Terminal too small")
	}

	if err := a.setView(g, ViewHeader, a.layout.HeaderBounds, headerText(page)); err != nil {
		return err
	}
	if err := a.setupInput(g, page); err != nil {
		return err
	}
	if err := a.setupBanner(g, page); err != nil {
		return err
	}
	if err := a.setView(g, ViewItems, a.layout.ItemsBounds, itemsText(page)); err != nil {
		return err
	}
	if err := a.setView(g, ViewFooter, a.layout.FooterBounds, footerText(page)); err != nil {
		return err
	}

	current := ViewInput
	if page.IsDataset() {
		current = ViewItems
	}
	_, err := g.SetCurrentView(current)
	return err
}

// setView creates or resizes the named view and replaces its content.
func (a *Adapter) setView(g *lib.Gui, name string, bounds func() (int, int, int, int), content string) error {
	x0, y0, x1, y1 := bounds()
	v, err := g.SetView(name, x0, y0, x1, y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	if name == ViewHeader || name == ViewFooter {
		v.Frame = false
	}
	v.Clear()
	_, _ = fmt.Fprint(v, content)
	return nil
}

// setupInput draws the query input in search mode and the heading in dataset mode.
// The editable buffer is only rewritten on mode changes so typing is preserved.
func (a *Adapter) setupInput(g *lib.Gui, page view.Page) error {
	x0, y0, x1, y1 := a.layout.InputBounds()
	v, err := g.SetView(ViewInput, x0, y0, x1, y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}

	if page.IsDataset() {
		v.Editable = false
		v.Title = ""
		v.Clear()
		_, _ = fmt.Fprint(v, page.Heading)
	} else {
		v.Editable = true
		v.Title = buttonTitle(page)
		if !a.drawn || a.lastMode != page.Mode {
			v.Clear()
			_, _ = fmt.Fprint(v, page.Query)
			_ = v.SetCursor(len([]rune(page.Query)), 0)
		}
	}

	a.lastMode = page.Mode
	a.drawn = true
	return nil
}

func (a *Adapter) setupBanner(g *lib.Gui, page view.Page) error {
	if page.ErrorMessage == "" {
		if err := g.DeleteView(ViewBanner); err != nil && err != lib.ErrUnknownView {
			return err
		}
		return nil
	}

	x0, y0, x1, y1 := a.layout.BannerBounds()
	v, err := g.SetView(ViewBanner, x0, y0, x1, y1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	v.FgColor = lib.ColorRed
	v.Clear()
	_, _ = fmt.Fprint(v, page.ErrorMessage)
	return nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

func headerText(page view.Page) string {
	nav := "ctrl+d"
	if page.IsDataset() {
		nav = "esc"
	}
	return fmt.Sprintf("%s  %s (%s)", page.Title, page.NavLabel, nav)
}

func buttonTitle(page view.Page) string {
	if page.ButtonDisabled {
		return " [ " + page.ButtonLabel + " ] ... "
	}
	return " [ " + page.ButtonLabel + " ] "
}

func itemsText(page view.Page) string {
	if len(page.Items) == 0 && !page.IsDataset() && strings.TrimSpace(page.Query) == "" {
		return page.Placeholder
	}

	var b strings.Builder
	for _, item := range page.Items {
		if item.Skeleton {
			b.WriteString(skeletonBar)
		} else {
			b.WriteString(render.ResultLine(item.Caption, item.ImageURL, false))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func footerText(page view.Page) string {
	if page.IsDataset() {
		return "esc/b back  r reload  ↑/↓ scroll  q quit"
	}
	return "enter search  ctrl+d view dataset  ctrl+c quit"
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// setupBindings configures keybindings.
// Rune bindings are scoped to the items view so they never fire while typing.
func (a *Adapter) setupBindings() error {
	bindings := []struct {
		view    string
		key     interface{}
		handler func(*lib.Gui, *lib.View) error
	}{
		{"", lib.KeyCtrlC, a.quit},
		{ViewInput, lib.KeyEnter, a.submit},
		{ViewInput, lib.KeyCtrlD, a.dataset},
		{ViewItems, lib.KeyEsc, a.back},
		{ViewItems, lib.KeyBackspace, a.back},
		{ViewItems, lib.KeyBackspace2, a.back},
		{ViewItems, 'b', a.back},
		{ViewItems, 'r', a.dataset},
		{ViewItems, 'q', a.quit},
		{ViewItems, lib.KeyArrowDown, a.scrollDown},
		{ViewItems, lib.KeyArrowUp, a.scrollUp},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding(b.view, b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

func (a *Adapter) submit(g *lib.Gui, v *lib.View) error {
	a.store.SetQuery(strings.TrimRight(v.Buffer(), "\n"))
	a.search()
	return nil
}

func (a *Adapter) dataset(g *lib.Gui, v *lib.View) error {
	if v != nil && v.Name() == ViewInput {
		a.store.SetQuery(strings.TrimRight(v.Buffer(), "\n"))
	}
	a.showDataset()
	return nil
}

func (a *Adapter) back(g *lib.Gui, v *lib.View) error {
	a.store.ShowSearch()
	return nil
}

func (a *Adapter) scrollDown(g *lib.Gui, v *lib.View) error {
	ox, oy := v.Origin()
	return v.SetOrigin(ox, oy+1)
}

func (a *Adapter) scrollUp(g *lib.Gui, v *lib.View) error {
	ox, oy := v.Origin()
	if oy == 0 {
		return nil
	}
	return v.SetOrigin(ox, oy-1)
}
