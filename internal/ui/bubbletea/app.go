/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/imgsearch/internal/app"
	"github.com/ijuttt/imgsearch/internal/logger"
	"github.com/ijuttt/imgsearch/internal/processor"
	"github.com/ijuttt/imgsearch/internal/ui/components"
	"github.com/ijuttt/imgsearch/internal/ui/styles"
	"github.com/ijuttt/imgsearch/internal/ui/view"
	"github.com/rs/zerolog"
)

const (
	headerHeight    = 2 // title line + blank
	searchBarHeight = 3
	headingHeight   = 1
	statusBarHeight = 1
)

// App is the main application model. All view state lives in the store;
// the model only holds widgets and layout.
type App struct {
	ctx     context.Context
	store   *app.Store
	backend processor.Backend
	opts    view.Options
	log     zerolog.Logger

	// Components
	searchBar components.SearchBar
	grid      components.Grid
	spinner   spinner.Model
	help      help.Model

	// Layout
	width    int
	height   int
	lastMode app.Mode

	// Key bindings
	keys KeyMap
}

// NewApp creates a new application instance around store. A non-blank query
// already in the store is searched for on start.
func NewApp(ctx context.Context, store *app.Store, backend processor.Backend, opts view.Options) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.LoadingStyle

	a := App{
		ctx:       ctx,
		store:     store,
		backend:   backend,
		opts:      opts,
		log:       logger.New("tui"),
		searchBar: components.NewSearchBar(),
		grid:      components.NewGrid(),
		spinner:   s,
		help:      help.New(),
		keys:      DefaultKeyMap(),
	}
	a.searchBar.SetValue(store.State().QueryText)
	a.syncView()
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if strings.TrimSpace(a.store.State().QueryText) != "" {
		cmds = append(cmds, a.triggerSearch())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.store.State().Mode == app.ModeDataset {
			if key.Matches(msg, a.keys.QuitDataset) {
				return a, tea.Quit
			}
			cmds = append(cmds, a.updateDataset(msg))
		} else {
			cmds = append(cmds, a.updateSearch(msg))
		}

	case processor.SearchResultMsg:
		if a.store.CompleteSearch(msg.RequestID, msg.Response, msg.Err) && msg.Err == nil {
			a.grid.ResetScroll()
		}

	case processor.DatasetResultMsg:
		a.store.CompleteDataset(msg.RequestID, msg.Response, msg.Err)

	case spinner.TickMsg:
		if a.store.State().Loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		cmds = append(cmds, a.searchBar.Update(msg))
	}

	a.syncView()
	return a, tea.Batch(cmds...)
}

// updateSearch handles keys while the query input has focus.
func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Submit):
		return a.triggerSearch()
	case key.Matches(msg, a.keys.Dataset):
		return a.triggerDataset()
	case key.Matches(msg, a.keys.Up, a.keys.Down, a.keys.PageUp, a.keys.PageDown):
		return a.grid.Update(msg)
	default:
		cmd := a.searchBar.Update(msg)
		a.store.SetQuery(a.searchBar.Value())
		return cmd
	}
}

// updateDataset handles keys in the dataset view.
func (a *App) updateDataset(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.store.ShowSearch()
		return nil
	case key.Matches(msg, a.keys.Reload):
		return a.triggerDataset()
	case key.Matches(msg, a.keys.Up, a.keys.Down, a.keys.PageUp, a.keys.PageDown):
		return a.grid.Update(msg)
	}
	return nil
}

// triggerSearch starts a search for the current query, or does nothing for a blank one.
func (a App) triggerSearch() tea.Cmd {
	req, ok := a.store.BeginSearch()
	if !ok {
		return nil
	}
	a.log.Debug().Str("request_id", req.ID.String()).Str("query", req.Query).Msg("Search triggered")
	return tea.Batch(processor.SearchCmd(a.ctx, a.backend, req), a.spinner.Tick)
}

// triggerDataset switches to the dataset view and starts the listing request.
func (a App) triggerDataset() tea.Cmd {
	req := a.store.ShowDataset()
	a.log.Debug().Str("request_id", req.ID.String()).Msg("Dataset triggered")
	return tea.Batch(processor.ListImagesCmd(a.ctx, a.backend, req), a.spinner.Tick)
}

// syncView pushes the current page into the widgets and recomputes sizes.
func (a *App) syncView() {
	page := view.Build(a.store.State(), a.opts)

	if page.Mode != a.lastMode {
		a.grid.ResetScroll()
		a.lastMode = page.Mode
	}

	a.searchBar.SetDisabled(page.ButtonDisabled)
	a.grid.SetItems(page.Items)
	a.grid.SetFocused(page.Loading)
	if page.IsDataset() {
		a.grid.SetTitle("Dataset")
		a.grid.SetEmptyText("No images loaded")
	} else {
		a.grid.SetTitle("Results")
		a.grid.SetEmptyText(emptySearchText(page))
	}

	a.updateComponentSizes(page)
}

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes(page view.Page) {
	reserved := headerHeight + statusBarHeight
	if page.IsDataset() {
		reserved += headingHeight
	} else {
		reserved += searchBarHeight
	}
	if page.ErrorMessage != "" {
		reserved += lipgloss.Height(components.ErrorBanner(page.ErrorMessage, a.width))
	}

	a.searchBar.SetWidth(a.width)
	a.grid.SetSize(a.width, a.height-reserved)
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	page := view.Build(a.store.State(), a.opts)

	var b strings.Builder

	b.WriteString(a.renderHeader(page))
	b.WriteString("\n\n")

	if page.IsDataset() {
		b.WriteString(styles.HeadingStyle.Render(page.Heading))
	} else {
		b.WriteString(a.searchBar.View())
	}
	b.WriteString("\n")

	if banner := components.ErrorBanner(page.ErrorMessage, a.width); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString(a.grid.View())
	b.WriteString("\n")

	b.WriteString(a.renderStatusBar(page))

	return b.String()
}

// renderHeader renders the title and the navigation hint.
func (a App) renderHeader(page view.Page) string {
	title := styles.PanelTitleStyle.Render(page.Title)
	nav := a.keys.Dataset.Help().Key
	if page.IsDataset() {
		nav = a.keys.Back.Help().Key
	}
	link := styles.LinkStyle.Render(page.NavLabel) + styles.DimItemStyle.Render("("+nav+")")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", link)
}

// renderStatusBar renders the status bar.
func (a App) renderStatusBar(page view.Page) string {
	var left string
	if page.Loading {
		left = a.spinner.View() + " " + styles.LoadingStyle.Render(loadingText(page))
	} else {
		left = statusText(page)
	}

	bindings := a.keys.SearchHelp()
	if page.IsDataset() {
		bindings = a.keys.DatasetHelp()
	}
	right := a.help.ShortHelpView(bindings)

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}

func loadingText(page view.Page) string {
	if page.IsDataset() {
		return "Loading dataset..."
	}
	return "Searching..."
}

func statusText(page view.Page) string {
	if page.IsDataset() {
		return fmt.Sprintf("%d images", len(page.Items))
	}
	if len(page.Items) == 0 {
		return "Ready"
	}
	return fmt.Sprintf("%d results", len(page.Items))
}

func emptySearchText(page view.Page) string {
	if strings.TrimSpace(page.Query) == "" {
		return "Type a query and press Enter"
	}
	return "No results"
}

// -----------------------------------------------------------------------------
// Program
// -----------------------------------------------------------------------------

// Program runs App on the alternate screen. It implements ui.UI.
type Program struct {
	p *tea.Program
}

// NewProgram creates a full-screen program around a new App.
func NewProgram(ctx context.Context, store *app.Store, backend processor.Backend, opts view.Options) *Program {
	return &Program{
		p: tea.NewProgram(
			NewApp(ctx, store, backend, opts),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		),
	}
}

// Run implements ui.UI. Cancelling the context is a normal exit.
func (p *Program) Run() error {
	if _, err := p.p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Close implements ui.UI.
func (p *Program) Close() {
	p.p.Kill()
}
