package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/ui"
)

// AppContext holds the resolved endpoints shown and opened by the shell
type AppContext struct {
	MoviesURL    string
	LanguagesURL string
	CatalogURL   string
	// ConfigSource is the config file that was read, empty when none
	ConfigSource string
}

// EndpointFor returns the collection endpoint behind a view
func (c AppContext) EndpointFor(view ui.ViewState) string {
	switch view {
	case ui.ViewMovies, ui.ViewSearch:
		return c.MoviesURL
	case ui.ViewLanguages:
		return c.LanguagesURL
	case ui.ViewLanguageCatalog:
		return c.CatalogURL
	}
	return ""
}

// Model is the main application model
type Model struct {
	ctx  AppContext
	deps *Dependencies

	// appCtx bounds every request issued by the panels
	appCtx context.Context

	ui       *UIState
	quitting bool
}

func initialModel(appCtx context.Context, ctx AppContext, deps *Dependencies) Model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Clipboard == nil {
		deps.Clipboard = ui.NewSystemClipboard()
	}

	movies := ui.NewMovieList(appCtx, deps.Movies, deps.Logger)
	return Model{
		ctx:    ctx,
		deps:   deps,
		appCtx: appCtx,
		ui:     NewUIState(movies),
	}
}

// Init mounts the movie list
func (m Model) Init() tea.Cmd {
	m.deps.Logger.Info("starting",
		"movies", m.ctx.MoviesURL,
		"languages", m.ctx.LanguagesURL,
		"config", m.ctx.ConfigSource,
	)
	return m.ui.Movies.Init()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	default:
		return m.handleMessage(msg)
	}
}
