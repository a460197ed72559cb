package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/browser"

	"github.com/rfhold/marquee/internal/catalog"
	"github.com/rfhold/marquee/internal/config"
	"github.com/rfhold/marquee/internal/ui"
)

// Dependencies holds all external dependencies for the application.
// These can be replaced with test doubles for unit testing.
type Dependencies struct {
	Movies    catalog.MovieService
	Languages catalog.LanguageService
	Clipboard ui.Clipboard
	OpenURL   func(url string) error
	Logger    *slog.Logger
}

// NewProductionDependencies builds the HTTP clients described by cfg. The
// returned AppContext carries the endpoints the clients resolved.
func NewProductionDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, AppContext, error) {
	movies, err := catalog.NewMovieClient(cfg.Movies.BaseURL, catalog.WithLogger(logger))
	if err != nil {
		return nil, AppContext{}, fmt.Errorf("movie client: %w", err)
	}
	languages, err := catalog.NewLanguageClient(cfg.Languages.BaseURL, catalog.WithLogger(logger))
	if err != nil {
		return nil, AppContext{}, fmt.Errorf("language client: %w", err)
	}

	deps := &Dependencies{
		Movies:    movies,
		Languages: languages,
		Clipboard: ui.NewSystemClipboard(),
		OpenURL:   browser.OpenURL,
		Logger:    logger,
	}
	appCtx := AppContext{
		MoviesURL:    movies.ListURL(),
		LanguagesURL: languages.ListURL(),
		CatalogURL:   languages.ExternalURL(),
		ConfigSource: cfg.Source,
	}
	return deps, appCtx, nil
}
