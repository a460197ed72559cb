package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/rfhold/marquee/internal/config"
	"github.com/rfhold/marquee/internal/telemetry"
)

// Set by the release build
var version = "dev"

// Package-level variables for CLI arguments
var (
	configPath   string
	moviesURL    string
	languagesURL string
	debug        bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "Read settings from the config `file` (toml or yaml)")
	flag.StringVar(&moviesURL, "movies-url", "", "Base `url` of the movies resource")
	flag.StringVar(&languagesURL, "languages-url", "", "Base `url` of the languages resource")
	flag.BoolVar(&debug, "debug", false, "Write debug logs to the log file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: marquee [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Administers the movie and language catalogs of the backend.\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s, %s override the base URLs.\n", config.EnvMoviesURL, config.EnvLanguagesURL)
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(afero.NewOsFs(), config.LoadOptions{
		Path:       configPath,
		SearchDirs: config.DefaultSearchDirs(),
		EnvFile:    ".env",
	})
	if err != nil {
		return err
	}
	cfg.Apply(config.Overrides{
		MoviesURL:    moviesURL,
		LanguagesURL: languagesURL,
		Debug:        debug,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetry.SetVersion(version)
	tel, err := telemetry.Setup(ctx, telemetry.Options{
		Debug:      cfg.Debug,
		Level:      cfg.Log.SlogLevel(),
		LogFile:    cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = tel.Shutdown(shutdownCtx)
	}()

	deps, appCtx, err := NewProductionDependencies(cfg, tel.Logger)
	if err != nil {
		return err
	}

	// The browser helper would print over the alt screen
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	p := tea.NewProgram(initialModel(ctx, appCtx, deps), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
