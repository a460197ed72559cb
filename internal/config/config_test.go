package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/rfhold/marquee/internal/catalog"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), LoadOptions{SearchDirs: []string{"/work"}, Getenv: env(nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Movies.BaseURL != catalog.DefaultMoviesURL {
		t.Errorf("expected default movies url, got %q", cfg.Movies.BaseURL)
	}
	if cfg.Languages.BaseURL != catalog.DefaultLanguagesURL {
		t.Errorf("expected default languages url, got %q", cfg.Languages.BaseURL)
	}
	if cfg.Source != "" {
		t.Errorf("expected no source, got %q", cfg.Source)
	}
}

func TestLoad_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/work/marquee.toml", []byte(`
debug = true

[movies]
base_url = "http://api.local/movies"

[log]
level = "info"
`), 0o644)

	cfg, err := Load(fs, LoadOptions{SearchDirs: []string{"/work"}, Getenv: env(nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Movies.BaseURL != "http://api.local/movies" {
		t.Errorf("unexpected movies url %q", cfg.Movies.BaseURL)
	}
	if cfg.Languages.BaseURL != catalog.DefaultLanguagesURL {
		t.Errorf("absent key should keep default, got %q", cfg.Languages.BaseURL)
	}
	if !cfg.Debug {
		t.Error("expected debug from file")
	}
	if cfg.Log.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.Log.SlogLevel())
	}
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("expected default max backups, got %d", cfg.Log.MaxBackups)
	}
	if cfg.Source != "/work/marquee.toml" {
		t.Errorf("unexpected source %q", cfg.Source)
	}
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/home/.config/marquee/marquee.yaml", []byte(`
languages:
  base_url: https://api.local/languages
`), 0o644)

	cfg, err := Load(fs, LoadOptions{SearchDirs: []string{"/work", "/home/.config/marquee"}, Getenv: env(nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Languages.BaseURL != "https://api.local/languages" {
		t.Errorf("unexpected languages url %q", cfg.Languages.BaseURL)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), LoadOptions{Path: "/nope.toml", Getenv: env(nil)})
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_Precedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/work/marquee.toml", []byte(`
[movies]
base_url = "http://file/movies"
[languages]
base_url = "http://file/languages"
`), 0o644)
	_ = afero.WriteFile(fs, "/work/.env", []byte("MARQUEE_MOVIES_URL=http://dotenv/movies\nMARQUEE_LANGUAGES_URL=http://dotenv/languages\n"), 0o644)

	cfg, err := Load(fs, LoadOptions{
		SearchDirs: []string{"/work"},
		EnvFile:    "/work/.env",
		Getenv:     env(map[string]string{EnvLanguagesURL: "http://env/languages"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Movies.BaseURL != "http://dotenv/movies" {
		t.Errorf(".env should override file, got %q", cfg.Movies.BaseURL)
	}
	if cfg.Languages.BaseURL != "http://env/languages" {
		t.Errorf("environment should override .env, got %q", cfg.Languages.BaseURL)
	}

	cfg.Apply(Overrides{MoviesURL: "http://flag/movies", Debug: true})
	if cfg.Movies.BaseURL != "http://flag/movies" {
		t.Errorf("flag should override everything, got %q", cfg.Movies.BaseURL)
	}
	if cfg.Languages.BaseURL != "http://env/languages" {
		t.Errorf("empty flag should not override, got %q", cfg.Languages.BaseURL)
	}
	if !cfg.Debug {
		t.Error("expected debug flag to apply")
	}
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), LoadOptions{EnvFile: "/work/.env", Getenv: env(nil)})
	if err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestLoad_InvalidDebug(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), LoadOptions{Getenv: env(map[string]string{EnvDebug: "maybe"})})
	if err == nil {
		t.Fatal("expected error for unparsable debug value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		movies  string
		wantErr bool
	}{
		{"default", catalog.DefaultMoviesURL, false},
		{"https", "https://example.com/api", false},
		{"relative", "/v1/api", true},
		{"no scheme", "localhost:8085/v1", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Movies.BaseURL = tt.movies
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("expected ErrInvalidURL, got %v", err)
			}
		})
	}
}

func TestValidate_StableOrder(t *testing.T) {
	cfg := Default()
	cfg.Movies.BaseURL = "movies"
	cfg.Languages.BaseURL = "languages"

	want := cfg.Validate().Error()
	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != want {
			t.Fatalf("error changed between calls:\n%s\n%s", want, got)
		}
	}
	if !strings.HasPrefix(want, "movies: ") || !strings.Contains(want, "\nlanguages: ") {
		t.Errorf("expected movies before languages, got %q", want)
	}
}
