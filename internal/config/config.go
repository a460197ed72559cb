// Package config resolves marquee settings from defaults, config files,
// a .env file, environment variables and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/rfhold/marquee/internal/catalog"
)

// Environment variables read by Load
const (
	EnvMoviesURL    = "MARQUEE_MOVIES_URL"
	EnvLanguagesURL = "MARQUEE_LANGUAGES_URL"
	EnvDebug        = "MARQUEE_DEBUG"
	EnvLogFile      = "MARQUEE_LOG_FILE"
	EnvLogLevel     = "MARQUEE_LOG_LEVEL"
)

// File names searched for in each search directory, in order
var configFileNames = []string{"marquee.toml", "marquee.yaml", "marquee.yml"}

var ErrInvalidURL = errors.New("invalid base url")

// ResourceConfig configures one backend resource
type ResourceConfig struct {
	BaseURL string `toml:"base_url" yaml:"base_url"`
}

// LogConfig configures the debug log file
type LogConfig struct {
	File       string `toml:"file" yaml:"file"`
	Level      string `toml:"level" yaml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
}

// SlogLevel parses Level, defaulting to debug
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelDebug
	}
	return level
}

// Config is the resolved marquee configuration
type Config struct {
	Movies    ResourceConfig `toml:"movies" yaml:"movies"`
	Languages ResourceConfig `toml:"languages" yaml:"languages"`
	Log       LogConfig      `toml:"log" yaml:"log"`
	Debug     bool           `toml:"debug" yaml:"debug"`

	// Source is the config file that was read, empty when none was found
	Source string `toml:"-" yaml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Movies:    ResourceConfig{BaseURL: catalog.DefaultMoviesURL},
		Languages: ResourceConfig{BaseURL: catalog.DefaultLanguagesURL},
		Log: LogConfig{
			File:       filepath.Join(os.TempDir(), "marquee.log"),
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// SearchDirs are tried in order when Path is empty
	SearchDirs []string
	// EnvFile is a dotenv file; a missing file is ignored
	EnvFile string
	// Getenv defaults to os.Getenv
	Getenv func(string) string
}

// DefaultSearchDirs returns the working directory and $XDG_CONFIG_HOME/marquee
func DefaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "marquee"))
	}
	return dirs
}

// Load resolves the configuration from fs. Flags are applied separately with Apply.
func Load(fs afero.Fs, opts LoadOptions) (*Config, error) {
	cfg := Default()
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path, err := findConfigFile(fs, opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := decodeFile(fs, path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		cfg.Source = path
	}

	dotenv, err := readEnvFile(fs, opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", opts.EnvFile, err)
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvMoviesURL); v != "" {
		cfg.Movies.BaseURL = v
	}
	if v := lookup(EnvLanguagesURL); v != "" {
		cfg.Languages.BaseURL = v
	}
	if v := lookup(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := lookup(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func findConfigFile(fs afero.Fs, opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := fs.Stat(opts.Path); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.Path, err)
		}
		return opts.Path, nil
	}
	for _, dir := range opts.SearchDirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if ok, _ := afero.Exists(fs, path); ok {
				return path, nil
			}
		}
	}
	return "", nil
}

// decodeFile decodes onto cfg so keys absent from the file keep their defaults
func decodeFile(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	}
}

func readEnvFile(fs afero.Fs, path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return godotenv.Parse(f)
}

// Overrides are command-line values. Empty fields leave the config untouched.
type Overrides struct {
	MoviesURL    string
	LanguagesURL string
	Debug        bool
}

// Apply layers flag values over the loaded configuration
func (c *Config) Apply(o Overrides) {
	if o.MoviesURL != "" {
		c.Movies.BaseURL = o.MoviesURL
	}
	if o.LanguagesURL != "" {
		c.Languages.BaseURL = o.LanguagesURL
	}
	if o.Debug {
		c.Debug = true
	}
}

// Validate checks that both base URLs are absolute http(s) URLs
func (c *Config) Validate() error {
	var errs []error
	for _, u := range []struct{ name, raw string }{
		{"movies", c.Movies.BaseURL},
		{"languages", c.Languages.BaseURL},
	} {
		if err := validateURL(u.raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", u.name, err))
		}
	}
	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
