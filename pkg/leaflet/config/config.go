// Package config loads reader settings from a TOML or YAML file, .env files
// and LEAFLET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
)

// Environment variables that override file values.
const (
	EnvBaseURL      = "LEAFLET_BASE_URL"
	EnvManifestPath = "LEAFLET_MANIFEST_PATH"
	EnvLanguage     = "LEAFLET_LANGUAGE"
	EnvLogLevel     = "LEAFLET_LOG_LEVEL"
	EnvLogPath      = "LEAFLET_LOG_PATH"
	EnvTimeout      = "LEAFLET_TIMEOUT"
	EnvInputDevice  = "LEAFLET_INPUT_DEVICE"
	EnvTheme        = "LEAFLET_THEME"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "leaflet.toml"

// Config holds everything a reader binary needs.
type Config struct {
	BaseURL      string   `toml:"base_url" yaml:"base_url"`
	ManifestPath string   `toml:"manifest_path" yaml:"manifest_path"`
	Language     string   `toml:"language" yaml:"language"`
	LogLevel     string   `toml:"log_level" yaml:"log_level"`
	LogPath      string   `toml:"log_path" yaml:"log_path"`
	Timeout      Duration `toml:"timeout" yaml:"timeout"`
	Display      Display  `toml:"display" yaml:"display"`
}

// Display configures the SDL reader.
type Display struct {
	WindowTitle string `toml:"window_title" yaml:"window_title"`
	FontPath    string `toml:"font_path" yaml:"font_path"`
	Theme       string `toml:"theme" yaml:"theme"`
	AccentColor uint32 `toml:"accent_color" yaml:"accent_color"`
	InputDevice string `toml:"input_device" yaml:"input_device"` // evdev node for hardware back/forward keys
}

// Duration is a time.Duration written as "10s" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:      "http://localhost:8080/",
		ManifestPath: content.DefaultManifestPath,
		Language:     "en",
		LogLevel:     "info",
		Timeout:      Duration{content.DefaultTimeout},
		Display: Display{
			WindowTitle: "leaflet",
			Theme:       "default",
		},
	}
}

// Load reads path over the defaults, applies the environment and validates
// the result. An empty path tries DefaultFile and carries on without a file
// when there is none. Files ending in .yaml or .yml are read as YAML, all
// others as TOML.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := LoadEnvFiles(); err != nil {
		return cfg, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if err := decodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)

	return cfg, cfg.Validate()
}

// NormalizeBaseURL appends a trailing slash to the path of base, so
// "https://example.com/blog" names the blog directory rather than a file in
// the site root. Values that do not parse are returned unchanged.
func NormalizeBaseURL(base string) string {
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() || strings.HasSuffix(u.Path, "/") {
		return base
	}
	u.Path += "/"
	if u.RawPath != "" {
		u.RawPath += "/"
	}
	return u.String()
}

// LoadEnvFiles reads .env and .env.local from the working directory if they
// exist. Variables already set in the process environment win.
func LoadEnvFiles() error {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("config: load %s: %w", name, err)
		}
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
		return nil
	default:
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("config: %w", err)
			}
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
		return nil
	}
}

// ApplyEnv overrides fields from LEAFLET_* variables that are set.
func (c *Config) ApplyEnv() error {
	set := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	set(EnvBaseURL, &c.BaseURL)
	set(EnvManifestPath, &c.ManifestPath)
	set(EnvLanguage, &c.Language)
	set(EnvLogLevel, &c.LogLevel)
	set(EnvLogPath, &c.LogPath)
	set(EnvInputDevice, &c.Display.InputDevice)
	set(EnvTheme, &c.Display.Theme)

	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		if err := c.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
	}

	return nil
}

// Validate checks that the settings can be used to start a reader.
func (c Config) Validate() error {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: base_url: %w", err)
	}
	if !base.IsAbs() || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return fmt.Errorf("config: base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}

	if c.ManifestPath == "" {
		return errors.New("config: manifest_path must not be empty")
	}

	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("config: language %q: %w", c.Language, err)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	if c.Timeout.Duration < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}
