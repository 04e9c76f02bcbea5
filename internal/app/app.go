// Package app wires configuration, logging, messages and the content loader
// into a navigation controller. It is shared by the reader binaries.
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/config"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

// Flags are the command line options every reader binary accepts. Set flags
// override the configuration file and the environment.
type Flags struct {
	Config   string `short:"c" help:"Configuration file (TOML, or YAML by extension)" type:"path"`
	BaseURL  string `name:"base-url" help:"Base URL of the blog; its path is treated as a directory"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Language string `short:"l" help:"Language of the reader's messages, as a BCP 47 tag"`
	Start    string `help:"Post to open on start, as a slug or #slug"`
}

// Load reads the configuration and applies the flags over it.
func (f Flags) Load() (config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return cfg, err
	}

	if f.BaseURL != "" {
		cfg.BaseURL = config.NormalizeBaseURL(f.BaseURL)
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}

	return cfg, cfg.Validate()
}

// Session is one run of a reader: its settings and the services built from
// them.
type Session struct {
	ID       string
	Config   config.Config
	Messages *messages.Catalog
	Loader   *content.Loader
	Logger   *slog.Logger
}

// NewSession builds the message catalog and content loader for cfg. Every
// record logger writes carries the session ID.
func NewSession(cfg config.Config, logger *slog.Logger) (*Session, error) {
	id := uuid.NewString()
	logger = logger.With("session", id)

	catalog, err := messages.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	loader, err := content.New(content.Options{
		BaseURL:      cfg.BaseURL,
		ManifestPath: cfg.ManifestPath,
		Timeout:      cfg.Timeout.Duration,
		Logger:       logger.With("component", "content"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return &Session{
		ID:       id,
		Config:   cfg,
		Messages: catalog,
		Loader:   loader,
		Logger:   logger,
	}, nil
}

// Controller creates the navigation controller for a surface and binds its
// events.
func (s *Session) Controller(surface nav.Surface, history nav.History, events nav.Events, sched nav.Scheduler) *nav.Controller {
	ctrl := nav.New(surface, history, s.Loader, sched, nav.Options{
		ManifestPath: s.Config.ManifestPath,
		Messages:     s.Messages,
		Logger:       s.Logger.With("component", "nav"),
		OnStartup:    s.reportStartup,
	})
	ctrl.Bind(events)
	return ctrl
}

func (s *Session) reportStartup(err error) {
	if err != nil {
		switch {
		case content.IsParseError(err):
			s.Logger.Error("Manifest is malformed", "base_url", s.Config.BaseURL, "error", err)
		case content.IsFetchError(err):
			s.Logger.Error("Manifest is unreachable", "base_url", s.Config.BaseURL, "error", err)
		default:
			s.Logger.Error("Startup failed", "error", err)
		}
		return
	}
	s.Logger.Info("Reader started", "base_url", s.Config.BaseURL, "language", s.Messages.Language().String())
}
