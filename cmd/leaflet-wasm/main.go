//go:build js && wasm

// Command leaflet-wasm runs the blog reader in a browser page. Load it with
// wasm_exec.js from the page that holds the list and post containers.
package main

import (
	"context"

	"github.com/BrandonKowalski/leaflet/internal/app"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/config"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/dom"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

func main() {
	logger := logging.Logger()

	page, err := dom.New()
	if err != nil {
		logger.Error("Page is missing reader elements", "error", err)
		return
	}
	defer page.Release()

	cfg := config.Default()
	cfg.BaseURL = page.BaseURL()
	if lang := page.Language(); lang != "" {
		cfg.Language = lang
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("Falling back to the default language", "language", cfg.Language, "error", err)
		cfg.Language = config.Default().Language
		if err := cfg.Validate(); err != nil {
			logger.Error("Page base URL is unusable", "base_url", cfg.BaseURL, "error", err)
			return
		}
	}

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		logger.Error("Failed to start session", "error", err)
		return
	}

	loop := nav.NewLoop()
	ctrl := session.Controller(page, page, page, loop)
	ctrl.Start(context.Background())

	// The loop runs for the lifetime of the page.
	_ = loop.Run(context.Background())
}
