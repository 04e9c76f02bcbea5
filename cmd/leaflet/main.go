// Command leaflet is the SDL reader of a static blog, for desktops and
// handheld Linux devices.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/BrandonKowalski/leaflet/internal/app"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/config"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

var CLI struct {
	app.Flags `embed:""`

	Theme       string `help:"Theme preset (default, cannoli)"`
	Font        string `type:"path" help:"UI font file"`
	InputDevice string `name:"input-device" type:"path" help:"evdev node for hardware back/forward keys"`
	Windowed    bool   `help:"Open a resizable window instead of taking over the display"`
}

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	kong.Parse(&CLI,
		kong.Name("leaflet"),
		kong.Description("Read a static blog with a keyboard or game controller."),
		kong.UsageOnError(),
	)
	os.Exit(run())
}

func run() int {
	cfg, err := CLI.Load()
	if err != nil {
		logging.Logger().Error("Failed to load configuration", "error", err)
		return 1
	}

	if CLI.Theme != "" {
		cfg.Display.Theme = CLI.Theme
	}
	if CLI.Font != "" {
		cfg.Display.FontPath = CLI.Font
	}
	if CLI.InputDevice != "" {
		cfg.Display.InputDevice = CLI.InputDevice
	}

	logging.SetPath(cfg.LogPath)
	logging.SetRawLevel(cfg.LogLevel)
	defer logging.Close()
	logger := logging.Logger()

	if err := leaflet.Init(initOptions(cfg, CLI.Windowed)); err != nil {
		logger.Error("Failed to start display", "error", err)
		return 1
	}
	defer leaflet.Close()

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		logger.Error("Failed to start session", "error", err)
		return 1
	}

	loop := nav.NewLoop()
	reader := leaflet.NewReader(loop, leaflet.ReaderOptions{
		Title:       cfg.Display.WindowTitle,
		Start:       CLI.Start,
		Messages:    session.Messages,
		InputDevice: cfg.Display.InputDevice,
	})
	ctrl := session.Controller(reader, reader.History(), reader, loop)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl.Start(ctx)

	err = reader.Run(ctx)
	switch {
	case leaflet.IsQuit(err), errors.Is(err, context.Canceled):
		session.Logger.Info("Reader closed")
		return 0
	default:
		session.Logger.Error("Reader failed", "error", err)
		return 1
	}
}

func initOptions(cfg config.Config, windowed bool) leaflet.Options {
	return leaflet.Options{
		WindowTitle:   cfg.Display.WindowTitle,
		WindowOptions: leaflet.WindowOptions{Resizable: windowed},
		Theme:         cfg.Display.Theme,
		FontPath:      cfg.Display.FontPath,
		AccentColor:   cfg.Display.AccentColor,
	}
}
