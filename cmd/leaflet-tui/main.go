// Command leaflet-tui reads a static blog in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/leaflet/internal/app"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/tui"
)

var CLI struct {
	app.Flags `embed:""`

	Inline bool `help:"Draw below the prompt instead of on the alternate screen"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("leaflet-tui"),
		kong.Description("Read a static blog in the terminal."),
		kong.UsageOnError(),
	)
	os.Exit(run())
}

func run() int {
	cfg, err := CLI.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "leaflet-tui:", err)
		return 1
	}

	// The terminal belongs to the UI; records go to the log file only.
	logging.SetConsole(io.Discard)
	logging.SetPath(cfg.LogPath)
	logging.SetRawLevel(cfg.LogLevel)
	defer logging.Close()

	session, err := app.NewSession(cfg, logging.Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, "leaflet-tui:", err)
		return 1
	}

	opts := tui.Options{
		Title:    cfg.Display.WindowTitle,
		Start:    CLI.Start,
		Messages: session.Messages,
	}
	if cfg.Display.AccentColor != 0 {
		opts.Accent = lipgloss.Color(fmt.Sprintf("#%06x", cfg.Display.AccentColor))
	}

	loop := nav.NewLoop()
	model := tui.New(loop, opts)
	ctrl := session.Controller(model, model.History(), model, loop)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop.Post(func() { ctrl.Start(ctx) })

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !CLI.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil && ctx.Err() == nil {
		session.Logger.Error("Terminal reader failed", "error", err)
		fmt.Fprintln(os.Stderr, "leaflet-tui:", err)
		return 1
	}

	session.Logger.Info("Reader closed")
	return 0
}
