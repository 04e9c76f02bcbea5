// Package leaflet is the SDL reader of a static blog: a full-screen post
// list and post view driven by keyboard, game controller and hardware keys,
// suited to handheld Linux devices as well as desktop windows.
//
// The reader is a nav.Surface. Navigation itself lives in the nav package;
// this package draws what the controller asks for and turns button presses
// into controller events.
package leaflet

import (
	"log/slog"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
)

// WindowOptions selects SDL window flags. The zero value takes over the
// display, or opens a decorated window in development mode.
type WindowOptions = internal.WindowOptions

// Options configures the SDL reader initialization.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window flags (borderless, resizable, etc.)
	Theme         string        // Theme preset name, see ThemeNames
	FontPath      string        // UI font; common system fonts are tried when empty or missing
	AccentColor   uint32        // Custom accent color as 0xRRGGBB, 0 keeps the theme's
	LogPath       string        // Full path for the log file including filename
}

// Init initializes SDL, the theme, fonts and input handling.
// Must be called from the main OS thread before NewReader.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetPath(options.LogPath)
	}

	theme, ok := internal.ThemeByName(options.Theme, options.FontPath)
	if !ok && options.Theme != "" {
		logging.Logger().Warn("Unknown theme, using default", "theme", options.Theme, "themes", internal.ThemeNames())
	}

	if options.AccentColor != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColor)
	}
	internal.SetTheme(theme)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// ThemeNames lists the theme presets accepted by Options.Theme.
func ThemeNames() []string {
	return internal.ThemeNames()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.Logger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
