package internal

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
)

var window *Window

func logger() *slog.Logger {
	return logging.Logger().With("component", "sdl")
}

// Init brings up SDL, the window and the fonts. It must be called from the
// main OS thread.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	// Decoders are optional; only the theme background uses them.
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logger().Warn("Image decoders unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		SDLCleanup()
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, window.GetHeight()); err != nil {
		SDLCleanup()
		return err
	}

	return nil
}

// SDLCleanup releases everything Init created. It is safe to call after a
// failed Init.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
