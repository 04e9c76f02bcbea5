package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

// ErrNoFont is returned by Init when no usable font file was found.
var ErrNoFont = errors.New("no usable font found")

// FontSizes are point sizes at a 480px tall screen.
type FontSizes struct {
	Title   int
	Heading int
	Body    int
	Small   int
}

var DefaultFontSizes = FontSizes{
	Title:   30,
	Heading: 24,
	Body:    19,
	Small:   15,
}

// Fonts holds the opened fonts. It is filled by Init.
var Fonts struct {
	Title   *ttf.Font
	Heading *ttf.Font
	Body    *ttf.Font
	Small   *ttf.Font
}

var scaleFactor float32 = 1

var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

// GetScaleFactor returns the ratio of the screen height to 480px.
func GetScaleFactor() float32 {
	return scaleFactor
}

// Scale multiplies a 480p measurement by the scale factor.
func Scale(v int32) int32 {
	return int32(float32(v) * scaleFactor)
}

// ResolveFontPath picks the first existing font among the given path, the
// LEAFLET_FONT_PATH variable and a list of common system fonts.
func ResolveFontPath(path string) (string, error) {
	candidates := make([]string, 0, len(fallbackFonts)+2)
	if path != "" {
		candidates = append(candidates, path)
	}
	if env := os.Getenv(constants.FontPathEnvVar); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, fallbackFonts...)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrNoFont
}

func initFonts(path string, screenHeight int32) error {
	resolved, err := ResolveFontPath(path)
	if err != nil {
		return err
	}
	if resolved != path {
		logger().Info("Using fallback font", "requested", path, "font", resolved)
	}

	scaleFactor = Max32F(float32(screenHeight)/480, 1)
	sizes := DefaultFontSizes

	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(resolved, int(float32(size)*scaleFactor))
		if err != nil {
			return nil, fmt.Errorf("open font %s: %w", resolved, err)
		}
		return font, nil
	}

	if Fonts.Title, err = open(sizes.Title); err != nil {
		return err
	}
	if Fonts.Heading, err = open(sizes.Heading); err != nil {
		return err
	}
	if Fonts.Body, err = open(sizes.Body); err != nil {
		return err
	}
	if Fonts.Small, err = open(sizes.Small); err != nil {
		return err
	}

	return nil
}

func closeFonts() {
	for _, font := range []**ttf.Font{&Fonts.Title, &Fonts.Heading, &Fonts.Body, &Fonts.Small} {
		if *font != nil {
			(*font).Close()
			*font = nil
		}
	}
}
