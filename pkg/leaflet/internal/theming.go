package internal

import (
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"
)

// CannoliFontPath is where Cannoli CFW keeps its UI font.
const CannoliFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Theme defines the visual appearance of the reader.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer pill background
	AccentColor          sdl.Color // Headings, banner and scrollbar handle
	ButtonLabelColor     sdl.Color // Button label text inside pills
	TextColor            sdl.Color // Body text
	HighlightedTextColor sdl.Color // Text on the selected row
	HintColor            sdl.Color // Meta lines, footer text, loading message
	ErrorColor           sdl.Color // Error messages
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Optional background image
}

var currentTheme = DefaultTheme("")

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is a dark theme suited to desktop windows.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x4FB3BF),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xE6E6E6),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0x9A9A9A),
		ErrorColor:           HexToColor(0xE57373),
		BackgroundColor:      HexToColor(0x101010),
		FontPath:             fontPath,
	}
}

// CannoliTheme uses Cannoli CFW's default colors.
func CannoliTheme(fontPath string) Theme {
	if fontPath == "" {
		fontPath = CannoliFontPath
	}
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x008080),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xBBBBBB),
		ErrorColor:           HexToColor(0xFF6F6F),
		BackgroundColor:      HexToColor(0x000000),
		FontPath:             fontPath,
	}
}

var themes = map[string]func(fontPath string) Theme{
	"default": DefaultTheme,
	"cannoli": CannoliTheme,
}

// ThemeByName returns the named preset. ok is false for unknown names.
func ThemeByName(name, fontPath string) (theme Theme, ok bool) {
	preset, ok := themes[name]
	if !ok {
		return DefaultTheme(fontPath), false
	}
	return preset(fontPath), true
}

// ThemeNames lists the available presets in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ColorHex formats a color as "#rrggbb".
func ColorHex(c sdl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
