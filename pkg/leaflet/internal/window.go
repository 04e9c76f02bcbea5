package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

const (
	devWidth  int32 = 1024
	devHeight int32 = 768
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = devWidth, devHeight
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	width, height := displayMode.W, displayMode.H

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, devWidth)
		height = envSize(constants.WindowHeightEnvVar, devHeight)
	}

	logger().Debug("Initializing SDL window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, winOpts.Flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logger().Debug("Blend mode unavailable", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		Window:   win,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	w.loadBackground()

	return w, nil
}

func envSize(key string, fallback int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger().Warn("Invalid window size; using default", "variable", key, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	texture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		logger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = texture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// GetWindow returns the window created by Init.
func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _, err := window.Renderer.GetOutputSize()
	if err != nil {
		w, _ = window.Window.GetSize()
	}
	return w
}

func (window *Window) GetHeight() int32 {
	_, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		_, h = window.Window.GetSize()
	}
	return h
}

// Clear fills the frame with the theme background.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
