package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) int32

// FontMeasure measures text with font.
func FontMeasure(font *ttf.Font) MeasureFunc {
	return func(s string) int32 {
		return TextWidth(font, s)
	}
}

// TextWidth returns the width of text rendered with font, or 0 on error.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// LineHeight returns the height of a line of font including line spacing.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + h/4
}

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines
// are kept, runs of spaces collapse, and words wider than maxWidth are split
// between runes.
func WrapText(text string, maxWidth int32, measure MeasureFunc) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}

			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, current)
			}

			if measure(word) <= maxWidth {
				current = word
				continue
			}

			pieces := breakRunes(word, maxWidth, measure)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
		}
		lines = append(lines, current)
	}

	return lines
}

// WrapPreformatted breaks text into lines no wider than maxWidth without
// touching whitespace. Tabs become four spaces.
func WrapPreformatted(text string, maxWidth int32, measure MeasureFunc) []string {
	var lines []string
	text = strings.ReplaceAll(text, "\t", "    ")

	for _, line := range strings.Split(text, "\n") {
		if line == "" || measure(line) <= maxWidth {
			lines = append(lines, line)
			continue
		}
		lines = append(lines, breakRunes(line, maxWidth, measure)...)
	}

	return lines
}

func breakRunes(s string, maxWidth int32, measure MeasureFunc) []string {
	var pieces []string
	runes := []rune(s)

	for len(runes) > 0 {
		n := 1
		for n < len(runes) && measure(string(runes[:n+1])) <= maxWidth {
			n++
		}
		pieces = append(pieces, string(runes[:n]))
		runes = runes[n:]
	}

	return pieces
}

// RenderText renders text into a new texture. It returns nil for empty text
// or when rendering fails.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// DrawTexture copies texture to (x, y) at its natural size and returns
// that size.
func DrawTexture(renderer *sdl.Renderer, texture *sdl.Texture, x, y int32) (w, h int32) {
	if texture == nil {
		return 0, 0
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// TruncateText shortens text with an ellipsis so it fits maxWidth.
func TruncateText(text string, maxWidth int32, measure MeasureFunc) string {
	if measure(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func Max32F(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
