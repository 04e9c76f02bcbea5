package leaflet

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
)

// renderMessage draws text wrapped and centered in area.
func renderMessage(p *painter, text string, color sdl.Color, area sdl.Rect) {
	lines := internal.WrapText(text, area.W, p.measure(fontBody))
	lineHeight := p.lineHeight(fontBody)

	y := area.Y + (area.H-int32(len(lines))*lineHeight)/2
	measure := p.measure(fontBody)
	for _, line := range lines {
		x := area.X + (area.W-measure(line))/2
		p.text(line, fontBody, color, x, y)
		y += lineHeight
	}
}

// renderBanner draws a full-width notice at the top of area and returns the
// height it took.
func renderBanner(p *painter, text string, area sdl.Rect) int32 {
	if text == "" {
		return 0
	}

	theme := internal.GetTheme()
	padding := internal.Scale(8)
	lines := internal.WrapText(text, area.W-2*padding, p.measure(fontSmall))
	lineHeight := p.lineHeight(fontSmall)
	height := int32(len(lines))*lineHeight + 2*padding

	internal.DrawRoundedRect(p.renderer, &sdl.Rect{X: area.X, Y: area.Y, W: area.W, H: height}, internal.Scale(10), theme.ErrorColor)

	y := area.Y + padding
	for _, line := range lines {
		p.text(line, fontSmall, theme.ButtonLabelColor, area.X+padding, y)
		y += lineHeight
	}

	return height + internal.Scale(10)
}
