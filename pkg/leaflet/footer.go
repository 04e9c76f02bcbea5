package leaflet

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
)

// footerHint is one pill in the footer: icons followed by a label.
type footerHint struct {
	icons []string
	label string // Message ID
}

var (
	listFooter = []footerHint{
		{icons: []string{constants.IconOpen}, label: messages.Open},
		{icons: []string{constants.IconArrowLeft, constants.IconArrowRight}, label: messages.History},
		{label: messages.Quit},
	}

	postFooter = []footerHint{
		{icons: []string{constants.IconArrowLeft}, label: messages.Back},
		{icons: []string{constants.IconUpDown}, label: messages.Scroll},
		{icons: []string{constants.IconArrowLeft, constants.IconArrowRight}, label: messages.History},
	}
)

func footerHints(showingPost bool) []footerHint {
	if showingPost {
		return postFooter
	}
	return listFooter
}

// footerHeight is the space renderFooter takes at the bottom of the screen.
func footerHeight(p *painter) int32 {
	return p.lineHeight(fontSmall) + 2*internal.Scale(6)
}

// renderFooter draws hints left to right along the bottom of area.
func renderFooter(p *painter, text *messages.Catalog, hints []footerHint, area sdl.Rect) {
	theme := internal.GetTheme()

	height := footerHeight(p)
	padding := internal.Scale(10)
	spacing := internal.Scale(10)
	iconSize := p.lineHeight(fontSmall) * 3 / 4
	measure := p.measure(fontSmall)

	x := area.X
	y := area.Y + area.H - height

	for _, hint := range hints {
		label := text.Text(hint.label)
		width := 2*padding + measure(label) + int32(len(hint.icons))*(iconSize+spacing/2)
		if x+width > area.X+area.W {
			break
		}

		internal.DrawRoundedRect(p.renderer, &sdl.Rect{X: x, Y: y, W: width, H: height}, height/2, theme.HighlightColor)

		cx := x + padding
		for _, icon := range hint.icons {
			p.icon(icon, theme.ButtonLabelColor, iconSize, cx, y+(height-iconSize)/2)
			cx += iconSize + spacing/2
		}
		p.text(label, fontSmall, theme.ButtonLabelColor, cx, y+internal.Scale(6))

		x += width + spacing
	}
}
