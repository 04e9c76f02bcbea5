package leaflet

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

// postList is the selectable list of post cards.
type postList struct {
	items        []nav.ListItem
	selected     int
	visibleStart int
	maxVisible   int
}

func newPostList() postList {
	return postList{maxVisible: 5}
}

// setItems replaces the rows and selects the first one.
func (l *postList) setItems(items []nav.ListItem) {
	l.items = items
	l.selected = 0
	l.visibleStart = 0
}

// selectedItem returns the selected row, if there is one.
func (l *postList) selectedItem() (nav.ListItem, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return nav.ListItem{}, false
	}
	return l.items[l.selected], true
}

// move steps the selection by delta rows, wrapping at either end.
func (l *postList) move(delta int) {
	n := len(l.items)
	if n == 0 || delta == 0 {
		return
	}
	l.selected = ((l.selected+delta)%n + n) % n
	l.scrollTo(l.selected)
}

// page moves the selection by a screenful without wrapping.
func (l *postList) page(direction int) {
	if len(l.items) == 0 {
		return
	}
	step := max(l.maxVisible-1, 1)
	l.selected = min(max(l.selected+direction*step, 0), len(l.items)-1)
	l.scrollTo(l.selected)
}

// scrollTo keeps index visible with a quarter screen of context above it.
func (l *postList) scrollTo(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}

	contextItems := max(l.maxVisible/4, 1)
	newStart := max(index-contextItems, 0)
	maxStart := max(len(l.items)-l.maxVisible, 0)

	l.visibleStart = min(newStart, maxStart)
}

func (l *postList) setMaxVisible(n int) {
	n = max(n, 1)
	if n == l.maxVisible {
		return
	}
	l.maxVisible = n
	l.scrollTo(l.selected)
}

func (l *postList) render(p *painter, area sdl.Rect) {
	theme := internal.GetTheme()

	titleHeight := p.lineHeight(fontBody)
	metaHeight := p.lineHeight(fontSmall)
	padding := internal.Scale(8)
	rowHeight := titleHeight + metaHeight + 2*padding
	rowGap := internal.Scale(6)
	radius := internal.Scale(14)

	l.setMaxVisible(int((area.H + rowGap) / (rowHeight + rowGap)))

	textWidth := area.W - 2*padding
	y := area.Y
	for i := l.visibleStart; i < len(l.items) && i < l.visibleStart+l.maxVisible; i++ {
		item := l.items[i]

		titleColor, metaColor := theme.TextColor, theme.HintColor
		if i == l.selected {
			internal.DrawRoundedRect(p.renderer, &sdl.Rect{X: area.X, Y: y, W: area.W, H: rowHeight}, radius, theme.HighlightColor)
			titleColor, metaColor = theme.HighlightedTextColor, theme.HighlightedTextColor
		}

		title := internal.TruncateText(item.Title, textWidth, p.measure(fontBody))
		meta := internal.TruncateText(item.Meta, textWidth, p.measure(fontSmall))

		p.text(title, fontBody, titleColor, area.X+padding, y+padding)
		p.text(meta, fontSmall, metaColor, area.X+padding, y+padding+titleHeight)

		y += rowHeight + rowGap
	}

	l.renderScrollbar(p, area)
}

func (l *postList) renderScrollbar(p *painter, area sdl.Rect) {
	if len(l.items) <= l.maxVisible {
		return
	}

	theme := internal.GetTheme()
	width := internal.Scale(6)
	x := area.X + area.W + internal.Scale(6)

	offset, height := internal.ScrollbarHandle(area.H, int32(l.maxVisible), int32(len(l.items)), int32(l.visibleStart))
	internal.DrawScrollbar(p.renderer, x, area.Y+offset, width, height, theme.AccentColor)
}
