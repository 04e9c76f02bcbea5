package leaflet

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/markup"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

// lineStyle is how a laid out line of a post is drawn.
type lineStyle int

const (
	styleBody lineStyle = iota
	styleHeading
	styleQuote
	stylePreformatted
)

func (s lineStyle) role() fontRole {
	if s == styleHeading {
		return fontHeading
	}
	return fontBody
}

// metrics measures text for layout.
type metrics interface {
	Measure(style lineStyle) internal.MeasureFunc
	LineHeight(style lineStyle) int32
	Indent() int32
}

type detailLine struct {
	text  string
	style lineStyle
	x, y  int32 // Relative to the top left of the content
}

// layoutBlocks wraps blocks to width and positions every line. It returns
// the lines and the total content height.
func layoutBlocks(blocks []markup.Block, width int32, m metrics) ([]detailLine, int32) {
	var lines []detailLine
	var y int32
	gap := m.LineHeight(styleBody) / 2

	for i, block := range blocks {
		if i > 0 {
			y += gap
		}

		style := styleBody
		var indent int32
		text := block.Text

		switch block.Kind {
		case markup.Heading:
			style = styleHeading
		case markup.Quote:
			style = styleQuote
			indent = m.Indent()
		case markup.Preformatted:
			style = stylePreformatted
			indent = m.Indent() / 2
		case markup.ListItem:
			indent = m.Indent() * int32(max(block.Level-1, 0))
			text = markup.Bullet + text
		}

		measure := m.Measure(style)
		var wrapped []string
		if style == stylePreformatted {
			wrapped = internal.WrapPreformatted(text, width-indent, measure)
		} else {
			wrapped = internal.WrapText(text, width-indent, measure)
		}

		lineHeight := m.LineHeight(style)
		for _, line := range wrapped {
			lines = append(lines, detailLine{text: line, style: style, x: indent, y: y})
			y += lineHeight
		}
	}

	return lines, y
}

// postDetail is the post view: a loading or error message, or the post's
// text scrolled vertically.
type postDetail struct {
	content nav.Content
	blocks  []markup.Block

	lines       []detailLine
	height      int32
	layoutWidth int32

	scrollY    int32
	viewHeight int32
	lineHeight int32 // Body line height of the last frame, the distance of one step
}

func (d *postDetail) setContent(c nav.Content) {
	d.content = c
	d.blocks = nil
	d.lines = nil
	d.layoutWidth = 0

	if c.Kind != nav.ContentMarkup {
		return
	}

	blocks, err := markup.Parse(c.Body)
	if err != nil {
		logger().Warn("Showing post markup as text", "error", err)
		blocks = []markup.Block{{Kind: markup.Preformatted, Text: c.Body}}
	}
	d.blocks = blocks
}

func (d *postDetail) layout(width int32, m metrics) {
	if d.layoutWidth == width && d.lines != nil {
		return
	}
	d.lines, d.height = layoutBlocks(d.blocks, width, m)
	d.layoutWidth = width
	d.scrollY = d.clamp(d.scrollY)
}

func (d *postDetail) maxScroll() int32 {
	return max(d.height-d.viewHeight, 0)
}

func (d *postDetail) clamp(y int32) int32 {
	return min(max(y, 0), d.maxScroll())
}

func (d *postDetail) scroll(delta int32) {
	d.scrollY = d.clamp(d.scrollY + delta)
}

// step scrolls by one body line per unit of direction.
func (d *postDetail) step(direction int) {
	d.scroll(int32(direction) * max(d.lineHeight, 1))
}

func (d *postDetail) page(direction int) {
	d.scroll(int32(direction) * max(d.viewHeight*3/4, 1))
}

func (d *postDetail) scrollToTop() {
	d.scrollY = 0
}

func (d *postDetail) render(p *painter, area sdl.Rect) {
	theme := internal.GetTheme()

	switch d.content.Kind {
	case nav.ContentLoading:
		renderMessage(p, d.content.Body, theme.HintColor, area)
		return
	case nav.ContentError:
		renderMessage(p, d.content.Body, theme.ErrorColor, area)
		return
	}

	d.viewHeight = area.H
	d.lineHeight = p.lineHeight(fontBody)
	d.layout(area.W, sdlMetrics{p})

	p.renderer.SetClipRect(&area)
	defer p.renderer.SetClipRect(nil)

	for _, line := range d.lines {
		y := area.Y + line.y - d.scrollY
		if y+p.lineHeight(line.style.role()) < area.Y {
			continue
		}
		if y > area.Y+area.H {
			break
		}

		color := theme.TextColor
		switch line.style {
		case styleHeading:
			color = theme.AccentColor
		case styleQuote:
			color = theme.HintColor
			bar := internal.Scale(3)
			p.fill(sdl.Rect{X: area.X + line.x/2 - bar, Y: y, W: bar, H: p.lineHeight(fontBody)}, theme.AccentColor)
		}

		p.text(line.text, line.style.role(), color, area.X+line.x, y)
	}

	d.renderScrollbar(p, area)
}

func (d *postDetail) renderScrollbar(p *painter, area sdl.Rect) {
	if d.maxScroll() <= 0 {
		return
	}

	theme := internal.GetTheme()
	width := internal.Scale(6)
	x := area.X + area.W + internal.Scale(6)

	offset, height := internal.ScrollbarHandle(area.H, d.viewHeight, d.height, d.scrollY)
	internal.DrawScrollbar(p.renderer, x, area.Y+offset, width, height, theme.AccentColor)
}

// sdlMetrics measures with the fonts opened by Init.
type sdlMetrics struct {
	p *painter
}

func (m sdlMetrics) Measure(style lineStyle) internal.MeasureFunc {
	return m.p.measure(style.role())
}

func (m sdlMetrics) LineHeight(style lineStyle) int32 {
	return m.p.lineHeight(style.role())
}

func (m sdlMetrics) Indent() int32 {
	return internal.Scale(24)
}
