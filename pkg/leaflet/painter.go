package leaflet

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
)

const (
	textCacheSize = 256
	iconCacheSize = 16
)

// fontRole names one of the fonts opened by Init.
type fontRole int

const (
	fontBody fontRole = iota
	fontTitle
	fontHeading
	fontSmall
)

func (f fontRole) font() *ttf.Font {
	switch f {
	case fontTitle:
		return internal.Fonts.Title
	case fontHeading:
		return internal.Fonts.Heading
	case fontSmall:
		return internal.Fonts.Small
	default:
		return internal.Fonts.Body
	}
}

type textKey struct {
	text  string
	role  fontRole
	color sdl.Color
}

type iconKey struct {
	icon  string
	color sdl.Color
	size  int32
}

// painter draws text and icons, keeping recently used textures around so
// unchanged frames do not re-render glyphs.
type painter struct {
	renderer *sdl.Renderer
	textures *internal.Cache[textKey, *sdl.Texture]
	icons    *internal.Cache[iconKey, *sdl.Texture]
}

func newPainter(renderer *sdl.Renderer) *painter {
	return &painter{
		renderer: renderer,
		textures: internal.NewCache[textKey, *sdl.Texture](textCacheSize),
		icons:    internal.NewCache[iconKey, *sdl.Texture](iconCacheSize),
	}
}

func (p *painter) textTexture(text string, role fontRole, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	key := textKey{text: text, role: role, color: color}
	if texture, ok := p.textures.Get(key); ok {
		return texture
	}

	texture := internal.RenderText(p.renderer, text, role.font(), color)
	if texture == nil {
		return nil
	}
	p.textures.Set(key, texture)
	return texture
}

// text draws a single line at (x, y) and returns its size.
func (p *painter) text(text string, role fontRole, color sdl.Color, x, y int32) (w, h int32) {
	return internal.DrawTexture(p.renderer, p.textTexture(text, role, color), x, y)
}

// icon draws an icon from constants, size pixels square, at (x, y).
func (p *painter) icon(icon string, color sdl.Color, size, x, y int32) {
	key := iconKey{icon: icon, color: color, size: size}

	texture, ok := p.icons.Get(key)
	if !ok {
		var err error
		texture, err = internal.IconTexture(p.renderer, icon, color, size)
		if err != nil {
			logger().Debug("Failed to render icon", "error", err)
			return
		}
		p.icons.Set(key, texture)
	}

	p.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func (p *painter) measure(role fontRole) internal.MeasureFunc {
	return internal.FontMeasure(role.font())
}

func (p *painter) lineHeight(role fontRole) int32 {
	return internal.LineHeight(role.font())
}

func (p *painter) fill(rect sdl.Rect, color sdl.Color) {
	p.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.renderer.FillRect(&rect)
}

func (p *painter) destroy() {
	p.textures.Destroy()
	p.icons.Destroy()
}
