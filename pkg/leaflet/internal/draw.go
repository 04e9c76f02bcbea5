package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// DrawRoundedRect fills rect with color, rounding the corners by radius.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect == nil || rect.W <= 0 || rect.H <= 0 {
		return
	}

	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius <= 0 {
		renderer.FillRect(rect)
		return
	}

	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Corner rows, one scanline at a time.
	for dy := int32(0); dy < radius; dy++ {
		offset := radius - dy
		inset := radius - int32(math.Sqrt(float64(radius*radius-offset*offset)))
		width := rect.W - 2*inset
		if width <= 0 {
			continue
		}
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: width, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: width, H: 1})
	}
}

// DrawScrollbar draws a pill-shaped vertical bar.
func DrawScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: width, H: height}, width/2, color)
}

// ScrollbarHandle returns the handle offset and height within a track of
// trackHeight for a view of viewHeight over contentHeight at scrollY.
func ScrollbarHandle(trackHeight, viewHeight, contentHeight, scrollY int32) (offset, height int32) {
	if contentHeight <= viewHeight || trackHeight <= 0 {
		return 0, trackHeight
	}

	height = int32(float64(trackHeight) * float64(viewHeight) / float64(contentHeight))
	height = Max32(height, Min32(20, trackHeight))

	maxScroll := contentHeight - viewHeight
	scrollY = Max32(0, Min32(scrollY, maxScroll))
	offset = int32(float64(scrollY) * float64(trackHeight-height) / float64(maxScroll))

	return offset, height
}
