package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG draws an SVG document into a size by size RGBA image.
func RasterizeSVG(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}

// IconTexture renders one of the icon format strings in constants with the
// given fill color.
func IconTexture(renderer *sdl.Renderer, iconFormat string, color sdl.Color, size int32) (*sdl.Texture, error) {
	img, err := RasterizeSVG(fmt.Sprintf(iconFormat, ColorHex(color)), int(size))
	if err != nil {
		return nil, err
	}
	return imageTexture(renderer, img)
}

func imageTexture(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	// image.RGBA stores R, G, B, A bytes, which is ABGR8888 on little endian.
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:y*pitch+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logger().Debug("Icon blend mode unavailable", "error", err)
	}

	return texture, nil
}
