package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Inset returns the part of a w x h area left inside the padding.
func (p Padding) Inset(w, h int32) sdl.Rect {
	return sdl.Rect{
		X: p.Left,
		Y: p.Top,
		W: Max32(0, w-p.Left-p.Right),
		H: Max32(0, h-p.Top-p.Bottom),
	}
}
