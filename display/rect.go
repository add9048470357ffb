// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image"
	"image/color"
	"image/draw"
)

// Rect is a solid-color rectangle node. It is the cheapest drawable
// primitive and is handy for backgrounds, flashes, and tests.
type Rect struct {
	Base

	w, h int
	fill color.RGBA

	cached *image.RGBA
}

var (
	_ Placed    = (*Rect)(nil)
	_ Bitmapper = (*Rect)(nil)
)

// NewRect creates a w by h rectangle filled with the given color.
func NewRect(w, h int, fill color.RGBA) *Rect {
	return &Rect{
		Base: NewBase(),
		w:    w,
		h:    h,
		fill: fill,
	}
}

// Size returns the rectangle's dimensions in pixels.
func (r *Rect) Size() (w, h int) { return r.w, r.h }

// SetSize resizes the rectangle and invalidates its cached bitmap.
func (r *Rect) SetSize(w, h int) {
	r.w, r.h = w, h
	r.cached = nil
}

// Fill returns the fill color.
func (r *Rect) Fill() color.RGBA { return r.fill }

// SetFill changes the fill color and invalidates the cached bitmap.
func (r *Rect) SetFill(c color.RGBA) {
	r.fill = c
	r.cached = nil
}

// Bitmap implements Bitmapper. The bitmap is rasterized lazily and cached
// until the rectangle changes.
func (r *Rect) Bitmap() *image.RGBA {
	if r.w <= 0 || r.h <= 0 {
		return nil
	}
	if r.cached == nil {
		img := image.NewRGBA(image.Rect(0, 0, r.w, r.h))
		draw.Draw(img, img.Bounds(), image.NewUniform(r.fill), image.Point{}, draw.Src)
		r.cached = img
	}
	return r.cached
}
