// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image"
	"image/draw"
)

// Sprite is a bitmap-backed node. The bitmap is borrowed, not copied;
// callers must not mutate it while the sprite is being rendered.
type Sprite struct {
	Base

	img     *image.RGBA
	anchorX float64
	anchorY float64
}

var (
	_ Placed    = (*Sprite)(nil)
	_ Bitmapper = (*Sprite)(nil)
)

// NewSprite creates a sprite from an image. Non-RGBA images are converted
// once at construction.
func NewSprite(img image.Image) *Sprite {
	return &Sprite{
		Base: NewBase(),
		img:  toRGBA(img),
	}
}

// Bitmap implements Bitmapper.
func (s *Sprite) Bitmap() *image.RGBA { return s.img }

// SetBitmap replaces the sprite's image.
func (s *Sprite) SetBitmap(img image.Image) { s.img = toRGBA(img) }

// Anchor returns the sprite's normalized origin. (0,0) is the top-left
// corner, (0.5,0.5) the center, (1,1) the bottom-right corner.
func (s *Sprite) Anchor() (ax, ay float64) { return s.anchorX, s.anchorY }

// SetAnchor sets the normalized origin the sprite is placed and rotated
// about.
func (s *Sprite) SetAnchor(ax, ay float64) { s.anchorX, s.anchorY = ax, ay }

// Width returns the bitmap width in pixels, 0 when the sprite has no bitmap.
func (s *Sprite) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dx()
}

// Height returns the bitmap height in pixels, 0 when the sprite has no
// bitmap.
func (s *Sprite) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dy()
}

// toRGBA returns img as *image.RGBA, converting if necessary. The result
// is normalized to a zero origin so bitmap coordinates start at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
