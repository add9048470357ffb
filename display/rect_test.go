// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image/color"
	"testing"
)

func TestRectBitmap(t *testing.T) {
	r := NewRect(3, 2, color.RGBA{R: 255, A: 255})

	bm := r.Bitmap()
	if bm == nil {
		t.Fatal("Bitmap() = nil")
	}
	if bm.Bounds().Dx() != 3 || bm.Bounds().Dy() != 2 {
		t.Errorf("bitmap = %v, want 3x2", bm.Bounds())
	}
	if got := bm.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("fill = %v", got)
	}
}

func TestRectBitmapCached(t *testing.T) {
	r := NewRect(2, 2, color.RGBA{A: 255})
	if r.Bitmap() != r.Bitmap() {
		t.Error("Bitmap() should return the cached image on repeat calls")
	}
}

func TestRectSetSizeInvalidatesCache(t *testing.T) {
	r := NewRect(2, 2, color.RGBA{A: 255})
	first := r.Bitmap()

	r.SetSize(4, 4)
	second := r.Bitmap()
	if second == first {
		t.Error("SetSize should invalidate the cached bitmap")
	}
	if second.Bounds().Dx() != 4 {
		t.Errorf("width = %d, want 4", second.Bounds().Dx())
	}
}

func TestRectSetFillInvalidatesCache(t *testing.T) {
	r := NewRect(2, 2, color.RGBA{R: 255, A: 255})
	r.Bitmap()

	r.SetFill(color.RGBA{B: 255, A: 255})
	if got := r.Bitmap().RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("fill after SetFill = %v", got)
	}
}

func TestRectZeroSize(t *testing.T) {
	if bm := NewRect(0, 5, color.RGBA{A: 255}).Bitmap(); bm != nil {
		t.Error("zero-width rect should have no bitmap")
	}
	if bm := NewRect(5, -1, color.RGBA{A: 255}).Bitmap(); bm != nil {
		t.Error("negative-height rect should have no bitmap")
	}
}
