// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestNewTextDefaults(t *testing.T) {
	txt := NewText("hello")

	if txt.Content() != "hello" {
		t.Errorf("Content() = %q", txt.Content())
	}
	if txt.Size() != DefaultTextSize {
		t.Errorf("Size() = %g, want %g", txt.Size(), DefaultTextSize)
	}
	if txt.Color() != (color.RGBA{A: 255}) {
		t.Errorf("Color() = %v, want opaque black", txt.Color())
	}
	if txt.RightToLeft() {
		t.Error("latin text reported as right-to-left")
	}
}

func TestTextBitmap(t *testing.T) {
	txt := NewText("Hg")

	bm := txt.Bitmap()
	if bm == nil {
		t.Fatal("Bitmap() = nil")
	}
	if bm.Bounds().Dx() <= 0 || bm.Bounds().Dy() <= 0 {
		t.Fatalf("bitmap bounds = %v", bm.Bounds())
	}

	// Some pixel must carry ink.
	inked := false
	for _, v := range bm.Pix {
		if v != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("rasterized text is fully transparent")
	}

	if txt.Bitmap() != bm {
		t.Error("Bitmap() should be cached between calls")
	}
}

func TestTextBitmapEmpty(t *testing.T) {
	if bm := NewText("").Bitmap(); bm != nil {
		t.Error("empty content should have no bitmap")
	}
}

func TestTextSetContentInvalidates(t *testing.T) {
	txt := NewText("a")
	first := txt.Bitmap()

	txt.SetContent("a much longer line")
	second := txt.Bitmap()
	if second == first {
		t.Fatal("SetContent should invalidate the cached bitmap")
	}
	if second.Bounds().Dx() <= first.Bounds().Dx() {
		t.Errorf("longer content not wider: %d <= %d",
			second.Bounds().Dx(), first.Bounds().Dx())
	}
}

func TestTextSetSize(t *testing.T) {
	txt := NewText("x")
	small := txt.Bitmap()

	txt.SetSize(48)
	big := txt.Bitmap()
	if big.Bounds().Dy() <= small.Bounds().Dy() {
		t.Errorf("48pt not taller than default: %d <= %d",
			big.Bounds().Dy(), small.Bounds().Dy())
	}

	txt.SetSize(-5)
	if txt.Size() != DefaultTextSize {
		t.Errorf("invalid size should reset to default, got %g", txt.Size())
	}
}

func TestTextDirection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rtl     bool
	}{
		{"latin", "hello", false},
		{"hebrew", "שלום", true},
		{"arabic", "مرحبا", true},
		{"digits only", "123", false},
		{"whitespace only", "   ", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Construction must never panic, whatever the content.
			txt := NewText(tt.content)
			if got := txt.RightToLeft(); got != tt.rtl {
				t.Errorf("RightToLeft() = %v, want %v", got, tt.rtl)
			}
			txt.SetContent(tt.content)
			if got := txt.RightToLeft(); got != tt.rtl {
				t.Errorf("RightToLeft() after SetContent = %v, want %v", got, tt.rtl)
			}
		})
	}
}

func TestTextSetFont(t *testing.T) {
	txt := NewText("hello")
	if err := txt.SetFont(gobold.TTF); err != nil {
		t.Fatalf("SetFont(valid) error = %v", err)
	}
	if txt.Bitmap() == nil {
		t.Error("Bitmap() = nil after font change")
	}
}

func TestTextSetFontInvalid(t *testing.T) {
	txt := NewText("hello")
	if err := txt.SetFont([]byte("not a font")); err == nil {
		t.Fatal("SetFont(garbage) should fail")
	}
	// Failed SetFont leaves the previous font working.
	if txt.Bitmap() == nil {
		t.Error("previous font lost after failed SetFont")
	}
}

func TestTextAdvance(t *testing.T) {
	txt := NewText("hello")
	adv, err := txt.Advance()
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if adv <= 0 {
		t.Fatalf("Advance() = %g, want > 0", adv)
	}

	txt.SetContent("hello hello")
	wider, err := txt.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if wider <= adv {
		t.Errorf("longer content advance %g <= %g", wider, adv)
	}
}

func TestTextAdvanceEmpty(t *testing.T) {
	txt := NewText("")
	adv, err := txt.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if adv != 0 {
		t.Errorf("Advance() = %g, want 0", adv)
	}
}
