// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// DefaultTextSize is the point size used when none is set.
const DefaultTextSize = 16.0

// Text is a single-line string node. Its appearance is rasterized lazily
// through an OpenType face and cached until the content, size, color, or
// font changes. Go Regular is the built-in default font.
type Text struct {
	Base

	content string
	size    float64
	col     color.RGBA
	source  []byte

	parsed *sfnt.Font
	face   font.Face
	rtl    bool

	measurer *Measurer

	cached *image.RGBA
}

var (
	_ Placed    = (*Text)(nil)
	_ Bitmapper = (*Text)(nil)
)

// NewText creates a black text node using the built-in font at
// DefaultTextSize.
func NewText(content string) *Text {
	t := &Text{
		Base:    NewBase(),
		size:    DefaultTextSize,
		col:     color.RGBA{A: 255},
		source:  goregular.TTF,
	}
	t.SetContent(content)
	return t
}

// Content returns the current string.
func (t *Text) Content() string { return t.content }

// SetContent replaces the string and re-derives the base direction from the
// Unicode bidirectional algorithm.
func (t *Text) SetContent(content string) {
	t.content = content
	t.cached = nil
	t.rtl = baseDirectionRTL(content)
}

// baseDirectionRTL reports whether content's base direction is
// right-to-left. The paragraph must be ordered before its direction can be
// read, and an ordering with no runs has no direction at all.
func baseDirectionRTL(content string) bool {
	if content == "" {
		return false
	}
	var p bidi.Paragraph
	if _, err := p.SetString(content); err != nil {
		return false
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return false
	}
	return ordering.Direction() == bidi.RightToLeft
}

// RightToLeft reports whether the content's base direction is right-to-left
// (e.g. Arabic or Hebrew). Layout code uses this to pick an alignment edge.
func (t *Text) RightToLeft() bool { return t.rtl }

// Size returns the point size.
func (t *Text) Size() float64 { return t.size }

// SetSize changes the point size.
func (t *Text) SetSize(size float64) {
	if size <= 0 {
		size = DefaultTextSize
	}
	t.size = size
	t.face = nil
	t.cached = nil
}

// Color returns the text color.
func (t *Text) Color() color.RGBA { return t.col }

// SetColor changes the text color.
func (t *Text) SetColor(c color.RGBA) {
	t.col = c
	t.cached = nil
}

// SetFont replaces the font with raw TTF/OTF data. The data is parsed
// eagerly so malformed fonts fail here rather than at first draw.
func (t *Text) SetFont(ttf []byte) error {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return err
	}
	t.source = ttf
	t.parsed = parsed
	t.face = nil
	t.measurer = nil
	t.cached = nil
	return nil
}

// Advance returns the kerning-aware advance width of the content in pixels,
// computed by HarfBuzz shaping. This is the width layout code should
// reserve; it can differ from the cached bitmap width for fonts with
// kerning pairs or ligatures.
func (t *Text) Advance() (float64, error) {
	if t.content == "" {
		return 0, nil
	}
	if t.measurer == nil {
		m, err := NewMeasurer(t.source)
		if err != nil {
			return 0, err
		}
		t.measurer = m
	}
	return t.measurer.Advance(t.content, t.size, t.rtl), nil
}

// Bitmap implements Bitmapper. Returns nil for empty content.
func (t *Text) Bitmap() *image.RGBA {
	if t.content == "" {
		return nil
	}
	if t.cached != nil {
		return t.cached
	}
	if err := t.ensureFace(); err != nil {
		return nil
	}

	d := font.Drawer{Face: t.face}
	adv := d.MeasureString(t.content)
	metrics := t.face.Metrics()

	w := adv.Ceil()
	h := metrics.Height.Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Src = image.NewUniform(t.col)
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(t.content)

	t.cached = img
	return img
}

func (t *Text) ensureFace() error {
	if t.face != nil {
		return nil
	}
	if t.parsed == nil {
		parsed, err := opentype.Parse(t.source)
		if err != nil {
			return err
		}
		t.parsed = parsed
	}
	face, err := opentype.NewFace(t.parsed, &opentype.FaceOptions{
		Size:    t.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	t.face = face
	return nil
}
