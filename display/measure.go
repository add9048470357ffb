// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Measurer computes kerning- and ligature-aware text advances using
// HarfBuzz shaping via go-text/typesetting.
//
// Measurer is safe for concurrent use. The parsed font.Font is read-only
// and shared; font.Face instances are created per call since they are not
// concurrent-safe, and HarfbuzzShaper instances are pooled for the same
// reason.
type Measurer struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances. The shaper carries an
	// internal buffer and must not be shared between goroutines.
	shaperPool sync.Pool
}

// NewMeasurer parses raw TTF/OTF data into a reusable measurer.
func NewMeasurer(ttf []byte) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &Measurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Advance returns the total advance width of content at the given point
// size, in pixels. rtl selects right-to-left shaping for Arabic, Hebrew,
// and similar scripts.
func (m *Measurer) Advance(content string, size float64, rtl bool) float64 {
	if content == "" {
		return 0
	}

	runes := []rune(content)
	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	var adv fixed.Int26_6
	for _, g := range output.Glyphs {
		adv += g.XAdvance
	}
	return float64(adv) / 64
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split into runs by the caller before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
