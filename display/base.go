// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

// Base carries the placement, visibility, and opacity state shared by all
// concrete node types. Embed it and the embedding type satisfies Placed.
type Base struct {
	x, y     float64
	scaleX   float64
	scaleY   float64
	rotation float64
	visible  bool
	alpha    float64
}

// NewBase returns placement state at the origin with unit scale, zero
// rotation, fully visible and opaque.
func NewBase() Base {
	return Base{
		scaleX:  1,
		scaleY:  1,
		visible: true,
		alpha:   1,
	}
}

// Placement implements Placed.
func (b *Base) Placement() Placement {
	return Placement{
		X:        b.x,
		Y:        b.y,
		ScaleX:   b.scaleX,
		ScaleY:   b.scaleY,
		Rotation: b.rotation,
	}
}

// Position returns the node's position.
func (b *Base) Position() (x, y float64) { return b.x, b.y }

// SetPosition moves the node to (x, y).
func (b *Base) SetPosition(x, y float64) { b.x, b.y = x, y }

// Scale returns the node's per-axis scale.
func (b *Base) Scale() (sx, sy float64) { return b.scaleX, b.scaleY }

// SetScale sets the node's per-axis scale.
func (b *Base) SetScale(sx, sy float64) { b.scaleX, b.scaleY = sx, sy }

// Rotation returns the node's rotation in radians.
func (b *Base) Rotation() float64 { return b.rotation }

// SetRotation sets the node's rotation in radians.
func (b *Base) SetRotation(r float64) { b.rotation = r }

// Visible implements Node.
func (b *Base) Visible() bool { return b.visible }

// SetVisible shows or hides the node.
func (b *Base) SetVisible(v bool) { b.visible = v }

// Alpha implements Node.
func (b *Base) Alpha() float64 { return b.alpha }

// SetAlpha sets the node's opacity, clamped to [0, 1].
func (b *Base) SetAlpha(a float64) {
	switch {
	case a < 0:
		b.alpha = 0
	case a > 1:
		b.alpha = 1
	default:
		b.alpha = a
	}
}
