// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

import "image"

// Placement describes where a node sits in its parent's coordinate space:
// a translation, a per-axis scale, and a rotation about the node's origin
// (radians). Skew is not modeled.
type Placement struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Node is the minimal contract every display object satisfies.
type Node interface {
	// Visible reports whether the node should be drawn at all.
	Visible() bool

	// Alpha returns the node's opacity in [0, 1]. Renderers multiply it
	// into every pixel they composite for this node and its children.
	Alpha() float64
}

// Placed is implemented by nodes that expose a placement. Render paths that
// honor a node's own transform require this; nodes without it are skipped.
type Placed interface {
	Node

	// Placement returns the node's current placement as a value. Callers
	// must not assume it stays in sync with later mutations.
	Placement() Placement
}

// Bitmapper is implemented by leaf nodes that can produce their rasterized
// appearance. The returned image may be cached by the node; callers must
// treat it as read-only.
type Bitmapper interface {
	Node

	// Bitmap returns the node's appearance, or nil if it has none.
	Bitmap() *image.RGBA
}

// Updatable is implemented by animated nodes. Renderers step animations by
// calling Update with the elapsed time since the previous frame, unless a
// draw request asks for the node's current state as-is.
type Updatable interface {
	Update(dt float64)
}

// PlacementOf returns the node's placement when it exposes one.
func PlacementOf(n Node) (Placement, bool) {
	p, ok := n.(Placed)
	if !ok {
		return Placement{}, false
	}
	return p.Placement(), true
}
