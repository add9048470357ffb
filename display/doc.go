// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

// Package display provides the 2D scene-graph node types that renderers
// composite: bitmap sprites, solid rectangles, text, and containers.
//
// Nodes are passive value holders. They carry a placement (position, scale,
// rotation), visibility, and opacity, and can produce their rasterized
// appearance on demand. All drawing is performed by a renderer; a node never
// draws itself.
//
// Nodes are not thread-safe. Mutate them from the goroutine that renders
// them, or synchronize externally.
package display
