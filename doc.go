// Package phaser provides an offscreen render-to-texture pipeline for 2D
// scene-graph nodes.
//
// # Overview
//
// A RenderTexture owns a persistent offscreen surface that any display node
// (sprite, text, container, ...) can be composited into, whether or not the
// node is attached to a live scene. Complex or semi-static compositions can
// be baked once and reused as a flat texture, avoiding per-frame composition
// cost.
//
// # Quick Start
//
//	game := phaser.NewGame()
//
//	rt, err := phaser.NewRenderTexture(game,
//	    phaser.WithSize(256, 256),
//	    phaser.WithKey("minimap"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sprite := display.NewSprite(img)
//	sprite.SetPosition(10, 10)
//
//	// Honor the sprite's own scale/rotation, clear first.
//	rt.RenderAt(sprite, 10, 10, true)
//
//	// Translation only, drawn over existing contents.
//	rt.RenderRawAt(sprite, 50, 50, false)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Game, RenderTexture, Matrix, Renderer, Target
//   - display: scene-graph node types (Sprite, Container, Text, Rect)
//   - backend: pluggable renderer registry (software, gpu)
//   - cache: sharded key/value store backing the TextureManager
//
// Actual drawing is delegated through the Renderer interface. The shipped
// SoftwareRenderer composites on the CPU via golang.org/x/image; GPU-backed
// renderers receive their device from the host application through a
// DeviceHandle and are selected through the backend registry.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Render calls against one RenderTexture are serialized by a per-instance
// lock; distinct instances share nothing. Renderers themselves are not
// thread-safe unless documented otherwise.
package phaser
