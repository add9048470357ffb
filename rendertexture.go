package phaser

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/sshyran/phaser/display"
)

// Render texture errors.
var (
	// ErrNilGame is returned when a RenderTexture is created without an
	// engine context.
	ErrNilGame = errors.New("phaser: nil game")

	// ErrDestroyed is returned by operations on a destroyed texture.
	ErrDestroyed = errors.New("phaser: render texture destroyed")
)

// AutoCoord is the coordinate value that makes RenderAt default an axis
// from the node's own position. Each axis defaults independently.
var AutoCoord = math.NaN()

// RenderTexture is a persistent offscreen surface any display node can be
// composited into, producing a reusable texture at runtime.
//
// The backing surface is allocated once at construction, sized at the
// logical dimensions times the resolution multiplier, and reused across
// render calls. Contents accumulate with source-over blending unless a call
// clears first.
//
// One scratch transform is owned per instance and fully overwritten before
// each draw; a per-instance lock serializes render calls so the scratch and
// the surface never interleave between callers. Distinct instances share
// nothing.
type RenderTexture struct {
	game     *Game
	renderer Renderer

	width      int
	height     int
	resolution float64
	filter     Filter
	key        string

	mu        sync.Mutex
	scratch   Matrix
	target    Target
	destroyed bool
}

// NewRenderTexture allocates a render texture against the game's renderer.
// Defaults: 100x100 logical pixels, resolution 1, the game's default
// filter, empty key. Dimension validation is whatever the renderer's
// target allocation enforces; no extra checks happen here, and allocation
// errors propagate unchanged.
func NewRenderTexture(game *Game, opts ...TextureOption) (*RenderTexture, error) {
	if game == nil {
		return nil, ErrNilGame
	}

	options := defaultTextureOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if !options.filterSet {
		options.filter = game.DefaultFilter()
	}

	pw := int(math.Round(float64(options.width) * options.resolution))
	ph := int(math.Round(float64(options.height) * options.resolution))

	target, err := game.Renderer().NewTarget(pw, ph, options.filter)
	if err != nil {
		return nil, fmt.Errorf("phaser: allocating %dx%d target: %w", pw, ph, err)
	}

	return &RenderTexture{
		game:       game,
		renderer:   game.Renderer(),
		width:      options.width,
		height:     options.height,
		resolution: options.resolution,
		filter:     options.filter,
		key:        options.key,
		target:     target,
	}, nil
}

// Width returns the logical width in pixels.
func (rt *RenderTexture) Width() int { return rt.width }

// Height returns the logical height in pixels.
func (rt *RenderTexture) Height() int { return rt.height }

// Resolution returns the device pixel multiplier.
func (rt *RenderTexture) Resolution() float64 { return rt.resolution }

// Filter returns the sampling mode.
func (rt *RenderTexture) Filter() Filter { return rt.filter }

// Key returns the opaque cache-lookup key, possibly empty.
func (rt *RenderTexture) Key() string { return rt.key }

// Target returns the backing surface. Callers must not draw into it while
// render calls are in flight.
func (rt *RenderTexture) Target() Target {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.target
}

// RenderAt composites node into the texture at (x, y), honoring the node's
// own scale and rotation. Pass AutoCoord (NaN) for either coordinate to
// default that axis from the node's own position; the axes default
// independently.
//
// Nodes that do not expose a placement are skipped silently: the call
// returns nil and the surface is untouched. The node itself is never
// mutated and need not belong to any live scene.
//
// With clearFirst the surface is erased before drawing, so afterwards it
// holds only this node's appearance; otherwise the node is drawn over the
// existing contents.
func (rt *RenderTexture) RenderAt(node display.Node, x, y float64, clearFirst bool) error {
	p, ok := display.PlacementOf(node)
	if !ok {
		Logger().Debug("render skipped: node has no placement")
		return nil
	}
	if math.IsNaN(x) {
		x = p.X
	}
	if math.IsNaN(y) {
		y = p.Y
	}
	return rt.render(node, p, x, y, ModeTransformed, clearFirst)
}

// Render composites node at the node's own position: shorthand for
// RenderAt with both coordinates defaulted.
func (rt *RenderTexture) Render(node display.Node, clearFirst bool) error {
	return rt.RenderAt(node, AutoCoord, AutoCoord, clearFirst)
}

// RenderRawAt composites node at (x, y) with identity orientation: the
// node's own position, scale, and rotation are ignored entirely. Both
// coordinates are required. Unlike RenderAt there is no placement guard;
// whatever the renderer does with the node is surfaced as-is.
func (rt *RenderTexture) RenderRawAt(node display.Node, x, y float64, clearFirst bool) error {
	return rt.render(node, display.Placement{}, x, y, ModeRaw, clearFirst)
}

// render synthesizes the placement transform into the scratch matrix and
// delegates to the renderer exactly once. The instance lock makes the
// clear-then-draw pair atomic with respect to other callers.
func (rt *RenderTexture) render(node display.Node, p display.Placement, x, y float64, mode TransformMode, clearFirst bool) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		return ErrDestroyed
	}

	synthesizeInto(&rt.scratch, p, x, y, mode, rt.resolution)
	return rt.renderer.Draw(rt.target, node, rt.scratch, DrawOptions{
		Clear:      clearFirst,
		SkipUpdate: true,
	})
}

// Clear erases the surface to transparent black without drawing anything.
func (rt *RenderTexture) Clear() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		return ErrDestroyed
	}
	return rt.renderer.Draw(rt.target, nil, Identity(), DrawOptions{Clear: true, SkipUpdate: true})
}

// Snapshot returns a copy of the current contents, or nil for targets
// without CPU access. The copy is width*resolution x height*resolution
// device pixels.
func (rt *RenderTexture) Snapshot() *image.RGBA {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		return nil
	}
	pix := rt.target.Pixels()
	if pix == nil {
		return nil
	}
	w, h := rt.target.Width(), rt.target.Height()
	stride := rt.target.Stride()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], pix[y*stride:y*stride+w*4])
	}
	return img
}

// Destroy releases the backing surface. Further renders return
// ErrDestroyed. Destroying twice logs a warning and is otherwise a no-op.
func (rt *RenderTexture) Destroy() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		Logger().Warn("render texture destroyed twice", "key", rt.key)
		return
	}
	rt.destroyed = true
	rt.target = nil
}
