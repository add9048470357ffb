package phaser

import (
	"errors"

	"github.com/sshyran/phaser/display"
)

// Common renderer errors.
var (
	// ErrNilTarget is returned when a draw is requested with no target.
	ErrNilTarget = errors.New("phaser: nil render target")

	// ErrCPUAccess is returned when a CPU compositor is handed a target
	// without pixel access.
	ErrCPUAccess = errors.New("phaser: target does not support CPU access")
)

// Filter specifies the interpolation mode used when a target's contents are
// sampled or when nodes are composited into it.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor sampling. Crisp for pixel art.
	FilterNearest Filter = iota

	// FilterLinear uses bilinear sampling. Smooth for scaled content.
	FilterLinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// DrawOptions modifies a single Draw call.
type DrawOptions struct {
	// Clear erases the whole target to transparent black before drawing.
	Clear bool

	// SkipUpdate prevents the renderer from advancing node animations
	// before compositing. Bake paths set this so drawing a node into a
	// texture never mutates its animation state.
	SkipUpdate bool
}

// Renderer is the external drawing capability the render-to-texture core
// delegates to. Implementations may composite on the CPU or on a GPU.
//
// Renderers are NOT thread-safe. Use each renderer from a single goroutine
// or synchronize externally; RenderTexture already serializes its own calls.
type Renderer interface {
	// NewTarget allocates an offscreen target of width x height device
	// pixels. The filter controls how the target is later sampled.
	NewTarget(width, height int, filter Filter) (Target, error)

	// Draw composites the node's appearance into the target using the
	// given affine transform, clearing first when opts.Clear is set.
	// The node is borrowed for the duration of the call only.
	Draw(target Target, node display.Node, m Matrix, opts DrawOptions) error

	// Flush ensures all pending drawing is complete. CPU renderers
	// typically make this a no-op; GPU renderers submit and wait.
	Flush() error
}
