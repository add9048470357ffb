package phaser

import (
	"fmt"
	"image"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/sshyran/phaser/display"
)

// SoftwareRenderer is a CPU compositor. It blits node bitmaps through
// affine transforms with source-over blending, recursing into containers
// and honoring node visibility and opacity.
//
// The filter a target was allocated with selects the interpolator:
// FilterNearest maps to nearest-neighbor sampling, FilterLinear to
// bilinear. SoftwareRenderer is the default backend, requiring no GPU and
// no host integration.
//
// SoftwareRenderer is NOT thread-safe.
type SoftwareRenderer struct {
	// last is the wall-clock time of the previous animated draw, used to
	// compute the dt passed to Updatable nodes.
	last time.Time
}

var _ Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a CPU compositor.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// NewTarget allocates a transparent CPU-backed pixmap target.
func (r *SoftwareRenderer) NewTarget(width, height int, filter Filter) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("phaser: invalid target size %dx%d", width, height)
	}
	return NewPixmapTarget(width, height, filter), nil
}

// Draw composites node into target using the transform m.
//
// The transform maps the node's local bitmap coordinates to target device
// pixels; the node's own placement is NOT applied here for the root node
// (the caller's matrix already accounts for it), but child placements
// compose during container recursion.
func (r *SoftwareRenderer) Draw(target Target, node display.Node, m Matrix, opts DrawOptions) error {
	if target == nil {
		return ErrNilTarget
	}
	pix := target.Pixels()
	if pix == nil {
		return ErrCPUAccess
	}

	dst := &image.RGBA{
		Pix:    pix,
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}

	if opts.Clear {
		for i := range pix {
			pix[i] = 0
		}
	}
	if node == nil {
		return nil
	}

	if !opts.SkipUpdate {
		r.step(node)
	}

	filter := FilterNearest
	if pt, ok := target.(*PixmapTarget); ok {
		filter = pt.Filter()
	}
	r.drawNode(dst, node, m, 1.0, filter)
	return nil
}

// Flush is a no-op: all software drawing is synchronous.
func (r *SoftwareRenderer) Flush() error { return nil }

// step advances animation state for node and its descendants.
func (r *SoftwareRenderer) step(node display.Node) {
	now := time.Now()
	var dt float64
	if !r.last.IsZero() {
		dt = now.Sub(r.last).Seconds()
	}
	r.last = now
	stepNode(node, dt)
}

func stepNode(node display.Node, dt float64) {
	if u, ok := node.(display.Updatable); ok {
		u.Update(dt)
	}
	if c, ok := node.(*display.Container); ok {
		for _, child := range c.Children() {
			stepNode(child, dt)
		}
	}
}

// drawNode composites one node. alpha is the accumulated opacity of all
// ancestors times the node's own.
func (r *SoftwareRenderer) drawNode(dst *image.RGBA, node display.Node, m Matrix, alpha float64, filter Filter) {
	if node == nil || !node.Visible() {
		return
	}
	alpha *= node.Alpha()
	if alpha <= 0 {
		return
	}

	if c, ok := node.(*display.Container); ok {
		for _, child := range c.Children() {
			cm := m
			if p, ok := display.PlacementOf(child); ok {
				cm = m.Multiply(placementMatrix(p))
			}
			r.drawNode(dst, child, cm, alpha, filter)
		}
		return
	}

	bm, ok := node.(display.Bitmapper)
	if !ok {
		return
	}
	src := bm.Bitmap()
	if src == nil {
		return
	}

	local := m
	if s, ok := node.(*display.Sprite); ok {
		if ax, ay := s.Anchor(); ax != 0 || ay != 0 {
			local = m.Multiply(Translate(-ax*float64(s.Width()), -ay*float64(s.Height())))
		}
	}

	// A collapsed transform has zero area; there is nothing to composite.
	if math.Abs(local.Det()) < 1e-12 {
		return
	}

	if alpha < 1 {
		src = scaleAlpha(src, alpha)
	}

	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	if filter == FilterLinear {
		interp = xdraw.BiLinear
	}
	interp.Transform(dst, local.Aff3(), src, src.Bounds(), xdraw.Over, nil)
}

// placementMatrix builds the local transform for a child node:
// translate, then rotate, then scale.
func placementMatrix(p display.Placement) Matrix {
	m := Translate(p.X, p.Y)
	if p.Rotation != 0 {
		m = m.Multiply(Rotate(p.Rotation))
	}
	if p.ScaleX != 1 || p.ScaleY != 1 {
		m = m.Multiply(Scale(p.ScaleX, p.ScaleY))
	}
	return m
}

// scaleAlpha returns a copy of src with every (premultiplied) channel
// scaled by alpha.
func scaleAlpha(src *image.RGBA, alpha float64) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	a := uint32(alpha*65536 + 0.5)
	for i, v := range src.Pix {
		out.Pix[i] = uint8(uint32(v) * a >> 16)
	}
	return out
}
