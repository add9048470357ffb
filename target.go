package phaser

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// Target is an offscreen surface a renderer draws into.
//
// Targets may support CPU access (Pixels), GPU access, or both. The
// renderer implementation chooses the appropriate access method. A target
// is exclusively owned by whoever allocated it; it is never shared between
// RenderTexture instances.
type Target interface {
	// Width returns the target width in device pixels.
	Width() int

	// Height returns the target height in device pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, or nil for GPU-only
	// targets. For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per pixel row.
	Stride() int
}

// PixmapTarget is a CPU-backed target using *image.RGBA. It is the backing
// surface the software renderer allocates.
type PixmapTarget struct {
	img    *image.RGBA
	filter Filter
}

var _ Target = (*PixmapTarget)(nil)

// NewPixmapTarget allocates a transparent CPU-backed target.
func NewPixmapTarget(width, height int, filter Filter) *PixmapTarget {
	return &PixmapTarget{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		filter: filter,
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA without copying.
func NewPixmapTargetFromImage(img *image.RGBA, filter Filter) *PixmapTarget {
	return &PixmapTarget{img: img, filter: filter}
}

// Width returns the target width in device pixels.
func (t *PixmapTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in device pixels.
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Format returns the pixel format (RGBA, 8 bits per channel).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the number of bytes per pixel row.
func (t *PixmapTarget) Stride() int { return t.img.Stride }

// Filter returns the sampling mode the target was allocated with.
func (t *PixmapTarget) Filter() Filter { return t.filter }

// Image returns the underlying *image.RGBA, sharing memory with the target.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }

// Clear fills the entire target with the given color. Clearing to
// transparent black zeroes the buffer directly.
func (t *PixmapTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	if r|g|b|a == 0 {
		pix := t.img.Pix
		for i := range pix {
			pix[i] = 0
		}
		return
	}
	src := image.NewUniform(c)
	draw.Draw(t.img, t.img.Bounds(), src, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the current contents. Modifying the returned
// image does not affect the target.
func (t *PixmapTarget) Snapshot() *image.RGBA {
	b := t.img.Bounds()
	dst := image.NewRGBA(b)
	copy(dst.Pix, t.img.Pix)
	return dst
}
