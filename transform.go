package phaser

import "github.com/sshyran/phaser/display"

// TransformMode selects how a node's own attributes contribute to a
// synthesized placement transform.
type TransformMode uint8

const (
	// ModeTransformed honors the node's own scale and rotation.
	ModeTransformed TransformMode = iota

	// ModeRaw ignores the node's attributes entirely: translation only,
	// identity orientation.
	ModeRaw
)

// String returns the mode name.
func (m TransformMode) String() string {
	switch m {
	case ModeTransformed:
		return "transformed"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// SynthesizeTransform builds the affine transform that places a node with
// the given attributes at (x, y), without consulting any scene graph. It is
// a pure function of its inputs: detached nodes get the same transform an
// attached one would.
//
// ModeTransformed composes translation, the node's rotation about its
// origin, and its scale, in that order. Skew terms are always zero.
// ModeRaw is pure translation; p is not read.
func SynthesizeTransform(p display.Placement, x, y float64, mode TransformMode) Matrix {
	if mode == ModeRaw {
		return Translate(x, y)
	}
	m := Translate(x, y)
	if p.Rotation != 0 {
		m = m.Multiply(Rotate(p.Rotation))
	}
	if p.ScaleX != 1 || p.ScaleY != 1 {
		m = m.Multiply(Scale(p.ScaleX, p.ScaleY))
	}
	return m
}

// synthesizeInto overwrites dst with the synthesized transform, scaled to
// device pixels by resolution. Every field of dst is written; nothing from
// a previous call survives.
func synthesizeInto(dst *Matrix, p display.Placement, x, y float64, mode TransformMode, resolution float64) {
	m := SynthesizeTransform(p, x, y, mode)
	if resolution != 1 {
		m = Scale(resolution, resolution).Multiply(m)
	}
	*dst = m
}
