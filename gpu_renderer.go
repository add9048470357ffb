package phaser

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/sshyran/phaser/display"
)

// ErrGPUDraw is returned when a GPU-only target is handed to a renderer
// that cannot composite on the device.
var ErrGPUDraw = errors.New("phaser: GPU-only target requires a host GPU draw path")

// defaultTextureFormat is the format GPU texture targets are allocated in.
const defaultTextureFormat = gputypes.TextureFormatRGBA8Unorm

// GPURenderer is a renderer bound to a host-provided GPU device.
//
// It allocates TextureTargets against the host device and composites
// CPU-accessible targets through an embedded software path. Compositing
// into GPU-only textures is the host renderer's capability; handing such a
// target to Draw returns ErrGPUDraw rather than silently falling back.
type GPURenderer struct {
	handle   DeviceHandle
	software *SoftwareRenderer
}

var _ Renderer = (*GPURenderer)(nil)

// NewGPURenderer creates a renderer bound to the host's device handle.
// The handle must come from the host application; this module never
// creates a GPU device itself.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}
	return &GPURenderer{
		handle:   handle,
		software: NewSoftwareRenderer(),
	}, nil
}

// Device returns the host device handle.
func (r *GPURenderer) Device() DeviceHandle { return r.handle }

// NewTarget allocates a GPU texture target on the host device.
//
// Filter is a sampling concern configured by the host at bind time, so it
// is not recorded on the texture.
func (r *GPURenderer) NewTarget(width, height int, filter Filter) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("phaser: invalid target size %dx%d", width, height)
	}
	return NewTextureTarget(r.handle, width, height, defaultTextureFormat)
}

// Draw composites into CPU-accessible targets via the software path.
// GPU-only targets return ErrGPUDraw.
func (r *GPURenderer) Draw(target Target, node display.Node, m Matrix, opts DrawOptions) error {
	if target == nil {
		return ErrNilTarget
	}
	if target.Pixels() == nil {
		return ErrGPUDraw
	}
	return r.software.Draw(target, node, m, opts)
}

// Flush submits pending work. With no device-side compositing of its own
// there is nothing to wait on.
func (r *GPURenderer) Flush() error { return nil }
