package phaser

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This module never creates a GPU device of its own: the host (window
// framework, engine shell) owns the device and passes a handle in, so GPU
// resources are shared across the whole stack. DeviceHandle is an alias for
// gpucontext.DeviceProvider, keeping full compatibility with the gpucontext
// ecosystem under a local name.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNilDevice is returned when GPU-side allocation is requested without a
// device handle.
var ErrNilDevice = errors.New("phaser: nil device handle")

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Useful where a handle is structurally required but no GPU exists.
type NullDeviceHandle struct{}

var _ DeviceHandle = NullDeviceHandle{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns empty adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// TextureTarget is a GPU-texture-backed target. It has no CPU pixel access;
// compositing into it is performed by the host's GPU renderer through the
// device the handle provides.
type TextureTarget struct {
	handle DeviceHandle
	width  int
	height int
	format gputypes.TextureFormat
}

var _ Target = (*TextureTarget)(nil)

// NewTextureTarget describes a GPU texture of width x height device pixels
// owned by the host device.
func NewTextureTarget(handle DeviceHandle, width, height int, format gputypes.TextureFormat) (*TextureTarget, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}
	return &TextureTarget{
		handle: handle,
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the target width in device pixels.
func (t *TextureTarget) Width() int { return t.width }

// Height returns the target height in device pixels.
func (t *TextureTarget) Height() int { return t.height }

// Format returns the texture pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat { return t.format }

// Pixels returns nil: GPU textures have no direct CPU access.
func (t *TextureTarget) Pixels() []byte { return nil }

// Stride returns 0: GPU textures have no direct CPU access.
func (t *TextureTarget) Stride() int { return 0 }

// Device returns the handle the texture was allocated against.
func (t *TextureTarget) Device() DeviceHandle { return t.handle }
