// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/sshyran/phaser"
)

// GPUBackend wraps a host-provided GPU device handle. It is not registered
// automatically: the host application registers it once it owns a device,
// after which priority selection prefers it over software.
//
//	backend.RegisterGPU(app.DeviceProvider())
type GPUBackend struct {
	handle      phaser.DeviceHandle
	initialized bool
}

var _ RenderBackend = (*GPUBackend)(nil)

// NewGPUBackend creates a GPU backend bound to the host's device handle.
func NewGPUBackend(handle phaser.DeviceHandle) *GPUBackend {
	return &GPUBackend{handle: handle}
}

// RegisterGPU registers a GPU backend factory for the given device handle.
// Passing nil unregisters the GPU backend instead.
func RegisterGPU(handle phaser.DeviceHandle) {
	if handle == nil {
		Unregister(BackendGPU)
		return
	}
	Register(BackendGPU, func() RenderBackend {
		return NewGPUBackend(handle)
	})
}

// Name returns the backend identifier.
func (b *GPUBackend) Name() string { return BackendGPU }

// Init validates the device handle.
func (b *GPUBackend) Init() error {
	if b.handle == nil {
		return ErrBackendNotAvailable
	}
	b.initialized = true
	return nil
}

// Close releases backend resources. The device itself belongs to the host
// and is left untouched.
func (b *GPUBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a renderer bound to the host device. Returns nil
// before Init or when the device is unusable.
func (b *GPUBackend) NewRenderer() phaser.Renderer {
	if !b.initialized {
		return nil
	}
	r, err := phaser.NewGPURenderer(b.handle)
	if err != nil {
		phaser.Logger().Warn("gpu renderer unavailable", "err", err)
		return nil
	}
	return r
}
