// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/sshyran/phaser"
)

// SoftwareBackend is the CPU compositing backend. It needs no device, no
// window, and no host integration, and is always available.
type SoftwareBackend struct {
	initialized bool
}

var _ RenderBackend = (*SoftwareBackend)(nil)

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return BackendSoftware }

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a CPU compositor. Returns nil before Init.
func (b *SoftwareBackend) NewRenderer() phaser.Renderer {
	if !b.initialized {
		return nil
	}
	return phaser.NewSoftwareRenderer()
}
