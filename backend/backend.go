// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

// Package backend provides a registry of named renderer backends.
//
// Backends abstract how node compositing is executed (CPU, host GPU), and
// are selected by name or by priority. The software backend registers
// itself on import; GPU backends are registered by the host application
// once it owns a device.
package backend

import (
	"errors"

	"github.com/sshyran/phaser"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the CPU compositing backend.
	BackendSoftware = "software"
	// BackendGPU is the host-device GPU backend.
	BackendGPU = "gpu"
)

// RenderBackend is a named source of renderers. Backends must be
// registered via Register and are selected via Get or Default.
type RenderBackend interface {
	// Name returns the backend identifier (e.g. "software", "gpu").
	Name() string

	// Init initializes the backend. Call before NewRenderer.
	Init() error

	// Close releases backend resources. The backend must not be used
	// after Close.
	Close()

	// NewRenderer creates a renderer. Returns nil before Init.
	NewRenderer() phaser.Renderer
}
