//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

import (
	internalwebgpu "github.com/born-ml/actbind/internal/backend/webgpu"
)

// Model is the model identifier of WebGPU frames in activation keys.
const Model = internalwebgpu.Model

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// New creates a new WebGPU backend. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    cfg.Model = webgpu.Model
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
