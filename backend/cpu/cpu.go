// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the pure Go CPU backend of the activation engine.
//
// Its frames are registered under the model identifier "Frame" for the
// "float", "double" and "half" datatypes.
package cpu

import (
	internalcpu "github.com/born-ml/actbind/internal/backend/cpu"
)

// Model is the model identifier of CPU frames in activation keys.
const Model = internalcpu.Model

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
