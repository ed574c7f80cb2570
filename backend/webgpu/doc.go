// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu exposes the WebGPU backend of the activation engine.
//
// On Windows, when a compatible adapter is present, its frames are
// registered under the model identifier "Frame_WebGPU" for "float".
// On other platforms IsAvailable always reports false.
package webgpu
