//go:build !windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

// Model is the model identifier of WebGPU frames in activation keys.
const Model = "Frame_WebGPU"

// IsAvailable reports false: the WebGPU backend is only built on Windows.
func IsAvailable() bool { return false }
