// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build windows

package activation

import (
	"github.com/born-ml/actbind/internal/backend/webgpu"
	"github.com/born-ml/actbind/internal/tensor"
	"k8s.io/klog/v2"
)

// Registers the WebGPU frames when a GPU adapter is present.
func init() {
	if !webgpu.IsAvailable() {
		klog.V(1).Info("WebGPU not available: GPU activation frames not registered")
		return
	}
	gpu, err := webgpu.Shared()
	if err != nil {
		klog.Warningf("WebGPU adapter found but backend failed to initialize: %v", err)
		return
	}
	key := compositeKey(webgpu.Model, tensor.Float32.Identifier())
	linearGenerators.register(key, gpu.Linear())
	rectifierGenerators.register(key, gpu.Rectifier())
	tanhGenerators.register(key, gpu.Tanh())
	klog.Infof("Registered %s activation frames on %s", key, gpu.Name())
}
