//go:build windows

// Package webgpu implements the WebGPU activation frames (engine model "Frame_WebGPU").
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Model is the engine model identifier of WebGPU frames.
const Model = "Frame_WebGPU"

// check converts a wgpu error into a panic caught at the frame boundary.
func check(name string, err error) {
	if err != nil {
		exceptions.Panicf("webgpu: %s: %v", name, err)
	}
}

// Backend owns the WebGPU device and its shader/pipeline caches.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex
}

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, errors.Wrap(adapterErr, "webgpu: failed to request adapter")
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, errors.Wrap(deviceErr, "webgpu: failed to request device")
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, errors.New("webgpu: failed to get queue")
	}

	return &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}, nil
}

// Release releases all WebGPU resources.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.pipelines {
		p.Release()
	}
	b.pipelines = nil
	for _, s := range b.shaders {
		s.Release()
	}
	b.shaders = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// DataTypes lists the datatypes WebGPU frames support.
func (b *Backend) DataTypes() []tensor.DataType {
	return []tensor.DataType{tensor.Float32}
}

// Linear returns a creator of float32 Linear frames.
func (b *Backend) Linear() engine.Creator {
	return func() engine.Activation { return b.NewFrame(engine.NewLinearActivation()) }
}

// Rectifier returns a creator of float32 Rectifier frames.
func (b *Backend) Rectifier() engine.Creator {
	return func() engine.Activation { return b.NewFrame(engine.NewRectifierActivation()) }
}

// Tanh returns a creator of float32 Tanh frames.
func (b *Backend) Tanh() engine.Creator {
	return func() engine.Activation { return b.NewFrame(engine.NewTanhActivation()) }
}

var (
	sharedOnce    sync.Once
	sharedBackend *Backend
	sharedErr     error
)

// Shared returns the process-wide backend, creating it on first use.
func Shared() (*Backend, error) {
	sharedOnce.Do(func() {
		sharedBackend, sharedErr = New()
	})
	return sharedBackend, sharedErr
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
