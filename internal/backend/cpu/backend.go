// Package cpu implements the CPU activation frames (engine model "Frame").
package cpu

import (
	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/parallel"
	"github.com/born-ml/actbind/internal/tensor"
)

// Model is the engine model identifier of CPU frames.
const Model = "Frame"

// CPUBackend creates CPU frames that share one parallel configuration.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// SetParallel replaces the parallel configuration used by frames created afterwards.
func (cpu *CPUBackend) SetParallel(cfg parallel.Config) {
	cpu.parallel = cfg
}

// DataTypes lists the datatypes CPU frames support.
func (cpu *CPUBackend) DataTypes() []tensor.DataType {
	return []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16}
}

// Linear returns a creator of Linear frames for dtype.
func (cpu *CPUBackend) Linear(dtype tensor.DataType) engine.Creator {
	return func() engine.Activation {
		return cpu.NewFrame(engine.NewLinearActivation(), dtype)
	}
}

// Rectifier returns a creator of Rectifier frames for dtype.
func (cpu *CPUBackend) Rectifier(dtype tensor.DataType) engine.Creator {
	return func() engine.Activation {
		return cpu.NewFrame(engine.NewRectifierActivation(), dtype)
	}
}

// Tanh returns a creator of Tanh frames for dtype.
func (cpu *CPUBackend) Tanh(dtype tensor.DataType) engine.Creator {
	return func() engine.Activation {
		return cpu.NewFrame(engine.NewTanhActivation(), dtype)
	}
}
