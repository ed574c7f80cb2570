// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/actbind/internal/tensor"
)

// RawTensor is a dense row-major tensor backed by a byte buffer.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Deep copy
type RawTensor = tensor.RawTensor

// Shape lists the size of each dimension.
type Shape = tensor.Shape

// DataType is the element type of a tensor.
type DataType = tensor.DataType

// Device is the compute device that produced a tensor's contents.
type Device = tensor.Device

// Element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Float16 = tensor.Float16
)

// Devices.
const (
	CPU    = tensor.CPU
	WebGPU = tensor.WebGPU
)

// NewRaw creates a zero-filled tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromFloat32 copies values into a new Float32 tensor.
func FromFloat32(values []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(values, shape)
}

// FromFloat64 copies values into a new Float64 tensor.
func FromFloat64(values []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(values, shape)
}

// FromValues converts values into a new tensor of type dtype.
func FromValues(values []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.FromValues(values, shape, dtype)
}

// ParseDataType maps a datatype identifier ("float", "double", "half") to its DataType.
func ParseDataType(identifier string) (DataType, error) {
	return tensor.ParseDataType(identifier)
}
