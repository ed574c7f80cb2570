package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// Device represents the compute device a tensor was produced on.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is a dense row-major tensor backed by a byte buffer.
// Activation frames read and write it in place; it carries no gradient state.
type RawTensor struct {
	data   []byte
	shape  Shape
	dtype  DataType
	device Device
}

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		dtype:  dtype,
		device: device,
	}, nil
}

// FromFloat32 copies values into a new Float32 tensor.
func FromFloat32(values []float32, shape Shape) (*RawTensor, error) {
	if err := checkLen(len(values), shape); err != nil {
		return nil, err
	}
	r, err := NewRaw(shape, Float32, CPU)
	if err != nil {
		return nil, err
	}
	copy(r.AsFloat32(), values)
	return r, nil
}

// FromFloat64 copies values into a new Float64 tensor.
func FromFloat64(values []float64, shape Shape) (*RawTensor, error) {
	if err := checkLen(len(values), shape); err != nil {
		return nil, err
	}
	r, err := NewRaw(shape, Float64, CPU)
	if err != nil {
		return nil, err
	}
	copy(r.AsFloat64(), values)
	return r, nil
}

// FromValues converts float64 values into a new tensor of the given type.
// Float16 values are rounded to the nearest representable half.
func FromValues(values []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	if err := checkLen(len(values), shape); err != nil {
		return nil, err
	}
	r, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		return nil, err
	}
	r.SetFloat64s(values)
	return r, nil
}

func checkLen(n int, shape Shape) error {
	if n != shape.NumElements() {
		return fmt.Errorf("data length %d doesn't match shape %v (%d elements)", n, shape, shape.NumElements())
	}
	return nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the device that produced the tensor's contents.
func (r *RawTensor) Device() Device {
	return r.device
}

// SetDevice records the device that produced the tensor's contents.
func (r *RawTensor) SetDevice(d Device) {
	r.device = d
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	if r.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Float64s returns a converted copy of the tensor's values.
func (r *RawTensor) Float64s() []float64 {
	out := make([]float64, r.NumElements())
	switch r.dtype {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64())
	case Float16:
		for i, v := range r.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	}
	return out
}

// SetFloat64s overwrites the tensor's values, converting to its dtype.
// Panics if len(values) differs from NumElements().
func (r *RawTensor) SetFloat64s(values []float64) {
	if len(values) != r.NumElements() {
		panic(fmt.Sprintf("SetFloat64s: got %d values for %d elements", len(values), r.NumElements()))
	}
	switch r.dtype {
	case Float32:
		dst := r.AsFloat32()
		for i, v := range values {
			dst[i] = float32(v)
		}
	case Float64:
		copy(r.AsFloat64(), values)
	case Float16:
		dst := r.AsFloat16()
		for i, v := range values {
			dst[i] = float16.Fromfloat32(float32(v))
		}
	}
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   append([]byte(nil), r.data...),
		shape:  r.shape.Clone(),
		dtype:  r.dtype,
		device: r.device,
	}
}

// SameLayout reports whether other has the same shape and dtype.
func (r *RawTensor) SameLayout(other *RawTensor) bool {
	return r.dtype == other.dtype && r.shape.Equal(other.shape)
}
