// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensors activations read and write.
//
// # Overview
//
// A RawTensor is a row-major buffer with a Shape, a DataType and the Device
// that last produced its contents. Activations compute in place on tensors
// supplied by the caller; they never allocate their outputs.
//
//	in, _ := tensor.FromValues([]float64{-1, 0, 2}, tensor.Shape{3}, tensor.Float32)
//	out, _ := tensor.NewRaw(in.Shape(), in.DType(), tensor.CPU)
//	err := relu.Propagate(in, out, true)
//	fmt.Println(out.Float64s())
//
// # Supported Data Types
//
//   - Float32 ("float")
//   - Float64 ("double")
//   - Float16 ("half"), IEEE 754 binary16
//
// The quoted names are the datatype identifiers used in activation keys,
// see ParseDataType.
package tensor
