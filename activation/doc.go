// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation exposes the engine's activation functions (Linear,
// Rectifier, Tanh) as configurable adapters.
//
// # Overview
//
// An adapter is built from a Config: the model (backend identifier, e.g.
// "Frame" for CPU) and datatype ("float", "double", "half") select the
// native constructor through the composite key "model<datatype>", and the
// remaining options are pushed into the native object once it exists:
//
//	cfg := activation.DefaultConfig()
//	cfg.Options = map[string]any{"leak_slope": 0.01, "clipping": 6.0}
//	relu, err := activation.NewRectifier(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(relu) // Rectifier(clipping=6, leak_slope=0.01)
//
// Options use snake_case names and are translated to the engine's parameter
// names. The "quantizer" option is special: its value must implement
// quantizer.Quantizer and is attached through the engine's quantizer slot.
//
// # Models
//
//   - Frame: CPU frames for float, double and half.
//   - Frame_WebGPU: GPU frames for float, registered on Windows when a
//     WebGPU adapter is present.
//
// SupportedKeys lists the composite keys available in the running process.
//
// # Errors
//
// Construction with an unknown composite key returns a *LookupError
// (ErrLookup). Assigning a non-quantizer to "quantizer" returns a
// *WrongInputTypeError (ErrWrongInputType). Unknown option names wrap
// ErrUnknownOption.
package activation
