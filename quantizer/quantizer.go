// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quantizer provides the quantizers that can be attached to activations.
//
// A quantizer alters the numeric behavior of the activation it is attached to:
// the activation's output is quantized in place after every forward pass and
// gradients are routed through the quantizer on the way back.
//
// Example:
//
//	q, err := quantizer.NewSAT(map[string]any{"range": 15, "alpha": 6.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	relu, err := activation.NewRectifier(activation.Config{
//	    Options: map[string]any{"quantizer": q},
//	})
package quantizer

import (
	"github.com/born-ml/actbind/internal/engine"
	"github.com/pkg/errors"
)

// Native is the engine-side quantizer a wrapper configures.
type Native = engine.Quantizer

// Quantizer is the capability an option value must satisfy to be attached
// to an activation as its "quantizer".
type Quantizer interface {
	// Type returns the quantizer kind, e.g. "SAT".
	Type() string
	// Native returns the engine object the activation drives.
	Native() Native
	String() string
}

// FromNative wraps an engine quantizer, e.g. one read back from a native activation.
func FromNative(native Native) (Quantizer, error) {
	switch n := native.(type) {
	case nil:
		return nil, errors.New("quantizer: nil native quantizer")
	case *engine.SATQuantizer:
		return &SAT{native: n}, nil
	}
	return nil, errors.Errorf("quantizer: no wrapper for native %s quantizer (%T)", native.Type(), native)
}
