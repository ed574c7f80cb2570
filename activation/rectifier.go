// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "github.com/born-ml/actbind/internal/engine"

// OptLeakSlope is the slope applied to negative inputs.
const OptLeakSlope = "leak_slope"

var rectifierConvention = common.Extend(map[string]string{
	OptLeakSlope: engine.ParamLeakSlope,
	OptClipping:  engine.ParamClipping,
})

// Rectifier is the (leaky, optionally clipped) ReLU activation.
type Rectifier struct {
	base
}

var _ Activation = (*Rectifier)(nil)

// NewRectifier binds a Rectifier activation to the native object selected by cfg.
func NewRectifier(cfg Config) (*Rectifier, error) {
	r := &Rectifier{base: newBase(KindRectifier, rectifierConvention, cfg)}
	if err := r.bind(rectifierGenerators); err != nil {
		return nil, err
	}
	return r, nil
}

// LeakSlope returns the negative side slope.
func (r *Rectifier) LeakSlope() float64 { return r.float(OptLeakSlope) }

// SetLeakSlope sets the negative side slope.
func (r *Rectifier) SetLeakSlope(slope float64) error {
	return r.SetOption(OptLeakSlope, slope)
}

// Clipping returns the upper bound of positive outputs (0 when disabled).
func (r *Rectifier) Clipping() float64 { return r.float(OptClipping) }

// SetClipping sets the upper bound of positive outputs.
func (r *Rectifier) SetClipping(clipping float64) error {
	return r.SetOption(OptClipping, clipping)
}
