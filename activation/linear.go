// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "github.com/born-ml/actbind/internal/engine"

// Option names accepted by Linear, besides "quantizer".
const (
	// Clipping saturates the output to [-clipping, clipping]; 0 disables it.
	OptClipping = "clipping"
)

var linearConvention = common.Extend(map[string]string{
	OptClipping: engine.ParamClipping,
})

// Linear is the identity activation, optionally saturated.
type Linear struct {
	base
}

var _ Activation = (*Linear)(nil)

// NewLinear binds a Linear activation to the native object selected by cfg.
func NewLinear(cfg Config) (*Linear, error) {
	l := &Linear{base: newBase(KindLinear, linearConvention, cfg)}
	if err := l.bind(linearGenerators); err != nil {
		return nil, err
	}
	return l, nil
}

// Clipping returns the saturation bound (0 when disabled).
func (l *Linear) Clipping() float64 { return l.float(OptClipping) }

// SetClipping sets the saturation bound.
func (l *Linear) SetClipping(clipping float64) error {
	return l.SetOption(OptClipping, clipping)
}
