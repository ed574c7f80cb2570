// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "github.com/born-ml/actbind/internal/engine"

// OptAlpha scales the input of Tanh: y = tanh(alpha * x).
const OptAlpha = "alpha"

var tanhConvention = common.Extend(map[string]string{
	OptAlpha: engine.ParamAlpha,
})

// Tanh is the hyperbolic tangent activation.
type Tanh struct {
	base
}

var _ Activation = (*Tanh)(nil)

// NewTanh binds a Tanh activation to the native object selected by cfg.
func NewTanh(cfg Config) (*Tanh, error) {
	t := &Tanh{base: newBase(KindTanh, tanhConvention, cfg)}
	if err := t.bind(tanhGenerators); err != nil {
		return nil, err
	}
	return t, nil
}

// Alpha returns the input scale.
func (t *Tanh) Alpha() float64 { return t.float(OptAlpha) }

// SetAlpha sets the input scale.
func (t *Tanh) SetAlpha(alpha float64) error {
	return t.SetOption(OptAlpha, alpha)
}
