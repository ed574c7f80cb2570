// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantizer

import (
	"fmt"

	"github.com/born-ml/actbind/internal/convention"
	"github.com/born-ml/actbind/internal/engine"
	"github.com/pkg/errors"
)

var satConvention = convention.New(map[string]string{
	"range":         engine.ParamRange,
	"alpha":         engine.ParamAlpha,
	"learning_rate": engine.ParamLearningRate,
})

// SAT is the scale-adjusted training activation quantizer.
//
// Options:
//   - range: number of quantization steps in [0, alpha], default 255 (0 disables rounding)
//   - alpha: clipping value, learned during training, default 8.0
//   - learning_rate: step size of alpha updates, default 0.01
type SAT struct {
	native *engine.SATQuantizer
}

// NewSAT creates a SAT quantizer, applying opts over the defaults.
func NewSAT(opts map[string]any) (*SAT, error) {
	q := &SAT{native: engine.NewSATQuantizer()}
	for _, name := range convention.Sorted(opts) {
		if err := q.SetOption(name, opts[name]); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Type implements Quantizer.
func (q *SAT) Type() string { return engine.SATType }

// Native implements Quantizer. A nil or zero *SAT has no native quantizer.
func (q *SAT) Native() Native {
	if q == nil || q.native == nil {
		return nil
	}
	return q.native
}

// SetOption assigns one option by its friendly name.
func (q *SAT) SetOption(name string, value any) error {
	native, err := satConvention.ToNative(name)
	if err != nil {
		return errors.Wrap(err, "SAT quantizer")
	}
	v, ok := convention.Float(value)
	if !ok {
		return errors.Errorf("SAT quantizer: option %q expects a number, got %T", name, value)
	}
	return errors.Wrap(q.native.SetParameter(native, v), "SAT quantizer")
}

// Option returns the current value of an option by its friendly name.
func (q *SAT) Option(name string) (float64, error) {
	native, err := satConvention.ToNative(name)
	if err != nil {
		return 0, errors.Wrap(err, "SAT quantizer")
	}
	return q.native.GetParameter(native)
}

// Options returns every option with its current value.
func (q *SAT) Options() map[string]any {
	opts := make(map[string]any)
	for _, native := range q.native.ParameterNames() {
		if friendly, ok := satConvention.FromNative(native); ok {
			opts[friendly] = q.native.Value(native)
		}
	}
	return opts
}

// Alpha returns the current (possibly learned) clipping value.
func (q *SAT) Alpha() float64 { return q.native.Value(engine.ParamAlpha) }

// Range returns the number of quantization steps.
func (q *SAT) Range() int { return int(q.native.Value(engine.ParamRange)) }

// String implements fmt.Stringer, e.g. "SAT(alpha=8, learning_rate=0.01, range=255)".
func (q *SAT) String() string {
	return fmt.Sprintf("%s%s", q.Type(), convention.Format(q.Options()))
}

var _ Quantizer = (*SAT)(nil)
