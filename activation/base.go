// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"fmt"
	"maps"

	"github.com/born-ml/actbind/internal/convention"
	"github.com/born-ml/actbind/quantizer"
	"github.com/born-ml/actbind/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// common holds the conventions every kind extends.
var common = convention.New(map[string]string{QuantizerOption: "Quantizer"})

// base is the state and behavior shared by all adapters. It creates no
// native object itself: bind does, once, during construction.
type base struct {
	kind       Kind
	model      string
	datatype   string
	key        string
	config     map[string]any
	convention *convention.Convention
	native     Native
}

func newBase(kind Kind, names *convention.Convention, cfg Config) base {
	cfg = cfg.withDefaults()
	return base{
		kind:       kind,
		model:      cfg.Model,
		datatype:   cfg.DataType,
		key:        compositeKey(cfg.Model, cfg.DataType),
		config:     maps.Clone(cfg.Options),
		convention: names,
	}
}

// bind creates the native object from table, applies the stored options and
// reconciles the cache with the native state.
func (b *base) bind(table *generatorTable) error {
	creator, err := table.lookup(b.key)
	if err != nil {
		return err
	}
	b.native = creator()
	klog.V(1).Infof("%s: created native %s for %s", b.kind, b.native.Type(), b.key)

	pending := b.config
	b.config = make(map[string]any, len(pending))
	for _, name := range convention.Sorted(pending) {
		if err := b.SetOption(name, pending[name]); err != nil {
			return errors.WithMessagef(err, "%s %s", b.kind, b.key)
		}
	}
	b.reconcile()
	return nil
}

// reconcile records native values for every parameter and quantizer the
// cache doesn't already track.
func (b *base) reconcile() {
	for _, param := range b.native.ParameterNames() {
		name, found := b.convention.FromNative(param)
		if !found {
			klog.V(2).Infof("%s: native parameter %q has no option name, skipped", b.kind, param)
			continue
		}
		if _, tracked := b.config[name]; tracked {
			continue
		}
		value, err := b.native.GetParameter(param)
		if err != nil {
			klog.Warningf("%s: reading back %q: %v", b.kind, param, err)
			continue
		}
		b.config[name] = value
	}
	if _, tracked := b.config[QuantizerOption]; tracked {
		return
	}
	if native := b.native.Quantizer(); native != nil {
		q, err := quantizer.FromNative(native)
		if err != nil {
			klog.Warningf("%s: reading back quantizer: %v", b.kind, err)
			return
		}
		b.config[QuantizerOption] = q
	}
}

// Type returns the kind name.
func (b *base) Type() string { return b.kind.String() }

// Model returns the backend identifier.
func (b *base) Model() string { return b.model }

// DataType returns the datatype identifier.
func (b *base) DataType() string { return b.datatype }

// Key returns the composite key "model<datatype>".
func (b *base) Key() string { return b.key }

// Native returns the bound engine object.
func (b *base) Native() Native { return b.native }

// HasQuantizer reports whether a quantizer is recorded.
func (b *base) HasQuantizer() bool {
	_, found := b.config[QuantizerOption]
	return found
}

// GetQuantizer returns the recorded quantizer, or ErrNoQuantizer.
//
// Deprecated: use Option(QuantizerOption).
func (b *base) GetQuantizer() (quantizer.Quantizer, error) {
	klog.Warningf("%s.GetQuantizer is deprecated, use Option(%q)", b.kind, QuantizerOption)
	value, found := b.config[QuantizerOption]
	if !found {
		return nil, errors.Wrapf(ErrNoQuantizer, "%s", b.kind)
	}
	return value.(quantizer.Quantizer), nil
}

// SetQuantizer attaches q if no quantizer is recorded yet, or returns ErrQuantizerExists.
//
// Deprecated: use SetOption(QuantizerOption, q).
func (b *base) SetQuantizer(q quantizer.Quantizer) error {
	klog.Warningf("%s.SetQuantizer is deprecated, use SetOption(%q, q)", b.kind, QuantizerOption)
	if b.HasQuantizer() {
		return errors.Wrapf(ErrQuantizerExists, "%s", b.kind)
	}
	return b.SetOption(QuantizerOption, q)
}

// SetOption assigns name on the native object and records value.
// The "quantizer" option takes a quantizer.Quantizer; every other option
// takes a number and is translated to the engine's parameter name.
// On error the recorded options are left unchanged.
func (b *base) SetOption(name string, value any) error {
	if name == QuantizerOption {
		q, ok := value.(quantizer.Quantizer)
		if !ok || q == nil || q.Native() == nil {
			return &WrongInputTypeError{
				Option:   name,
				Got:      fmt.Sprintf("%T", value),
				Expected: []string{"quantizer.Quantizer"},
			}
		}
		b.native.SetQuantizer(q.Native())
		b.config[name] = q
		klog.V(2).Infof("%s: quantizer set to %s", b.kind, q)
		return nil
	}

	param, err := b.convention.ToNative(name)
	if err != nil {
		return errors.WithMessagef(err, "%s.SetOption", b.kind)
	}
	number, ok := convention.Float(value)
	if !ok {
		return &WrongInputTypeError{
			Option:   name,
			Got:      fmt.Sprintf("%T", value),
			Expected: []string{"float64", "int"},
		}
	}
	if err := b.native.SetParameter(param, number); err != nil {
		return errors.WithMessagef(err, "%s.SetOption(%q)", b.kind, name)
	}
	b.config[name] = number
	klog.V(2).Infof("%s: %s set to %g", b.kind, name, number)
	return nil
}

// Option returns the recorded value of name.
func (b *base) Option(name string) (any, bool) {
	value, found := b.config[name]
	return value, found
}

// Options returns a copy of the recorded options.
func (b *base) Options() map[string]any {
	return maps.Clone(b.config)
}

// String returns the kind name followed by the recorded options, e.g.
// "Rectifier(clipping=0, leak_slope=0.1)".
func (b *base) String() string {
	return b.kind.String() + convention.Format(b.config)
}

// float returns a recorded numeric option; adapters always record their
// kind's parameters during reconcile.
func (b *base) float(name string) float64 {
	v, _ := b.config[name].(float64)
	return v
}

// Propagate runs the native forward pass.
func (b *base) Propagate(input, output *tensor.RawTensor, inference bool) error {
	return b.native.Propagate(input, output, inference)
}

// BackPropagate runs the native backward pass.
func (b *base) BackPropagate(input, output, diffInput, diffOutput *tensor.RawTensor) error {
	return b.native.BackPropagate(input, output, diffInput, diffOutput)
}

// Update applies accumulated learnable state, e.g. the quantizer's.
func (b *base) Update(batchSize int) {
	b.native.Update(batchSize)
}
