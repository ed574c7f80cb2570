// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"strings"

	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/quantizer"
	"github.com/born-ml/actbind/tensor"
	"github.com/pkg/errors"
)

// Native is the engine object an adapter is bound to.
type Native = engine.Activation

// Activation is implemented by every adapter: *Linear, *Rectifier and *Tanh.
type Activation interface {
	// Type returns the kind name, e.g. "Rectifier".
	Type() string
	// Model returns the backend identifier, e.g. "Frame".
	Model() string
	// DataType returns the datatype identifier, e.g. "float".
	DataType() string
	// Key returns the composite key the native object was created from.
	Key() string

	HasQuantizer() bool
	// Deprecated: use Option(QuantizerOption).
	GetQuantizer() (quantizer.Quantizer, error)
	// Deprecated: use SetOption(QuantizerOption, q).
	SetQuantizer(q quantizer.Quantizer) error

	// SetOption assigns one option on the native object and records it.
	SetOption(name string, value any) error
	// Option returns a recorded option value.
	Option(name string) (any, bool)
	// Options returns a copy of all recorded options.
	Options() map[string]any

	// Native returns the bound engine object.
	Native() Native

	Propagate(input, output *tensor.RawTensor, inference bool) error
	BackPropagate(input, output, diffInput, diffOutput *tensor.RawTensor) error
	Update(batchSize int)

	String() string
}

// Kind enumerates the activation kinds.
type Kind int

const (
	KindLinear Kind = iota
	KindRectifier
	KindTanh
)

// Kinds returns every kind, in declaration order.
func Kinds() []Kind {
	return []Kind{KindLinear, KindRectifier, KindTanh}
}

// String returns the kind name, as reported by Type.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return engine.LinearType
	case KindRectifier:
		return engine.RectifierType
	case KindTanh:
		return engine.TanhType
	}
	return "Unknown"
}

// ParseKind returns the kind named s, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown activation kind %q (valid: Linear, Rectifier, Tanh)", s)
}

// New constructs an adapter of the given kind.
func New(kind Kind, cfg Config) (Activation, error) {
	switch kind {
	case KindLinear:
		return NewLinear(cfg)
	case KindRectifier:
		return NewRectifier(cfg)
	case KindTanh:
		return NewTanh(cfg)
	}
	return nil, errors.Errorf("unknown activation kind %d", int(kind))
}
