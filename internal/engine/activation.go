// Package engine is the native activation engine: parameterized activation
// kinds, their element-wise math and the quantizers that can be attached to them.
//
// Compute frames for a concrete device and datatype live in internal/backend/*;
// they embed a Kernel from this package and add Propagate/BackPropagate.
package engine

import "github.com/born-ml/actbind/internal/tensor"

// Activation is a native activation object bound to one device and datatype.
type Activation interface {
	// Type returns the activation kind, e.g. "Rectifier".
	Type() string

	SetParameter(name string, value float64) error
	GetParameter(name string) (float64, error)
	ParameterNames() []string

	// SetQuantizer attaches q (nil detaches). Quantizer returns the attached one or nil.
	SetQuantizer(q Quantizer)
	Quantizer() Quantizer

	// Propagate computes output = f(input), then quantizes output in place if
	// a quantizer is attached. inference disables training state capture.
	Propagate(input, output *tensor.RawTensor, inference bool) error

	// BackPropagate computes diffOutput = f'(input) * diffInput, routing
	// diffInput through the quantizer first when one is attached.
	BackPropagate(input, output, diffInput, diffOutput *tensor.RawTensor) error

	// Update applies accumulated learnable state (only quantizers have any).
	Update(batchSize int)
}

// Creator builds a native activation in its default state.
type Creator func() Activation

// Kernel is the device independent part of an activation: parameters,
// quantizer slot and the scalar math frames vectorize.
type Kernel interface {
	Type() string
	SetParameter(name string, value float64) error
	GetParameter(name string) (float64, error)
	ParameterNames() []string
	SetQuantizer(q Quantizer)
	Quantizer() Quantizer
	Update(batchSize int)

	// ForwardFunc returns y = f(x) with the current parameter values captured.
	ForwardFunc() func(x float64) float64
	// BackwardFunc returns dx given the forward output y and incoming gradient dy.
	BackwardFunc() func(y, dy float64) float64
}

// Base holds the parameter store and quantizer slot every kind shares.
type Base struct {
	*Parameters
	quantizer Quantizer
}

func newBase() Base {
	return Base{Parameters: NewParameters()}
}

// SetQuantizer attaches q; nil detaches.
func (b *Base) SetQuantizer(q Quantizer) {
	b.quantizer = q
}

// Quantizer returns the attached quantizer or nil.
func (b *Base) Quantizer() Quantizer {
	return b.quantizer
}

// Update forwards to the attached quantizer.
func (b *Base) Update(batchSize int) {
	if b.quantizer != nil {
		b.quantizer.Update(batchSize)
	}
}
