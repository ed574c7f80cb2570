package engine

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Validator rejects out-of-range parameter values.
type Validator func(value float64) error

// Parameters is the named parameter store shared by activations and quantizers.
// Names are the engine's own (e.g. "LeakSlope"); every declared parameter
// always holds a value, starting from its default.
type Parameters struct {
	names      []string
	values     map[string]float64
	validators map[string]Validator
}

// NewParameters creates an empty parameter store.
func NewParameters() *Parameters {
	return &Parameters{
		values:     make(map[string]float64),
		validators: make(map[string]Validator),
	}
}

// Declare registers a parameter with its default value and optional validators.
// Declaring the same name twice panics: it is a programming error in a frame.
func (p *Parameters) Declare(name string, defaultValue float64, validators ...Validator) {
	if _, found := p.values[name]; found {
		panic("engine: parameter " + name + " declared twice")
	}
	p.names = append(p.names, name)
	p.values[name] = defaultValue
	if len(validators) > 0 {
		p.validators[name] = chain(validators)
	}
}

// SetParameter assigns a declared parameter.
func (p *Parameters) SetParameter(name string, value float64) error {
	if _, found := p.values[name]; !found {
		return errors.Wrapf(ErrUnknownParameter, "%q (known: %v)", name, p.names)
	}
	if math.IsNaN(value) {
		return errors.Wrapf(ErrInvalidParameter, "%s=NaN", name)
	}
	if v := p.validators[name]; v != nil {
		if err := v(value); err != nil {
			return errors.Wrapf(ErrInvalidParameter, "%s=%g: %v", name, value, err)
		}
	}
	p.values[name] = value
	return nil
}

// GetParameter returns the current value of a declared parameter.
func (p *Parameters) GetParameter(name string) (float64, error) {
	v, found := p.values[name]
	if !found {
		return 0, errors.Wrapf(ErrUnknownParameter, "%q (known: %v)", name, p.names)
	}
	return v, nil
}

// ParameterNames returns the declared names in declaration order.
func (p *Parameters) ParameterNames() []string {
	return slices.Clone(p.names)
}

// Value returns a declared parameter, or 0 if name is unknown.
func (p *Parameters) Value(name string) float64 {
	return p.values[name]
}

func chain(validators []Validator) Validator {
	return func(value float64) error {
		for _, v := range validators {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// NonNegative rejects values below zero.
func NonNegative(value float64) error {
	if value < 0 {
		return errors.New("must be >= 0")
	}
	return nil
}

// Positive rejects values that are zero or below.
func Positive(value float64) error {
	if value <= 0 {
		return errors.New("must be > 0")
	}
	return nil
}
