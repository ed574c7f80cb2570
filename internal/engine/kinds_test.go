package engine

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindDefaults(t *testing.T) {
	tests := []struct {
		name     string
		kernel   Kernel
		typeName string
		defaults map[string]float64
	}{
		{"linear", NewLinearActivation(), LinearType, map[string]float64{ParamClipping: 0}},
		{"rectifier", NewRectifierActivation(), RectifierType, map[string]float64{ParamLeakSlope: 0, ParamClipping: 0}},
		{"tanh", NewTanhActivation(), TanhType, map[string]float64{ParamAlpha: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typeName, tt.kernel.Type())
			assert.Len(t, tt.kernel.ParameterNames(), len(tt.defaults))
			for name, want := range tt.defaults {
				got, err := tt.kernel.GetParameter(name)
				require.NoError(t, err)
				assert.Equal(t, want, got, name)
			}
			assert.Nil(t, tt.kernel.Quantizer())
		})
	}
}

func TestParameters_Errors(t *testing.T) {
	a := NewRectifierActivation()

	err := a.SetParameter("Alpha", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownParameter))

	_, err = a.GetParameter("Nope")
	assert.True(t, errors.Is(err, ErrUnknownParameter))

	err = a.SetParameter(ParamClipping, -1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, 0.0, a.Clipping(), "rejected value must not be stored")

	err = a.SetParameter(ParamLeakSlope, math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestParameters_DeclareTwicePanics(t *testing.T) {
	p := NewParameters()
	p.Declare("X", 1)
	assert.Panics(t, func() { p.Declare("X", 2) })
}

func TestLinearMath(t *testing.T) {
	a := NewLinearActivation()
	fwd, bwd := a.ForwardFunc(), a.BackwardFunc()
	assert.Equal(t, -3.5, fwd(-3.5))
	assert.Equal(t, 0.25, bwd(100, 0.25))

	require.NoError(t, a.SetParameter(ParamClipping, 2))
	fwd, bwd = a.ForwardFunc(), a.BackwardFunc()
	assert.Equal(t, 2.0, fwd(5))
	assert.Equal(t, -2.0, fwd(-5))
	assert.Equal(t, 1.5, fwd(1.5))
	assert.Equal(t, 0.0, bwd(2, 1))
	assert.Equal(t, 1.0, bwd(1.5, 1))
}

func TestRectifierMath(t *testing.T) {
	a := NewRectifierActivation()
	fwd := a.ForwardFunc()
	assert.Equal(t, 0.0, fwd(-2))
	assert.Equal(t, 3.0, fwd(3))

	require.NoError(t, a.SetParameter(ParamLeakSlope, 0.1))
	require.NoError(t, a.SetParameter(ParamClipping, 6))
	fwd, bwd := a.ForwardFunc(), a.BackwardFunc()
	assert.InDelta(t, -0.2, fwd(-2), 1e-12)
	assert.Equal(t, 6.0, fwd(10))
	assert.Equal(t, 4.0, fwd(4))

	assert.InDelta(t, 0.1, bwd(-0.2, 1), 1e-12)
	assert.Equal(t, 0.0, bwd(6, 1))
	assert.Equal(t, 1.0, bwd(4, 1))
}

func TestTanhMath(t *testing.T) {
	a := NewTanhActivation()
	require.NoError(t, a.SetParameter(ParamAlpha, 0.5))
	fwd, bwd := a.ForwardFunc(), a.BackwardFunc()

	y := fwd(2)
	assert.InDelta(t, math.Tanh(1), y, 1e-12)
	assert.InDelta(t, 0.5*(1-y*y), bwd(y, 1), 1e-12)
}

func TestForwardFuncCapturesParameters(t *testing.T) {
	a := NewTanhActivation()
	fwd := a.ForwardFunc()
	require.NoError(t, a.SetParameter(ParamAlpha, 3))
	assert.InDelta(t, math.Tanh(1), fwd(1), 1e-12, "closure keeps the values it was built with")
}
