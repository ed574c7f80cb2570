//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available on this system")
	}
	backend, err := Shared()
	require.NoError(t, err)
	return backend
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestFrame_Rectifier(t *testing.T) {
	backend := newTestBackend(t)
	act := backend.Rectifier()()
	require.NoError(t, act.SetParameter(engine.ParamLeakSlope, 0.5))
	require.NoError(t, act.SetParameter(engine.ParamClipping, 2))

	in, err := tensor.FromFloat32([]float32{-2, -0.5, 0, 1, 3}, tensor.Shape{5})
	require.NoError(t, err)
	out, err := tensor.NewRaw(in.Shape(), tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, act.Propagate(in, out, true))
	assert.InDeltaSlice(t, []float32{-1, -0.25, 0, 1, 2}, out.AsFloat32(), 1e-6)
	assert.Equal(t, tensor.WebGPU, out.Device())

	dy, err := tensor.FromFloat32([]float32{1, 1, 1, 1, 1}, tensor.Shape{5})
	require.NoError(t, err)
	require.NoError(t, act.BackPropagate(in, out, dy, dy))
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 0.5, 1, 0}, dy.AsFloat32(), 1e-6)
}

func TestFrame_TanhMatchesCPUMath(t *testing.T) {
	backend := newTestBackend(t)
	act := backend.Tanh()()
	require.NoError(t, act.SetParameter(engine.ParamAlpha, 0.5))

	values := []float32{-3, -1, 0, 0.5, 4}
	in, err := tensor.FromFloat32(values, tensor.Shape{5})
	require.NoError(t, err)
	out, err := tensor.NewRaw(in.Shape(), tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, act.Propagate(in, out, true))
	for i, x := range values {
		assert.InDelta(t, math.Tanh(0.5*float64(x)), float64(out.AsFloat32()[i]), 1e-5)
	}
}

func TestFrame_RejectsFloat64(t *testing.T) {
	backend := newTestBackend(t)
	act := backend.Linear()()

	in, err := tensor.FromFloat64([]float64{1}, tensor.Shape{1})
	require.NoError(t, err)
	assert.ErrorIs(t, act.Propagate(in, in.Clone(), true), engine.ErrDataType)
}
