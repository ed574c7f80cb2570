package engine

import (
	"testing"

	"github.com/born-ml/actbind/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSATQuantizer_Propagate(t *testing.T) {
	q := NewSATQuantizer()
	require.NoError(t, q.SetParameter(ParamAlpha, 4))
	require.NoError(t, q.SetParameter(ParamRange, 4))

	data, err := tensor.FromFloat64([]float64{-1, 0.4, 1.6, 3.9, 10}, tensor.Shape{5})
	require.NoError(t, err)

	require.NoError(t, q.Propagate(data, false))
	// Step is alpha/range = 1.
	assert.Equal(t, []float64{0, 0, 2, 4, 4}, data.AsFloat64())
}

func TestSATQuantizer_RangeZeroOnlyClamps(t *testing.T) {
	q := NewSATQuantizer()
	require.NoError(t, q.SetParameter(ParamRange, 0))
	require.NoError(t, q.SetParameter(ParamAlpha, 2))

	data, err := tensor.FromFloat64([]float64{-1, 0.3, 5}, tensor.Shape{3})
	require.NoError(t, err)
	require.NoError(t, q.Propagate(data, true))
	assert.Equal(t, []float64{0, 0.3, 2}, data.AsFloat64())
}

func TestSATQuantizer_BackPropagateAndUpdate(t *testing.T) {
	q := NewSATQuantizer()
	require.NoError(t, q.SetParameter(ParamAlpha, 2))
	require.NoError(t, q.SetParameter(ParamLearningRate, 0.5))

	data, err := tensor.FromFloat64([]float64{-1, 1, 3}, tensor.Shape{3})
	require.NoError(t, err)
	require.NoError(t, q.Propagate(data, false))

	diffIn, err := tensor.FromFloat64([]float64{1, 1, 1}, tensor.Shape{3})
	require.NoError(t, err)
	diffOut, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, q.BackPropagate(diffIn, diffOut))
	assert.Equal(t, []float64{0, 1, 0}, diffOut.AsFloat64())
	assert.Equal(t, 1.0, q.DiffAlpha())

	q.Update(1)
	assert.InDelta(t, 1.5, q.Value(ParamAlpha), 1e-12)
	assert.Equal(t, 0.0, q.DiffAlpha())
}

func TestSATQuantizer_BackPropagateWithoutForward(t *testing.T) {
	q := NewSATQuantizer()
	g, err := tensor.FromFloat64([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	err = q.BackPropagate(g, g.Clone())
	assert.True(t, errors.Is(err, ErrNoForward))
}

func TestSATQuantizer_InvalidParameters(t *testing.T) {
	q := NewSATQuantizer()
	assert.True(t, errors.Is(q.SetParameter(ParamRange, 2.5), ErrInvalidParameter))
	assert.True(t, errors.Is(q.SetParameter(ParamAlpha, 0), ErrInvalidParameter))
	assert.Equal(t, 255.0, q.Value(ParamRange))
}

func TestCheckLayout(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	c, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	assert.NoError(t, CheckLayout(tensor.Float32, a, a.Clone()))
	assert.True(t, errors.Is(CheckLayout(tensor.Float32, a, b), ErrShapeMismatch))
	assert.True(t, errors.Is(CheckLayout(tensor.Float32, a, c), ErrDataType))
	assert.Error(t, CheckLayout(tensor.Float32, a, nil))
}
