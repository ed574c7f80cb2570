package tensor_test

import (
	"testing"

	"github.com/born-ml/actbind/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValues(t *testing.T) {
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16} {
		t.Run(dtype.String(), func(t *testing.T) {
			raw, err := tensor.FromValues([]float64{-1.5, 0, 2}, tensor.Shape{3}, dtype)
			require.NoError(t, err)
			assert.Equal(t, dtype, raw.DType())
			assert.Equal(t, tensor.CPU, raw.Device())
			assert.Equal(t, []float64{-1.5, 0, 2}, raw.Float64s())
		})
	}

	_, err := tensor.FromValues([]float64{1, 2}, tensor.Shape{3}, tensor.Float32)
	require.Error(t, err)
}

func TestParseDataType(t *testing.T) {
	dtype, err := tensor.ParseDataType("half")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, dtype)
	assert.Equal(t, "half", dtype.Identifier())

	_, err = tensor.ParseDataType("int8")
	require.Error(t, err)
}
