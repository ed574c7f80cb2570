package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/parallel"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTensor(t *testing.T, dtype tensor.DataType, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.FromValues(values, tensor.Shape{len(values)}, dtype)
	require.NoError(t, err)
	return r
}

func zerosLike(t *testing.T, r *tensor.RawTensor) *tensor.RawTensor {
	t.Helper()
	z, err := tensor.NewRaw(r.Shape(), r.DType(), tensor.CPU)
	require.NoError(t, err)
	return z
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.ElementsMatch(t, []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16}, backend.DataTypes())
}

func TestFrame_RectifierAllDataTypes(t *testing.T) {
	backend := New()
	for _, dtype := range backend.DataTypes() {
		t.Run(dtype.String(), func(t *testing.T) {
			act := backend.Rectifier(dtype)()
			require.NoError(t, act.SetParameter(engine.ParamLeakSlope, 0.5))
			require.NoError(t, act.SetParameter(engine.ParamClipping, 2))

			in := newTensor(t, dtype, -2, -0.5, 0, 1, 3)
			out := zerosLike(t, in)
			require.NoError(t, act.Propagate(in, out, false))
			assert.InDeltaSlice(t, []float64{-1, -0.25, 0, 1, 2}, out.Float64s(), 1e-3)

			dy := newTensor(t, dtype, 1, 1, 1, 1, 1)
			dx := zerosLike(t, in)
			require.NoError(t, act.BackPropagate(in, out, dy, dx))
			assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 1, 0}, dx.Float64s(), 1e-3)
		})
	}
}

func TestFrame_Tanh(t *testing.T) {
	act := New().Tanh(tensor.Float64)()
	require.NoError(t, act.SetParameter(engine.ParamAlpha, 2))

	in := newTensor(t, tensor.Float64, -1, 0, 0.25)
	out := zerosLike(t, in)
	require.NoError(t, act.Propagate(in, out, true))

	want := []float64{math.Tanh(-2), 0, math.Tanh(0.5)}
	assert.InDeltaSlice(t, want, out.AsFloat64(), 1e-12)

	dy := newTensor(t, tensor.Float64, 1, 1, 1)
	require.NoError(t, act.BackPropagate(in, out, dy, dy))
	for i, y := range want {
		assert.InDelta(t, 2*(1-y*y), dy.AsFloat64()[i], 1e-12)
	}
}

func TestFrame_LinearClipping(t *testing.T) {
	act := New().Linear(tensor.Float32)()
	in := newTensor(t, tensor.Float32, -4, 0.5, 4)
	out := zerosLike(t, in)

	require.NoError(t, act.Propagate(in, out, true))
	assert.Equal(t, []float32{-4, 0.5, 4}, out.AsFloat32())

	require.NoError(t, act.SetParameter(engine.ParamClipping, 1))
	require.NoError(t, act.Propagate(in, out, true))
	assert.Equal(t, []float32{-1, 0.5, 1}, out.AsFloat32())
}

func TestFrame_WithQuantizer(t *testing.T) {
	act := New().Linear(tensor.Float32)()
	q := engine.NewSATQuantizer()
	require.NoError(t, q.SetParameter(engine.ParamAlpha, 1))
	require.NoError(t, q.SetParameter(engine.ParamRange, 2))
	act.SetQuantizer(q)

	in := newTensor(t, tensor.Float32, -1, 0.3, 0.7, 5)
	out := zerosLike(t, in)
	require.NoError(t, act.Propagate(in, out, false))
	assert.Equal(t, []float32{0, 0.5, 0.5, 1}, out.AsFloat32())

	dy := newTensor(t, tensor.Float32, 1, 1, 1, 1)
	dx := zerosLike(t, in)
	require.NoError(t, act.BackPropagate(in, out, dy, dx))
	assert.Equal(t, []float32{0, 1, 1, 0}, dx.AsFloat32())
	assert.Equal(t, 1.0, q.DiffAlpha())

	act.Update(1)
	assert.Equal(t, 0.0, q.DiffAlpha())
}

func TestFrame_LayoutErrors(t *testing.T) {
	act := New().Tanh(tensor.Float32)()

	in := newTensor(t, tensor.Float64, 1, 2)
	err := act.Propagate(in, zerosLike(t, in), true)
	assert.True(t, errors.Is(err, engine.ErrDataType))

	a := newTensor(t, tensor.Float32, 1, 2)
	b := newTensor(t, tensor.Float32, 1, 2, 3)
	err = act.Propagate(a, b, true)
	assert.True(t, errors.Is(err, engine.ErrShapeMismatch))
}

func TestFrame_ParallelMatchesSequential(t *testing.T) {
	n := 50000
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i-n/2) / 1000
	}

	seq := New()
	seq.SetParallel(parallel.Config{Enabled: false})
	par := New()
	par.SetParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1024})

	in := newTensor(t, tensor.Float32, values...)
	outSeq, outPar := zerosLike(t, in), zerosLike(t, in)
	require.NoError(t, seq.Tanh(tensor.Float32)().Propagate(in, outSeq, true))
	require.NoError(t, par.Tanh(tensor.Float32)().Propagate(in, outPar, true))
	assert.Equal(t, outSeq.AsFloat32(), outPar.AsFloat32())
}

func BenchmarkFrame_RectifierFloat32(b *testing.B) {
	act := New().Rectifier(tensor.Float32)()
	in, _ := tensor.NewRaw(tensor.Shape{256, 1024}, tensor.Float32, tensor.CPU)
	out, _ := tensor.NewRaw(tensor.Shape{256, 1024}, tensor.Float32, tensor.CPU)
	b.SetBytes(int64(in.ByteSize()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = act.Propagate(in, out, true)
	}
}
