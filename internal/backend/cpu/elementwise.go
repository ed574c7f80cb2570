package cpu

import (
	"github.com/born-ml/actbind/internal/parallel"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/x448/float16"
)

// mapUnary writes fn(src[i]) into dst. Both tensors share layout.
func mapUnary(src, dst *tensor.RawTensor, fn func(float64) float64, cfg parallel.Config) {
	n := src.NumElements()
	switch src.DType() {
	case tensor.Float32:
		in, out := src.AsFloat32(), dst.AsFloat32()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = float32(fn(float64(in[i])))
			}
		}, cfg)
	case tensor.Float64:
		in, out := src.AsFloat64(), dst.AsFloat64()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = fn(in[i])
			}
		}, cfg)
	case tensor.Float16:
		in, out := src.AsFloat16(), dst.AsFloat16()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = float16.Fromfloat32(float32(fn(float64(in[i].Float32()))))
			}
		}, cfg)
	}
}

// mapGrad writes fn(y[i], dy[i]) into dx. dx may alias dy.
func mapGrad(y, dy, dx *tensor.RawTensor, fn func(y, dy float64) float64, cfg parallel.Config) {
	n := y.NumElements()
	switch y.DType() {
	case tensor.Float32:
		ys, dys, dxs := y.AsFloat32(), dy.AsFloat32(), dx.AsFloat32()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dxs[i] = float32(fn(float64(ys[i]), float64(dys[i])))
			}
		}, cfg)
	case tensor.Float64:
		ys, dys, dxs := y.AsFloat64(), dy.AsFloat64(), dx.AsFloat64()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dxs[i] = fn(ys[i], dys[i])
			}
		}, cfg)
	case tensor.Float16:
		ys, dys, dxs := y.AsFloat16(), dy.AsFloat16(), dx.AsFloat16()
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				g := fn(float64(ys[i].Float32()), float64(dys[i].Float32()))
				dxs[i] = float16.Fromfloat32(float32(g))
			}
		}, cfg)
	}
}
