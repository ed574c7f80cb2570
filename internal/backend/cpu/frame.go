package cpu

import (
	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/parallel"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/pkg/errors"
)

// Frame runs an engine.Kernel element-wise over CPU tensors of one datatype.
type Frame struct {
	engine.Kernel

	dtype    tensor.DataType
	device   tensor.Device
	parallel parallel.Config
}

// NewFrame binds kernel to this backend for dtype.
func (cpu *CPUBackend) NewFrame(kernel engine.Kernel, dtype tensor.DataType) *Frame {
	return &Frame{
		Kernel:   kernel,
		dtype:    dtype,
		device:   cpu.device,
		parallel: cpu.parallel,
	}
}

// DataType returns the datatype the frame accepts.
func (f *Frame) DataType() tensor.DataType {
	return f.dtype
}

// Propagate implements engine.Activation.
func (f *Frame) Propagate(input, output *tensor.RawTensor, inference bool) error {
	if err := engine.CheckLayout(f.dtype, input, output); err != nil {
		return errors.Wrapf(err, "%s propagate", f.Type())
	}
	mapUnary(input, output, f.ForwardFunc(), f.parallel)
	output.SetDevice(f.device)

	if q := f.Quantizer(); q != nil {
		if err := q.Propagate(output, inference); err != nil {
			return errors.Wrapf(err, "%s propagate: %s quantizer", f.Type(), q.Type())
		}
	}
	return nil
}

// BackPropagate implements engine.Activation.
func (f *Frame) BackPropagate(input, output, diffInput, diffOutput *tensor.RawTensor) error {
	if err := engine.CheckLayout(f.dtype, input, output, diffInput, diffOutput); err != nil {
		return errors.Wrapf(err, "%s back-propagate", f.Type())
	}

	grad := diffInput
	if q := f.Quantizer(); q != nil {
		if err := q.BackPropagate(diffInput, diffOutput); err != nil {
			return errors.Wrapf(err, "%s back-propagate: %s quantizer", f.Type(), q.Type())
		}
		grad = diffOutput
	}
	mapGrad(output, grad, diffOutput, f.BackwardFunc(), f.parallel)
	diffOutput.SetDevice(f.device)
	return nil
}

var _ engine.Activation = (*Frame)(nil)
