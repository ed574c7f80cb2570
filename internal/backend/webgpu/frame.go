//go:build windows

package webgpu

import (
	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Frame runs an engine.Kernel on the GPU. Only float32 is supported.
// Quantizers attached to the frame run on the host after readback.
type Frame struct {
	engine.Kernel

	backend *Backend
}

// NewFrame binds kernel to this backend.
func (b *Backend) NewFrame(kernel engine.Kernel) *Frame {
	return &Frame{Kernel: kernel, backend: b}
}

// shaderParams selects the shader pair and uniform values for the kernel's kind.
func (f *Frame) shaderParams() (forward, backward string, p0, p1 float32, err error) {
	switch f.Type() {
	case engine.LinearType:
		return linearForwardShader, linearBackwardShader, f.param(engine.ParamClipping), 0, nil
	case engine.RectifierType:
		return rectifierForwardShader, rectifierBackwardShader,
			f.param(engine.ParamLeakSlope), f.param(engine.ParamClipping), nil
	case engine.TanhType:
		return tanhForwardShader, tanhBackwardShader, f.param(engine.ParamAlpha), 0, nil
	}
	return "", "", 0, 0, errors.Errorf("webgpu: no shader for activation %q", f.Type())
}

func (f *Frame) param(name string) float32 {
	v, _ := f.GetParameter(name)
	return float32(v)
}

// Propagate implements engine.Activation.
func (f *Frame) Propagate(input, output *tensor.RawTensor, inference bool) error {
	if err := engine.CheckLayout(tensor.Float32, input, output); err != nil {
		return errors.Wrapf(err, "%s propagate", f.Type())
	}
	forward, _, p0, p1, err := f.shaderParams()
	if err != nil {
		return err
	}
	err = exceptions.TryCatch[error](func() {
		f.backend.runElementwise(f.Type()+"_forward", forward,
			[][]byte{input.Data()}, output.Data(), input.NumElements(), p0, p1)
	})
	if err != nil {
		return errors.Wrapf(err, "%s propagate", f.Type())
	}
	output.SetDevice(tensor.WebGPU)

	if q := f.Quantizer(); q != nil {
		if err := q.Propagate(output, inference); err != nil {
			return errors.Wrapf(err, "%s propagate: %s quantizer", f.Type(), q.Type())
		}
	}
	return nil
}

// BackPropagate implements engine.Activation.
func (f *Frame) BackPropagate(input, output, diffInput, diffOutput *tensor.RawTensor) error {
	if err := engine.CheckLayout(tensor.Float32, input, output, diffInput, diffOutput); err != nil {
		return errors.Wrapf(err, "%s back-propagate", f.Type())
	}
	_, backward, p0, p1, err := f.shaderParams()
	if err != nil {
		return err
	}

	grad := diffInput
	if q := f.Quantizer(); q != nil {
		if err := q.BackPropagate(diffInput, diffOutput); err != nil {
			return errors.Wrapf(err, "%s back-propagate: %s quantizer", f.Type(), q.Type())
		}
		grad = diffOutput
	}

	// grad may alias diffOutput: the shader reads from an uploaded copy.
	err = exceptions.TryCatch[error](func() {
		f.backend.runElementwise(f.Type()+"_backward", backward,
			[][]byte{output.Data(), grad.Data()}, diffOutput.Data(), output.NumElements(), p0, p1)
	})
	if err != nil {
		return errors.Wrapf(err, "%s back-propagate", f.Type())
	}
	diffOutput.SetDevice(tensor.WebGPU)
	return nil
}

var _ engine.Activation = (*Frame)(nil)
