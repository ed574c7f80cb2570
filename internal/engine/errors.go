package engine

import (
	"github.com/born-ml/actbind/internal/tensor"
	"github.com/pkg/errors"
)

// Engine errors.
var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidParameter = errors.New("invalid parameter value")
	ErrShapeMismatch    = errors.New("tensor shape mismatch")
	ErrDataType         = errors.New("tensor datatype not supported by frame")
	ErrNoForward        = errors.New("back-propagation without a preceding training forward pass")
)

// CheckLayout verifies that every tensor has the frame's dtype and that all
// tensors share the first one's shape.
func CheckLayout(dtype tensor.DataType, tensors ...*tensor.RawTensor) error {
	for i, t := range tensors {
		if t == nil {
			return errors.Errorf("tensor #%d is nil", i)
		}
		if t.DType() != dtype {
			return errors.Wrapf(ErrDataType, "tensor #%d is %s, frame expects %s", i, t.DType(), dtype)
		}
		if i > 0 && !t.Shape().Equal(tensors[0].Shape()) {
			return errors.Wrapf(ErrShapeMismatch, "tensor #%d has shape %v, expected %v", i, t.Shape(), tensors[0].Shape())
		}
	}
	return nil
}
