package engine

import "math"

// Activation kind names.
const (
	LinearType    = "Linear"
	RectifierType = "Rectifier"
	TanhType      = "Tanh"
)

// Native parameter names.
const (
	ParamClipping  = "Clipping"
	ParamLeakSlope = "LeakSlope"
	ParamAlpha     = "Alpha"
)

// LinearActivation is the identity, optionally saturated to [-Clipping, Clipping].
type LinearActivation struct {
	Base
}

// NewLinearActivation returns a LinearActivation with Clipping = 0 (disabled).
func NewLinearActivation() *LinearActivation {
	a := &LinearActivation{Base: newBase()}
	a.Declare(ParamClipping, 0, NonNegative)
	return a
}

// Type implements Kernel.
func (a *LinearActivation) Type() string { return LinearType }

// Clipping returns the saturation threshold, 0 when disabled.
func (a *LinearActivation) Clipping() float64 { return a.Value(ParamClipping) }

// ForwardFunc implements Kernel.
func (a *LinearActivation) ForwardFunc() func(x float64) float64 {
	clipping := a.Clipping()
	if clipping == 0 {
		return func(x float64) float64 { return x }
	}
	return func(x float64) float64 { return saturate(x, clipping) }
}

// BackwardFunc implements Kernel.
func (a *LinearActivation) BackwardFunc() func(y, dy float64) float64 {
	clipping := a.Clipping()
	if clipping == 0 {
		return func(_, dy float64) float64 { return dy }
	}
	return func(y, dy float64) float64 {
		if math.Abs(y) >= clipping {
			return 0
		}
		return dy
	}
}

// RectifierActivation is the (leaky, optionally clipped) ReLU.
type RectifierActivation struct {
	Base
}

// NewRectifierActivation returns a plain ReLU: LeakSlope = 0, Clipping = 0.
func NewRectifierActivation() *RectifierActivation {
	a := &RectifierActivation{Base: newBase()}
	a.Declare(ParamLeakSlope, 0)
	a.Declare(ParamClipping, 0, NonNegative)
	return a
}

// Type implements Kernel.
func (a *RectifierActivation) Type() string { return RectifierType }

// LeakSlope returns the slope applied to non-positive inputs.
func (a *RectifierActivation) LeakSlope() float64 { return a.Value(ParamLeakSlope) }

// Clipping returns the upper bound of positive outputs, 0 when disabled.
func (a *RectifierActivation) Clipping() float64 { return a.Value(ParamClipping) }

// ForwardFunc implements Kernel.
func (a *RectifierActivation) ForwardFunc() func(x float64) float64 {
	leak, clipping := a.LeakSlope(), a.Clipping()
	return func(x float64) float64 {
		if x > 0 {
			if clipping > 0 && x > clipping {
				return clipping
			}
			return x
		}
		return leak * x
	}
}

// BackwardFunc implements Kernel.
func (a *RectifierActivation) BackwardFunc() func(y, dy float64) float64 {
	leak, clipping := a.LeakSlope(), a.Clipping()
	return func(y, dy float64) float64 {
		if y > 0 {
			if clipping > 0 && y >= clipping {
				return 0
			}
			return dy
		}
		return leak * dy
	}
}

// TanhActivation computes tanh(Alpha * x).
type TanhActivation struct {
	Base
}

// NewTanhActivation returns a TanhActivation with Alpha = 1.
func NewTanhActivation() *TanhActivation {
	a := &TanhActivation{Base: newBase()}
	a.Declare(ParamAlpha, 1)
	return a
}

// Type implements Kernel.
func (a *TanhActivation) Type() string { return TanhType }

// Alpha returns the input scaling factor.
func (a *TanhActivation) Alpha() float64 { return a.Value(ParamAlpha) }

// ForwardFunc implements Kernel.
func (a *TanhActivation) ForwardFunc() func(x float64) float64 {
	alpha := a.Alpha()
	return func(x float64) float64 { return math.Tanh(alpha * x) }
}

// BackwardFunc implements Kernel.
func (a *TanhActivation) BackwardFunc() func(y, dy float64) float64 {
	alpha := a.Alpha()
	return func(y, dy float64) float64 { return alpha * (1 - y*y) * dy }
}

func saturate(x, threshold float64) float64 {
	switch {
	case x > threshold:
		return threshold
	case x < -threshold:
		return -threshold
	}
	return x
}

// Compile-time checks that the kinds implement Kernel.
var (
	_ Kernel = (*LinearActivation)(nil)
	_ Kernel = (*RectifierActivation)(nil)
	_ Kernel = (*TanhActivation)(nil)
)
