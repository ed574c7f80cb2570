package engine

import (
	"math"

	"github.com/born-ml/actbind/internal/tensor"
	"github.com/pkg/errors"
)

// Quantizer alters an activation's output precision. It is attached to an
// Activation and driven by the activation's Propagate/BackPropagate/Update.
type Quantizer interface {
	// Type returns the quantizer kind, e.g. "SAT".
	Type() string

	SetParameter(name string, value float64) error
	GetParameter(name string) (float64, error)
	ParameterNames() []string

	// Propagate quantizes data in place.
	Propagate(data *tensor.RawTensor, inference bool) error
	// BackPropagate writes into diffOutput the gradient of the quantization
	// with respect to the full-precision activations seen by the last
	// training Propagate.
	BackPropagate(diffInput, diffOutput *tensor.RawTensor) error
	// Update applies accumulated learnable state.
	Update(batchSize int)
}

// SAT quantizer names.
const (
	SATType           = "SAT"
	ParamRange        = "Range"
	ParamLearningRate = "LearningRate"
)

// SATQuantizer is the scale-adjusted training activation quantizer: it clamps
// activations to [0, Alpha] and rounds them to Range uniform steps. Alpha is
// learned from the gradient of outputs that saturate.
type SATQuantizer struct {
	*Parameters

	fullPrecision []float64
	diffAlpha     float64
}

// NewSATQuantizer returns a SATQuantizer with Range = 255, Alpha = 8 and
// LearningRate = 0.01.
func NewSATQuantizer() *SATQuantizer {
	q := &SATQuantizer{Parameters: NewParameters()}
	q.Declare(ParamRange, 255, NonNegative, integral)
	q.Declare(ParamAlpha, 8, Positive)
	q.Declare(ParamLearningRate, 0.01, NonNegative)
	return q
}

// Type implements Quantizer.
func (q *SATQuantizer) Type() string { return SATType }

// Propagate implements Quantizer. Range = 0 clamps without rounding.
func (q *SATQuantizer) Propagate(data *tensor.RawTensor, inference bool) error {
	values := data.Float64s()
	if !inference {
		q.fullPrecision = append(q.fullPrecision[:0], values...)
	}
	alpha, levels := q.Value(ParamAlpha), q.Value(ParamRange)
	for i, x := range values {
		y := math.Min(math.Max(x, 0), alpha)
		if levels > 0 {
			y = math.Round(y*levels/alpha) * alpha / levels
		}
		values[i] = y
	}
	data.SetFloat64s(values)
	return nil
}

// BackPropagate implements Quantizer with a straight-through estimator inside
// (0, Alpha). Gradients of saturated outputs accumulate into Alpha's gradient.
func (q *SATQuantizer) BackPropagate(diffInput, diffOutput *tensor.RawTensor) error {
	if !diffInput.Shape().Equal(diffOutput.Shape()) {
		return errors.Wrapf(ErrShapeMismatch, "quantizer gradients %v vs %v", diffInput.Shape(), diffOutput.Shape())
	}
	if len(q.fullPrecision) != diffInput.NumElements() {
		return errors.Wrapf(ErrNoForward, "%s quantizer holds %d activations, gradient has %d",
			q.Type(), len(q.fullPrecision), diffInput.NumElements())
	}
	alpha := q.Value(ParamAlpha)
	dy := diffInput.Float64s()
	for i, x := range q.fullPrecision {
		switch {
		case x >= alpha:
			q.diffAlpha += dy[i]
			dy[i] = 0
		case x <= 0:
			dy[i] = 0
		}
	}
	diffOutput.SetFloat64s(dy)
	return nil
}

// Update implements Quantizer: Alpha -= LearningRate * dAlpha / batchSize.
// Alpha never drops below a small positive floor.
func (q *SATQuantizer) Update(batchSize int) {
	if batchSize <= 0 || q.diffAlpha == 0 {
		q.diffAlpha = 0
		return
	}
	alpha := q.Value(ParamAlpha) - q.Value(ParamLearningRate)*q.diffAlpha/float64(batchSize)
	q.values[ParamAlpha] = math.Max(alpha, minSATAlpha)
	q.diffAlpha = 0
}

// DiffAlpha returns the gradient accumulated for Alpha since the last Update.
func (q *SATQuantizer) DiffAlpha() float64 { return q.diffAlpha }

const minSATAlpha = 1e-3

func integral(value float64) error {
	if value != math.Trunc(value) {
		return errors.New("must be an integer")
	}
	return nil
}

var _ Quantizer = (*SATQuantizer)(nil)
