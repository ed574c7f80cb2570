package activation_test

import (
	"fmt"

	"github.com/born-ml/actbind/activation"
	"github.com/born-ml/actbind/quantizer"
	"github.com/born-ml/actbind/tensor"
)

func ExampleNewRectifier() {
	relu, err := activation.NewRectifier(activation.Config{
		Options: map[string]any{"leak_slope": 0.01, "clipping": 6.0},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(relu.Key())
	fmt.Println(relu)
	// Output:
	// Frame<float>
	// Rectifier(clipping=6, leak_slope=0.01)
}

func ExampleNew_quantized() {
	sat, err := quantizer.NewSAT(map[string]any{"range": 4, "alpha": 1.0})
	if err != nil {
		panic(err)
	}
	linear, err := activation.New(activation.KindLinear, activation.Config{
		DataType: "double",
		Options:  map[string]any{"quantizer": sat},
	})
	if err != nil {
		panic(err)
	}

	in, _ := tensor.FromFloat64([]float64{-1, 0.3, 0.6, 2}, tensor.Shape{4})
	out, _ := tensor.NewRaw(in.Shape(), tensor.Float64, tensor.CPU)
	if err := linear.Propagate(in, out, true); err != nil {
		panic(err)
	}
	fmt.Println(out.Float64s())
	// Output: [0 0.25 0.5 1]
}
