package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/born-ml/actbind/tensor"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func bench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	adapter := newAdapterFlags(fs)
	n := fs.Int("n", 1<<20, "Number of elements per forward pass.")
	iterations := fs.Int("iterations", 20, "Number of timed forward passes.")
	_ = fs.Parse(args)
	if err := checkBenchSizes(*n, *iterations); err != nil {
		return err
	}

	act, err := adapter.build()
	if err != nil {
		return err
	}
	dtype := must.M1(tensor.ParseDataType(act.DataType()))

	values := make([]float64, *n)
	for i := range values {
		values[i] = rand.NormFloat64() * 4
	}
	in := must.M1(tensor.FromValues(values, tensor.Shape{*n}, dtype))
	out := must.M1(tensor.NewRaw(in.Shape(), dtype, tensor.CPU))

	// Warm up, e.g. GPU pipeline compilation.
	if err := act.Propagate(in, out, true); err != nil {
		return err
	}
	klog.V(1).Infof("Benchmarking %s: %d x %d elements", act, *iterations, *n)

	start := time.Now()
	for range *iterations {
		must.M(act.Propagate(in, out, true))
	}
	elapsed := time.Since(start)

	elements := int64(*n) * int64(*iterations)
	perSecond := float64(elements) / elapsed.Seconds()
	bytesPerSecond := perSecond * float64(2*dtype.Size())

	fmt.Println(titleStyle.Render(act.Key() + " " + act.String()))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("elements", humanize.Comma(elements))
	table.Row("time", elapsed.Round(time.Microsecond).String())
	table.Row("per pass", (elapsed / time.Duration(*iterations)).Round(time.Microsecond).String())
	table.Row("elements/s", humanize.SIWithDigits(perSecond, 2, ""))
	table.Row("throughput", humanize.Bytes(uint64(bytesPerSecond))+"/s")
	table.Row("tensor size", humanize.Bytes(uint64(in.ByteSize())))
	fmt.Println(table.Render())
	return nil
}

// checkBenchSizes rejects non-positive element and iteration counts.
func checkBenchSizes(n, iterations int) error {
	if n <= 0 {
		return errors.Errorf("-n must be > 0, got %d", n)
	}
	if iterations <= 0 {
		return errors.Errorf("-iterations must be > 0, got %d", iterations)
	}
	return nil
}
