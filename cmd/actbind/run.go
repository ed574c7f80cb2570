package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/actbind/activation"
	"github.com/born-ml/actbind/quantizer"
	"github.com/born-ml/actbind/tensor"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// optionsFlag collects repeated -opt name=value flags.
type optionsFlag map[string]any

func (o optionsFlag) String() string {
	parts := make([]string, 0, len(o))
	for name, value := range o {
		parts = append(parts, fmt.Sprintf("%s=%v", name, value))
	}
	return strings.Join(parts, ",")
}

func (o optionsFlag) Set(s string) error {
	name, value, found := strings.Cut(s, "=")
	if !found || name == "" {
		return errors.Errorf("option %q is not in name=value form", s)
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errors.Wrapf(err, "option %q", name)
	}
	o[name] = number
	return nil
}

// parseValues parses a comma separated list of numbers.
func parseValues(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty input")
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "input #%d", i)
		}
		values[i] = v
	}
	return values, nil
}

// adapterFlags are the flags shared by run and bench.
type adapterFlags struct {
	kind     *string
	model    *string
	datatype *string
	options  optionsFlag
	satRange *int
	satAlpha *float64
}

func newAdapterFlags(fs *flag.FlagSet) *adapterFlags {
	defaults := activation.DefaultConfig()
	f := &adapterFlags{
		kind:     fs.String("kind", "rectifier", "Activation kind: linear, rectifier or tanh."),
		model:    fs.String("model", defaults.Model, "Backend model identifier (default from $"+activation.EnvModel+")."),
		datatype: fs.String("datatype", defaults.DataType, "Datatype identifier: float, double or half (default from $"+activation.EnvDataType+")."),
		options:  optionsFlag{},
		satRange: fs.Int("sat-range", 0, "If > 0, attach a SAT quantizer with this many levels."),
		satAlpha: fs.Float64("sat-alpha", 8, "Clipping value of the SAT quantizer."),
	}
	fs.Var(f.options, "opt", "Activation option as name=value; may be repeated.")
	return f
}

// build constructs the adapter the flags describe.
func (f *adapterFlags) build() (activation.Activation, error) {
	kind, err := activation.ParseKind(*f.kind)
	if err != nil {
		return nil, err
	}
	cfg := activation.Config{Model: *f.model, DataType: *f.datatype, Options: f.options}
	if *f.satRange > 0 {
		sat, err := quantizer.NewSAT(map[string]any{"range": *f.satRange, "alpha": *f.satAlpha})
		if err != nil {
			return nil, err
		}
		cfg = cfg.WithOption(activation.QuantizerOption, sat)
	}
	return activation.New(kind, cfg)
}

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	adapter := newAdapterFlags(fs)
	input := fs.String("input", "-2,-1,-0.5,0,0.5,1,2", "Comma separated input values.")
	_ = fs.Parse(args)

	act, err := adapter.build()
	if err != nil {
		return err
	}
	values, err := parseValues(*input)
	if err != nil {
		return err
	}
	dtype, err := tensor.ParseDataType(act.DataType())
	if err != nil {
		return err
	}
	klog.V(1).Infof("Running %s on %d values", act.Key(), len(values))

	in, err := tensor.FromValues(values, tensor.Shape{len(values)}, dtype)
	if err != nil {
		return err
	}
	out, err := tensor.NewRaw(in.Shape(), dtype, tensor.CPU)
	if err != nil {
		return err
	}
	if err := act.Propagate(in, out, true); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(act.String()))
	table := newPlainTable(lipgloss.Right)
	table.Headers("x", "f(x)")
	for i, y := range out.Float64s() {
		table.Row(strconv.FormatFloat(values[i], 'g', -1, 64), strconv.FormatFloat(y, 'g', 6, 64))
	}
	fmt.Println(table.Render())
	return nil
}
