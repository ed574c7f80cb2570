package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues("-1, 0.5,2")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0.5, 2}, values)

	_, err = parseValues("")
	require.Error(t, err)
	_, err = parseValues("1,x")
	require.Error(t, err)
}

func TestOptionsFlag(t *testing.T) {
	opts := optionsFlag{}
	require.NoError(t, opts.Set("leak_slope=0.1"))
	require.NoError(t, opts.Set("clipping=6"))
	assert.Equal(t, optionsFlag{"leak_slope": 0.1, "clipping": 6.0}, opts)

	require.Error(t, opts.Set("clipping"))
	require.Error(t, opts.Set("=1"))
	require.Error(t, opts.Set("alpha=big"))
}

func TestAdapterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := newAdapterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-kind", "rectifier", "-model", "Frame", "-datatype", "double",
		"-opt", "leak_slope=0.25", "-sat-range", "15", "-sat-alpha", "4",
	}))

	act, err := f.build()
	require.NoError(t, err)
	assert.Equal(t, "Frame<double>", act.Key())
	assert.True(t, act.HasQuantizer())
	assert.Equal(t, "Rectifier(clipping=0, leak_slope=0.25, quantizer=SAT(alpha=4, learning_rate=0.01, range=15))", act.String())

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	f = newAdapterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-kind", "sigmoid"}))
	_, err = f.build()
	require.Error(t, err)
}

func TestBenchRejectsNonPositiveSizes(t *testing.T) {
	require.NoError(t, checkBenchSizes(1, 1))
	require.Error(t, checkBenchSizes(0, 20))
	require.Error(t, checkBenchSizes(1024, 0))
	require.Error(t, checkBenchSizes(-1, -1))

	require.Error(t, bench([]string{"-iterations", "0"}))
	require.Error(t, bench([]string{"-n", "0"}))
}
