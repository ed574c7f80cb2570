package convention

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvention_Translate(t *testing.T) {
	c := New(map[string]string{"leak_slope": "LeakSlope", "clipping": "Clipping"})

	native, err := c.ToNative("leak_slope")
	require.NoError(t, err)
	assert.Equal(t, "LeakSlope", native)

	friendly, ok := c.FromNative("Clipping")
	assert.True(t, ok)
	assert.Equal(t, "clipping", friendly)

	_, ok = c.FromNative("Alpha")
	assert.False(t, ok)

	assert.Equal(t, []string{"clipping", "leak_slope"}, c.Names())
}

func TestConvention_UnknownName(t *testing.T) {
	c := New(map[string]string{"alpha": "Alpha"})

	_, err := c.ToNative("beta")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))

	var unknown *UnknownNameError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "beta", unknown.Name)
	assert.Equal(t, []string{"alpha"}, unknown.Known)
	assert.Contains(t, err.Error(), `"beta"`)
}

func TestConvention_ExtendDoesNotMutate(t *testing.T) {
	base := New(map[string]string{"quantizer": "Quantizer"})
	ext := base.Extend(map[string]string{"alpha": "Alpha"})

	assert.Equal(t, []string{"quantizer"}, base.Names())
	assert.Equal(t, []string{"alpha", "quantizer"}, ext.Names())
}

func TestConvention_DuplicateNativePanics(t *testing.T) {
	assert.Panics(t, func() {
		New(map[string]string{"a": "X", "b": "X"})
	})
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{1.5, 1.5, true},
		{float32(0.25), 0.25, true},
		{3, 3, true},
		{int64(-2), -2, true},
		{uint8(7), 7, true},
		{"1.0", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := Float(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "()", Format(nil))
	assert.Equal(t, "(alpha=1, clipping=0.5)", Format(map[string]any{"clipping": 0.5, "alpha": 1.0}))
}
