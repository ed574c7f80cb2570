// Package convention translates user-facing option names (snake_case, e.g.
// "leak_slope") to the engine's parameter names (e.g. "LeakSlope") and back.
package convention

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownName is wrapped by every UnknownNameError.
var ErrUnknownName = errors.New("unknown option")

// UnknownNameError reports a friendly or native name the convention doesn't map.
type UnknownNameError struct {
	Name  string   // The name that failed to translate.
	Known []string // The names that would have been accepted.
}

// Error implements the error interface.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown option %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns ErrUnknownName.
func (e *UnknownNameError) Unwrap() error { return ErrUnknownName }

// Convention is an immutable bidirectional name map.
type Convention struct {
	toNative   map[string]string
	fromNative map[string]string
}

// New builds a Convention from friendly -> native pairs.
// Panics if two friendly names map to the same native name.
func New(pairs map[string]string) *Convention {
	c := &Convention{
		toNative:   make(map[string]string, len(pairs)),
		fromNative: make(map[string]string, len(pairs)),
	}
	for friendly, native := range pairs {
		if other, dup := c.fromNative[native]; dup {
			panic(fmt.Sprintf("convention: %q and %q both map to %q", other, friendly, native))
		}
		c.toNative[friendly] = native
		c.fromNative[native] = friendly
	}
	return c
}

// Extend returns a new Convention with pairs added to c's.
func (c *Convention) Extend(pairs map[string]string) *Convention {
	merged := maps.Clone(c.toNative)
	maps.Copy(merged, pairs)
	return New(merged)
}

// ToNative translates a friendly name.
func (c *Convention) ToNative(name string) (string, error) {
	native, found := c.toNative[name]
	if !found {
		return "", &UnknownNameError{Name: name, Known: c.Names()}
	}
	return native, nil
}

// FromNative translates a native name back to its friendly form.
func (c *Convention) FromNative(native string) (string, bool) {
	friendly, found := c.fromNative[native]
	return friendly, found
}

// Names returns the friendly names, sorted.
func (c *Convention) Names() []string {
	return slices.Sorted(maps.Keys(c.toNative))
}

// Float normalizes a numeric option value to float64.
// Accepts Go's int, float and unsigned kinds; reports false for anything else.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// Sorted returns the option names sorted, the order options are applied in.
func Sorted(options map[string]any) []string {
	return slices.Sorted(maps.Keys(options))
}

// Format renders options as "name=value" pairs sorted by name, e.g.
// "(alpha=1, quantizer=SAT(...))". Empty options render as "()".
func Format(options map[string]any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, name := range Sorted(options) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", name, options[name])
	}
	sb.WriteByte(')')
	return sb.String()
}
