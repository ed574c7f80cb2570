package tensor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Shape lists the size of each dimension; an empty Shape is a scalar.
type Shape []int

// NumElements returns the product of the dimensions (1 for a scalar).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects non-positive dimensions.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(dim int) bool { return dim <= 0 }); i >= 0 {
		return fmt.Errorf("dimension %d of %s is %d, must be > 0", i, s, s[i])
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// String renders the shape as e.g. "(2, 3)".
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, dim := range s {
		dims[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}
