// Package tensor provides the dense tensors consumed and produced by activation frames.
package tensor

import "fmt"

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	case Float16:
		return 2
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// ParseDataType maps the engine datatype identifiers ("float", "double",
// "half") to a DataType.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	case "half":
		return Float16, nil
	}
	return 0, fmt.Errorf("unknown datatype identifier %q", name)
}

// Identifier returns the engine datatype identifier, the inverse of ParseDataType.
func (dt DataType) Identifier() string {
	switch dt {
	case Float32:
		return "float"
	case Float64:
		return "double"
	case Float16:
		return "half"
	default:
		return "unknown"
	}
}
