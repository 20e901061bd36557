package gfx

import "strconv"

// ValueType identifies the scalar type of a buffer element or vertex
// attribute component.
type ValueType uint32

// Value types.
const (
	// ValueTypeUndefined is the sentinel for an unset value type.
	ValueTypeUndefined ValueType = iota

	// ValueTypeInt8 is a signed 8-bit integer.
	ValueTypeInt8

	// ValueTypeInt16 is a signed 16-bit integer.
	ValueTypeInt16

	// ValueTypeInt32 is a signed 32-bit integer.
	ValueTypeInt32

	// ValueTypeUint8 is an unsigned 8-bit integer.
	ValueTypeUint8

	// ValueTypeUint16 is an unsigned 16-bit integer.
	ValueTypeUint16

	// ValueTypeUint32 is an unsigned 32-bit integer.
	ValueTypeUint32

	// ValueTypeFloat16 is a half-precision float.
	ValueTypeFloat16

	// ValueTypeFloat32 is a single-precision float.
	ValueTypeFloat32

	// ValueTypeFloat64 is a double-precision float.
	ValueTypeFloat64

	// ValueTypeCount bounds the enumeration.
	ValueTypeCount
)

var valueTypeNames = [ValueTypeCount]string{
	"Undefined",
	"Int8", "Int16", "Int32",
	"Uint8", "Uint16", "Uint32",
	"Float16", "Float32", "Float64",
}

// String returns the value-type name, or "ValueType(n)" for out-of-range
// values.
func (v ValueType) String() string {
	if v < ValueTypeCount {
		return valueTypeNames[v]
	}
	return "ValueType(" + strconv.FormatUint(uint64(v), 10) + ")"
}
