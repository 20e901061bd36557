package dxgi

import "github.com/gogpu/dxgi/gfx"

// FromValueType returns the DXGI format for a vertex attribute or buffer
// element with the given scalar type, component count and normalization.
//
// Floating-point types must not be normalized, and 32-bit integer types
// have no normalized DXGI representation (use a float format instead);
// both cases are programming errors and panic. Unsupported component
// counts and scalar types log a warning and return [FormatUnknown].
func FromValueType(vt gfx.ValueType, components int, normalized bool) Format {
	switch vt {
	case gfx.ValueTypeFloat16:
		if normalized {
			panic("dxgi: floating-point formats cannot be normalized")
		}
		switch components {
		case 1:
			return FormatR16Float
		case 2:
			return FormatR16G16Float
		case 4:
			return FormatR16G16B16A16Float
		}

	case gfx.ValueTypeFloat32:
		if normalized {
			panic("dxgi: floating-point formats cannot be normalized")
		}
		switch components {
		case 1:
			return FormatR32Float
		case 2:
			return FormatR32G32Float
		case 3:
			return FormatR32G32B32Float
		case 4:
			return FormatR32G32B32A32Float
		}

	case gfx.ValueTypeInt32:
		if normalized {
			panic("dxgi: 32-bit normalized formats are not supported; use R32_FLOAT instead")
		}
		switch components {
		case 1:
			return FormatR32Sint
		case 2:
			return FormatR32G32Sint
		case 3:
			return FormatR32G32B32Sint
		case 4:
			return FormatR32G32B32A32Sint
		}

	case gfx.ValueTypeUint32:
		if normalized {
			panic("dxgi: 32-bit normalized formats are not supported; use R32_FLOAT instead")
		}
		switch components {
		case 1:
			return FormatR32Uint
		case 2:
			return FormatR32G32Uint
		case 3:
			return FormatR32G32B32Uint
		case 4:
			return FormatR32G32B32A32Uint
		}

	case gfx.ValueTypeInt16:
		if normalized {
			switch components {
			case 1:
				return FormatR16Snorm
			case 2:
				return FormatR16G16Snorm
			case 4:
				return FormatR16G16B16A16Snorm
			}
		} else {
			switch components {
			case 1:
				return FormatR16Sint
			case 2:
				return FormatR16G16Sint
			case 4:
				return FormatR16G16B16A16Sint
			}
		}

	case gfx.ValueTypeUint16:
		if normalized {
			switch components {
			case 1:
				return FormatR16Unorm
			case 2:
				return FormatR16G16Unorm
			case 4:
				return FormatR16G16B16A16Unorm
			}
		} else {
			switch components {
			case 1:
				return FormatR16Uint
			case 2:
				return FormatR16G16Uint
			case 4:
				return FormatR16G16B16A16Uint
			}
		}

	case gfx.ValueTypeInt8:
		if normalized {
			switch components {
			case 1:
				return FormatR8Snorm
			case 2:
				return FormatR8G8Snorm
			case 4:
				return FormatR8G8B8A8Snorm
			}
		} else {
			switch components {
			case 1:
				return FormatR8Sint
			case 2:
				return FormatR8G8Sint
			case 4:
				return FormatR8G8B8A8Sint
			}
		}

	case gfx.ValueTypeUint8:
		if normalized {
			switch components {
			case 1:
				return FormatR8Unorm
			case 2:
				return FormatR8G8Unorm
			case 4:
				return FormatR8G8B8A8Unorm
			}
		} else {
			switch components {
			case 1:
				return FormatR8Uint
			case 2:
				return FormatR8G8Uint
			case 4:
				return FormatR8G8B8A8Uint
			}
		}

	default:
		Logger().Warn("dxgi: unsupported value type",
			"valueType", vt.String())
		return FormatUnknown
	}

	Logger().Warn("dxgi: unsupported number of components",
		"valueType", vt.String(), "components", components)
	return FormatUnknown
}
