package dxgi

import "github.com/gogpu/dxgi/gfx"

// CorrectFormat resolves typeless and depth-adjacent DXGI formats to the
// concrete variant implied by a binding intent. Four storage families are
// handled: 32-bit depth (R32), 24-bit depth + 8-bit stencil (R24G8),
// 16-bit depth (R16) and 32-bit depth + 8-bit stencil with padding
// (R32G8X24). Formats outside these families pass through unchanged.
//
// The three passes below run sequentially over the possibly-rewritten
// value, in this order:
//
//  1. Depth-stencil combined with any other flag: the resource needs
//     multiple incompatible views, so the format widens back to the
//     typeless base of its family.
//  2. Depth-stencil only: typeless and shader-readable variants narrow to
//     the concrete depth or depth-stencil format.
//  3. Exactly shader-resource or exactly unordered-access: typeless and
//     depth variants narrow to the shader-readable non-depth variant.
//
// CorrectFormat is a pure function; it retains no state and never fails.
// An unrecognized format reaching pass 1 logs a warning and passes
// through.
func CorrectFormat(fmtID Format, flags gfx.BindFlags) Format {
	if flags.Has(gfx.BindDepthStencil) && flags != gfx.BindDepthStencil {
		switch fmtID {
		case FormatR32Typeless,
			FormatR32Float,
			FormatD32Float:
			fmtID = FormatR32Typeless

		case FormatR24G8Typeless,
			FormatD24UnormS8Uint,
			FormatR24UnormX8Typeless,
			FormatX24TypelessG8Uint:
			fmtID = FormatR24G8Typeless

		case FormatR16Typeless,
			FormatR16Unorm,
			FormatD16Unorm:
			fmtID = FormatR16Typeless

		case FormatR32G8X24Typeless,
			FormatD32FloatS8X24Uint,
			FormatR32FloatX8X24Typeless,
			FormatX32TypelessG8X24Uint:
			fmtID = FormatR32G8X24Typeless

		default:
			Logger().Warn("dxgi: unsupported depth-stencil format",
				"format", fmtID.String(), "bindFlags", flags.String())
		}
	}

	if flags == gfx.BindDepthStencil {
		switch fmtID {
		case FormatR32Typeless,
			FormatR32Float:
			fmtID = FormatD32Float

		case FormatR24G8Typeless,
			FormatR24UnormX8Typeless,
			FormatX24TypelessG8Uint:
			fmtID = FormatD24UnormS8Uint

		case FormatR16Typeless,
			FormatR16Unorm:
			fmtID = FormatD16Unorm

		case FormatR32G8X24Typeless,
			FormatR32FloatX8X24Typeless,
			FormatX32TypelessG8X24Uint:
			fmtID = FormatD32FloatS8X24Uint
		}
	}

	if flags == gfx.BindShaderResource || flags == gfx.BindUnorderedAccess {
		switch fmtID {
		case FormatR32Typeless,
			FormatD32Float:
			fmtID = FormatR32Float

		case FormatR24G8Typeless,
			FormatD24UnormS8Uint:
			fmtID = FormatR24UnormX8Typeless

		case FormatR16Typeless,
			FormatD16Unorm:
			fmtID = FormatR16Unorm

		case FormatR32G8X24Typeless,
			FormatD32FloatS8X24Uint:
			fmtID = FormatR32FloatX8X24Typeless
		}
	}

	return fmtID
}
