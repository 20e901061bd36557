package dxgi

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxgi/gfx"
)

// FromWebGPUFormat returns the DXGI format for a WebGPU texture format.
//
// This covers the surface and depth formats GoGPU swap chains present in;
// it is the bridge a Direct3D presentation path uses when the rest of the
// pipeline speaks WebGPU enums. Formats outside that set log a warning
// and return [FormatUnknown].
func FromWebGPUFormat(f gputypes.TextureFormat) Format {
	switch f {
	case gputypes.TextureFormatUndefined:
		return FormatUnknown
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24UnormS8Uint
	default:
		Logger().Warn("dxgi: WebGPU texture format has no swap-chain mapping",
			"format", uint32(f))
		return FormatUnknown
	}
}

// ToWebGPUFormat returns the WebGPU texture format for a DXGI format.
// It is the inverse of [FromWebGPUFormat] over the same swap-chain format
// set; other formats log a warning and return
// [gputypes.TextureFormatUndefined].
func ToWebGPUFormat(f Format) gputypes.TextureFormat {
	switch f {
	case FormatUnknown:
		return gputypes.TextureFormatUndefined
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm
	case FormatR8G8B8A8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatB8G8R8A8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatD24UnormS8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		Logger().Warn("dxgi: DXGI format has no swap-chain WebGPU mapping",
			"format", f.String())
		return gputypes.TextureFormatUndefined
	}
}

// SwapChainFormat returns the DXGI format and color space to create a
// swap chain with for a WebGPU surface format and an engine color space.
// The format mapping follows [FromWebGPUFormat]; the color space follows
// [FromColorSpace].
func SwapChainFormat(f gputypes.TextureFormat, cs gfx.ColorSpace) (Format, ColorSpace) {
	return FromWebGPUFormat(f), FromColorSpace(cs)
}
