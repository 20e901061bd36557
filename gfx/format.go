package gfx

import "strconv"

// TextureFormat identifies an engine-neutral texture format.
//
// Values are contiguous: TextureFormatUnknown is the zero value and
// TextureFormatCount bounds the enumeration. The order is part of the
// contract — backend mapping tables are indexed by it and the canonical
// inverse mapping depends on it — so new formats must only ever be
// appended before TextureFormatCount.
type TextureFormat uint32

// Texture formats.
const (
	// TextureFormatUnknown is the sentinel for an unset or unsupported format.
	TextureFormatUnknown TextureFormat = iota

	// 128-bit four-channel formats.
	TextureFormatRGBA32Typeless
	TextureFormatRGBA32Float
	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint

	// 96-bit three-channel formats.
	TextureFormatRGB32Typeless
	TextureFormatRGB32Float
	TextureFormatRGB32Uint
	TextureFormatRGB32Sint

	// 64-bit four-channel formats.
	TextureFormatRGBA16Typeless
	TextureFormatRGBA16Float
	TextureFormatRGBA16Unorm
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Snorm
	TextureFormatRGBA16Sint

	// 64-bit two-channel formats.
	TextureFormatRG32Typeless
	TextureFormatRG32Float
	TextureFormatRG32Uint
	TextureFormatRG32Sint

	// 64-bit depth+stencil family (32-bit depth, 8-bit stencil, 24 unused).
	TextureFormatR32G8X24Typeless
	TextureFormatD32FloatS8X24Uint
	TextureFormatR32FloatX8X24Typeless
	TextureFormatX32TypelessG8X24Uint

	// 32-bit 10:10:10:2 formats.
	TextureFormatRGB10A2Typeless
	TextureFormatRGB10A2Unorm
	TextureFormatRGB10A2Uint

	// TextureFormatR11G11B10Float is a 32-bit three-channel float format.
	TextureFormatR11G11B10Float

	// 32-bit four-channel 8-bit formats.
	TextureFormatRGBA8Typeless
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSRGB
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Sint

	// 32-bit two-channel 16-bit formats.
	TextureFormatRG16Typeless
	TextureFormatRG16Float
	TextureFormatRG16Unorm
	TextureFormatRG16Uint
	TextureFormatRG16Snorm
	TextureFormatRG16Sint

	// 32-bit single-channel and depth formats.
	TextureFormatR32Typeless
	TextureFormatD32Float
	TextureFormatR32Float
	TextureFormatR32Uint
	TextureFormatR32Sint

	// 32-bit depth+stencil family (24-bit depth, 8-bit stencil).
	TextureFormatR24G8Typeless
	TextureFormatD24UnormS8Uint
	TextureFormatR24UnormX8Typeless
	TextureFormatX24TypelessG8Uint

	// 16-bit two-channel 8-bit formats.
	TextureFormatRG8Typeless
	TextureFormatRG8Unorm
	TextureFormatRG8Uint
	TextureFormatRG8Snorm
	TextureFormatRG8Sint

	// 16-bit single-channel and depth formats.
	TextureFormatR16Typeless
	TextureFormatR16Float
	TextureFormatD16Unorm
	TextureFormatR16Unorm
	TextureFormatR16Uint
	TextureFormatR16Snorm
	TextureFormatR16Sint

	// 8-bit single-channel formats.
	TextureFormatR8Typeless
	TextureFormatR8Unorm
	TextureFormatR8Uint
	TextureFormatR8Snorm
	TextureFormatR8Sint
	TextureFormatA8Unorm

	// TextureFormatR1Unorm is a 1-bit single-channel format.
	TextureFormatR1Unorm

	// TextureFormatRGB9E5SharedExp is a three-channel float format with a
	// shared 5-bit exponent.
	TextureFormatRGB9E5SharedExp

	// Packed 4:2:2 formats.
	TextureFormatRG8B8G8Unorm
	TextureFormatG8R8G8B8Unorm

	// Block-compression formats (DXT/BC families).
	TextureFormatBC1Typeless
	TextureFormatBC1Unorm
	TextureFormatBC1UnormSRGB
	TextureFormatBC2Typeless
	TextureFormatBC2Unorm
	TextureFormatBC2UnormSRGB
	TextureFormatBC3Typeless
	TextureFormatBC3Unorm
	TextureFormatBC3UnormSRGB
	TextureFormatBC4Typeless
	TextureFormatBC4Unorm
	TextureFormatBC4Snorm
	TextureFormatBC5Typeless
	TextureFormatBC5Unorm
	TextureFormatBC5Snorm

	// 16-bit packed color formats.
	TextureFormatB5G6R5Unorm
	TextureFormatB5G5R5A1Unorm

	// 32-bit BGRA/BGRX formats.
	TextureFormatBGRA8Unorm
	TextureFormatBGRX8Unorm

	// TextureFormatR10G10B10XRBiasA2Unorm is a 10:10:10:2 extended-range
	// biased format.
	TextureFormatR10G10B10XRBiasA2Unorm

	TextureFormatBGRA8Typeless
	TextureFormatBGRA8UnormSRGB
	TextureFormatBGRX8Typeless
	TextureFormatBGRX8UnormSRGB

	// BC6H/BC7 block-compression formats.
	TextureFormatBC6HTypeless
	TextureFormatBC6HUF16
	TextureFormatBC6HSF16
	TextureFormatBC7Typeless
	TextureFormatBC7Unorm
	TextureFormatBC7UnormSRGB

	// ETC2 block-compression formats. Mobile-only; they have no
	// equivalent in some native APIs.
	TextureFormatETC2RGB8Unorm
	TextureFormatETC2RGB8UnormSRGB
	TextureFormatETC2RGB8A1Unorm
	TextureFormatETC2RGB8A1UnormSRGB
	TextureFormatETC2RGBA8Unorm
	TextureFormatETC2RGBA8UnormSRGB

	// TextureFormatCount bounds the enumeration.
	TextureFormatCount
)

var textureFormatNames = [TextureFormatCount]string{
	"Unknown",
	"RGBA32Typeless", "RGBA32Float", "RGBA32Uint", "RGBA32Sint",
	"RGB32Typeless", "RGB32Float", "RGB32Uint", "RGB32Sint",
	"RGBA16Typeless", "RGBA16Float", "RGBA16Unorm", "RGBA16Uint", "RGBA16Snorm", "RGBA16Sint",
	"RG32Typeless", "RG32Float", "RG32Uint", "RG32Sint",
	"R32G8X24Typeless", "D32FloatS8X24Uint", "R32FloatX8X24Typeless", "X32TypelessG8X24Uint",
	"RGB10A2Typeless", "RGB10A2Unorm", "RGB10A2Uint",
	"R11G11B10Float",
	"RGBA8Typeless", "RGBA8Unorm", "RGBA8UnormSRGB", "RGBA8Uint", "RGBA8Snorm", "RGBA8Sint",
	"RG16Typeless", "RG16Float", "RG16Unorm", "RG16Uint", "RG16Snorm", "RG16Sint",
	"R32Typeless", "D32Float", "R32Float", "R32Uint", "R32Sint",
	"R24G8Typeless", "D24UnormS8Uint", "R24UnormX8Typeless", "X24TypelessG8Uint",
	"RG8Typeless", "RG8Unorm", "RG8Uint", "RG8Snorm", "RG8Sint",
	"R16Typeless", "R16Float", "D16Unorm", "R16Unorm", "R16Uint", "R16Snorm", "R16Sint",
	"R8Typeless", "R8Unorm", "R8Uint", "R8Snorm", "R8Sint", "A8Unorm",
	"R1Unorm",
	"RGB9E5SharedExp",
	"RG8B8G8Unorm", "G8R8G8B8Unorm",
	"BC1Typeless", "BC1Unorm", "BC1UnormSRGB",
	"BC2Typeless", "BC2Unorm", "BC2UnormSRGB",
	"BC3Typeless", "BC3Unorm", "BC3UnormSRGB",
	"BC4Typeless", "BC4Unorm", "BC4Snorm",
	"BC5Typeless", "BC5Unorm", "BC5Snorm",
	"B5G6R5Unorm", "B5G5R5A1Unorm",
	"BGRA8Unorm", "BGRX8Unorm",
	"R10G10B10XRBiasA2Unorm",
	"BGRA8Typeless", "BGRA8UnormSRGB", "BGRX8Typeless", "BGRX8UnormSRGB",
	"BC6HTypeless", "BC6HUF16", "BC6HSF16",
	"BC7Typeless", "BC7Unorm", "BC7UnormSRGB",
	"ETC2RGB8Unorm", "ETC2RGB8UnormSRGB",
	"ETC2RGB8A1Unorm", "ETC2RGB8A1UnormSRGB",
	"ETC2RGBA8Unorm", "ETC2RGBA8UnormSRGB",
}

// String returns the format name, or "TextureFormat(n)" for out-of-range
// values.
func (f TextureFormat) String() string {
	if f < TextureFormatCount {
		return textureFormatNames[f]
	}
	return "TextureFormat(" + strconv.FormatUint(uint64(f), 10) + ")"
}
