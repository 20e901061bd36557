package dxgi

import (
	"fmt"
	"sync"

	"github.com/gogpu/dxgi/gfx"
)

// forwardTable returns the engine-to-DXGI format table, building it on
// first use. The table is immutable after publication; sync.OnceValue
// gives the build the acquire/release ordering that makes a fully
// populated table visible to every caller.
var forwardTable = sync.OnceValue(buildForwardTable)

// inverseTable returns the DXGI-to-engine format table, derived lazily
// from the forward table.
var inverseTable = sync.OnceValue(buildInverseTable)

// buildForwardTable constructs the complete engine-to-DXGI mapping.
// Entries are assigned in enumeration order; slots that stay
// FormatUnknown (the ETC2 block) have no DXGI equivalent.
func buildForwardTable() *[gfx.TextureFormatCount]Format {
	var m [gfx.TextureFormatCount]Format

	m[gfx.TextureFormatUnknown] = FormatUnknown

	m[gfx.TextureFormatRGBA32Typeless] = FormatR32G32B32A32Typeless
	m[gfx.TextureFormatRGBA32Float] = FormatR32G32B32A32Float
	m[gfx.TextureFormatRGBA32Uint] = FormatR32G32B32A32Uint
	m[gfx.TextureFormatRGBA32Sint] = FormatR32G32B32A32Sint

	m[gfx.TextureFormatRGB32Typeless] = FormatR32G32B32Typeless
	m[gfx.TextureFormatRGB32Float] = FormatR32G32B32Float
	m[gfx.TextureFormatRGB32Uint] = FormatR32G32B32Uint
	m[gfx.TextureFormatRGB32Sint] = FormatR32G32B32Sint

	m[gfx.TextureFormatRGBA16Typeless] = FormatR16G16B16A16Typeless
	m[gfx.TextureFormatRGBA16Float] = FormatR16G16B16A16Float
	m[gfx.TextureFormatRGBA16Unorm] = FormatR16G16B16A16Unorm
	m[gfx.TextureFormatRGBA16Uint] = FormatR16G16B16A16Uint
	m[gfx.TextureFormatRGBA16Snorm] = FormatR16G16B16A16Snorm
	m[gfx.TextureFormatRGBA16Sint] = FormatR16G16B16A16Sint

	m[gfx.TextureFormatRG32Typeless] = FormatR32G32Typeless
	m[gfx.TextureFormatRG32Float] = FormatR32G32Float
	m[gfx.TextureFormatRG32Uint] = FormatR32G32Uint
	m[gfx.TextureFormatRG32Sint] = FormatR32G32Sint

	m[gfx.TextureFormatR32G8X24Typeless] = FormatR32G8X24Typeless
	m[gfx.TextureFormatD32FloatS8X24Uint] = FormatD32FloatS8X24Uint
	m[gfx.TextureFormatR32FloatX8X24Typeless] = FormatR32FloatX8X24Typeless
	m[gfx.TextureFormatX32TypelessG8X24Uint] = FormatX32TypelessG8X24Uint

	m[gfx.TextureFormatRGB10A2Typeless] = FormatR10G10B10A2Typeless
	m[gfx.TextureFormatRGB10A2Unorm] = FormatR10G10B10A2Unorm
	m[gfx.TextureFormatRGB10A2Uint] = FormatR10G10B10A2Uint

	m[gfx.TextureFormatR11G11B10Float] = FormatR11G11B10Float

	m[gfx.TextureFormatRGBA8Typeless] = FormatR8G8B8A8Typeless
	m[gfx.TextureFormatRGBA8Unorm] = FormatR8G8B8A8Unorm
	m[gfx.TextureFormatRGBA8UnormSRGB] = FormatR8G8B8A8UnormSRGB
	m[gfx.TextureFormatRGBA8Uint] = FormatR8G8B8A8Uint
	m[gfx.TextureFormatRGBA8Snorm] = FormatR8G8B8A8Snorm
	m[gfx.TextureFormatRGBA8Sint] = FormatR8G8B8A8Sint

	m[gfx.TextureFormatRG16Typeless] = FormatR16G16Typeless
	m[gfx.TextureFormatRG16Float] = FormatR16G16Float
	m[gfx.TextureFormatRG16Unorm] = FormatR16G16Unorm
	m[gfx.TextureFormatRG16Uint] = FormatR16G16Uint
	m[gfx.TextureFormatRG16Snorm] = FormatR16G16Snorm
	m[gfx.TextureFormatRG16Sint] = FormatR16G16Sint

	m[gfx.TextureFormatR32Typeless] = FormatR32Typeless
	m[gfx.TextureFormatD32Float] = FormatD32Float
	m[gfx.TextureFormatR32Float] = FormatR32Float
	m[gfx.TextureFormatR32Uint] = FormatR32Uint
	m[gfx.TextureFormatR32Sint] = FormatR32Sint

	m[gfx.TextureFormatR24G8Typeless] = FormatR24G8Typeless
	m[gfx.TextureFormatD24UnormS8Uint] = FormatD24UnormS8Uint
	m[gfx.TextureFormatR24UnormX8Typeless] = FormatR24UnormX8Typeless
	m[gfx.TextureFormatX24TypelessG8Uint] = FormatX24TypelessG8Uint

	m[gfx.TextureFormatRG8Typeless] = FormatR8G8Typeless
	m[gfx.TextureFormatRG8Unorm] = FormatR8G8Unorm
	m[gfx.TextureFormatRG8Uint] = FormatR8G8Uint
	m[gfx.TextureFormatRG8Snorm] = FormatR8G8Snorm
	m[gfx.TextureFormatRG8Sint] = FormatR8G8Sint

	m[gfx.TextureFormatR16Typeless] = FormatR16Typeless
	m[gfx.TextureFormatR16Float] = FormatR16Float
	m[gfx.TextureFormatD16Unorm] = FormatD16Unorm
	m[gfx.TextureFormatR16Unorm] = FormatR16Unorm
	m[gfx.TextureFormatR16Uint] = FormatR16Uint
	m[gfx.TextureFormatR16Snorm] = FormatR16Snorm
	m[gfx.TextureFormatR16Sint] = FormatR16Sint

	m[gfx.TextureFormatR8Typeless] = FormatR8Typeless
	m[gfx.TextureFormatR8Unorm] = FormatR8Unorm
	m[gfx.TextureFormatR8Uint] = FormatR8Uint
	m[gfx.TextureFormatR8Snorm] = FormatR8Snorm
	m[gfx.TextureFormatR8Sint] = FormatR8Sint
	m[gfx.TextureFormatA8Unorm] = FormatA8Unorm

	m[gfx.TextureFormatR1Unorm] = FormatR1Unorm
	m[gfx.TextureFormatRGB9E5SharedExp] = FormatR9G9B9E5SharedExp
	m[gfx.TextureFormatRG8B8G8Unorm] = FormatR8G8B8G8Unorm
	m[gfx.TextureFormatG8R8G8B8Unorm] = FormatG8R8G8B8Unorm

	m[gfx.TextureFormatBC1Typeless] = FormatBC1Typeless
	m[gfx.TextureFormatBC1Unorm] = FormatBC1Unorm
	m[gfx.TextureFormatBC1UnormSRGB] = FormatBC1UnormSRGB
	m[gfx.TextureFormatBC2Typeless] = FormatBC2Typeless
	m[gfx.TextureFormatBC2Unorm] = FormatBC2Unorm
	m[gfx.TextureFormatBC2UnormSRGB] = FormatBC2UnormSRGB
	m[gfx.TextureFormatBC3Typeless] = FormatBC3Typeless
	m[gfx.TextureFormatBC3Unorm] = FormatBC3Unorm
	m[gfx.TextureFormatBC3UnormSRGB] = FormatBC3UnormSRGB
	m[gfx.TextureFormatBC4Typeless] = FormatBC4Typeless
	m[gfx.TextureFormatBC4Unorm] = FormatBC4Unorm
	m[gfx.TextureFormatBC4Snorm] = FormatBC4Snorm
	m[gfx.TextureFormatBC5Typeless] = FormatBC5Typeless
	m[gfx.TextureFormatBC5Unorm] = FormatBC5Unorm
	m[gfx.TextureFormatBC5Snorm] = FormatBC5Snorm

	m[gfx.TextureFormatB5G6R5Unorm] = FormatB5G6R5Unorm
	m[gfx.TextureFormatB5G5R5A1Unorm] = FormatB5G5R5A1Unorm
	m[gfx.TextureFormatBGRA8Unorm] = FormatB8G8R8A8Unorm
	m[gfx.TextureFormatBGRX8Unorm] = FormatB8G8R8X8Unorm

	m[gfx.TextureFormatR10G10B10XRBiasA2Unorm] = FormatR10G10B10XRBiasA2Unorm

	m[gfx.TextureFormatBGRA8Typeless] = FormatB8G8R8A8Typeless
	m[gfx.TextureFormatBGRA8UnormSRGB] = FormatB8G8R8A8UnormSRGB
	m[gfx.TextureFormatBGRX8Typeless] = FormatB8G8R8X8Typeless
	m[gfx.TextureFormatBGRX8UnormSRGB] = FormatB8G8R8X8UnormSRGB

	m[gfx.TextureFormatBC6HTypeless] = FormatBC6HTypeless
	m[gfx.TextureFormatBC6HUF16] = FormatBC6HUF16
	m[gfx.TextureFormatBC6HSF16] = FormatBC6HSF16
	m[gfx.TextureFormatBC7Typeless] = FormatBC7Typeless
	m[gfx.TextureFormatBC7Unorm] = FormatBC7Unorm
	m[gfx.TextureFormatBC7UnormSRGB] = FormatBC7UnormSRGB

	// ETC2 formats stay FormatUnknown: DXGI has no ETC2 support.

	return &m
}

// buildInverseTable derives the DXGI-to-engine mapping by inverting the
// forward table in enumeration order. When several engine formats map to
// the same DXGI value the last one in enumeration order wins; that choice
// is the canonical decode and callers depend on it.
func buildInverseTable() *[formatTableSize]gfx.TextureFormat {
	var m [formatTableSize]gfx.TextureFormat
	fwd := forwardTable()
	for f := gfx.TextureFormatUnknown; f < gfx.TextureFormatCount; f++ {
		d := fwd[f]
		if d == FormatUnknown {
			// Unmapped engine formats must not claim the Unknown slot.
			continue
		}
		m[d] = f
	}
	return &m
}

// FromTextureFormat returns the DXGI format for an engine texture format.
//
// When flags is not [gfx.BindNone] the result is additionally piped
// through [CorrectFormat] so typeless depth formats narrow to the variant
// the binding intent requires.
//
// fmt must be below [gfx.TextureFormatCount]; out-of-range values are a
// programming error and panic. Engine formats with no DXGI equivalent
// return [FormatUnknown] and log a warning through the package logger.
func FromTextureFormat(fmtID gfx.TextureFormat, flags gfx.BindFlags) Format {
	if fmtID >= gfx.TextureFormatCount {
		panic(fmt.Sprintf("dxgi: texture format (%d) is out of allowed range [0, %d)",
			uint32(fmtID), uint32(gfx.TextureFormatCount)))
	}

	d := forwardTable()[fmtID]
	if d == FormatUnknown && fmtID != gfx.TextureFormatUnknown {
		Logger().Warn("dxgi: texture format has no DXGI equivalent",
			"format", fmtID.String())
	}
	if flags != gfx.BindNone {
		d = CorrectFormat(d, flags)
	}
	return d
}

// ToTextureFormat returns the engine texture format a DXGI format decodes
// to. For DXGI values several engine formats encode to, the canonical
// (last in enumeration order) engine format is returned; see
// [FromTextureFormat] for the other direction.
//
// fmt must not exceed [FormatMaxMapped]; values above it are a programming
// error and panic. [FormatUnknown] returns [gfx.TextureFormatUnknown].
func ToTextureFormat(fmtID Format) gfx.TextureFormat {
	if fmtID > FormatMaxMapped {
		panic(fmt.Sprintf("dxgi: DXGI format (%d) is out of allowed range [0, %d]",
			uint32(fmtID), uint32(FormatMaxMapped)))
	}

	t := inverseTable()[fmtID]
	if t == gfx.TextureFormatUnknown && fmtID != FormatUnknown {
		Logger().Warn("dxgi: DXGI format has no engine equivalent",
			"format", fmtID.String())
	}
	return t
}
