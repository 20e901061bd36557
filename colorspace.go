package dxgi

import (
	"strconv"

	"github.com/gogpu/dxgi/gfx"
)

// ColorSpace identifies a DXGI color space. Values match
// DXGI_COLOR_SPACE_TYPE.
type ColorSpace uint32

// DXGI color spaces. The names encode (range, transfer function, matrix,
// primaries): e.g. RGBFullG22NoneP709 is full-range RGB, gamma 2.2, no
// YCbCr matrix, BT.709 primaries.
const (
	ColorSpaceRGBFullG22NoneP709           ColorSpace = 0
	ColorSpaceRGBFullG10NoneP709           ColorSpace = 1
	ColorSpaceRGBStudioG22NoneP709         ColorSpace = 2
	ColorSpaceRGBStudioG22NoneP2020        ColorSpace = 3
	ColorSpaceReserved                     ColorSpace = 4
	ColorSpaceYCbCrFullG22NoneP709X601     ColorSpace = 5
	ColorSpaceYCbCrStudioG22LeftP601       ColorSpace = 6
	ColorSpaceYCbCrFullG22LeftP601         ColorSpace = 7
	ColorSpaceYCbCrStudioG22LeftP709       ColorSpace = 8
	ColorSpaceYCbCrFullG22LeftP709         ColorSpace = 9
	ColorSpaceYCbCrStudioG22LeftP2020      ColorSpace = 10
	ColorSpaceYCbCrFullG22LeftP2020        ColorSpace = 11
	ColorSpaceRGBFullG2084NoneP2020        ColorSpace = 12
	ColorSpaceYCbCrStudioG2084LeftP2020    ColorSpace = 13
	ColorSpaceRGBStudioG2084NoneP2020      ColorSpace = 14
	ColorSpaceYCbCrStudioG22TopLeftP2020   ColorSpace = 15
	ColorSpaceYCbCrStudioG2084TopLeftP2020 ColorSpace = 16
	ColorSpaceRGBFullG22NoneP2020          ColorSpace = 17
	ColorSpaceYCbCrStudioGHLGTopLeftP2020  ColorSpace = 18
	ColorSpaceYCbCrFullGHLGTopLeftP2020    ColorSpace = 19
	ColorSpaceRGBStudioG24NoneP709         ColorSpace = 20
	ColorSpaceRGBStudioG24NoneP2020        ColorSpace = 21
	ColorSpaceYCbCrStudioG24LeftP709       ColorSpace = 22
	ColorSpaceYCbCrStudioG24LeftP2020      ColorSpace = 23
	ColorSpaceYCbCrStudioG24TopLeftP2020   ColorSpace = 24
	ColorSpaceCustom                       ColorSpace = 0xFFFFFFFF
)

var colorSpaceNames = [...]string{
	"RGB_FULL_G22_NONE_P709",
	"RGB_FULL_G10_NONE_P709",
	"RGB_STUDIO_G22_NONE_P709",
	"RGB_STUDIO_G22_NONE_P2020",
	"RESERVED",
	"YCBCR_FULL_G22_NONE_P709_X601",
	"YCBCR_STUDIO_G22_LEFT_P601",
	"YCBCR_FULL_G22_LEFT_P601",
	"YCBCR_STUDIO_G22_LEFT_P709",
	"YCBCR_FULL_G22_LEFT_P709",
	"YCBCR_STUDIO_G22_LEFT_P2020",
	"YCBCR_FULL_G22_LEFT_P2020",
	"RGB_FULL_G2084_NONE_P2020",
	"YCBCR_STUDIO_G2084_LEFT_P2020",
	"RGB_STUDIO_G2084_NONE_P2020",
	"YCBCR_STUDIO_G22_TOPLEFT_P2020",
	"YCBCR_STUDIO_G2084_TOPLEFT_P2020",
	"RGB_FULL_G22_NONE_P2020",
	"YCBCR_STUDIO_GHLG_TOPLEFT_P2020",
	"YCBCR_FULL_GHLG_TOPLEFT_P2020",
	"RGB_STUDIO_G24_NONE_P709",
	"RGB_STUDIO_G24_NONE_P2020",
	"YCBCR_STUDIO_G24_LEFT_P709",
	"YCBCR_STUDIO_G24_LEFT_P2020",
	"YCBCR_STUDIO_G24_TOPLEFT_P2020",
}

// String returns the DXGI name of c (without the DXGI_COLOR_SPACE_
// prefix), or "ColorSpace(n)" for unlisted values.
func (c ColorSpace) String() string {
	if int(c) < len(colorSpaceNames) {
		return colorSpaceNames[c]
	}
	if c == ColorSpaceCustom {
		return "CUSTOM"
	}
	return "ColorSpace(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// FromColorSpace returns the closest DXGI color space for an engine color
// space.
//
// The mapping is best-effort and intentionally lossy: DXGI exposes far
// fewer (transfer function, gamut, range) combinations than the engine
// enumeration, so wide-gamut and exotic transfer functions downgrade to
// the nearest supported combination as documented on each case. Unknown
// inputs map to the standard-gamma sRGB default. The mapping is total and
// deterministic; round-tripping through [ToColorSpace] is only guaranteed
// for sRGB nonlinear and HDR10 ST 2084.
func FromColorSpace(cs gfx.ColorSpace) ColorSpace {
	switch cs {
	case gfx.ColorSpaceSRGBNonlinear:
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceExtendedSRGBLinear:
		return ColorSpaceRGBFullG10NoneP709

	case gfx.ColorSpaceExtendedSRGBNonlinear:
		// DXGI doesn't distinguish extended vs non-extended for nonlinear.
		// The "extended" behavior comes from using a float format.
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceDisplayP3Nonlinear:
		// DXGI has no Display-P3 primaries.
		// Fall back to sRGB (same transfer function, narrower gamut).
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceDisplayP3Linear:
		// DXGI has no Display-P3 primaries.
		// Fall back to linear sRGB.
		return ColorSpaceRGBFullG10NoneP709

	case gfx.ColorSpaceDCIP3Nonlinear:
		// DXGI has no DCI-P3 (gamma 2.6).
		// Fall back to sRGB.
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceBT709Linear:
		// BT.709 primaries are the same as sRGB.
		return ColorSpaceRGBFullG10NoneP709

	case gfx.ColorSpaceBT709Nonlinear:
		// BT.709 transfer function is very close to sRGB.
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceBT2020Linear:
		// DXGI has no linear BT.2020 for full range RGB.
		// Use HDR10 PQ as closest wide-gamut alternative.
		return ColorSpaceRGBFullG2084NoneP2020

	case gfx.ColorSpaceHDR10ST2084:
		return ColorSpaceRGBFullG2084NoneP2020

	case gfx.ColorSpaceHDR10HLG:
		// DXGI has no direct HLG for RGB.
		// G22 with P2020 primaries is the closest approximation.
		return ColorSpaceRGBFullG22NoneP2020

	case gfx.ColorSpaceDolbyVision:
		// Dolby Vision not directly supported in DXGI.
		// Fall back to HDR10 PQ.
		return ColorSpaceRGBFullG2084NoneP2020

	case gfx.ColorSpaceAdobeRGBNonlinear:
		// DXGI has no Adobe RGB primaries.
		// Fall back to sRGB (similar gamma, narrower gamut).
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceAdobeRGBLinear:
		// DXGI has no Adobe RGB primaries.
		// Fall back to linear sRGB.
		return ColorSpaceRGBFullG10NoneP709

	case gfx.ColorSpacePassThrough:
		// No transformation - use sRGB as neutral default.
		return ColorSpaceRGBFullG22NoneP709

	case gfx.ColorSpaceSCRGBLinear:
		// scRGB is linear with BT.709/sRGB primaries, extended range via
		// float format.
		return ColorSpaceRGBFullG10NoneP709

	default:
		return ColorSpaceRGBFullG22NoneP709
	}
}

// ToColorSpace returns the closest engine color space for a DXGI color
// space.
//
// Like [FromColorSpace] the mapping is total, deterministic and lossy.
// YCbCr spaces are video formats that never appear on swap chains; they
// classify to an RGB equivalent by primaries and transfer function.
func ToColorSpace(cs ColorSpace) gfx.ColorSpace {
	switch cs {
	// Full range RGB formats.
	case ColorSpaceRGBFullG22NoneP709:
		return gfx.ColorSpaceSRGBNonlinear

	case ColorSpaceRGBFullG10NoneP709:
		// Could be ExtendedSRGBLinear, BT709Linear, or SCRGBLinear.
		// They all map to the same DXGI value; choose scRGB as it's the
		// most descriptive for HDR.
		return gfx.ColorSpaceSCRGBLinear

	case ColorSpaceRGBFullG2084NoneP2020:
		return gfx.ColorSpaceHDR10ST2084

	case ColorSpaceRGBFullG22NoneP2020:
		// BT.2020 primaries with gamma 2.2.
		// Closest to HLG conceptually (wide gamut, SDR-compatible transfer).
		return gfx.ColorSpaceHDR10HLG

	// Studio range RGB formats (limited range 16-235).
	case ColorSpaceRGBStudioG22NoneP709:
		// Studio range sRGB - map to regular sRGB (application should
		// handle range).
		return gfx.ColorSpaceSRGBNonlinear

	case ColorSpaceRGBStudioG22NoneP2020:
		// Studio range BT.2020 with gamma 2.2.
		return gfx.ColorSpaceHDR10HLG

	case ColorSpaceRGBStudioG2084NoneP2020:
		// Studio range HDR10.
		return gfx.ColorSpaceHDR10ST2084

	case ColorSpaceRGBStudioG24NoneP709:
		// Studio range, gamma 2.4, BT.709 - used for some broadcast.
		return gfx.ColorSpaceBT709Nonlinear

	case ColorSpaceRGBStudioG24NoneP2020:
		// Studio range, gamma 2.4, BT.2020.
		return gfx.ColorSpaceHDR10HLG

	// YCbCr formats - these are typically for video, not swap chains.
	// Map them to reasonable RGB equivalents based on primaries.
	case ColorSpaceYCbCrFullG22NoneP709X601,
		ColorSpaceYCbCrStudioG22LeftP601,
		ColorSpaceYCbCrFullG22LeftP601,
		ColorSpaceYCbCrStudioG22LeftP709,
		ColorSpaceYCbCrFullG22LeftP709,
		ColorSpaceYCbCrStudioG24LeftP709:
		// BT.601/709 YCbCr -> sRGB.
		return gfx.ColorSpaceSRGBNonlinear

	case ColorSpaceYCbCrStudioG22LeftP2020,
		ColorSpaceYCbCrFullG22LeftP2020,
		ColorSpaceYCbCrStudioG22TopLeftP2020,
		ColorSpaceYCbCrStudioG24LeftP2020,
		ColorSpaceYCbCrStudioG24TopLeftP2020:
		// BT.2020 YCbCr with gamma -> HLG-ish.
		return gfx.ColorSpaceHDR10HLG

	case ColorSpaceYCbCrStudioG2084LeftP2020,
		ColorSpaceYCbCrStudioG2084TopLeftP2020:
		// BT.2020 YCbCr with PQ -> HDR10.
		return gfx.ColorSpaceHDR10ST2084

	case ColorSpaceYCbCrStudioGHLGTopLeftP2020,
		ColorSpaceYCbCrFullGHLGTopLeftP2020:
		// Actual HLG YCbCr.
		return gfx.ColorSpaceHDR10HLG

	default:
		return gfx.ColorSpaceSRGBNonlinear
	}
}
