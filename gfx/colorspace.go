package gfx

import "strconv"

// ColorSpace identifies an engine-neutral color space: the combination of
// transfer function, primaries and dynamic range a swap chain presents in.
type ColorSpace uint32

// Color spaces.
const (
	// ColorSpaceUnknown is the sentinel for an unset color space.
	ColorSpaceUnknown ColorSpace = iota

	// ColorSpaceSRGBNonlinear is standard sRGB (gamma ~2.2, BT.709 primaries).
	ColorSpaceSRGBNonlinear

	// ColorSpaceExtendedSRGBLinear is linear sRGB with extended range
	// (values outside [0,1] permitted, typically via float formats).
	ColorSpaceExtendedSRGBLinear

	// ColorSpaceExtendedSRGBNonlinear is sRGB-encoded with extended range.
	ColorSpaceExtendedSRGBNonlinear

	// ColorSpaceDisplayP3Nonlinear is Display-P3 with the sRGB transfer
	// function.
	ColorSpaceDisplayP3Nonlinear

	// ColorSpaceDisplayP3Linear is linear Display-P3.
	ColorSpaceDisplayP3Linear

	// ColorSpaceDCIP3Nonlinear is DCI-P3 (gamma 2.6).
	ColorSpaceDCIP3Nonlinear

	// ColorSpaceBT709Linear is linear BT.709.
	ColorSpaceBT709Linear

	// ColorSpaceBT709Nonlinear is BT.709 with its broadcast transfer function.
	ColorSpaceBT709Nonlinear

	// ColorSpaceBT2020Linear is linear BT.2020 wide gamut.
	ColorSpaceBT2020Linear

	// ColorSpaceHDR10ST2084 is HDR10: BT.2020 primaries with the SMPTE
	// ST 2084 perceptual quantizer.
	ColorSpaceHDR10ST2084

	// ColorSpaceHDR10HLG is BT.2020 primaries with hybrid log-gamma.
	ColorSpaceHDR10HLG

	// ColorSpaceDolbyVision is the proprietary Dolby Vision HDR scheme.
	ColorSpaceDolbyVision

	// ColorSpaceAdobeRGBNonlinear is Adobe RGB with its native gamma.
	ColorSpaceAdobeRGBNonlinear

	// ColorSpaceAdobeRGBLinear is linear Adobe RGB.
	ColorSpaceAdobeRGBLinear

	// ColorSpacePassThrough disables color-space transformation.
	ColorSpacePassThrough

	// ColorSpaceSCRGBLinear is scRGB: linear, BT.709 primaries, extended
	// range via float formats.
	ColorSpaceSCRGBLinear

	// ColorSpaceCount bounds the enumeration.
	ColorSpaceCount
)

var colorSpaceNames = [ColorSpaceCount]string{
	"Unknown",
	"SRGBNonlinear",
	"ExtendedSRGBLinear",
	"ExtendedSRGBNonlinear",
	"DisplayP3Nonlinear",
	"DisplayP3Linear",
	"DCIP3Nonlinear",
	"BT709Linear",
	"BT709Nonlinear",
	"BT2020Linear",
	"HDR10ST2084",
	"HDR10HLG",
	"DolbyVision",
	"AdobeRGBNonlinear",
	"AdobeRGBLinear",
	"PassThrough",
	"SCRGBLinear",
}

// String returns the color-space name, or "ColorSpace(n)" for out-of-range
// values.
func (c ColorSpace) String() string {
	if c < ColorSpaceCount {
		return colorSpaceNames[c]
	}
	return "ColorSpace(" + strconv.FormatUint(uint64(c), 10) + ")"
}
