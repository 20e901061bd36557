package dxgi

import (
	"testing"

	"github.com/gogpu/dxgi/gfx"
)

func TestFromColorSpace(t *testing.T) {
	tests := []struct {
		name string
		in   gfx.ColorSpace
		want ColorSpace
	}{
		{"srgb nonlinear", gfx.ColorSpaceSRGBNonlinear, ColorSpaceRGBFullG22NoneP709},
		{"extended srgb linear", gfx.ColorSpaceExtendedSRGBLinear, ColorSpaceRGBFullG10NoneP709},
		{"extended srgb nonlinear", gfx.ColorSpaceExtendedSRGBNonlinear, ColorSpaceRGBFullG22NoneP709},
		{"display p3 nonlinear", gfx.ColorSpaceDisplayP3Nonlinear, ColorSpaceRGBFullG22NoneP709},
		{"display p3 linear", gfx.ColorSpaceDisplayP3Linear, ColorSpaceRGBFullG10NoneP709},
		{"dci p3 nonlinear", gfx.ColorSpaceDCIP3Nonlinear, ColorSpaceRGBFullG22NoneP709},
		{"bt709 linear", gfx.ColorSpaceBT709Linear, ColorSpaceRGBFullG10NoneP709},
		{"bt709 nonlinear", gfx.ColorSpaceBT709Nonlinear, ColorSpaceRGBFullG22NoneP709},
		{"bt2020 linear", gfx.ColorSpaceBT2020Linear, ColorSpaceRGBFullG2084NoneP2020},
		{"hdr10 st2084", gfx.ColorSpaceHDR10ST2084, ColorSpaceRGBFullG2084NoneP2020},
		{"hdr10 hlg", gfx.ColorSpaceHDR10HLG, ColorSpaceRGBFullG22NoneP2020},
		{"dolby vision", gfx.ColorSpaceDolbyVision, ColorSpaceRGBFullG2084NoneP2020},
		{"adobe rgb nonlinear", gfx.ColorSpaceAdobeRGBNonlinear, ColorSpaceRGBFullG22NoneP709},
		{"adobe rgb linear", gfx.ColorSpaceAdobeRGBLinear, ColorSpaceRGBFullG10NoneP709},
		{"pass through", gfx.ColorSpacePassThrough, ColorSpaceRGBFullG22NoneP709},
		{"scrgb linear", gfx.ColorSpaceSCRGBLinear, ColorSpaceRGBFullG10NoneP709},
		{"unknown", gfx.ColorSpaceUnknown, ColorSpaceRGBFullG22NoneP709},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColorSpace(tt.in); got != tt.want {
				t.Errorf("FromColorSpace(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToColorSpace(t *testing.T) {
	tests := []struct {
		name string
		in   ColorSpace
		want gfx.ColorSpace
	}{
		{"full g22 p709", ColorSpaceRGBFullG22NoneP709, gfx.ColorSpaceSRGBNonlinear},
		{"full g10 p709", ColorSpaceRGBFullG10NoneP709, gfx.ColorSpaceSCRGBLinear},
		{"full pq p2020", ColorSpaceRGBFullG2084NoneP2020, gfx.ColorSpaceHDR10ST2084},
		{"full g22 p2020", ColorSpaceRGBFullG22NoneP2020, gfx.ColorSpaceHDR10HLG},
		{"studio g22 p709", ColorSpaceRGBStudioG22NoneP709, gfx.ColorSpaceSRGBNonlinear},
		{"studio g22 p2020", ColorSpaceRGBStudioG22NoneP2020, gfx.ColorSpaceHDR10HLG},
		{"studio pq p2020", ColorSpaceRGBStudioG2084NoneP2020, gfx.ColorSpaceHDR10ST2084},
		{"studio g24 p709", ColorSpaceRGBStudioG24NoneP709, gfx.ColorSpaceBT709Nonlinear},
		{"studio g24 p2020", ColorSpaceRGBStudioG24NoneP2020, gfx.ColorSpaceHDR10HLG},
		{"ycbcr 601", ColorSpaceYCbCrStudioG22LeftP601, gfx.ColorSpaceSRGBNonlinear},
		{"ycbcr 709", ColorSpaceYCbCrFullG22LeftP709, gfx.ColorSpaceSRGBNonlinear},
		{"ycbcr 2020 gamma", ColorSpaceYCbCrStudioG22LeftP2020, gfx.ColorSpaceHDR10HLG},
		{"ycbcr 2020 pq", ColorSpaceYCbCrStudioG2084LeftP2020, gfx.ColorSpaceHDR10ST2084},
		{"ycbcr 2020 hlg", ColorSpaceYCbCrFullGHLGTopLeftP2020, gfx.ColorSpaceHDR10HLG},
		{"reserved", ColorSpaceReserved, gfx.ColorSpaceSRGBNonlinear},
		{"custom", ColorSpaceCustom, gfx.ColorSpaceSRGBNonlinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToColorSpace(tt.in); got != tt.want {
				t.Errorf("ToColorSpace(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestColorSpace_HDR10RoundTrip covers the one pair documented as
// round-trip safe.
func TestColorSpace_HDR10RoundTrip(t *testing.T) {
	d := FromColorSpace(gfx.ColorSpaceHDR10ST2084)
	if d != ColorSpaceRGBFullG2084NoneP2020 {
		t.Fatalf("FromColorSpace(HDR10ST2084) = %v", d)
	}
	if back := ToColorSpace(d); back != gfx.ColorSpaceHDR10ST2084 {
		t.Fatalf("ToColorSpace(%v) = %v, want HDR10ST2084", d, back)
	}

	// sRGB nonlinear round-trips as well.
	if back := ToColorSpace(FromColorSpace(gfx.ColorSpaceSRGBNonlinear)); back != gfx.ColorSpaceSRGBNonlinear {
		t.Fatalf("sRGB round trip = %v", back)
	}
}

// TestColorSpace_FallbackDeterminism verifies a documented lossy fallback
// never varies across calls.
func TestColorSpace_FallbackDeterminism(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := FromColorSpace(gfx.ColorSpaceDisplayP3Nonlinear); got != ColorSpaceRGBFullG22NoneP709 {
			t.Fatalf("call %d: FromColorSpace(DisplayP3Nonlinear) = %v", i, got)
		}
	}
}
