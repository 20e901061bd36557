package gfx

import "testing"

func TestTextureFormatCount(t *testing.T) {
	// The mapping tables in the parent package are sized and ordered by
	// this enumeration; a count change means new entries must be added
	// there too.
	if got := uint32(TextureFormatCount); got != 106 {
		t.Fatalf("TextureFormatCount = %d, want 106", got)
	}
}

func TestTextureFormat_String(t *testing.T) {
	tests := []struct {
		f    TextureFormat
		want string
	}{
		{TextureFormatUnknown, "Unknown"},
		{TextureFormatRGBA8Unorm, "RGBA8Unorm"},
		{TextureFormatD24UnormS8Uint, "D24UnormS8Uint"},
		{TextureFormatBC7UnormSRGB, "BC7UnormSRGB"},
		{TextureFormatETC2RGBA8UnormSRGB, "ETC2RGBA8UnormSRGB"},
		{TextureFormatCount, "TextureFormat(106)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("TextureFormat(%d).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestTextureFormat_NamesComplete(t *testing.T) {
	for f := TextureFormatUnknown; f < TextureFormatCount; f++ {
		if textureFormatNames[f] == "" {
			t.Errorf("missing name for TextureFormat(%d)", uint32(f))
		}
	}
}
