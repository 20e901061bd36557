package dxgi

import (
	"testing"

	"github.com/gogpu/dxgi/gfx"
)

func TestCorrectFormat_DepthStencilOnly(t *testing.T) {
	tests := []struct {
		name string
		in   Format
		want Format
	}{
		{"r32 typeless", FormatR32Typeless, FormatD32Float},
		{"r32 float", FormatR32Float, FormatD32Float},
		{"r24g8 typeless", FormatR24G8Typeless, FormatD24UnormS8Uint},
		{"r24 unorm x8", FormatR24UnormX8Typeless, FormatD24UnormS8Uint},
		{"x24 g8 uint", FormatX24TypelessG8Uint, FormatD24UnormS8Uint},
		{"r16 typeless", FormatR16Typeless, FormatD16Unorm},
		{"r16 unorm", FormatR16Unorm, FormatD16Unorm},
		{"r32g8x24 typeless", FormatR32G8X24Typeless, FormatD32FloatS8X24Uint},
		{"r32 float x8x24", FormatR32FloatX8X24Typeless, FormatD32FloatS8X24Uint},
		{"x32 g8x24 uint", FormatX32TypelessG8X24Uint, FormatD32FloatS8X24Uint},

		// Already-concrete depth formats stay put.
		{"d32 float", FormatD32Float, FormatD32Float},
		{"d24 s8", FormatD24UnormS8Uint, FormatD24UnormS8Uint},
		{"d16", FormatD16Unorm, FormatD16Unorm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CorrectFormat(tt.in, gfx.BindDepthStencil); got != tt.want {
				t.Errorf("CorrectFormat(%v, DepthStencil) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCorrectFormat_ShaderReadable(t *testing.T) {
	tests := []struct {
		name string
		in   Format
		want Format
	}{
		{"r32 typeless", FormatR32Typeless, FormatR32Float},
		{"d32 float", FormatD32Float, FormatR32Float},
		{"r24g8 typeless", FormatR24G8Typeless, FormatR24UnormX8Typeless},
		{"d24 s8", FormatD24UnormS8Uint, FormatR24UnormX8Typeless},
		{"r16 typeless", FormatR16Typeless, FormatR16Unorm},
		{"d16", FormatD16Unorm, FormatR16Unorm},
		{"r32g8x24 typeless", FormatR32G8X24Typeless, FormatR32FloatX8X24Typeless},
		{"d32 s8x24", FormatD32FloatS8X24Uint, FormatR32FloatX8X24Typeless},

		// Non-depth formats pass through.
		{"rgba8 unorm", FormatR8G8B8A8Unorm, FormatR8G8B8A8Unorm},
		{"bc3 unorm", FormatBC3Unorm, FormatBC3Unorm},
	}

	for _, tt := range tests {
		for _, flags := range []gfx.BindFlags{gfx.BindShaderResource, gfx.BindUnorderedAccess} {
			t.Run(tt.name+"/"+flags.String(), func(t *testing.T) {
				if got := CorrectFormat(tt.in, flags); got != tt.want {
					t.Errorf("CorrectFormat(%v, %v) = %v, want %v", tt.in, flags, got, tt.want)
				}
			})
		}
	}
}

// TestCorrectFormat_CombinedIntent covers depth-stencil combined with
// other flags: every member of a depth family normalizes to the family's
// typeless base, and normalization is idempotent.
func TestCorrectFormat_CombinedIntent(t *testing.T) {
	flags := gfx.BindDepthStencil | gfx.BindShaderResource

	tests := []struct {
		name string
		in   Format
		want Format
	}{
		{"r32 family float", FormatR32Float, FormatR32Typeless},
		{"r32 family depth", FormatD32Float, FormatR32Typeless},
		{"r24g8 family depth", FormatD24UnormS8Uint, FormatR24G8Typeless},
		{"r24g8 family typeless", FormatR24G8Typeless, FormatR24G8Typeless},
		{"r16 family unorm", FormatR16Unorm, FormatR16Typeless},
		{"r32g8x24 family depth", FormatD32FloatS8X24Uint, FormatR32G8X24Typeless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectFormat(tt.in, flags)
			if got != tt.want {
				t.Errorf("CorrectFormat(%v, %v) = %v, want %v", tt.in, flags, got, tt.want)
			}
			// Idempotent: correcting the corrected value changes nothing.
			if again := CorrectFormat(got, flags); again != got {
				t.Errorf("CorrectFormat not idempotent: %v -> %v -> %v", tt.in, got, again)
			}
		})
	}
}

// TestCorrectFormat_StraddlingIntent checks the pass ordering when the
// intent is depth-stencil plus unordered-access: only the normalization
// pass applies, never the narrowing passes.
func TestCorrectFormat_StraddlingIntent(t *testing.T) {
	flags := gfx.BindDepthStencil | gfx.BindUnorderedAccess
	if got := CorrectFormat(FormatD32Float, flags); got != FormatR32Typeless {
		t.Errorf("CorrectFormat(D32_FLOAT, DepthStencil|UnorderedAccess) = %v, want R32_TYPELESS", got)
	}
}

func TestCorrectFormat_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := CorrectFormat(FormatR24G8Typeless, gfx.BindDepthStencil); got != FormatD24UnormS8Uint {
			t.Fatalf("call %d: CorrectFormat = %v, want D24_UNORM_S8_UINT", i, got)
		}
	}
}
