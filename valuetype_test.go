package dxgi

import (
	"testing"

	"github.com/gogpu/dxgi/gfx"
)

func TestFromValueType(t *testing.T) {
	tests := []struct {
		name       string
		vt         gfx.ValueType
		components int
		normalized bool
		want       Format
	}{
		{"float16 x1", gfx.ValueTypeFloat16, 1, false, FormatR16Float},
		{"float16 x2", gfx.ValueTypeFloat16, 2, false, FormatR16G16Float},
		{"float16 x4", gfx.ValueTypeFloat16, 4, false, FormatR16G16B16A16Float},
		{"float16 x3 unsupported", gfx.ValueTypeFloat16, 3, false, FormatUnknown},

		{"float32 x1", gfx.ValueTypeFloat32, 1, false, FormatR32Float},
		{"float32 x3", gfx.ValueTypeFloat32, 3, false, FormatR32G32B32Float},
		{"float32 x4", gfx.ValueTypeFloat32, 4, false, FormatR32G32B32A32Float},

		{"int32 x2", gfx.ValueTypeInt32, 2, false, FormatR32G32Sint},
		{"uint32 x4", gfx.ValueTypeUint32, 4, false, FormatR32G32B32A32Uint},

		{"int16 x2 norm", gfx.ValueTypeInt16, 2, true, FormatR16G16Snorm},
		{"int16 x2", gfx.ValueTypeInt16, 2, false, FormatR16G16Sint},
		{"uint16 x4 norm", gfx.ValueTypeUint16, 4, true, FormatR16G16B16A16Unorm},
		{"uint16 x1", gfx.ValueTypeUint16, 1, false, FormatR16Uint},

		{"int8 x4 norm", gfx.ValueTypeInt8, 4, true, FormatR8G8B8A8Snorm},
		{"int8 x1", gfx.ValueTypeInt8, 1, false, FormatR8Sint},
		{"uint8 x4 norm", gfx.ValueTypeUint8, 4, true, FormatR8G8B8A8Unorm},
		{"uint8 x2", gfx.ValueTypeUint8, 2, false, FormatR8G8Uint},
		{"uint8 x3 unsupported", gfx.ValueTypeUint8, 3, true, FormatUnknown},

		{"float64 unsupported", gfx.ValueTypeFloat64, 1, false, FormatUnknown},
		{"undefined", gfx.ValueTypeUndefined, 4, false, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromValueType(tt.vt, tt.components, tt.normalized)
			if got != tt.want {
				t.Errorf("FromValueType(%v, %d, %t) = %v, want %v",
					tt.vt, tt.components, tt.normalized, got, tt.want)
			}
		})
	}
}

func TestFromValueType_NormalizedFloatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FromValueType(Float32, 4, normalized) did not panic")
		}
	}()
	FromValueType(gfx.ValueTypeFloat32, 4, true)
}

func TestFromValueType_Normalized32BitIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FromValueType(Uint32, 1, normalized) did not panic")
		}
	}()
	FromValueType(gfx.ValueTypeUint32, 1, true)
}
