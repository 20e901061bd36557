package gfx

import "strings"

// BindFlags is a bitmask specifying how a resource may be bound to the
// graphics pipeline.
type BindFlags uint32

// Bind flags.
const (
	// BindNone declares no binding intent.
	BindNone BindFlags = 0

	// BindVertexBuffer allows binding as a vertex buffer.
	BindVertexBuffer BindFlags = 1 << 0

	// BindIndexBuffer allows binding as an index buffer.
	BindIndexBuffer BindFlags = 1 << 1

	// BindUniformBuffer allows binding as a uniform (constant) buffer.
	BindUniformBuffer BindFlags = 1 << 2

	// BindShaderResource allows binding as a shader resource view.
	BindShaderResource BindFlags = 1 << 3

	// BindStreamOutput allows binding as a stream-output target.
	BindStreamOutput BindFlags = 1 << 4

	// BindRenderTarget allows binding as a render target.
	BindRenderTarget BindFlags = 1 << 5

	// BindDepthStencil allows binding as a depth-stencil target.
	BindDepthStencil BindFlags = 1 << 6

	// BindUnorderedAccess allows binding as an unordered-access view.
	BindUnorderedAccess BindFlags = 1 << 7

	// BindIndirectDrawArgs allows use as an indirect draw/dispatch
	// argument buffer.
	BindIndirectDrawArgs BindFlags = 1 << 8
)

// Has reports whether all bits in want are set.
func (b BindFlags) Has(want BindFlags) bool {
	return b&want == want
}

// String returns a "|"-separated list of the set flags.
func (b BindFlags) String() string {
	if b == BindNone {
		return "None"
	}
	var sb strings.Builder
	for _, f := range []struct {
		flag BindFlags
		name string
	}{
		{BindVertexBuffer, "VertexBuffer"},
		{BindIndexBuffer, "IndexBuffer"},
		{BindUniformBuffer, "UniformBuffer"},
		{BindShaderResource, "ShaderResource"},
		{BindStreamOutput, "StreamOutput"},
		{BindRenderTarget, "RenderTarget"},
		{BindDepthStencil, "DepthStencil"},
		{BindUnorderedAccess, "UnorderedAccess"},
		{BindIndirectDrawArgs, "IndirectDrawArgs"},
	} {
		if b.Has(f.flag) {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(f.name)
		}
	}
	return sb.String()
}
