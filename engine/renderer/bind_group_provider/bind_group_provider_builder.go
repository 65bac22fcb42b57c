package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroupLayout sets the bind group layout for this provider.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer binds a buffer of the given capacity at a binding index.
//
// Parameters:
//   - binding: the binding index
//   - buf: the buffer
//   - capacity: the buffer's allocated size in bytes
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer for this provider
func WithBuffer(binding int, buf *wgpu.Buffer, capacity uint64) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
		p.capacities[binding] = capacity
	}
}

// WithMesh sets the mesh buffers of this provider.
//
// Parameters:
//   - vertices: the vertex buffer
//   - indices: the triangle index buffer, may be nil for line meshes
//   - indexCount: the number of triangle indices
//   - edges: the edge index buffer
//   - edgeCount: the number of edge indices
//
// Returns:
//   - BindGroupProviderOption: a function that sets the mesh buffers for this provider
func WithMesh(vertices, indices *wgpu.Buffer, indexCount int, edges *wgpu.Buffer, edgeCount int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.vertexBuffer = vertices
		p.indexBuffer = indices
		p.indexCount = indexCount
		p.edgeBuffer = edges
		p.edgeCount = edgeCount
	}
}
