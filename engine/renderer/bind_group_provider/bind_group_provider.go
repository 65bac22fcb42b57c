package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the implementation of the BindGroupProvider interface.
type bindGroupProvider struct {
	label string

	// bind group resources, keyed by binding index
	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout
	buffers         map[int]*wgpu.Buffer
	capacities      map[int]uint64

	// mesh resources, drawn with the triangle or line pipelines
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   int
	edgeBuffer   *wgpu.Buffer
	edgeCount    int
}

// BindGroupProvider owns a set of GPU buffers and the bind group that exposes them
// to a shader. Mesh providers carry vertex, triangle index, and edge index buffers
// instead of a bind group.
//
// The layout is borrowed from the renderer and is not released by the provider.
type BindGroupProvider interface {
	// Release frees every buffer and the bind group owned by this provider.
	Release()

	// Label returns the debug label used for the provider's GPU objects.
	//
	// Returns:
	//   - string: the label
	Label() string

	// BindGroup returns the bind group, or nil if none has been created.
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout the bind group was created from.
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the buffer bound at the given binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	Buffer(binding int) *wgpu.Buffer

	// Buffers returns every bound buffer keyed by binding index.
	Buffers() map[int]*wgpu.Buffer

	// Capacity returns the allocated byte size of the buffer at binding.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - uint64: the allocated size, 0 if unset
	Capacity(binding int) uint64

	// VertexBuffer returns the mesh vertex buffer.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the mesh triangle index buffer.
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of triangle indices.
	IndexCount() int

	// EdgeBuffer returns the mesh edge index buffer, drawn as a line list.
	EdgeBuffer() *wgpu.Buffer

	// EdgeCount returns the number of edge indices.
	EdgeCount() int

	// SetBindGroup replaces the bind group, releasing the previous one.
	//
	// Parameters:
	//   - bg: the new bind group
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout sets the layout used to create the bind group.
	//
	// Parameters:
	//   - bgl: the layout
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer replaces the buffer at binding, releasing the previous one.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the new buffer
	//   - capacity: the buffer's allocated size in bytes
	SetBuffer(binding int, buf *wgpu.Buffer, capacity uint64)

	// SetVertexBuffer sets the mesh vertex buffer.
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetIndexBuffer sets the mesh triangle index buffer and its index count.
	SetIndexBuffer(buf *wgpu.Buffer, count int)

	// SetEdgeBuffer sets the mesh edge index buffer and its index count.
	SetEdgeBuffer(buf *wgpu.Buffer, count int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a new, empty BindGroupProvider.
//
// Parameters:
//   - label: the debug label for the provider's GPU objects
//   - options: variadic list of BindGroupProviderOption functions to configure the provider
//
// Returns:
//   - BindGroupProvider: a new provider instance
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:      label,
		buffers:    make(map[int]*wgpu.Buffer),
		capacities: make(map[int]uint64),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Release() {
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, i)
		delete(p.capacities, i)
	}
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	if p.edgeBuffer != nil {
		p.edgeBuffer.Release()
		p.edgeBuffer = nil
	}
	p.indexCount = 0
	p.edgeCount = 0
}

func (p *bindGroupProvider) Label() string                          { return p.label }
func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup             { return p.bindGroup }
func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout { return p.bindGroupLayout }
func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer        { return p.buffers[binding] }
func (p *bindGroupProvider) Buffers() map[int]*wgpu.Buffer          { return p.buffers }
func (p *bindGroupProvider) Capacity(binding int) uint64            { return p.capacities[binding] }
func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer             { return p.vertexBuffer }
func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer              { return p.indexBuffer }
func (p *bindGroupProvider) IndexCount() int                        { return p.indexCount }
func (p *bindGroupProvider) EdgeBuffer() *wgpu.Buffer               { return p.edgeBuffer }
func (p *bindGroupProvider) EdgeCount() int                         { return p.edgeCount }

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	if p.bindGroup != nil && p.bindGroup != bg {
		p.bindGroup.Release()
	}
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer, capacity uint64) {
	if p.buffers == nil {
		p.buffers = make(map[int]*wgpu.Buffer)
	}
	if p.capacities == nil {
		p.capacities = make(map[int]uint64)
	}
	if old := p.buffers[binding]; old != nil && old != buf {
		old.Release()
	}
	p.buffers[binding] = buf
	p.capacities[binding] = capacity
}

func (p *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer, count int) {
	p.indexBuffer = buf
	p.indexCount = count
}

func (p *bindGroupProvider) SetEdgeBuffer(buf *wgpu.Buffer, count int) {
	p.edgeBuffer = buf
	p.edgeCount = count
}
